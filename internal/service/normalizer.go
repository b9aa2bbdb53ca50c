package service

import (
	"regexp"
	"strings"
)

// correction is a single pattern-based OCR cleanup step.
type correction struct {
	pattern     *regexp.Regexp
	replacement string
}

// ocrCorrections are applied in order. Character-confusion fixes must run
// before whitespace collapsing: several confusion patterns anchor on word
// boundaries that the whitespace passes would destroy.
var ocrCorrections = []correction{
	// Corrupted ligature sequences seen in scanned headers.
	{regexp.MustCompile(`[|]UMAN`), "HUMAN"},
	// Letter/digit confusions around numeric context.
	{regexp.MustCompile(`\boO\b`), "0"},
	{regexp.MustCompile(`\bO(\d)`), "0$1"},
	{regexp.MustCompile(`(\d)O\b`), "${1}0"},
	{regexp.MustCompile(`\bl(\d)`), "1$1"},
	{regexp.MustCompile(`(\d)l\b`), "${1}1"},
	{regexp.MustCompile(`\brn\b`), "m"},
	{regexp.MustCompile(`\bvv\b`), "w"},
	// Whitespace cleanup: runs of spaces/tabs to a single space, then three
	// or more consecutive line breaks to exactly one blank line.
	{regexp.MustCompile(`[ \t]+`), " "},
	{regexp.MustCompile(`\n[ ]*\n[ ]*(?:\n[ ]*)+`), "\n\n"},
}

// NormalizeText cleans OCR artifacts from extracted text. It is a pure
// function; empty input yields empty output.
func NormalizeText(text string) string {
	for _, c := range ocrCorrections {
		text = c.pattern.ReplaceAllString(text, c.replacement)
	}
	return strings.TrimSpace(text)
}
