package service

import (
	"strings"
	"unicode"

	"regexp"

	"studyforge/internal/domain"
)

var (
	topicDelimiters = regexp.MustCompile(`[-–—,\n]`)
	enumMarker      = regexp.MustCompile(`^\s*(?:\d+\s*[.)]\s*|[•*▪‣]\s*)`)
	// A capitalized word optionally followed by more capitalized words,
	// optionally with a parenthetical acronym.
	capitalizedPhrase = regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*(?:\s*\([A-Z]{2,}\))?`)
	trailingPunct     = regexp.MustCompile(`[.:;,!?]+$`)
)

// ExtractTopics derives a deduplicated, ordered list of candidate topics
// from raw text. It is a pure function: the same text always yields the
// same topics, in order of first occurrence.
func ExtractTopics(text string) []domain.Topic {
	var topics []domain.Topic
	seen := make(map[string]bool)

	add := func(label string) {
		label = strings.TrimSpace(label)
		key := strings.ToLower(label)
		if len(key) <= 3 || seen[key] {
			return
		}
		seen[key] = true
		topics = append(topics, domain.Topic{Label: label, Ordinal: len(topics)})
	}

	// Pass 1: delimiter-separated candidate lines.
	for _, candidate := range topicDelimiters.Split(text, -1) {
		candidate = enumMarker.ReplaceAllString(candidate, "")
		candidate = strings.TrimSpace(candidate)
		if len(candidate) < 3 || !containsAlpha(candidate) {
			continue
		}
		candidate = strings.TrimSpace(trailingPunct.ReplaceAllString(candidate, ""))
		if len(candidate) > 2 && len(candidate) < 200 {
			add(candidate)
		}
	}

	// Pass 2: capitalized multi-word phrases from the whole text.
	for _, phrase := range capitalizedPhrase.FindAllString(text, -1) {
		phrase = strings.TrimSpace(phrase)
		if len(phrase) > 3 && len(phrase) < 100 {
			add(phrase)
		}
	}

	return topics
}

func containsAlpha(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
