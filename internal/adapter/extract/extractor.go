package extract

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"studyforge/internal/domain"
	"studyforge/internal/logger"

	"go.uber.org/zap"
)

// MinTextLength is the threshold below which extraction is treated as a
// failure at the request boundary.
const MinTextLength = 20

// FileExtractor implements domain.TextExtractor for PDF, DOCX, and plain
// text uploads. OCR backends for images stay external; image types yield an
// extraction error the caller maps to a user-facing message.
type FileExtractor struct{}

func NewFileExtractor() domain.TextExtractor {
	return &FileExtractor{}
}

// ExtractText returns best-effort text for the given file content.
func (e *FileExtractor) ExtractText(data []byte, filename string) (string, error) {
	fileType := DetectFileType(filename)
	logger.Get().Info("Extracting text",
		zap.String("filename", filename),
		zap.String("type", fileType),
		zap.Int("bytes", len(data)))

	var (
		text string
		err  error
	)
	switch fileType {
	case "pdf":
		text, err = extractPDF(data)
	case "docx":
		text, err = extractDOCX(data)
	case "text":
		text, err = extractTXT(data)
	case "image":
		return "", fmt.Errorf("image extraction requires an OCR backend, none configured")
	default:
		return "", fmt.Errorf("unsupported file type for text extraction: %s", filename)
	}
	if err != nil {
		return "", err
	}

	return normalizeExtractedText(text), nil
}

// DetectFileType classifies a file by its extension.
func DetectFileType(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return "pdf"
	case ".docx":
		return "docx"
	case ".txt":
		return "text"
	case ".png", ".jpg", ".jpeg", ".bmp", ".tiff", ".tif", ".gif", ".webp":
		return "image"
	default:
		return "unknown"
	}
}

func extractTXT(data []byte) (string, error) {
	if !utf8.Valid(data) {
		// Best effort: strip invalid sequences rather than reject the file.
		data = bytes.ToValidUTF8(data, []byte(" "))
	}
	text := string(data)
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("text file is empty")
	}
	return text, nil
}

// normalizeExtractedText unifies line endings, trims per-line whitespace,
// and collapses runs of blank lines to one.
func normalizeExtractedText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	lines := strings.Split(s, "\n")
	buf := bytes.Buffer{}

	emptyCount := 0
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			emptyCount++
			if emptyCount > 1 {
				continue
			}
			buf.WriteString("\n")
			continue
		}
		emptyCount = 0
		buf.WriteString(trimmed)
		buf.WriteString("\n")
	}

	return strings.TrimSpace(buf.String())
}
