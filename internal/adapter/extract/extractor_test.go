package extract

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectFileType(t *testing.T) {
	tests := []struct {
		filename string
		expected string
	}{
		{"notes.pdf", "pdf"},
		{"Notes.PDF", "pdf"},
		{"essay.docx", "docx"},
		{"readme.txt", "text"},
		{"scan.png", "image"},
		{"photo.JPEG", "image"},
		{"archive.zip", "unknown"},
		{"noextension", "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, DetectFileType(tt.filename), tt.filename)
	}
}

func TestExtractText_PlainText(t *testing.T) {
	e := NewFileExtractor()

	text, err := e.ExtractText([]byte("Photosynthesis converts light into energy.\r\n\r\n\r\nSecond paragraph."), "notes.txt")

	assert.NoError(t, err)
	assert.Equal(t, "Photosynthesis converts light into energy.\n\nSecond paragraph.", text)
}

func TestExtractText_EmptyTextFile(t *testing.T) {
	e := NewFileExtractor()

	_, err := e.ExtractText([]byte("   \n  "), "empty.txt")

	assert.Error(t, err)
}

func TestExtractText_InvalidUTF8Recovered(t *testing.T) {
	e := NewFileExtractor()

	data := append([]byte("valid prefix "), 0xff, 0xfe)
	text, err := e.ExtractText(data, "notes.txt")

	assert.NoError(t, err)
	assert.Contains(t, text, "valid prefix")
}

func TestExtractText_UnsupportedType(t *testing.T) {
	e := NewFileExtractor()

	_, err := e.ExtractText([]byte("data"), "archive.tar.gz")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file type")
}

func TestExtractText_ImageWithoutOCR(t *testing.T) {
	e := NewFileExtractor()

	_, err := e.ExtractText([]byte{0x89, 0x50, 0x4e, 0x47}, "scan.png")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "OCR")
}

func TestExtractText_CorruptPDF(t *testing.T) {
	e := NewFileExtractor()

	_, err := e.ExtractText([]byte("not a pdf at all"), "broken.pdf")

	assert.Error(t, err)
}

func buildDOCX(t *testing.T, documentXML string) []byte {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	f, err := w.Create("word/document.xml")
	require.NoError(t, err)
	_, err = f.Write([]byte(documentXML))
	require.NoError(t, err)

	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestExtractText_DOCX(t *testing.T) {
	docXML := `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>First paragraph about enzymes.</w:t></w:r></w:p>
    <w:p><w:r><w:t>Second paragraph with &amp; entity.</w:t></w:r></w:p>
  </w:body>
</w:document>`

	e := NewFileExtractor()
	text, err := e.ExtractText(buildDOCX(t, docXML), "notes.docx")

	assert.NoError(t, err)
	assert.Contains(t, text, "First paragraph about enzymes.")
	assert.Contains(t, text, "Second paragraph with & entity.")
}

func TestExtractText_DOCXMissingDocumentXML(t *testing.T) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("word/styles.xml")
	require.NoError(t, err)
	_, _ = f.Write([]byte("<styles/>"))
	require.NoError(t, w.Close())

	e := NewFileExtractor()
	_, err = e.ExtractText(buf.Bytes(), "notes.docx")

	assert.Error(t, err)
}

func TestExtractText_DOCXNotAZip(t *testing.T) {
	e := NewFileExtractor()

	_, err := e.ExtractText([]byte("plain bytes"), "notes.docx")

	assert.Error(t, err)
}

func TestNormalizeExtractedText(t *testing.T) {
	input := "  line one  \r\n\r\n\r\n  line two\rline three  "
	assert.Equal(t, "line one\n\nline two\nline three", normalizeExtractedText(input))
}
