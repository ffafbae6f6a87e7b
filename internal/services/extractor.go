package services

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

// TextExtractor turns an uploaded file into raw text. Plain-text files are
// decoded as UTF-8 verbatim and PDFs are parsed for real. Every other format
// still gets a placeholder string; DOCX support needs a dedicated parser.
type TextExtractor interface {
	Extract(fileName string, data []byte) (string, error)
}

type textExtractor struct{}

func NewTextExtractor() TextExtractor {
	return &textExtractor{}
}

// Extract implements TextExtractor.
func (e *textExtractor) Extract(fileName string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".txt":
		if !utf8.Valid(data) {
			return "", fmt.Errorf("%s is not valid UTF-8: %w", fileName, ErrExtraction)
		}
		return string(data), nil
	case ".pdf":
		text, err := extractPDFText(data)
		if err != nil {
			return "", fmt.Errorf("failed to parse %s: %v: %w", fileName, err, ErrExtraction)
		}
		return text, nil
	default:
		return fmt.Sprintf("Extracted text from %s", fileName), nil
	}
}

func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	var textBuilder strings.Builder
	totalPage := reader.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages, keep the rest
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n\n")
	}

	text := textBuilder.String()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("no text content found in PDF")
	}

	return text, nil
}
