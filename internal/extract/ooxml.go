package extract

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// wordText matches the text nodes of a DOCX body, attributes included
// (<w:t> and <w:t xml:space="preserve">). Pulling text nodes directly
// keeps content regardless of paragraph or run attributes.
var wordText = regexp.MustCompile(`<w:t[^>]*>([^<]*)</w:t>`)

// odtText matches OpenDocument paragraph, heading, and span elements.
var odtText = regexp.MustCompile(`<text:(?:p|h|span)[^>]*>([^<]*)</text:(?:p|h|span)>`)

// extractDOCX extracts text from .docx bytes: a ZIP whose main body lives
// at word/document.xml.
func extractDOCX(content []byte) (string, error) {
	xml, err := zipEntry(content, "word/document.xml")
	if err != nil {
		return "", fmt.Errorf("extract DOCX: %w", err)
	}
	return joinMatches(wordText.FindAllSubmatch(xml, -1)), nil
}

// extractODT extracts text from .odt bytes: a ZIP whose body lives at
// content.xml.
func extractODT(content []byte) (string, error) {
	xml, err := zipEntry(content, "content.xml")
	if err != nil {
		return "", fmt.Errorf("extract ODT: %w", err)
	}
	return joinMatches(odtText.FindAllSubmatch(xml, -1)), nil
}

// zipEntry returns the named file's bytes from a ZIP archive.
func zipEntry(content []byte, name string) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, fmt.Errorf("not a zip: %w", err)
	}
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", name, err)
		}
		defer rc.Close()
		data, err := io.ReadAll(rc)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("%s not found", name)
}

// joinMatches joins the first capture group of each match with spaces.
func joinMatches(matches [][][]byte) string {
	var b strings.Builder
	for _, m := range matches {
		text := strings.TrimSpace(string(m[1]))
		if text == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(text)
	}
	return b.String()
}
