package services

import (
	"fmt"
	"os"
	"strings"

	"code.sajari.com/docconv"
)

type DocxParserService interface {
	ExtractText(filePath string) (string, error)
}

type docxParserService struct{}

func NewDocxParserService() DocxParserService {
	return &docxParserService{}
}

// ExtractText returns the document body as paragraphs joined by newlines,
// with a trailing newline after the last one.
func (d *docxParserService) ExtractText(filePath string) (text string, err error) {
	f, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open DOCX: %w", err)
	}
	defer f.Close()

	// docconv dereferences the [Content_Types].xml entry without a nil
	// check, so an archive missing it panics instead of erroring.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("failed to parse DOCX: %v", r)
		}
	}()

	body, _, err := docconv.ConvertDocx(f)
	if err != nil {
		return "", fmt.Errorf("failed to parse DOCX: %w", err)
	}

	return normalizeParagraphs(body), nil
}

// normalizeParagraphs collapses docconv's raw line output into non-blank
// paragraphs separated by single newlines. An empty body stays empty.
func normalizeParagraphs(body string) string {
	var paragraphs []string
	for _, line := range strings.Split(body, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		paragraphs = append(paragraphs, strings.TrimSpace(line))
	}

	if len(paragraphs) == 0 {
		return ""
	}
	return strings.Join(paragraphs, "\n") + "\n"
}
