package services

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"contractlens/contract-analyzer/internal/models"
)

const (
	mimePDF  = "application/pdf"
	mimeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	mimeText = "text/plain"
)

// ErrUnsupportedFileType is returned when neither the declared MIME type nor
// the filename extension identifies a supported format.
var ErrUnsupportedFileType = errors.New("unsupported file type")

type ExtractorService interface {
	Extract(doc *models.UploadedDocument) (string, error)
}

type extractorService struct {
	pdfParser  PDFParserService
	docxParser DocxParserService
}

func NewExtractorService(pdfParser PDFParserService, docxParser DocxParserService) ExtractorService {
	return &extractorService{
		pdfParser:  pdfParser,
		docxParser: docxParser,
	}
}

// Extract picks the format-specific parser from the declared content type,
// falling back to the filename extension when the browser sent something
// generic. The result is best-effort text; emptiness is for the caller to
// judge.
func (e *extractorService) Extract(doc *models.UploadedDocument) (string, error) {
	switch detectFormat(doc) {
	case ".pdf":
		return e.pdfParser.ExtractText(doc.FilePath)
	case ".docx":
		return e.docxParser.ExtractText(doc.FilePath)
	case ".txt":
		return extractPlainText(doc.FilePath)
	default:
		return "", ErrUnsupportedFileType
	}
}

func detectFormat(doc *models.UploadedDocument) string {
	switch doc.ContentType {
	case mimePDF:
		return ".pdf"
	case mimeDocx:
		return ".docx"
	case mimeText:
		return ".txt"
	}

	ext := strings.ToLower(filepath.Ext(doc.OriginalFileName))
	switch ext {
	case ".pdf", ".docx", ".txt":
		return ext
	}
	return ""
}

// extractPlainText decodes the file as UTF-8. Invalid bytes are an error the
// user sees, not a silent mojibake pass-through.
func extractPlainText(filePath string) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to read text file: %w", err)
	}

	if !utf8.Valid(data) {
		return "", fmt.Errorf("text file is not valid UTF-8")
	}

	return string(data), nil
}
