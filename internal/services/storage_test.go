package services

import (
	"bytes"
	"mime/multipart"
	"os"
	"strings"
	"testing"
)

// multipartFixture builds a *multipart.FileHeader the way fiber would hand
// one to the handler.
func multipartFixture(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("contract", filename)
	if err != nil {
		t.Fatalf("Failed to create form file: %v", err)
	}
	if _, err := fw.Write([]byte(content)); err != nil {
		t.Fatalf("Failed to write form file: %v", err)
	}
	mw.Close()

	form, err := multipart.NewReader(&buf, mw.Boundary()).ReadForm(1 << 20)
	if err != nil {
		t.Fatalf("Failed to parse form: %v", err)
	}
	t.Cleanup(func() { form.RemoveAll() })

	return form.File["contract"][0]
}

func TestSaveFileAndDelete(t *testing.T) {
	storage := NewStorageService(t.TempDir())
	if err := storage.EnsureUploadDir(); err != nil {
		t.Fatalf("Failed to ensure upload dir: %v", err)
	}

	header := multipartFixture(t, "my contract.txt", "the body")

	filename, filePath, err := storage.SaveFile(header)
	if err != nil {
		t.Fatalf("Expected save, got error: %v", err)
	}

	if !strings.HasPrefix(filename, "contract_") || !strings.HasSuffix(filename, ".txt") {
		t.Errorf("Unexpected generated filename: %q", filename)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		t.Fatalf("Failed to read spooled file: %v", err)
	}
	if string(data) != "the body" {
		t.Errorf("Spooled content mismatch: %q", data)
	}

	if err := storage.DeleteFile(filename); err != nil {
		t.Fatalf("Expected delete, got error: %v", err)
	}
	if _, err := os.Stat(filePath); !os.IsNotExist(err) {
		t.Error("Expected spooled file to be gone after delete")
	}
}

func TestSaveFileRejectsExtension(t *testing.T) {
	storage := NewStorageService(t.TempDir())
	if err := storage.EnsureUploadDir(); err != nil {
		t.Fatalf("Failed to ensure upload dir: %v", err)
	}

	for _, name := range []string{"report.exe", "archive.zip", "noextension"} {
		header := multipartFixture(t, name, "irrelevant")
		if _, _, err := storage.SaveFile(header); err == nil {
			t.Errorf("Expected rejection of %q", name)
		}
	}
}

func TestSaveFileUniqueNames(t *testing.T) {
	storage := NewStorageService(t.TempDir())
	if err := storage.EnsureUploadDir(); err != nil {
		t.Fatalf("Failed to ensure upload dir: %v", err)
	}

	header := multipartFixture(t, "contract.pdf", "pdf bytes")

	first, _, err := storage.SaveFile(header)
	if err != nil {
		t.Fatalf("First save failed: %v", err)
	}
	second, _, err := storage.SaveFile(header)
	if err != nil {
		t.Fatalf("Second save failed: %v", err)
	}
	if first == second {
		t.Error("Expected unique spool names per save")
	}
}
