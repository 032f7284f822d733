package handlers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"contractlens/contract-analyzer/internal/models"
	"contractlens/contract-analyzer/internal/services"
)

type AnalyzeHandler struct {
	storageService services.StorageService
	analyzer       services.AnalyzerService
	maxFileSize    int64
	timeout        time.Duration
}

func NewAnalyzeHandler(
	storageService services.StorageService,
	analyzer services.AnalyzerService,
	maxFileSize int64,
	timeout time.Duration,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		storageService: storageService,
		analyzer:       analyzer,
		maxFileSize:    maxFileSize,
		timeout:        timeout,
	}
}

// HandleAnalyze runs one full analysis interaction: validate the upload,
// spool it, extract, call the model, render the result page. Every failure
// renders the form page with a user-facing message and ends the interaction.
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	file, err := c.FormFile("contract")
	if err != nil {
		return renderError(c, fiber.StatusBadRequest,
			"Please upload a contract file to analyze.")
	}

	// Size ceiling is enforced before any processing.
	if file.Size > h.maxFileSize {
		return renderError(c, fiber.StatusRequestEntityTooLarge, fmt.Sprintf(
			"File size exceeds the %d MB limit. Please upload a smaller file.",
			h.maxFileSize/(1024*1024)))
	}

	filename, filePath, err := h.storageService.SaveFile(file)
	if err != nil {
		return renderError(c, fiber.StatusBadRequest,
			"Could not extract any text from the uploaded file. Please ensure the file is not corrupted.")
	}
	// The upload is read once and discarded.
	defer h.storageService.DeleteFile(filename)

	doc := &models.UploadedDocument{
		ID:               uuid.New(),
		OriginalFileName: file.Filename,
		ContentType:      file.Header.Get("Content-Type"),
		Size:             file.Size,
		FilePath:         filePath,
	}

	// The model call is not tied to the connection: once issued it runs to
	// completion or to the configured timeout, never to a client disconnect.
	ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()

	analysis, err := h.analyzer.AnalyzeContract(ctx, doc)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoTextExtracted):
			return renderError(c, fiber.StatusBadRequest,
				"Could not extract any text from the uploaded file. Please ensure the file is not corrupted.")
		default:
			return renderError(c, fiber.StatusBadGateway,
				"Could not analyze the contract. Please check the contract text and your API key.")
		}
	}

	return c.Render("result", fiber.Map{
		"Filename":     file.Filename,
		"Headlines":    analysis.Headlines(),
		"Narratives":   analysis.Narratives(),
		"ClauseGroups": analysis.ClauseGroups(),
	})
}

func renderError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).Render("index", fiber.Map{
		"Error": message,
	})
}
