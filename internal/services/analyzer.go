package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"contractlens/contract-analyzer/internal/models"
)

// Failure classes surfaced to the user. Everything here is terminal for the
// current interaction; there is no retry.
var (
	ErrNoTextExtracted  = errors.New("no text could be extracted from the file")
	ErrModelFailure     = errors.New("model request failed")
	ErrBadModelResponse = errors.New("model response could not be parsed")
)

type AnalyzerService interface {
	AnalyzeContract(ctx context.Context, doc *models.UploadedDocument) (*models.Analysis, error)
}

type analyzerService struct {
	extractor     ExtractorService
	geminiService GeminiService
	promptBuilder *PromptBuilder
	temperature   float32
}

func NewAnalyzerService(
	extractor ExtractorService,
	geminiService GeminiService,
	temperature float32,
) AnalyzerService {
	return &analyzerService{
		extractor:     extractor,
		geminiService: geminiService,
		promptBuilder: NewPromptBuilder(),
		temperature:   temperature,
	}
}

// AnalyzeContract runs the whole pipeline for one upload: extract text,
// build the prompt, call the model once, parse the reply.
func (a *analyzerService) AnalyzeContract(ctx context.Context, doc *models.UploadedDocument) (*models.Analysis, error) {
	log.Printf("📄 Extracting text from %s...", doc.OriginalFileName)
	contractText, err := a.extractor.Extract(doc)
	if err != nil {
		if errors.Is(err, ErrUnsupportedFileType) {
			return nil, ErrNoTextExtracted
		}
		return nil, fmt.Errorf("%w: %v", ErrNoTextExtracted, err)
	}

	if strings.TrimSpace(contractText) == "" {
		return nil, ErrNoTextExtracted
	}

	prompt := a.promptBuilder.BuildContractAnalysisPrompt(contractText)
	log.Printf("📝 Analysis prompt length: %d characters", len(prompt))

	log.Println("🤖 Analyzing contract with LLM...")
	response, err := a.geminiService.GenerateText(ctx, prompt, a.temperature)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrModelFailure, err)
	}

	analysis, err := parseAnalysisResponse(response)
	if err != nil {
		log.Printf("❌ Failed to parse analysis response: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrBadModelResponse, err)
	}

	log.Printf("✅ Analysis completed for %s", doc.OriginalFileName)
	return analysis, nil
}

// parseAnalysisResponse deserializes the model reply, tolerating an optional
// markdown code fence around the JSON payload.
func parseAnalysisResponse(response string) (*models.Analysis, error) {
	payload := extractJSONPayload(response)

	var analysis models.Analysis
	if err := json.Unmarshal([]byte(payload), &analysis); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	return &analysis, nil
}

// extractJSONPayload strips a leading fenced code block if present, language
// tag included. A plain prefix scan keeps adversarial input linear; there is
// no backtracking to exploit.
func extractJSONPayload(text string) string {
	trimmed := strings.TrimSpace(text)

	rest, ok := strings.CutPrefix(trimmed, "```")
	if !ok {
		return trimmed
	}

	// Drop the rest of the fence line (e.g. a "json" language tag).
	if i := strings.IndexByte(rest, '\n'); i >= 0 {
		rest = rest[i+1:]
	} else {
		return trimmed
	}

	if end := strings.Index(rest, "```"); end >= 0 {
		rest = rest[:end]
	}

	return strings.TrimSpace(rest)
}
