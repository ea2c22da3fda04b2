package services

import (
	"context"
	"encoding/json"
	"strings"

	"resume-analyzer/internal/models"
)

type AnalyzerService interface {
	Analyze(ctx context.Context, resumeText, jobPosting, modelID string) (*models.AnalysisResult, error)
}

type analyzerService struct {
	client        OpenRouterClient
	promptBuilder *PromptBuilder
}

func NewAnalyzerService(client OpenRouterClient) AnalyzerService {
	return &analyzerService{
		client:        client,
		promptBuilder: NewPromptBuilder(),
	}
}

// Analyze implements AnalyzerService. One upstream call, no retry and no
// fallback model: any failure is terminal for the request.
func (s *analyzerService) Analyze(ctx context.Context, resumeText, jobPosting, modelID string) (*models.AnalysisResult, error) {
	prompt := s.promptBuilder.BuildResumeAnalysisPrompt(resumeText, jobPosting)

	content, modelUsed, err := s.client.CreateChatCompletion(ctx, prompt, modelID)
	if err != nil {
		return nil, err
	}

	var fields map[string]any
	if err := json.Unmarshal([]byte(cleanJSON(content)), &fields); err != nil {
		return nil, &ContentError{Raw: content}
	}

	return &models.AnalysisResult{
		ModelUsed:   modelUsed,
		RawResponse: content,
		Fields:      fields,
	}, nil
}

// cleanJSON strips the markdown code fences some models wrap their JSON
// replies in.
func cleanJSON(input string) string {
	clean := strings.TrimSpace(input)

	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimLeft(clean, "\r\n")

	clean = strings.TrimSuffix(clean, "```")

	return strings.TrimSpace(clean)
}
