package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"resume-analyzer/internal/config"
	"resume-analyzer/internal/models"
)

// TransportError means the upstream call never completed (dial failure,
// timeout, connection reset).
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("Network error: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ProtocolError means the upstream answered with a non-success status.
type ProtocolError struct {
	StatusCode int
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("Model request failed with status %d", e.StatusCode)
}

// ContentError means the upstream answered successfully but the reply could
// not be parsed as JSON — either the completion envelope itself or the
// message content inside it. Raw keeps the unparsed text for diagnostics.
type ContentError struct {
	Raw string
}

func (e *ContentError) Error() string {
	return "LLM did not return valid JSON"
}

type OpenRouterClient interface {
	ListModels(ctx context.Context) ([]models.ModelInfo, error)
	CreateChatCompletion(ctx context.Context, prompt string, modelID string) (content string, modelUsed string, err error)
}

type openRouterClient struct {
	apiKey         string
	baseURL        string
	modelsTimeout  time.Duration
	analyzeTimeout time.Duration
	httpClient     *http.Client
}

func NewOpenRouterClient(cfg config.OpenRouterConfig) OpenRouterClient {
	return &openRouterClient{
		apiKey:         cfg.APIKey,
		baseURL:        cfg.BaseURL,
		modelsTimeout:  cfg.ModelsTimeout,
		analyzeTimeout: cfg.AnalyzeTimeout,
		httpClient:     &http.Client{},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model,omitempty"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatCompletionResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// ListModels implements OpenRouterClient. The full upstream list is echoed
// back reshaped, with is_free derived from each model's pricing.
func (c *openRouterClient) ListModels(ctx context.Context) ([]models.ModelInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, c.modelsTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/models", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build models request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("models request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("model listing failed with status %d", resp.StatusCode)
	}

	var list models.ModelListResponse
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("failed to decode model list: %w", err)
	}

	for i := range list.Data {
		list.Data[i].IsFree = list.Data[i].Pricing.IsFree()
	}

	return list.Data, nil
}

// CreateChatCompletion implements OpenRouterClient. The model field is sent
// only when modelID is non-empty; otherwise the provider picks its default.
// An empty content with a nil error is possible when the upstream returns no
// choices; callers treat it like any other unparseable reply.
func (c *openRouterClient) CreateChatCompletion(ctx context.Context, prompt string, modelID string) (string, string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.analyzeTimeout)
	defer cancel()

	body := chatCompletionRequest{
		Model: modelID,
		Messages: []chatMessage{
			{Role: "system", Content: "You are a helpful resume analysis AI."},
			{Role: "user", Content: prompt},
		},
		Temperature: 0.3,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", "", fmt.Errorf("failed to encode chat completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", "", fmt.Errorf("failed to build chat completion request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", "", &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", "", &ProtocolError{StatusCode: resp.StatusCode}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", "", &TransportError{Err: err}
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(raw, &completion); err != nil {
		return "", "", &ContentError{Raw: string(raw)}
	}

	content := ""
	if len(completion.Choices) > 0 {
		content = completion.Choices[0].Message.Content
	}

	return content, completion.Model, nil
}
