package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// newOpenAIImpl creates a new OpenAI implementation
func newOpenAIImpl(cfg Config) *openAIImpl {
	return &openAIImpl{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		model:      cfg.Model,
		httpClient: cfg.HTTPClient,
	}
}

// Complete sends a chat completion request and returns the assistant text.
func (o *openAIImpl) Complete(ctx context.Context, req *Request) (string, error) {
	wireReq := chatRequest{
		Model:       o.model,
		Messages:    req.Messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.JSONMode {
		wireReq.ResponseFormat = &responseFormat{Type: "json_object"}
	}

	body, err := json.Marshal(wireReq)
	if err != nil {
		return "", fmt.Errorf("openai: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		o.baseURL+"/chat/completions", bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("openai: failed to create request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+o.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := o.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("openai: API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("openai: API error %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var wireResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&wireResp); err != nil {
		return "", fmt.Errorf("openai: failed to decode response: %w", err)
	}

	if len(wireResp.Choices) == 0 {
		return "", fmt.Errorf("openai: empty response from API")
	}

	return wireResp.Choices[0].Message.Content, nil
}

// Model returns the model being used
func (o *openAIImpl) Model() string {
	return o.model
}
