package anthropic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// newAnthropicImpl creates a new Anthropic implementation
func newAnthropicImpl(cfg Config) *anthropicImpl {
	return &anthropicImpl{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		baseURL:    cfg.BaseURL,
		maxTokens:  cfg.MaxTokens,
		httpClient: cfg.HTTPClient,
	}
}

// GenerateContent sends a message generation request to the Anthropic API
func (a *anthropicImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = a.maxTokens
	}

	wireReq := anthropicRequest{
		Model:     a.model,
		MaxTokens: maxTokens,
		System:    req.System,
		Messages:  make([]anthropicMessage, len(req.Messages)),
	}
	for i, msg := range req.Messages {
		wireReq.Messages[i] = anthropicMessage{Role: msg.Role, Content: msg.Content}
	}

	body, err := json.Marshal(wireReq)
	if err != nil {
		return nil, fmt.Errorf("anthropic: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/messages", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("anthropic: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", a.apiKey)
	httpReq.Header.Set("anthropic-version", apiVersion)

	resp, err := a.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("anthropic: API call failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("anthropic: failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp anthropicErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err != nil || errResp.Error.Message == "" {
			return nil, fmt.Errorf("anthropic: API error %d: %s", resp.StatusCode, string(respBody))
		}
		return nil, fmt.Errorf("anthropic: API error %d: %s", resp.StatusCode, errResp.Error.Message)
	}

	var result anthropicResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("anthropic: failed to decode response: %w", err)
	}

	return a.transformResponse(&result), nil
}

// Model returns the model being used
func (a *anthropicImpl) Model() string {
	return a.model
}

// transformResponse flattens text content blocks into one string
func (a *anthropicImpl) transformResponse(resp *anthropicResponse) *Response {
	text := ""
	for _, block := range resp.Content {
		if block.Type == "text" {
			text += block.Text
		}
	}
	return &Response{
		Text: text,
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
		},
	}
}
