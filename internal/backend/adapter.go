package backend

import (
	"context"

	"voice-commander/pkg/anthropic"
	"voice-commander/pkg/openai"
	"voice-commander/pkg/perplexity"
)

// AnthropicAdapter adapts pkg/anthropic to the Specialist interface
type AnthropicAdapter struct {
	client anthropic.IAnthropic
}

// NewAnthropicAdapter creates a new Anthropic adapter
func NewAnthropicAdapter(client anthropic.IAnthropic) *AnthropicAdapter {
	return &AnthropicAdapter{client: client}
}

// Generate implements Specialist interface
func (a *AnthropicAdapter) Generate(ctx context.Context, prompt, system string) (string, error) {
	resp, err := a.client.GenerateContent(ctx, &anthropic.Request{
		System: system,
		Messages: []anthropic.Message{
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}

// Name returns the provider name
func (a *AnthropicAdapter) Name() string {
	return "anthropic"
}

// Model returns the model name
func (a *AnthropicAdapter) Model() string {
	return a.client.Model()
}

// OpenAIAdapter adapts pkg/openai to the Specialist interface
type OpenAIAdapter struct {
	client openai.IOpenAI
}

// NewOpenAIAdapter creates a new OpenAI adapter
func NewOpenAIAdapter(client openai.IOpenAI) *OpenAIAdapter {
	return &OpenAIAdapter{client: client}
}

// Generate implements Specialist interface
func (a *OpenAIAdapter) Generate(ctx context.Context, prompt, system string) (string, error) {
	resp, err := a.client.GenerateContent(ctx, &openai.Request{
		System: system,
		Messages: []openai.Message{
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}

// Name returns the provider name
func (a *OpenAIAdapter) Name() string {
	return "openai"
}

// Model returns the model name
func (a *OpenAIAdapter) Model() string {
	return a.client.Model()
}

// PerplexityAdapter adapts pkg/perplexity to the Specialist interface
type PerplexityAdapter struct {
	client perplexity.IPerplexity
}

// NewPerplexityAdapter creates a new Perplexity adapter
func NewPerplexityAdapter(client perplexity.IPerplexity) *PerplexityAdapter {
	return &PerplexityAdapter{client: client}
}

// Generate implements Specialist interface
func (a *PerplexityAdapter) Generate(ctx context.Context, prompt, system string) (string, error) {
	resp, err := a.client.GenerateContent(ctx, &perplexity.Request{
		System: system,
		Prompt: prompt,
	})
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}

// Name returns the provider name
func (a *PerplexityAdapter) Name() string {
	return "perplexity"
}

// Model returns the model name
func (a *PerplexityAdapter) Model() string {
	return a.client.Model()
}
