package anthropic

import "context"

// IAnthropic defines the interface for the Anthropic Messages API client.
// Implementations are safe for concurrent use.
type IAnthropic interface {
	// GenerateContent sends a message generation request to the Anthropic API
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Model returns the model being used
	Model() string
}

// New creates a new Anthropic client with the given configuration
func New(cfg Config) (IAnthropic, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newAnthropicImpl(cfg), nil
}
