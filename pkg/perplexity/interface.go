package perplexity

import "context"

// IPerplexity defines the interface for the Perplexity chat completions client.
// Implementations are safe for concurrent use.
type IPerplexity interface {
	// GenerateContent sends a chat completion request to the Perplexity API
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Model returns the model being used
	Model() string
}

// New creates a new Perplexity client with the given configuration
func New(cfg Config) (IPerplexity, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newPerplexityImpl(cfg), nil
}
