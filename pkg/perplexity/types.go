package perplexity

import (
	"fmt"
	"net/http"
)

// Config holds Perplexity client configuration
type Config struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("perplexity: APIKey is required")
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// perplexityImpl is the internal implementation of IPerplexity
type perplexityImpl struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// Request represents a research request
type Request struct {
	System      string
	Prompt      string
	Temperature float64
	MaxTokens   int
}

// Response represents a research response
type Response struct {
	Text      string
	Citations []string
	Usage     *Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// OpenAI-compatible wire types with Perplexity search extensions
type chatRequest struct {
	Model                  string        `json:"model"`
	Messages               []chatMessage `json:"messages"`
	MaxTokens              int           `json:"max_tokens,omitempty"`
	Temperature            float64       `json:"temperature,omitempty"`
	ReturnCitations        bool          `json:"return_citations"`
	ReturnRelatedQuestions bool          `json:"return_related_questions"`
	SearchRecencyFilter    string        `json:"search_recency_filter,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	ID        string       `json:"id"`
	Model     string       `json:"model"`
	Citations []string     `json:"citations,omitempty"`
	Choices   []chatChoice `json:"choices"`
	Usage     chatUsage    `json:"usage"`
}

type chatChoice struct {
	Index        int         `json:"index"`
	Message      chatMessage `json:"message"`
	FinishReason string      `json:"finish_reason"`
}

type chatUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}
