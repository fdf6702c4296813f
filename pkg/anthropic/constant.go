package anthropic

import "time"

const (
	// DefaultModel is the default Claude model
	DefaultModel = "claude-3-5-sonnet-20241022"

	// DefaultBaseURL is the default Anthropic API endpoint
	DefaultBaseURL = "https://api.anthropic.com/v1"

	// DefaultMaxTokens bounds generated output
	DefaultMaxTokens = 4096

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 60 * time.Second

	// apiVersion is the required anthropic-version header value
	apiVersion = "2023-06-01"
)
