package openai

import "time"

const (
	// DefaultModel is the default OpenAI model
	DefaultModel = "gpt-4o"

	// DefaultBaseURL is the default OpenAI API endpoint
	DefaultBaseURL = "https://api.openai.com/v1"

	// DefaultMaxTokens bounds generated output
	DefaultMaxTokens = 2048

	// DefaultTemperature suits creative generation
	DefaultTemperature = 0.8

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 60 * time.Second
)
