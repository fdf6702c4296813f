package perplexity

import "time"

const (
	// DefaultModel is the default Perplexity online model
	DefaultModel = "llama-3.1-sonar-large-128k-online"

	// DefaultBaseURL is the default Perplexity API endpoint
	DefaultBaseURL = "https://api.perplexity.ai"

	// DefaultMaxTokens bounds generated output
	DefaultMaxTokens = 2048

	// DefaultTemperature keeps research answers factual
	DefaultTemperature = 0.2

	// DefaultRecencyFilter restricts web search to recent sources
	DefaultRecencyFilter = "week"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 60 * time.Second
)
