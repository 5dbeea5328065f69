package openai

import "time"

const (
	// DefaultModel is the default completion model
	DefaultModel = "gpt-4-1106-preview"

	// DefaultBaseURL is the default OpenAI API endpoint
	DefaultBaseURL = "https://api.openai.com/v1"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 60 * time.Second
)
