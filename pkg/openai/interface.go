package openai

import "context"

// IOpenAI defines the interface for the OpenAI chat-completions client.
// Implementations are safe for concurrent use.
type IOpenAI interface {
	// Complete sends a chat completion request and returns the assistant text.
	Complete(ctx context.Context, req *Request) (string, error)

	// Model returns the model being used
	Model() string
}

// New creates a new OpenAI client with the given configuration
func New(cfg Config) (IOpenAI, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newOpenAIImpl(cfg), nil
}
