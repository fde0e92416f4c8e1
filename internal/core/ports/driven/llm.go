package driven

import (
	"context"
	"fmt"
)

// LLMService provides textual-completion operations for metadata enrichment.
// This is an optional service - when nil, enrichment is disabled and the
// pipeline emits deterministic metadata only.
//
// Implementations may include:
//   - Perplexity (sonar)
//   - OpenAI-compatible chat-completions endpoints
type LLMService interface {
	// Generate produces a text completion from a prompt.
	// The returned text is the first completion choice, trimmed.
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)

	// ModelName returns the name of the LLM model being used.
	ModelName() string

	// Ping validates the service is reachable by making a lightweight
	// test request.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// HTTPError is returned by LLMService implementations for non-2xx API
// responses. It lives at the port so callers can distinguish transport
// rejections from other failures without importing a concrete adapter.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("status %d: %s", e.StatusCode, e.Body)
}

// GenerateOptions configures text generation behaviour.
type GenerateOptions struct {
	// SystemPrompt is the instruction message sent before the prompt.
	SystemPrompt string

	// MaxTokens is the maximum number of tokens to generate.
	MaxTokens int

	// Temperature controls randomness (0.0 = deterministic, 1.0 = creative).
	Temperature float64
}
