package llm

import (
	"context"

	"sahabat-belanja/internal/shared"
)

// ContentResponse contains the generated text and metadata like token usage.
type ContentResponse struct {
	Content string
	Usage   shared.TokenUsage
}

// TextGenerator is an interface for generating text from a prompt.
type TextGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (ContentResponse, error)
}

// HealthStatus is the result of a connectivity diagnostic against the
// model provider.
type HealthStatus struct {
	Status  string `json:"status"` // "ok" or "error"
	Message string `json:"message"`
	Model   string `json:"model"`
}

// HealthChecker runs a lightweight connectivity diagnostic.
type HealthChecker interface {
	CheckStatus(ctx context.Context) HealthStatus
}

// Closer is an interface for closing resources.
type Closer interface {
	Close() error
}
