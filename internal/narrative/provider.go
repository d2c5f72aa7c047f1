package narrative

import (
	"context"
)

// Provider is the interface for text-generation backends.
type Provider interface {
	Name() string
	GenerateResponse(ctx context.Context, prompt string, systemPrompt string) (string, error)
}
