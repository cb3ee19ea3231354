package llm

import (
	"context"
)

// Client is the boundary to the external model service. Implementations
// must request deterministic decoding (temperature pinned to the minimum)
// and a single JSON object response where the provider supports it.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
