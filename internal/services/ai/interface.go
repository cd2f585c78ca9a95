// File: internal/services/ai/interface.go
package ai

import "context"

// Turn is one prior conversation message forwarded to the provider.
type Turn struct {
	Role    string
	Content string
}

// CompletionRequest carries everything one completion call needs: the system
// framing, the windowed conversation and a token budget.
type CompletionRequest struct {
	System    string
	Turns     []Turn
	MaxTokens int
}

// CompletionProvider is the external text-completion service. Treated as
// opaque and unreliable: any error from it sends the caller down the
// deterministic fallback path.
type CompletionProvider interface {
	CreateCompletion(ctx context.Context, req CompletionRequest) (string, error)
}
