package llm

import (
	"context"
)

// Request is a single-shot text completion request. The tool pipeline is
// strictly request-response, so there is no streaming surface here.
type Request struct {
	Prompt      string
	Temperature float64
	MaxTokens   int
}

// Client interface for text-generation providers
type Client interface {
	// Complete sends one completion request and returns the generated text
	Complete(ctx context.Context, req Request) (string, error)
}
