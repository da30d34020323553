// Package llm wraps the generative-model service behind a small client
// interface so the report pipeline can be exercised without network access.
package llm

import (
	"context"
)

// Options are the fixed generation parameters for a request
type Options struct {
	// Temperature controls randomness; the pipeline favors low values
	Temperature float32

	// CandidateCount is the number of candidates requested
	CandidateCount int32
}

// Client produces raw model text for a prompt. Implementations make a
// single attempt per call; retry policy belongs to callers.
type Client interface {
	// Name identifies the backing model/service
	Name() string

	// GenerateText sends the prompt and returns the raw response text
	GenerateText(ctx context.Context, prompt string, opts Options) (string, error)
}

// Factory constructs a client at call time. Configuration validation
// (credential presence) happens eagerly inside the factory, before any
// network attempt.
type Factory func(ctx context.Context) (Client, error)
