// Package provider defines the interface to the upstream model service.
package provider

import (
	"context"
	"fmt"

	"github.com/chalklabs/tutorgate/internal/types"
)

// Provider is implemented by upstream chat completion clients.
type Provider interface {
	// Name returns the provider identifier used in usage logs.
	Name() string

	// Complete performs one synchronous chat completion call.
	// Non-2xx upstream responses surface as *StatusError.
	Complete(ctx context.Context, req *types.ChatCompletionRequest) (*types.ChatCompletionResponse, error)
}

// StatusError reports a non-2xx upstream response. Message carries the
// upstream error text for logging; it is not sent to clients verbatim.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("upstream returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("upstream returned status %d: %s", e.StatusCode, e.Message)
}
