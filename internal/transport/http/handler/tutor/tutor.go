// Package tutor implements the relay endpoint that turns a student's
// question into an upstream chat completion call.
package tutor

import (
	"time"

	"github.com/chalklabs/tutorgate/internal/config"
	"github.com/chalklabs/tutorgate/internal/provider"
	"github.com/chalklabs/tutorgate/internal/storage"
	"github.com/chalklabs/tutorgate/internal/tokenizer"
	"github.com/chalklabs/tutorgate/internal/types"
)

// Handlers holds the dependencies for the tutor HTTP handlers.
type Handlers struct {
	Provider  provider.Provider
	Storage   storage.Storage
	Tokenizer tokenizer.Tokenizer
	Config    *config.Config
}

// New creates a new instance of tutor handlers.
func New(prov provider.Provider, store storage.Storage, tok tokenizer.Tokenizer, cfg *config.Config) *Handlers {
	return &Handlers{
		Provider:  prov,
		Storage:   store,
		Tokenizer: tok,
		Config:    cfg,
	}
}

// logRequest writes the request log row and rolls it into the daily
// aggregate. Runs in its own goroutine after the response is sent; errors
// are dropped because there is nobody left to report them to.
func (h *Handlers) logRequest(requestID, model string, hasImage bool, status int, errMsg string, usage types.Usage, promptEstimate int, duration time.Duration) {
	if h.Storage == nil {
		return
	}

	// Prefer upstream-reported usage, fall back to the local estimate.
	prompt := usage.PromptTokens
	if prompt == 0 {
		prompt = promptEstimate
	}
	completion := usage.CompletionTokens
	total := usage.TotalTokens
	if total == 0 {
		total = prompt + completion
	}

	entry := &storage.RequestLog{
		RequestID:        requestID,
		Model:            model,
		Provider:         h.Provider.Name(),
		PromptTokens:     prompt,
		CompletionTokens: completion,
		TotalTokens:      total,
		HasImage:         hasImage,
		StatusCode:       status,
		ErrorMessage:     errMsg,
		DurationMs:       duration.Milliseconds(),
		CreatedAt:        time.Now().UTC(),
	}
	_ = h.Storage.LogRequest(entry)

	errorCount := 0
	if status >= 400 {
		errorCount = 1
	}

	_ = h.Storage.UpdateDailyUsage(&storage.DailyUsage{
		Date:             time.Now().UTC().Format("2006-01-02"),
		Model:            model,
		RequestCount:     1,
		PromptTokens:     prompt,
		CompletionTokens: completion,
		TotalTokens:      total,
		ErrorCount:       errorCount,
	})
}
