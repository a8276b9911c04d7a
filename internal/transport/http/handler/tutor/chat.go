package tutor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/chalklabs/tutorgate/internal/prompt"
	"github.com/chalklabs/tutorgate/internal/provider"
	"github.com/chalklabs/tutorgate/internal/transport/http/handler/shared"
	"github.com/chalklabs/tutorgate/internal/transport/http/middleware"
	"github.com/chalklabs/tutorgate/internal/types"
	"github.com/google/uuid"
)

// Decoding parameters for every tutor completion. The reply length cap
// keeps answers in the short conversational range the prompt asks for.
const (
	completionTemperature = 0.7
	completionMaxTokens   = 500
)

// tokenCountTimeout is the maximum time to wait for the background token
// estimate before logging without it.
const tokenCountTimeout = 100 * time.Millisecond

// Chat handles POST /api/tutor. It validates the request, composes the
// prompt, calls the upstream model once (no retries, no streaming) and maps
// upstream failures to the client-facing error taxonomy.
func (h *Handlers) Chat(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	requestID := middleware.GetRequestID(r.Context())
	if requestID == "" {
		requestID = uuid.New().String()
	}

	var req types.TutorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			types.WriteError(w, http.StatusRequestEntityTooLarge, types.MsgPayloadTooLarge)
			return
		}
		types.WriteError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	// A request must carry a question or an image; whitespace alone is not
	// a question. Checked before any upstream contact.
	if strings.TrimSpace(req.Message) == "" && req.Image == "" {
		types.WriteError(w, http.StatusBadRequest, types.MsgMissingInput)
		return
	}

	if !h.Config.OpenAIConfigured() {
		types.WriteError(w, http.StatusInternalServerError, types.MsgNotConfigured)
		return
	}

	// The vision-capable model is only paid for when the current request
	// actually carries an image.
	model := h.Config.TextModel
	if req.Image != "" {
		model = h.Config.VisionModel
	}

	temperature := completionTemperature
	maxTokens := completionMaxTokens
	upstream := &types.ChatCompletionRequest{
		Model:       model,
		Messages:    prompt.BuildMessages(&req),
		Temperature: &temperature,
		MaxTokens:   &maxTokens,
	}

	// Estimate prompt tokens in the background while the upstream call
	// runs; the log prefers upstream-reported usage anyway.
	tokensChan := make(chan int, 1)
	go func() {
		defer close(tokensChan)
		if h.Tokenizer != nil {
			if tokens, err := h.Tokenizer.CountRequest(upstream); err == nil {
				tokensChan <- tokens
			}
		}
	}()

	resp, err := h.Provider.Complete(r.Context(), upstream)

	var status int
	var errMsg string
	var usage types.Usage
	if err != nil {
		status = h.writeUpstreamError(w, err)
		errMsg = err.Error()
	} else {
		status = http.StatusOK
		usage = resp.Usage
		shared.WriteJSON(w, &types.TutorResponse{
			Response: resp.FirstText(),
			Usage:    resp.Usage,
		}, http.StatusOK)
	}
	duration := time.Since(start)

	// Collect the background estimate with a short grace period. The
	// response is already written, so this only delays the log entry.
	var promptEstimate int
	select {
	case tokens, ok := <-tokensChan:
		if ok {
			promptEstimate = tokens
		}
	case <-time.After(tokenCountTimeout):
	}

	go h.logRequest(requestID, model, req.Image != "", status, errMsg, usage, promptEstimate, duration)
}

// writeUpstreamError maps an upstream failure onto the client-facing
// response and returns the status it wrote. Upstream auth and rate-limit
// statuses pass through; everything else collapses to 500 with a generic
// message, plus the underlying detail in development mode.
func (h *Handlers) writeUpstreamError(w http.ResponseWriter, err error) int {
	var statusErr *provider.StatusError
	if errors.As(err, &statusErr) {
		switch {
		case statusErr.StatusCode == http.StatusUnauthorized:
			types.WriteError(w, http.StatusUnauthorized, types.MsgInvalidKey)
			return http.StatusUnauthorized
		case statusErr.StatusCode == http.StatusTooManyRequests:
			types.WriteError(w, http.StatusTooManyRequests, types.MsgRateLimited)
			return http.StatusTooManyRequests
		case statusErr.StatusCode >= 500:
			types.WriteError(w, http.StatusInternalServerError, types.MsgUpstreamFailure)
			return http.StatusInternalServerError
		}
	}

	if h.Config.IsDevelopment() {
		types.WriteErrorDetails(w, http.StatusInternalServerError, types.MsgRequestFailed, err.Error())
	} else {
		types.WriteError(w, http.StatusInternalServerError, types.MsgRequestFailed)
	}
	return http.StatusInternalServerError
}
