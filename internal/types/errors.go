package types

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the error payload returned to clients. Details carries
// optional diagnostic detail; the tutor path only fills it in development
// mode.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// Client-facing error messages. Upstream failure detail never leaks into
// these; it goes to Details only when the server runs in development mode.
const (
	MsgMissingInput    = "Message or image is required"
	MsgNotConfigured   = "Server configuration error"
	MsgInvalidKey      = "Invalid API key configuration"
	MsgRateLimited     = "Rate limit exceeded. Please try again later."
	MsgUpstreamFailure = "AI service error. Please try again."
	MsgRequestFailed   = "Failed to process request"
	MsgPayloadTooLarge = "Request body too large"
)

// WriteError writes the flat error shape with the given status code.
func WriteError(w http.ResponseWriter, statusCode int, message string) {
	writeErrorResponse(w, statusCode, &ErrorResponse{Error: message})
}

// WriteErrorDetails writes an error with a detail string attached.
func WriteErrorDetails(w http.ResponseWriter, statusCode int, message, details string) {
	writeErrorResponse(w, statusCode, &ErrorResponse{Error: message, Details: details})
}

func writeErrorResponse(w http.ResponseWriter, statusCode int, resp *ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(resp)
}
