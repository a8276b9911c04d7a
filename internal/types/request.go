package types

// ChatCompletionRequest is the upstream chat completion request body.
// Optional fields use pointers to distinguish unset from zero.
type ChatCompletionRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`

	Temperature *float64 `json:"temperature,omitempty"` // 0-2, default 1
	MaxTokens   *int     `json:"max_tokens,omitempty"`
}
