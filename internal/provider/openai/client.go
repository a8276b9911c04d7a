// Package openai implements the OpenAI chat completion provider.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/chalklabs/tutorgate/internal/provider"
	"github.com/chalklabs/tutorgate/internal/types"
)

// Client calls the OpenAI chat completions API.
type Client struct {
	apiKey  string
	baseURL string

	// No Timeout on the client: the caller's context bounds the request.
	httpClient *http.Client
}

// New creates an OpenAI client. baseURL is the API root
// (e.g. "https://api.openai.com/v1"); trailing slashes are tolerated.
func New(apiKey, baseURL string) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

// Name returns the provider identifier
func (c *Client) Name() string {
	return "openai"
}

// Complete sends a chat completion request and returns the parsed response.
func (c *Client) Complete(ctx context.Context, req *types.ChatCompletionRequest) (*types.ChatCompletionResponse, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	upstreamReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	upstreamReq.Header.Set("Content-Type", "application/json")
	upstreamReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(upstreamReq)
	if err != nil {
		return nil, fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, &provider.StatusError{
			StatusCode: resp.StatusCode,
			Message:    extractErrorMessage(body),
		}
	}

	var completion types.ChatCompletionResponse
	if err := json.Unmarshal(body, &completion); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return &completion, nil
}

// upstreamError mirrors the OpenAI error body shape.
type upstreamError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code"`
	} `json:"error"`
}

// extractErrorMessage pulls the message out of an upstream error body.
// Falls back to the raw body when it isn't the expected JSON shape.
func extractErrorMessage(body []byte) string {
	var ue upstreamError
	if err := json.Unmarshal(body, &ue); err == nil && ue.Error.Message != "" {
		return ue.Error.Message
	}

	msg := strings.TrimSpace(string(body))
	if len(msg) > 200 {
		msg = msg[:200]
	}
	return msg
}
