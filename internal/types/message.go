// Package types defines the wire types shared by the tutor API and the
// upstream chat completion call.
package types

import "encoding/json"

// Role constants for chat messages
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single chat message sent upstream. Content is polymorphic:
// a plain string for text-only messages, an array of parts when a message
// carries an image.
type Message struct {
	Role    string  `json:"role"`
	Content Content `json:"content"`
}

// Content represents message content that can be a string or array of parts.
type Content struct {
	Text  string        // Simple string content
	Parts []ContentPart // Multimodal content parts
}

// MarshalJSON emits a JSON string when the content is text-only and an
// array when multimodal parts are present.
func (c Content) MarshalJSON() ([]byte, error) {
	if len(c.Parts) > 0 {
		return json.Marshal(c.Parts)
	}
	return json.Marshal(c.Text)
}

// UnmarshalJSON accepts both the string and the array form.
func (c *Content) UnmarshalJSON(data []byte) error {
	// Try string first
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		c.Text = text
		c.Parts = nil
		return nil
	}

	// Try array of content parts
	var parts []ContentPart
	if err := json.Unmarshal(data, &parts); err == nil {
		c.Parts = parts
		c.Text = ""
		return nil
	}

	return nil // Allow null/empty content
}

// String returns the text content, concatenating text parts if multimodal.
func (c Content) String() string {
	if c.Text != "" {
		return c.Text
	}
	var result string
	for _, part := range c.Parts {
		if part.Type == ContentTypeText {
			result += part.Text
		}
	}
	return result
}

// ContentPart is a single part of multimodal content.
type ContentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *ImageURL `json:"image_url,omitempty"`
}

// Content type constants
const (
	ContentTypeText     = "text"
	ContentTypeImageURL = "image_url"
)

// ImageURL is an image reference in multimodal content. The URL may be an
// https URL or a data URL with base64 image bytes.
type ImageURL struct {
	URL    string `json:"url"`
	Detail string `json:"detail,omitempty"` // "auto", "low", "high"
}

// NewTextMessage creates a plain text message.
func NewTextMessage(role, text string) Message {
	return Message{
		Role:    role,
		Content: Content{Text: text},
	}
}

// NewImageMessage creates a multimodal message holding a text part followed
// by an image part. Part order matters to vision models: the text part always
// precedes the image it refers to.
func NewImageMessage(role, text, imageURL string) Message {
	return Message{
		Role: role,
		Content: Content{
			Parts: []ContentPart{
				{Type: ContentTypeText, Text: text},
				{Type: ContentTypeImageURL, ImageURL: &ImageURL{URL: imageURL}},
			},
		},
	}
}
