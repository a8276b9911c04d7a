package types

// TutorRequest is the payload the web client posts to /api/tutor.
// At least one of Message or Image must be present.
type TutorRequest struct {
	Message             string `json:"message"`
	ConversationHistory []Turn `json:"conversationHistory,omitempty"`
	SelectedText        string `json:"selectedText,omitempty"`
	Image               string `json:"image,omitempty"`
}

// Turn is one prior message in the client-held conversation history.
// Role is "user" or "assistant". Image, when set, is the same kind of
// reference the Image field on TutorRequest carries.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
	Image   string `json:"image,omitempty"`
}

// TutorResponse is the success payload returned to the web client.
type TutorResponse struct {
	Response string `json:"response"`
	Usage    Usage  `json:"usage"`
}
