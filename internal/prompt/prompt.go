// Package prompt builds the message sequence sent to the model for a
// tutoring request.
package prompt

import (
	"strings"

	"github.com/chalklabs/tutorgate/internal/types"
)

// basePrompt is the tutor persona prepended to every conversation.
const basePrompt = `You are a friendly and patient reading tutor helping a student improve their reading skills. Your role:

- Explain words, phrases, and passages in simple, age-appropriate language.
- When the student is stuck, guide them with hints and questions rather than giving the answer away immediately.
- Encourage the student and celebrate their progress.
- Keep responses short (2-4 sentences) unless the student asks for more detail.
- If the student shares a photo of a page, read it carefully and base your help on what it shows.
- Stay on the topic of reading and the material at hand.`

// SystemPrompt returns the system message text, interpolating the selected
// passage when one is present.
func SystemPrompt(selectedText string) string {
	if strings.TrimSpace(selectedText) == "" {
		return basePrompt
	}

	var b strings.Builder
	b.WriteString(basePrompt)
	b.WriteString("\n\nThe student has selected this text from their reading material:\n\"\"\"\n")
	b.WriteString(selectedText)
	b.WriteString("\n\"\"\"\nRefer to it when it is relevant to their question.")
	return b.String()
}

// BuildMessages assembles the upstream message sequence: the system prompt
// first, then each history turn in order, then the current message last.
// Turns carrying an image become multimodal messages with the text part
// preceding the image part.
func BuildMessages(req *types.TutorRequest) []types.Message {
	messages := make([]types.Message, 0, len(req.ConversationHistory)+2)
	messages = append(messages, types.NewTextMessage(types.RoleSystem, SystemPrompt(req.SelectedText)))

	for _, turn := range req.ConversationHistory {
		messages = append(messages, turnMessage(turn.Role, turn.Content, turn.Image))
	}

	messages = append(messages, turnMessage(types.RoleUser, req.Message, req.Image))
	return messages
}

// turnMessage converts one turn to the model-call shape.
func turnMessage(role, text, image string) types.Message {
	if image != "" {
		return types.NewImageMessage(role, text, image)
	}
	return types.NewTextMessage(role, text)
}
