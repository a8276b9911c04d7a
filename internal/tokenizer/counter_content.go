package tokenizer

import (
	"strings"

	"github.com/chalklabs/tutorgate/internal/types"
)

// Image token constants (OpenAI rules)
const (
	imageBaseTokens     = 85  // Base cost for any image
	imageTileTokens     = 170 // Cost per 512x512 tile
	imageLowDetailTiles = 1   // Low detail uses 1 tile
	imageHighDetailMax  = 4   // High detail max tiles (simplified)
)

// countContent counts tokens for message content (text or multimodal).
func (t *TiktokenTokenizer) countContent(content types.Content, model string) (int, error) {
	// Simple text content
	if content.Text != "" {
		return t.CountTokens(content.Text, model)
	}

	// Multimodal content
	total := 0
	for _, part := range content.Parts {
		switch part.Type {
		case types.ContentTypeText:
			tokens, err := t.CountTokens(part.Text, model)
			if err != nil {
				return 0, err
			}
			total += tokens

		case types.ContentTypeImageURL:
			total += t.countImageTokens(part.ImageURL)
		}
	}

	return total, nil
}

// countImageTokens calculates token cost for an image based on OpenAI's rules.
// Without decoding image dimensions the high-detail tile count is an estimate.
func (t *TiktokenTokenizer) countImageTokens(img *types.ImageURL) int {
	if img == nil {
		return 0
	}

	switch strings.ToLower(img.Detail) {
	case "low":
		return imageBaseTokens + (imageLowDetailTiles * imageTileTokens)
	default:
		// "high", "auto" or unspecified: assume high detail
		return imageBaseTokens + (imageHighDetailMax * imageTileTokens)
	}
}
