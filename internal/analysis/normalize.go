package analysis

import (
	"strings"

	"podium/internal/transcript"
)

// joinFinal concatenates the text of finalized chunks in chunk order with
// single space separators. Non-final chunks are discarded.
func joinFinal(chunks []transcript.Chunk) string {
	parts := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		if !chunk.Final {
			continue
		}
		parts = append(parts, chunk.Text)
	}
	return strings.Join(parts, " ")
}

// tokenize lowercases the text and splits it on whitespace, dropping empty
// tokens. Punctuation stays attached to its token.
func tokenize(text string) []string {
	return strings.Fields(strings.ToLower(text))
}

// splitSentences splits the original-case text on literal periods, trims each
// piece, and drops empty pieces.
func splitSentences(text string) []string {
	pieces := strings.Split(text, ".")
	sentences := make([]string, 0, len(pieces))
	for _, piece := range pieces {
		trimmed := strings.TrimSpace(piece)
		if trimmed == "" {
			continue
		}
		sentences = append(sentences, trimmed)
	}
	return sentences
}
