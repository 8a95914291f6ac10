package reconcile

import (
	"strings"
	"unicode"
)

// SplitSentences splits text into sentences on a terminator ('.', '?', '!')
// immediately followed by whitespace. Each piece is trimmed and empty pieces
// are dropped. Text without a terminator yields the whole trimmed text as a
// single sentence; the terminator stays attached to its sentence.
func SplitSentences(text string) []string {
	runes := []rune(text)
	var sentences []string
	var current strings.Builder

	flush := func() {
		if piece := strings.TrimSpace(current.String()); piece != "" {
			sentences = append(sentences, piece)
		}
		current.Reset()
	}

	for i, r := range runes {
		current.WriteRune(r)
		if isTerminator(r) && i+1 < len(runes) && unicode.IsSpace(runes[i+1]) {
			flush()
		}
	}
	flush()
	return sentences
}

func isTerminator(r rune) bool {
	return r == '.' || r == '?' || r == '!'
}
