package textnorm

import (
	"strings"
	"unicode"
)

// Normalize standardizes whitespace and punctuation in recognition output.
// Whitespace runs collapse to a single space, ';' and ':' fold to ',', runs
// of sentence terminators ('.', '?', '!') fold to a single '.', and any
// character outside [A-Za-z0-9 .,] is dropped. The result carries no leading
// or trailing whitespace; empty or whitespace-only input yields "".
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	// prev tracks the last emitted rune so space and terminator runs
	// collapse even when dropped characters sit between them.
	var prev rune
	for _, r := range text {
		switch {
		case r == ',' || r == ';' || r == ':':
			b.WriteRune(',')
			prev = ','
		case r == '.' || r == '?' || r == '!':
			if prev != '.' {
				b.WriteRune('.')
			}
			prev = '.'
		case unicode.IsSpace(r):
			if prev != ' ' && prev != 0 {
				b.WriteRune(' ')
				prev = ' '
			}
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prev = r
		}
	}
	return strings.TrimRight(b.String(), " ")
}
