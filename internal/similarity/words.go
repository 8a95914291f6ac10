package similarity

import "strings"

const (
	// DefaultWordDistanceMax is the edit distance at or below which two word
	// spellings are treated as the same word.
	DefaultWordDistanceMax = 3
	// DefaultWordLengthGapMax is the length difference above which two words
	// are never treated as the same, regardless of edit distance.
	DefaultWordLengthGapMax = 3
)

// WordsSimilar reports whether two word spellings are close enough to be the
// same underlying word under the default thresholds.
func WordsSimilar(w1, w2 string) bool {
	return WordsSimilarWithin(w1, w2, DefaultWordDistanceMax, DefaultWordLengthGapMax)
}

// WordsSimilarWithin reports whether two word spellings are fuzzy-equal:
// neither blank, length difference at most maxLengthGap, and case-folded
// edit distance at most maxDistance. The length gate runs first so wildly
// different words skip the DP entirely.
func WordsSimilarWithin(w1, w2 string, maxDistance, maxLengthGap int) bool {
	if strings.TrimSpace(w1) == "" || strings.TrimSpace(w2) == "" {
		return false
	}
	l1 := len([]rune(w1))
	l2 := len([]rune(w2))
	gap := l1 - l2
	if gap < 0 {
		gap = -gap
	}
	if gap > maxLengthGap {
		return false
	}
	return EditDistance(strings.ToLower(w1), strings.ToLower(w2)) <= maxDistance
}
