package similarity

import "math"

// EditDistance returns the Levenshtein distance between a and b with
// unit-cost insertions, deletions, and substitutions. Only two rows of the
// DP table are kept, so memory stays linear in len(b).
func EditDistance(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

// EditSimilarity converts Levenshtein distance to a percentage similarity:
// (1 - distance/maxLen) * 100, rounded to three decimals. Two empty strings
// are identical (100); one empty string against a non-empty one scores 0.
func EditSimilarity(a, b string) float64 {
	la := len([]rune(a))
	lb := len([]rune(b))
	if la == 0 && lb == 0 {
		return 100
	}
	if la == 0 || lb == 0 {
		return 0
	}
	distance := EditDistance(a, b)
	return round3((1 - float64(distance)/float64(max(la, lb))) * 100)
}

// round3 rounds to three decimal places, the precision reported for
// percentage metrics.
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
