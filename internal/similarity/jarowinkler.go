package similarity

const (
	// winklerPrefixCap bounds how many leading characters contribute to the
	// common-prefix bonus.
	winklerPrefixCap = 4
	// winklerPrefixScale is the standard Winkler scaling factor for the
	// prefix bonus.
	winklerPrefixScale = 0.1
)

// JaroWinkler computes prefix-weighted character similarity between two
// strings as a fraction in [0,1]: standard Jaro similarity boosted by a
// bonus proportional to the length of the common prefix. Two empty strings
// score 1; one empty string scores 0.
func JaroWinkler(a, b string) float64 {
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) == 0 && len(rb) == 0 {
		return 1
	}
	if len(ra) == 0 || len(rb) == 0 {
		return 0
	}

	jaro := jaroSimilarity(ra, rb)

	prefix := 0
	limit := min(len(ra), len(rb), winklerPrefixCap)
	for i := 0; i < limit; i++ {
		if ra[i] != rb[i] {
			break
		}
		prefix++
	}

	return jaro + float64(prefix)*winklerPrefixScale*(1-jaro)
}

// jaroSimilarity implements the classic Jaro metric: characters match when
// equal and within a window of max(len)/2 - 1 positions, and matched
// characters out of order count as half-transpositions.
func jaroSimilarity(ra, rb []rune) float64 {
	window := max(len(ra), len(rb))/2 - 1
	if window < 0 {
		window = 0
	}

	matchedA := make([]bool, len(ra))
	matchedB := make([]bool, len(rb))

	matches := 0
	for i := range ra {
		lo := max(0, i-window)
		hi := min(len(rb), i+window+1)
		for j := lo; j < hi; j++ {
			if matchedB[j] || ra[i] != rb[j] {
				continue
			}
			matchedA[i] = true
			matchedB[j] = true
			matches++
			break
		}
	}
	if matches == 0 {
		return 0
	}

	transpositions := 0
	j := 0
	for i := range ra {
		if !matchedA[i] {
			continue
		}
		for !matchedB[j] {
			j++
		}
		if ra[i] != rb[j] {
			transpositions++
		}
		j++
	}
	transpositions /= 2

	m := float64(matches)
	return (m/float64(len(ra)) + m/float64(len(rb)) + (m-float64(transpositions))/m) / 3
}
