package similarity

import (
	"math"
	"regexp"
	"strings"
)

// tokenSplitPattern matches whitespace and sentence punctuation for
// tokenization.
var tokenSplitPattern = regexp.MustCompile(`[\s.,;!?]+`)

// Tokenize splits text into lowercase tokens on whitespace and sentence
// punctuation, dropping empty pieces.
func Tokenize(text string) []string {
	lowered := strings.ToLower(text)
	raw := tokenSplitPattern.Split(lowered, -1)
	terms := make([]string, 0, len(raw))
	for _, token := range raw {
		if token == "" {
			continue
		}
		terms = append(terms, token)
	}
	return terms
}

// Fingerprint represents a term-frequency vector with a precomputed L2 norm.
type Fingerprint struct {
	terms map[string]float64
	norm  float64
}

// NewFingerprint creates a fingerprint from the provided text.
// Returns nil if the text produces no tokens.
func NewFingerprint(text string) *Fingerprint {
	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return nil
	}
	counts := make(map[string]float64, len(tokens))
	for _, token := range tokens {
		counts[token]++
	}
	var norm float64
	for _, count := range counts {
		norm += count * count
	}
	return &Fingerprint{
		terms: counts,
		norm:  math.Sqrt(norm),
	}
}

// TermCount returns the number of unique terms in the fingerprint.
func (f *Fingerprint) TermCount() int {
	if f == nil {
		return 0
	}
	return len(f.terms)
}

// Cosine computes the cosine of the angle between two term vectors as a
// fraction in [0,1]. Returns 0 if either fingerprint is nil or has zero norm.
func (f *Fingerprint) Cosine(other *Fingerprint) float64 {
	if f == nil || other == nil || f.norm == 0 || other.norm == 0 {
		return 0
	}
	var dot float64
	for term, count := range f.terms {
		if match, ok := other.terms[term]; ok {
			dot += count * match
		}
	}
	if dot == 0 {
		return 0
	}
	return dot / (f.norm * other.norm)
}

// CosineSimilarity computes word-frequency cosine similarity between two
// texts as a percentage, rounded to three decimals. Either text producing an
// empty token set scores 0.
func CosineSimilarity(a, b string) float64 {
	fa := NewFingerprint(a)
	fb := NewFingerprint(b)
	if fa == nil || fb == nil {
		return 0
	}
	return round3(fa.Cosine(fb) * 100)
}
