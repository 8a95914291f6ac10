// Package similarity provides the text similarity metrics used for transcript
// reconciliation and scoring.
//
// Four independent metrics are implemented:
//   - Edit-distance similarity (Levenshtein), reported as a percentage
//   - Cosine similarity over term-frequency vectors, reported as a percentage
//   - Jaccard similarity over case-folded word sets, reported as a fraction
//   - Jaro-Winkler prefix-weighted character similarity, reported as a fraction
//
// All functions are total: any pair of strings, including empty ones, yields
// a defined score. The package also provides WordsSimilar, the bounded
// edit-distance word equality test the reconciler uses to merge near-duplicate
// OCR spellings before counting votes.
package similarity
