// Package scoring builds pairwise similarity matrices over a reference text
// and a set of candidate texts.
//
// Each matrix covers one metric. Row and column 0 hold the reference and the
// remaining rows and columns hold the candidates in input order. Every
// ordered pair is scored independently; the metrics are symmetric, so the
// matrix comes out symmetric, but no cell is derived from its mirror. Cells
// are independent of each other, which lets a bounded worker pool fill the
// matrix in parallel.
package scoring
