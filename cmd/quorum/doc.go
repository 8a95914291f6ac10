// Command quorum reconciles multiple OCR transcripts of the same document
// into one best-effort transcript and scores transcript similarity.
//
// Subcommands cover reconciliation (reconcile), pairwise scoring (score),
// similarity matrices against a reference (compare), run history (runs), and
// configuration utilities (config).
package main
