// Package reconcile merges several noisy transcriptions of the same source
// document into a single best-effort transcript.
//
// The Engine normalizes every input, drops catastrophic-failure outputs
// (empty after normalization, or far shorter than the mean input length),
// groups matching sentences across transcripts into clusters, and then votes
// word-by-word within each cluster: spellings within a bounded edit distance
// of each other pool their votes, and the most-supported spelling wins each
// word position.
//
// Clustering is greedy first-fit: a sentence joins the first existing cluster
// (in creation order) containing any member above the similarity threshold,
// so the partition is an approximation rather than a globally optimal
// grouping. Cluster assignment for one sentence depends on the clusters the
// earlier sentences formed, which keeps a single run sequential; independent
// runs are safe to execute in parallel.
package reconcile
