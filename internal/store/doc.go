// Package store persists reconciliation run history in SQLite.
//
// Each reconciliation run records its inputs, output, and per-metric scores
// so past runs can be listed, inspected, and pruned from the CLI. The store
// owns schema creation, version checking, and retry handling for busy
// database errors; a file lock serializes schema initialization across
// concurrent processes.
package store
