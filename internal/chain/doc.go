// Package chain implements the authoritative chain state manager described
// by spec §4.6: an ordered, hash-linked document table with append,
// integrity verification, and a self-describing export/import blob. The
// manager keeps its state in memory and does no file I/O; writing an export
// blob to disk atomically is internal/statefile's job.
package chain
