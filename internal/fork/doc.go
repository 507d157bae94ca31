// Package fork implements the stateless fork-detection operations of spec
// §4.7: grouping documents by parent_hash, emitting fork records, and the
// manual (never automatic) resolution primitives.
package fork
