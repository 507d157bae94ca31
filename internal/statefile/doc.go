// Package statefile persists export_state blobs to disk atomically: write
// to a temp file in the target directory, fsync it, then rename over the
// destination. Grounded on Ciphera's store/io.go temp-file-then-rename
// pattern, with an explicit fsync added since chain state durability matters
// more than the recoverable cache Ciphera's version protects.
package statefile
