// Package logging provides a small slog wrapper for facade lifecycle events
// — creation, document append, fork detection, validation failure — scaled
// down from arc-node's pkg/logging Setup/Logger idiom to what a single-owner
// identity library needs.
package logging
