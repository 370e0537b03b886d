// Package editor provides a Bubble Tea terminal session backed by the
// buffer package.
//
// Each update maps one input event to a buffer operation, reads the buffer
// state back, and renders the document rows, the cursor cell and an optional
// diagnostic status row.
package editor
