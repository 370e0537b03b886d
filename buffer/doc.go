// Package buffer implements the in-memory text model for xx.
//
// The document is a flat sequence of runes. A line index holds the exclusive
// end offset of every line, and the cursor is a linear offset with a derived
// (Line, Column) pair. Every exported mutation keeps the three consistent.
//
// Offsets, lines and columns are 0-based and counted in runes.
package buffer
