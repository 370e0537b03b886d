package buffer

import (
	"strconv"
	"strings"
)

// Buffer is the document state: runes, line index and cursor.
//
// The zero value is not usable; construct with New or FromString.
type Buffer struct {
	content []rune

	// lines[i] is the exclusive end offset of line i. len(lines) >= 1 and
	// lines[len(lines)-1] == len(content).
	lines []int

	cursor int
	line   int
	column int

	version       uint64
	lastChange    Change
	hasLastChange bool
}

// New returns an empty buffer with the cursor at offset 0.
func New() *Buffer {
	return &Buffer{
		content: nil,
		lines:   []int{0},
	}
}

// FromString returns a buffer holding s with the cursor after its last rune.
//
// The returned buffer starts at version 0 with no recorded change.
func FromString(s string) *Buffer {
	b := New()
	b.InsertString(s)
	b.version = 0
	b.lastChange = Change{}
	b.hasLastChange = false
	return b
}

// Runes returns a copy of the document.
func (b *Buffer) Runes() []rune {
	return append([]rune(nil), b.content...)
}

func (b *Buffer) Text() string { return string(b.content) }

func (b *Buffer) Len() int { return len(b.content) }

func (b *Buffer) Version() uint64 { return b.version }

// Cursor returns the linear cursor offset.
func (b *Buffer) Cursor() int { return b.cursor }

func (b *Buffer) Line() int { return b.line }

func (b *Buffer) Column() int { return b.column }

func (b *Buffer) Pos() Pos { return Pos{Line: b.line, Column: b.column} }

// LineEnds returns a copy of the line index.
func (b *Buffer) LineEnds() []int {
	return append([]int(nil), b.lines...)
}

func (b *Buffer) LineCount() int { return len(b.lines) }

// LineText returns line i without its trailing newline, or "" when i is out
// of range.
func (b *Buffer) LineText(i int) string {
	if i < 0 || i >= len(b.lines) {
		return ""
	}
	start, end := b.lineStart(i), b.lines[i]
	if end > start && b.content[end-1] == '\n' {
		end--
	}
	return string(b.content[start:end])
}

// CurrentLineWidth returns the rune count of the cursor's line, including its
// trailing newline. It never returns a negative value.
func (b *Buffer) CurrentLineWidth() int {
	return b.lineWidth(b.line)
}

// String renders the cursor and line index for debugging overlays:
//
//	buffer_pos:<offset> line:<line> column:<column> lines:[e0, e1, ...]
func (b *Buffer) String() string {
	var sb strings.Builder
	sb.WriteString("buffer_pos:")
	sb.WriteString(strconv.Itoa(b.cursor))
	sb.WriteString(" line:")
	sb.WriteString(strconv.Itoa(b.line))
	sb.WriteString(" column:")
	sb.WriteString(strconv.Itoa(b.column))
	sb.WriteString(" lines:[")
	for i, end := range b.lines {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(end))
	}
	sb.WriteByte(']')
	return sb.String()
}

func (b *Buffer) lineStart(line int) int {
	if line <= 0 {
		return 0
	}
	return b.lines[line-1]
}

func (b *Buffer) lineWidth(line int) int {
	if line < 0 || line >= len(b.lines) {
		return 0
	}
	w := b.lines[line] - b.lineStart(line)
	if w < 0 {
		return 0
	}
	return w
}

func (b *Buffer) lastLine() int { return len(b.lines) - 1 }

// lastColumn is the right-most column the cursor may rest on: the newline of
// a terminated line, or one past the final rune of the last line.
func (b *Buffer) lastColumn(line int) int {
	w := b.lineWidth(line)
	if line < b.lastLine() {
		return clampInt(w-1, 0, w)
	}
	return w
}
