package buffer

import "sort"

// Locate moves the cursor to offset and re-derives its line and column.
//
// Offsets outside [0, Len()] are clamped. An offset equal to a line's end
// offset belongs to the following line at column 0.
func (b *Buffer) Locate(offset int) {
	cb := b.beginChange(ChangeMove)
	b.locate(offset)
	if b.cursor == cb.cursorBefore {
		return
	}
	b.version++
	b.commitChange(cb)
}

func (b *Buffer) locate(offset int) {
	p := b.PosOf(offset)
	b.cursor = clampInt(offset, 0, len(b.content))
	b.line = p.Line
	b.column = p.Column
}

// PosOf projects offset to (line, column) without moving the cursor.
func (b *Buffer) PosOf(offset int) Pos {
	offset = clampInt(offset, 0, len(b.content))

	line := sort.Search(len(b.lines), func(i int) bool {
		return b.lines[i] > offset
	})
	if line == len(b.lines) {
		line = b.lastLine()
	}
	return Pos{Line: line, Column: offset - b.lineStart(line)}
}

// OffsetOf converts p to a linear offset. The line is clamped to the
// document and the column to the line's last cursor column.
func (b *Buffer) OffsetOf(p Pos) int {
	line := clampInt(p.Line, 0, b.lastLine())
	col := clampInt(p.Column, 0, b.lastColumn(line))
	return b.lineStart(line) + col
}
