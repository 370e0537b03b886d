package buffer

// Move steps the cursor one unit in dir.
//
// toLineStart and toLineEnd snap the cursor to the first or last column of
// the destination line of an Up or Down move; Left and Right ignore them.
// When both are set, Up honors toLineEnd and Down honors toLineStart.
//
// Left at column 0 lands on the end of the previous line, and Right onto the
// last column of a line continues to the start of the next one. Moves past
// the document edges are no-ops, as is any move in an empty document.
func (b *Buffer) Move(dir Direction, toLineStart, toLineEnd bool) {
	if len(b.content) == 0 {
		return
	}

	cb := b.beginChange(ChangeMove)
	switch dir {
	case DirUp:
		b.moveUp(toLineStart, toLineEnd)
	case DirDown:
		b.moveDown(toLineStart, toLineEnd)
	case DirLeft:
		b.moveLeft()
	case DirRight:
		b.moveRight()
	default:
		return
	}

	if b.cursor == cb.cursorBefore && b.Pos() == cb.posBefore {
		return
	}
	b.version++
	b.commitChange(cb)
}

func (b *Buffer) moveUp(toLineStart, toLineEnd bool) {
	if b.line == 0 {
		return
	}
	b.line--
	b.clampColumn()
	b.cursor = b.lineStart(b.line) + b.column

	if toLineEnd {
		b.cursor = b.lines[b.line] - 1
		b.column = b.CurrentLineWidth() - 1
		return
	}
	if toLineStart {
		b.cursor = b.lineStart(b.line)
		b.column = 0
	}
}

func (b *Buffer) moveDown(toLineStart, toLineEnd bool) {
	if b.line == b.lastLine() {
		return
	}
	b.line++
	b.clampColumn()
	b.cursor = b.lineStart(b.line) + b.column

	if toLineEnd {
		// On the last line this is one past the final rune.
		b.column = b.lastColumn(b.line)
		b.cursor = b.lineStart(b.line) + b.column
	}
	if toLineStart {
		b.cursor = b.lineStart(b.line)
		b.column = 0
	}
}

// clampColumn pulls the column back onto the last rune of a destination
// line that is too short for it. An empty final line clamps to 0.
func (b *Buffer) clampColumn() {
	if w := b.CurrentLineWidth(); w <= b.column {
		b.column = max(w-1, 0)
	}
}

func (b *Buffer) moveLeft() {
	if b.column > 0 {
		b.column--
		b.cursor--
		return
	}
	b.moveUp(false, true)
}

func (b *Buffer) moveRight() {
	width := b.CurrentLineWidth()
	if b.column >= width {
		return
	}
	b.column++
	b.cursor++
	if b.column == width {
		b.moveDown(true, false)
	}
}
