package buffer

import "slices"

// Insert inserts r at the cursor and advances the cursor past it.
//
// Inserting '\n' splits the cursor's line: the cursor moves to column 0 of
// the new line.
func (b *Buffer) Insert(r rune) {
	cb := b.beginChange(ChangeInsert)
	b.insert(r)
	cb.offset, cb.r = b.cursor-1, r
	b.version++
	b.commitChange(cb)
}

// InsertAt relocates the cursor to offset, then inserts r there.
func (b *Buffer) InsertAt(offset int, r rune) {
	cb := b.beginChange(ChangeInsert)
	b.locate(offset)
	b.insert(r)
	cb.offset, cb.r = b.cursor-1, r
	b.version++
	b.commitChange(cb)
}

// InsertString inserts every rune of s at the cursor, in order.
func (b *Buffer) InsertString(s string) {
	for _, r := range s {
		b.Insert(r)
	}
}

func (b *Buffer) insert(r rune) {
	b.content = slices.Insert(b.content, b.cursor, r)
	b.cursor++
	b.column++
	for i := b.line; i < len(b.lines); i++ {
		b.lines[i]++
	}

	if r != '\n' {
		return
	}
	prevEnd := b.lines[b.line]
	b.lines[b.line] = b.cursor
	b.column = 0
	b.line++
	b.lines = slices.Insert(b.lines, b.line, prevEnd)
}

// Remove deletes the rune before the cursor (backspace). It is a no-op at
// offset 0.
//
// Removing a '\n' merges the cursor's line into the previous one and leaves
// the cursor where the newline was.
func (b *Buffer) Remove() {
	if b.cursor == 0 {
		return
	}
	cb := b.beginChange(ChangeRemove)
	cb.offset, cb.r = b.cursor-1, b.content[b.cursor-1]
	b.remove()
	b.version++
	b.commitChange(cb)
}

// RemoveAt deletes the rune at offset. Offsets outside [0, Len()) are a
// no-op.
func (b *Buffer) RemoveAt(offset int) {
	if offset < 0 || offset >= len(b.content) {
		return
	}
	cb := b.beginChange(ChangeRemove)
	cb.offset, cb.r = offset, b.content[offset]
	b.locate(offset + 1)
	b.remove()
	b.version++
	b.commitChange(cb)
}

func (b *Buffer) remove() {
	removed := b.content[b.cursor-1]
	b.content = slices.Delete(b.content, b.cursor-1, b.cursor)
	b.cursor--
	if b.column > 0 {
		b.column--
	}
	for i := b.line; i < len(b.lines); i++ {
		b.lines[i]--
	}

	if removed != '\n' {
		return
	}
	// The cursor sat at column 0 of the line after the newline; lines[line]
	// for the previous line still counts the removed newline.
	b.line--
	b.cursor = b.lines[b.line] - 1
	b.column = clampInt(b.CurrentLineWidth()-1, 0, b.cursor)
	b.lines[b.line] = b.lines[b.line+1]
	b.lines = slices.Delete(b.lines, b.line+1, b.line+2)
}
