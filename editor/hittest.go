package editor

import (
	"github.com/romycode/xx/buffer"
)

// screenToDocPos maps view-local cell coordinates to a document position.
// (0,0) is the top-left of the content region. Gutter clicks map to column
// 0 and coordinates past the text clamp into document bounds.
func (m *Model) screenToDocPos(x, y int) buffer.Pos {
	row := clampInt(m.viewport.YOffset+max(y, 0), 0, m.buf.LineCount()-1)

	visualX := x - m.gutterWidth()
	if visualX <= 0 {
		return buffer.Pos{Line: row}
	}
	return buffer.Pos{Line: row, Column: columnAtCell([]rune(m.buf.LineText(row)), visualX)}
}

// columnAtCell returns the rune index whose cell span contains cell. Cells
// past the end of line map to len(line).
func columnAtCell(line []rune, cell int) int {
	x := 0
	for i, r := range line {
		w := runeCellWidth(r, x)
		if cell < x+w {
			return i
		}
		x += w
	}
	return len(line)
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}
