package editor

import (
	"fmt"
	"strings"
)

func (m *Model) renderContent() string {
	n := m.buf.LineCount()
	cur := m.buf.Pos()
	digits := gutterDigits(n)

	rows := make([]string, 0, n)
	for row := range n {
		var sb strings.Builder

		if m.cfg.ShowLineNums {
			numStyle := m.cfg.Style.LineNum
			if m.focused && row == cur.Line {
				numStyle = m.cfg.Style.LineNumActive
			}
			sb.WriteString(numStyle.Render(fmt.Sprintf("%*d ", digits, row+1)))
		}

		line := []rune(m.buf.LineText(row))
		if m.focused && row == cur.Line {
			sb.WriteString(m.renderCursorLine(line, cur.Column))
		} else {
			sb.WriteString(m.cfg.Style.Text.Render(expandTabs(line, 0)))
		}
		rows = append(rows, sb.String())
	}
	return strings.Join(rows, "\n")
}

// renderCursorLine draws line with the cursor cell at col. A cursor on the
// newline or past the last rune is drawn as a blank cell.
func (m *Model) renderCursorLine(line []rune, col int) string {
	col = min(max(col, 0), len(line))
	before := line[:col]
	x := cellColumn(line, col)

	cell := " "
	var after []rune
	afterX := x
	if col < len(line) {
		cell = expandTabs(line[col:col+1], x)
		after = line[col+1:]
		afterX += runeCellWidth(line[col], x)
	}

	var sb strings.Builder
	sb.WriteString(m.cfg.Style.Text.Render(expandTabs(before, 0)))
	sb.WriteString(m.cfg.Style.Cursor.Render(cell))
	sb.WriteString(m.cfg.Style.Text.Render(expandTabs(after, afterX)))
	return sb.String()
}

func (m Model) renderStatus() string {
	s := m.buf.String()
	if m.width > 0 {
		rs := []rune(s)
		if len(rs) > m.width {
			s = string(rs[:m.width])
		}
	}
	return m.cfg.Style.Status.Render(s)
}

func (m Model) gutterWidth() int {
	if !m.cfg.ShowLineNums {
		return 0
	}
	return gutterDigits(m.buf.LineCount()) + 1
}

func gutterDigits(lineCount int) int {
	if lineCount < 1 {
		lineCount = 1
	}
	return len(fmt.Sprintf("%d", lineCount))
}

// expandTabs replaces tabs with spaces up to the next tab stop, measuring
// from startCell.
func expandTabs(line []rune, startCell int) string {
	var sb strings.Builder
	x := startCell
	for _, r := range line {
		w := runeCellWidth(r, x)
		if r == '\t' {
			sb.WriteString(strings.Repeat(" ", w))
		} else {
			sb.WriteRune(r)
		}
		x += w
	}
	return sb.String()
}
