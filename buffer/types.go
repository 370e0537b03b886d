package buffer

import "fmt"

// Pos is a (Line, Column) coordinate in runes.
type Pos struct {
	Line   int
	Column int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// ComparePos orders positions by line, then column.
func ComparePos(a, b Pos) int {
	if a.Line < b.Line {
		return -1
	}
	if a.Line > b.Line {
		return 1
	}
	if a.Column < b.Column {
		return -1
	}
	if a.Column > b.Column {
		return 1
	}
	return 0
}

// Direction selects the axis and sense of a cursor move.
type Direction int

const (
	DirUp Direction = iota
	DirLeft
	DirDown
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirLeft:
		return "left"
	case DirDown:
		return "down"
	case DirRight:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
