package editor

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

const tabWidth = 4

// runeCellWidth returns the terminal cells r occupies when drawn at
// visualCol.
func runeCellWidth(r rune, visualCol int) int {
	if r == '\t' {
		return tabAdvance(visualCol)
	}

	w := runewidth.RuneWidth(r)
	if w < 0 {
		w = 0
	}
	if w == 0 && r >= ' ' {
		if fallback := uniseg.StringWidth(string(r)); fallback > w {
			w = fallback
		}
	}
	return w
}

func tabAdvance(visualCol int) int {
	if visualCol < 0 {
		visualCol = 0
	}
	return tabWidth - visualCol%tabWidth
}

// cellColumn returns the visual column of rune index col in line.
func cellColumn(line []rune, col int) int {
	if col > len(line) {
		col = len(line)
	}
	x := 0
	for _, r := range line[:max(col, 0)] {
		x += runeCellWidth(r, x)
	}
	return x
}
