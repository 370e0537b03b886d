package editor

import "testing"

func TestRuneCellWidth(t *testing.T) {
	cases := []struct {
		name string
		r    rune
		x    int
		want int
	}{
		{name: "ascii", r: 'a', want: 1},
		{name: "wide", r: '世', want: 2},
		{name: "tab at stop", r: '\t', x: 0, want: 4},
		{name: "tab mid stop", r: '\t', x: 1, want: 3},
		{name: "tab before stop", r: '\t', x: 3, want: 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := runeCellWidth(tc.r, tc.x); got != tc.want {
				t.Fatalf("runeCellWidth(%q, %d)=%d, want %d", tc.r, tc.x, got, tc.want)
			}
		})
	}
}

func TestCellColumn(t *testing.T) {
	line := []rune("a世\tb")
	cases := map[int]int{-1: 0, 0: 0, 1: 1, 2: 3, 3: 4, 4: 5, 10: 5}
	for col, want := range cases {
		if got := cellColumn(line, col); got != want {
			t.Fatalf("cellColumn(%d)=%d, want %d", col, got, want)
		}
	}
}
