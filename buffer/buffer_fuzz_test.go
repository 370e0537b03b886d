package buffer

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// FuzzBuffer_RandomOperations drives decoded op sequences through the buffer
// and checks its invariants against a plain string model after every step.
func FuzzBuffer_RandomOperations(f *testing.F) {
	seeds := [][]byte{
		{},
		{0},
		{0, 1, 0, 2, 1, 3, 4},
		{1, 1, 1, 5, 0, 5, 1, 5, 2, 5, 3},
		{255, 0, 128, 64, 32, 16, 8, 4, 2, 1},
		[]byte("multiline\nseed"),
		[]byte("moves-and-edits"),
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		b := New()
		model := []rune{}

		for i := 0; i+1 < len(data); i += 2 {
			op, arg := data[i]%7, int(data[i+1])

			switch op {
			case 0:
				r := rune('a' + arg%26)
				at := b.Cursor()
				b.Insert(r)
				model = insertRune(model, at, r)
			case 1:
				at := b.Cursor()
				b.Insert('\n')
				model = insertRune(model, at, '\n')
			case 2:
				at := b.Cursor()
				b.Remove()
				if at > 0 {
					model = append(model[:at-1], model[at:]...)
				}
			case 3:
				off := arg % (len(model) + 2)
				b.RemoveAt(off)
				if off < len(model) {
					model = append(model[:off], model[off+1:]...)
				}
			case 4:
				b.Locate(arg % (len(model) + 2))
			case 5:
				b.Move(Direction(arg%4), arg&4 != 0, arg&8 != 0)
			case 6:
				before := stateOf(b)
				b.Insert(rune('A' + arg%26))
				b.Remove()
				if diff := cmp.Diff(before, stateOf(b)); diff != "" {
					t.Fatalf("insert+remove not inverse (-before +after):\n%s", diff)
				}
			}

			if got, want := b.Text(), string(model); got != want {
				t.Fatalf("op %d: text=%q, model=%q", op, got, want)
			}
			assertInvariants(t, b)
			assertLineEndsMatch(t, b)
		}
	})
}

func insertRune(rs []rune, at int, r rune) []rune {
	rs = append(rs, 0)
	copy(rs[at+1:], rs[at:])
	rs[at] = r
	return rs
}

func assertLineEndsMatch(t *testing.T, b *Buffer) {
	t.Helper()

	want := []int{}
	text := b.Text()
	off := 0
	for _, part := range strings.SplitAfter(text, "\n") {
		off += len([]rune(part))
		want = append(want, off)
	}
	got := b.LineEnds()
	if len(got) != len(want) {
		t.Fatalf("line ends=%v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line ends=%v, want %v", got, want)
		}
	}
}
