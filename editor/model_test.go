package editor

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func viewLines(m Model) []string {
	got := strings.Split(m.View(), "\n")
	for i := range got {
		got[i] = strings.TrimRight(ansi.Strip(got[i]), " ")
	}
	return got
}

func TestModel_SetSizeAffectsViewHeight(t *testing.T) {
	m := New(Config{Text: "a\nb\nc"})
	m = m.Blur()

	m = m.SetSize(20, 2)
	if got := lipgloss.Height(m.View()); got != 2 {
		t.Fatalf("height after SetSize(20,2): got %d, want %d", got, 2)
	}

	m = m.SetSize(20, 4)
	if got := lipgloss.Height(m.View()); got != 4 {
		t.Fatalf("height after SetSize(20,4): got %d, want %d", got, 4)
	}
}

func TestModel_StatusRowCountsTowardsHeight(t *testing.T) {
	m := New(Config{Text: "a\nb\nc", ShowStatus: true})
	m = m.SetSize(60, 3)

	if got := lipgloss.Height(m.View()); got != 3 {
		t.Fatalf("height: got %d, want 3", got)
	}
	got := viewLines(m)
	if want := "buffer_pos:5 line:2 column:1 lines:[2, 4, 5]"; got[len(got)-1] != want {
		t.Fatalf("status row=%q, want %q", got[len(got)-1], want)
	}
}

func TestModel_StatusRowTruncatedToWidth(t *testing.T) {
	m := New(Config{Text: "ab", ShowStatus: true})
	m = m.SetSize(10, 2)

	got := viewLines(m)
	if want := "buffer_pos"; got[len(got)-1] != want {
		t.Fatalf("status row=%q, want %q", got[len(got)-1], want)
	}
}

func TestView_SnapshotFixedSize(t *testing.T) {
	m := New(Config{
		Text:         "one\ntwo\nthree\nfour\nfive",
		ShowLineNums: true,
	})
	m = m.Blur()
	m = m.SetSize(8, 3)
	m.viewport.SetYOffset(0)

	got := viewLines(m)
	if len(got) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(got))
	}

	want := []string{
		"1 one",
		"2 two",
		"3 three",
	}
	if fmt.Sprintf("%q", got) != fmt.Sprintf("%q", want) {
		t.Fatalf("unexpected view:\n got: %q\nwant: %q", got, want)
	}
}

func TestModel_FollowsCursorOnResize(t *testing.T) {
	lines := make([]string, 10)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i)
	}
	m := New(Config{Text: strings.Join(lines, "\n")})
	m = m.SetSize(20, 3)

	if got := m.viewport.YOffset; got != 7 {
		t.Fatalf("y offset=%d, want 7", got)
	}
	_, y, ok := m.CursorCell()
	if !ok || y != 2 {
		t.Fatalf("cursor cell y=%d ok=%v, want 2 true", y, ok)
	}
}

func TestModel_CursorCell_UsesCellWidths(t *testing.T) {
	m := New(Config{Text: "a世b\ncd", ShowLineNums: true})
	m = m.SetSize(20, 5)

	x, y, ok := m.CursorCell()
	if !ok || x != 4 || y != 1 {
		t.Fatalf("cursor cell=(%d,%d,%v), want (4,1,true)", x, y, ok)
	}

	m.Buffer().Locate(2)
	x, y, ok = m.CursorCell()
	if !ok || x != 5 || y != 0 {
		t.Fatalf("cursor cell=(%d,%d,%v), want (5,0,true)", x, y, ok)
	}
}

func TestModel_CursorCell_HiddenWhenScrolledAway(t *testing.T) {
	m := New(Config{Text: "a\nb\nc\nd"})
	m = m.SetSize(10, 2)
	m.Buffer().Locate(0)

	if _, _, ok := m.CursorCell(); ok {
		t.Fatalf("expected cursor outside the viewport")
	}

	m, _ = m.Update(struct{}{})
	if _, y, ok := m.CursorCell(); !ok || y != 0 {
		t.Fatalf("after sync: y=%d ok=%v, want 0 true", y, ok)
	}
}

func TestModel_FocusBlur(t *testing.T) {
	m := New(Config{})
	if !m.Focused() {
		t.Fatalf("expected new model to be focused")
	}
	m = m.Blur()
	if m.Focused() {
		t.Fatalf("expected blurred model")
	}
	m = m.Focus()
	if !m.Focused() {
		t.Fatalf("expected focused model")
	}
}
