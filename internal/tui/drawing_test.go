package tui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/scribe/internal/core"
	"github.com/bethropolis/scribe/internal/theme"
	"github.com/bethropolis/scribe/internal/types"
)

func newSimTUI(t *testing.T, width, height int) (*TUI, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	tm, err := NewWithScreen(sim, tcell.StyleDefault)
	if err != nil {
		t.Fatalf("NewWithScreen: %v", err)
	}
	t.Cleanup(tm.Close)
	sim.SetSize(width, height)
	return tm, sim
}

func rowText(sim tcell.SimulationScreen, y int) string {
	cells, w, _ := sim.GetContents()
	var b strings.Builder
	for x := 0; x < w; x++ {
		if r := cells[y*w+x].Runes; len(r) > 0 {
			b.WriteString(string(r))
		}
	}
	return strings.TrimRight(b.String(), " ")
}

func cellStyle(sim tcell.SimulationScreen, x, y int) tcell.Style {
	cells, w, _ := sim.GetContents()
	return cells[y*w+x].Style
}

func TestComputeLayout(t *testing.T) {
	l := ComputeLayout(80, 24, 120)
	if l.Gutter != 4 || l.TextWidth != 76 || l.TextHeight != 23 {
		t.Errorf("ComputeLayout = %+v", l)
	}
	if l := ComputeLayout(2, 1, 10); l.Gutter != 0 || l.TextHeight != 0 {
		t.Errorf("narrow ComputeLayout = %+v", l)
	}
}

func TestDrawBuffer(t *testing.T) {
	tm, sim := newSimTUI(t, 20, 5)
	ed := core.NewEditor("hello\n\tx", "", core.Options{})
	th := theme.FromChroma("monokai")

	DrawBuffer(tm, ed, th, 4)
	tm.Show()

	if got := rowText(sim, 0); got != "1 hello" {
		t.Errorf("row 0 = %q", got)
	}
	if got := rowText(sim, 1); got != "2     x" {
		t.Errorf("row 1 = %q", got)
	}
	if got := rowText(sim, 2); got != "" {
		t.Errorf("row 2 = %q, want empty", got)
	}
}

func TestDrawBuffer_Selection(t *testing.T) {
	tm, sim := newSimTUI(t, 20, 5)
	ed := core.NewEditor("hello", "", core.Options{})
	th := theme.FromChroma("monokai")
	if err := ed.SelectRange(types.NewRange(1, 2, 1, 4)); err != nil {
		t.Fatalf("SelectRange: %v", err)
	}

	DrawBuffer(tm, ed, th, 4)
	tm.Show()

	sel := th.GetStyle("Selection")
	for x, want := range map[int]bool{2: false, 3: true, 4: true, 5: false} {
		if got := cellStyle(sim, x, 0) == sel; got != want {
			t.Errorf("cell %d selected = %v, want %v", x, got, want)
		}
	}
}

func TestDrawBuffer_HorizontalScroll(t *testing.T) {
	tm, sim := newSimTUI(t, 8, 3)
	ed := core.NewEditor("abcdefghij", "", core.Options{})
	ed.SetScrollPosition(0, 3)

	DrawBuffer(tm, ed, theme.FromChroma("monokai"), 4)
	tm.Show()
	if got := rowText(sim, 0); got != "1 defghi" {
		t.Errorf("row 0 = %q", got)
	}
}

func TestDrawCursor(t *testing.T) {
	tm, sim := newSimTUI(t, 20, 5)
	ed := core.NewEditor("a\tb", "", core.Options{})
	if err := ed.SelectRange(types.NewRange(1, 3, 1, 3)); err != nil {
		t.Fatalf("SelectRange: %v", err)
	}

	DrawCursor(tm, ed, 4)
	tm.Show()
	x, y, visible := sim.GetCursor()
	if !visible || x != 2+4 || y != 0 {
		t.Errorf("cursor = (%d,%d) visible=%v, want (6,0)", x, y, visible)
	}

	ed.SetScrollPosition(1, 0)
	DrawCursor(tm, ed, 4)
	tm.Show()
	if _, _, visible := sim.GetCursor(); visible {
		t.Error("cursor above the view is visible")
	}
}

func TestScreenToPosition(t *testing.T) {
	tm, _ := newSimTUI(t, 20, 5)
	ed := core.NewEditor("hello\nworld", "", core.Options{})

	tests := []struct {
		x, y   int
		want   types.Position
		wantOk bool
	}{
		{4, 1, types.NewPosition(2, 3), true},
		{2, 0, types.NewPosition(1, 1), true},
		{15, 0, types.NewPosition(1, 6), true}, // past the end of the line
		{3, 3, types.NewPosition(2, 2), true},  // below the document
		{0, 0, types.Position{}, false},        // gutter
		{3, 4, types.Position{}, false},        // status bar
	}
	for _, tt := range tests {
		got, ok := ScreenToPosition(tm, ed, tt.x, tt.y, 4)
		if ok != tt.wantOk || got != tt.want {
			t.Errorf("ScreenToPosition(%d,%d) = %v, %v; want %v, %v", tt.x, tt.y, got, ok, tt.want, tt.wantOk)
		}
	}
}
