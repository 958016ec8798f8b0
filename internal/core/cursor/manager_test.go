package cursor

import (
	"errors"
	"reflect"
	"testing"

	"github.com/bethropolis/scribe/internal/buffer"
	"github.com/bethropolis/scribe/internal/types"
)

func newCursor(t *testing.T, text string, line, col int) (*Manager, *buffer.LineBuffer) {
	t.Helper()
	b := buffer.NewLineBuffer(text)
	m := NewManager(b)
	if err := m.SetPosition(line, col); err != nil {
		t.Fatalf("SetPosition(%d,%d): %v", line, col, err)
	}
	return m, b
}

func TestManager_MoveUpDown(t *testing.T) {
	m, _ := newCursor(t, "long line\nab\nanother long one", 1, 8)

	m.MoveDown()
	if got := m.GetPosition(); got != types.NewPosition(2, 3) {
		t.Fatalf("cursor=%v, want (2:3) clamped to line end", got)
	}
	m.MoveDown()
	if got := m.GetPosition(); got != types.NewPosition(3, 8) {
		t.Fatalf("cursor=%v, want (3:8) from preferred column", got)
	}
	m.MoveDown()
	if got := m.GetPosition(); got != types.NewPosition(3, 8) {
		t.Fatalf("cursor=%v, want no-op on last line", got)
	}

	m.MoveUp()
	m.MoveUp()
	if got := m.GetPosition(); got != types.NewPosition(1, 8) {
		t.Fatalf("cursor=%v, want (1:8)", got)
	}
	m.MoveUp()
	if got := m.GetPosition(); got != types.NewPosition(1, 8) {
		t.Fatalf("cursor=%v, want no-op on first line", got)
	}
}

func TestManager_HorizontalMoveResetsPreferredColumn(t *testing.T) {
	m, _ := newCursor(t, "abcdef\nab\nabcdef", 1, 6)
	m.MoveDown() // (2:3)
	m.MoveLeft() // (2:2)
	m.MoveDown()
	if got := m.GetPosition(); got != types.NewPosition(3, 2) {
		t.Fatalf("cursor=%v, want (3:2)", got)
	}
}

func TestManager_MoveLeftWraps(t *testing.T) {
	m, _ := newCursor(t, "abc\nd", 2, 1)
	m.MoveLeft()
	if got := m.GetPosition(); got != types.NewPosition(1, 4) {
		t.Fatalf("cursor=%v, want end of previous line (1:4)", got)
	}

	m, _ = newCursor(t, "abc", 1, 1)
	m.MoveLeft()
	if got := m.GetPosition(); got != types.NewPosition(1, 1) {
		t.Fatalf("cursor=%v, want no-op at document start", got)
	}
}

func TestManager_MoveRightWraps(t *testing.T) {
	m, _ := newCursor(t, "ab\nc", 1, 3)
	m.MoveRight()
	if got := m.GetPosition(); got != types.NewPosition(2, 1) {
		t.Fatalf("cursor=%v, want (2:1)", got)
	}
	m.MoveRight()
	m.MoveRight()
	if got := m.GetPosition(); got != types.NewPosition(2, 2) {
		t.Fatalf("cursor=%v, want no-op at document end (2:2)", got)
	}
}

func TestManager_SetPositionRejectsInvalid(t *testing.T) {
	m, _ := newCursor(t, "ab\nc", 1, 2)
	for _, p := range []types.Position{{Line: 0, Column: 1}, {Line: 3, Column: 1}, {Line: 2, Column: 3}, {Line: 1, Column: 0}} {
		if err := m.SetPosition(p.Line, p.Column); !errors.Is(err, buffer.ErrOutOfBounds) {
			t.Errorf("SetPosition(%v) err = %v, want ErrOutOfBounds", p, err)
		}
	}
	if got := m.GetPosition(); got != types.NewPosition(1, 2) {
		t.Fatalf("rejected SetPosition moved cursor to %v", got)
	}
}

func TestManager_Clamp(t *testing.T) {
	m, b := newCursor(t, "abcdef\nxyz", 2, 4)
	if _, err := b.DeleteText(1, 3, 8); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	m.Clamp()
	if got := m.GetPosition(); got != types.NewPosition(1, 3) {
		t.Fatalf("cursor=%v, want (1:3)", got)
	}
}

func TestManager_LineAndDocumentEnds(t *testing.T) {
	m, _ := newCursor(t, "  indented\nlast", 1, 6)

	m.MoveToFirstNonBlank()
	if got := m.GetPosition(); got != types.NewPosition(1, 3) {
		t.Fatalf("cursor=%v, want first non-blank (1:3)", got)
	}
	m.MoveToFirstNonBlank()
	if got := m.GetPosition(); got != types.NewPosition(1, 1) {
		t.Fatalf("cursor=%v, want toggle to (1:1)", got)
	}
	m.MoveToLineEnd()
	if got := m.GetPosition(); got != types.NewPosition(1, 11) {
		t.Fatalf("cursor=%v, want (1:11)", got)
	}
	m.MoveToDocumentEnd()
	if got := m.GetPosition(); got != types.NewPosition(2, 5) {
		t.Fatalf("cursor=%v, want (2:5)", got)
	}
	m.MoveToDocumentStart()
	if got := m.GetPosition(); got != types.NewPosition(1, 1) {
		t.Fatalf("cursor=%v, want (1:1)", got)
	}
}

func TestManager_WordMoves(t *testing.T) {
	m, _ := newCursor(t, "foo bar\nbaz", 1, 1)

	var got []types.Position
	for i := 0; i < 4; i++ {
		m.MoveWordRight()
		got = append(got, m.GetPosition())
	}
	want := []types.Position{{Line: 1, Column: 5}, {Line: 1, Column: 8}, {Line: 2, Column: 1}, {Line: 2, Column: 4}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("word right = %v, want %v", got, want)
	}

	got = got[:0]
	for i := 0; i < 4; i++ {
		m.MoveWordLeft()
		got = append(got, m.GetPosition())
	}
	want = []types.Position{{Line: 2, Column: 1}, {Line: 1, Column: 8}, {Line: 1, Column: 5}, {Line: 1, Column: 1}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("word left = %v, want %v", got, want)
	}
}

func TestManager_StaysInBounds(t *testing.T) {
	m, b := newCursor(t, "a\n\nlonger line\nxy", 1, 1)
	moves := []func(){m.MoveDown, m.MoveRight, m.MoveRight, m.MoveDown, m.MoveLeft, m.MoveUp,
		m.MoveDown, m.MoveDown, m.MoveDown, m.MoveRight, m.MoveRight, m.MoveRight, m.MoveUp, m.MoveWordLeft}
	for i, move := range moves {
		move()
		if err := b.Validate(m.GetPosition()); err != nil {
			t.Fatalf("after move %d cursor %v invalid: %v", i, m.GetPosition(), err)
		}
	}
}

func TestWordStarts(t *testing.T) {
	tests := []struct {
		line string
		want []int
	}{
		{"", nil},
		{"   ", nil},
		{"foo bar", []int{1, 5}},
		{"  x", []int{3}},
		{"f(a, b)", []int{1, 2, 3, 4, 6, 7}},
		{"héllo wörld", []int{1, 7}},
	}
	for _, tt := range tests {
		if got := WordStarts(tt.line); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("WordStarts(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}
