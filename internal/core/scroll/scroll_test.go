package scroll

import "testing"

func TestScroll_ClampsNonNegative(t *testing.T) {
	s := New(-3, -1)
	if top, left := s.Position(); top != 0 || left != 0 {
		t.Fatalf("New(-3,-1) = (%d,%d), want (0,0)", top, left)
	}

	s.ScrollDown(5)
	s.ScrollRight(2)
	s.ScrollUp(7)
	s.ScrollLeft(1)
	if top, left := s.Position(); top != 0 || left != 1 {
		t.Fatalf("position = (%d,%d), want (0,1)", top, left)
	}

	s.Set(10, 4)
	if s.Top() != 10 || s.Left() != 4 {
		t.Fatalf("Set(10,4) gave (%d,%d)", s.Top(), s.Left())
	}
}

func TestScroll_Reveal(t *testing.T) {
	tests := []struct {
		name              string
		top, left         int
		line, visualCol   int
		wantTop, wantLeft int
		wantChanged       bool
	}{
		{"already visible", 0, 0, 5, 3, 0, 0, false},
		{"below view", 0, 0, 30, 0, 22, 0, true},
		{"above view", 20, 0, 21, 0, 18, 0, true},
		{"top of document", 5, 0, 1, 0, 0, 0, true},
		{"right of view", 0, 0, 1, 85, 0, 6, true},
		{"left of view", 0, 10, 1, 4, 0, 4, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.top, tt.left)
			changed := s.Reveal(tt.line, tt.visualCol, 10, 80, 2)
			if s.Top() != tt.wantTop || s.Left() != tt.wantLeft || changed != tt.wantChanged {
				t.Fatalf("Reveal = top %d left %d changed %v; want %d %d %v",
					s.Top(), s.Left(), changed, tt.wantTop, tt.wantLeft, tt.wantChanged)
			}
		})
	}
}

func TestScroll_RevealWithoutView(t *testing.T) {
	s := New(4, 0)
	if s.Reveal(100, 100, 0, 0, 3) || s.Top() != 4 {
		t.Fatalf("Reveal with no view moved scroll to %d", s.Top())
	}
}
