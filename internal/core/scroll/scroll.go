// Package scroll holds the viewport offset of an editor.
package scroll

import "github.com/bethropolis/scribe/internal/logger"

// Scroll is the viewport origin: Top is the number of lines hidden above the
// view and Left the number of cells hidden to its left. Both are kept >= 0.
// Document bounds are not enforced here.
type Scroll struct {
	top  int
	left int
}

// New creates a Scroll at the given offsets, clamped to zero.
func New(top, left int) *Scroll {
	s := &Scroll{}
	s.Set(top, left)
	return s
}

// Top returns the vertical offset.
func (s *Scroll) Top() int { return s.top }

// Left returns the horizontal offset.
func (s *Scroll) Left() int { return s.left }

// Position returns both offsets.
func (s *Scroll) Position() (top, left int) {
	return s.top, s.left
}

// SetTop sets the vertical offset.
func (s *Scroll) SetTop(top int) {
	s.top = max(0, top)
}

// SetLeft sets the horizontal offset.
func (s *Scroll) SetLeft(left int) {
	s.left = max(0, left)
}

// Set sets both offsets.
func (s *Scroll) Set(top, left int) {
	s.SetTop(top)
	s.SetLeft(left)
}

// ScrollUp, ScrollDown, ScrollLeft and ScrollRight shift the view by n lines
// or cells. Offsets never drop below zero.
func (s *Scroll) ScrollUp(n int)    { s.SetTop(s.top - n) }
func (s *Scroll) ScrollDown(n int)  { s.SetTop(s.top + n) }
func (s *Scroll) ScrollLeft(n int)  { s.SetLeft(s.left - n) }
func (s *Scroll) ScrollRight(n int) { s.SetLeft(s.left + n) }

// Reveal adjusts the offsets so that a caret on the 1-based line, at the
// given 0-based visual cell, is inside a view of height x width, keeping
// scrollOff lines of context above and below. It reports whether the
// offsets changed. A view without dimensions is left alone.
func (s *Scroll) Reveal(line, visualCol, viewHeight, viewWidth, scrollOff int) bool {
	if viewHeight <= 0 || viewWidth <= 0 {
		return false
	}
	oldTop, oldLeft := s.top, s.left

	// Effective scrolloff (cannot be larger than half the view height)
	if scrollOff*2 >= viewHeight {
		scrollOff = (viewHeight - 1) / 2
	}
	row := line - 1
	if row < s.top+scrollOff {
		s.SetTop(row - scrollOff)
	} else if row >= s.top+viewHeight-scrollOff {
		s.SetTop(row - viewHeight + 1 + scrollOff)
	}

	// No horizontal scrolloff; keep the caret on the last visible cell.
	if visualCol < s.left {
		s.SetLeft(visualCol)
	} else if visualCol >= s.left+viewWidth {
		s.SetLeft(visualCol - viewWidth + 1)
	}

	changed := s.top != oldTop || s.left != oldLeft
	if changed {
		logger.DebugTagf("scroll", "viewport moved to top=%d left=%d", s.top, s.left)
	}
	return changed
}
