package cursor

import (
	"fmt"

	"github.com/bethropolis/scribe/internal/buffer"
	"github.com/bethropolis/scribe/internal/logger"
	"github.com/bethropolis/scribe/internal/types"
)

// Bounds is what the cursor needs from the document to keep itself valid.
type Bounds interface {
	LineCount() int
	Line(n int) (string, error)
	LineLength(n int) (int, error)
}

// Manager owns the caret position.
type Manager struct {
	bounds   Bounds
	position types.Position

	// preferredCol is the column vertical moves aim for. Zero means unset.
	preferredCol int
}

// NewManager creates a cursor at the start of the document.
func NewManager(bounds Bounds) *Manager {
	return &Manager{
		bounds:   bounds,
		position: types.NewPosition(1, 1),
	}
}

// GetPosition returns the current cursor position
func (m *Manager) GetPosition() types.Position {
	return m.position
}

// lineEnd returns the end-of-line slot (length+1) of line n.
func (m *Manager) lineEnd(n int) int {
	length, err := m.bounds.LineLength(n)
	if err != nil {
		logger.Warnf("cursor: failed to read length of line %d: %v", n, err)
		return 1
	}
	return length + 1
}

// SetPosition jumps to an absolute position. Invalid positions are rejected
// and leave the cursor where it was.
func (m *Manager) SetPosition(line, column int) error {
	if line < 1 || line > m.bounds.LineCount() {
		return fmt.Errorf("%w: cursor line %d not in 1..%d", buffer.ErrOutOfBounds, line, m.bounds.LineCount())
	}
	if end := m.lineEnd(line); column < 1 || column > end {
		return fmt.Errorf("%w: cursor column %d not in 1..%d", buffer.ErrOutOfBounds, column, end)
	}
	m.moveTo(line, column)
	return nil
}

// moveTo sets the position and forgets the preferred column.
func (m *Manager) moveTo(line, column int) {
	m.position = types.NewPosition(line, column)
	m.preferredCol = 0
	logger.DebugTagf("cursor", "cursor at %v", m.position)
}

// Clamp pulls the cursor back inside the document, e.g. after a delete.
func (m *Manager) Clamp() {
	line := max(1, min(m.position.Line, m.bounds.LineCount()))
	column := max(1, min(m.position.Column, m.lineEnd(line)))
	if line != m.position.Line || column != m.position.Column {
		m.moveTo(line, column)
	}
}

// moveVertical moves by delta lines, clamping the line to the document and
// the column to the destination line. The column the move started from is
// remembered so a run of vertical moves through short lines keeps its place.
func (m *Manager) moveVertical(delta int) {
	target := max(1, min(m.position.Line+delta, m.bounds.LineCount()))
	if target == m.position.Line {
		return
	}
	if m.preferredCol == 0 {
		m.preferredCol = m.position.Column
	}
	preferred := m.preferredCol
	m.position = types.NewPosition(target, min(preferred, m.lineEnd(target)))
	logger.DebugTagf("cursor", "cursor at %v (preferred column %d)", m.position, preferred)
}

// MoveUp moves one line up. No-op on the first line.
func (m *Manager) MoveUp() {
	m.moveVertical(-1)
}

// MoveDown moves one line down. No-op on the last line.
func (m *Manager) MoveDown() {
	m.moveVertical(1)
}

// PageMove moves by whole pages of the given height.
func (m *Manager) PageMove(deltaPages, pageHeight int) {
	if pageHeight <= 0 {
		return
	}
	m.moveVertical(deltaPages * pageHeight)
}

// MoveLeft moves one column left, wrapping to the end of the previous line.
func (m *Manager) MoveLeft() {
	pos := m.position
	switch {
	case pos.Column > 1:
		m.moveTo(pos.Line, pos.Column-1)
	case pos.Line > 1:
		m.moveTo(pos.Line-1, m.lineEnd(pos.Line-1))
	}
}

// MoveRight moves one column right, wrapping to the start of the next line.
func (m *Manager) MoveRight() {
	pos := m.position
	switch {
	case pos.Column < m.lineEnd(pos.Line):
		m.moveTo(pos.Line, pos.Column+1)
	case pos.Line < m.bounds.LineCount():
		m.moveTo(pos.Line+1, 1)
	}
}

// MoveToLineStart moves to column 1 of the current line.
func (m *Manager) MoveToLineStart() {
	m.moveTo(m.position.Line, 1)
}

// MoveToFirstNonBlank moves to the first non-whitespace character of the
// line, or to column 1 if the cursor is already there.
func (m *Manager) MoveToFirstNonBlank() {
	line, err := m.bounds.Line(m.position.Line)
	if err != nil {
		return
	}
	firstNonWS := 1
	for i, ch := range []rune(line) {
		if ch != ' ' && ch != '\t' {
			firstNonWS = i + 1
			break
		}
	}
	if m.position.Column == firstNonWS {
		firstNonWS = 1
	}
	m.moveTo(m.position.Line, firstNonWS)
}

// MoveToLineEnd moves past the last character of the current line.
func (m *Manager) MoveToLineEnd() {
	m.moveTo(m.position.Line, m.lineEnd(m.position.Line))
}

// MoveToDocumentStart moves to (1,1).
func (m *Manager) MoveToDocumentStart() {
	m.moveTo(1, 1)
}

// MoveToDocumentEnd moves past the last character of the last line.
func (m *Manager) MoveToDocumentEnd() {
	last := m.bounds.LineCount()
	m.moveTo(last, m.lineEnd(last))
}

// MoveWordRight moves to the start of the next word, then to the end of the
// line, then onto the next line.
func (m *Manager) MoveWordRight() {
	pos := m.position
	line, err := m.bounds.Line(pos.Line)
	if err != nil {
		return
	}
	for _, start := range WordStarts(line) {
		if start > pos.Column {
			m.moveTo(pos.Line, start)
			return
		}
	}
	if end := m.lineEnd(pos.Line); pos.Column < end {
		m.moveTo(pos.Line, end)
		return
	}
	if pos.Line < m.bounds.LineCount() {
		m.moveTo(pos.Line+1, 1)
	}
}

// MoveWordLeft moves to the start of the previous word, then to column 1,
// then to the end of the previous line.
func (m *Manager) MoveWordLeft() {
	pos := m.position
	line, err := m.bounds.Line(pos.Line)
	if err != nil {
		return
	}
	starts := WordStarts(line)
	for i := len(starts) - 1; i >= 0; i-- {
		if starts[i] < pos.Column {
			m.moveTo(pos.Line, starts[i])
			return
		}
	}
	switch {
	case pos.Column > 1:
		m.moveTo(pos.Line, 1)
	case pos.Line > 1:
		m.moveTo(pos.Line-1, m.lineEnd(pos.Line-1))
	}
}
