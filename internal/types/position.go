// internal/types/position.go
package types

import "fmt"

// Position represents a caret or text position within a document.
// Line is the 1-based line number.
// Column is the 1-based column, counted in runes. Column lineLength+1 is the
// slot just past the last character of a line.
type Position struct {
	Line   int
	Column int
}

// NewPosition creates a Position at the given line and column.
func NewPosition(line, column int) Position {
	return Position{Line: line, Column: column}
}

// WithLine returns a copy of p on another line.
func (p Position) WithLine(line int) Position {
	p.Line = line
	return p
}

// WithColumn returns a copy of p at another column.
func (p Position) WithColumn(column int) Position {
	p.Column = column
	return p
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other.
func (p Position) Compare(other Position) int {
	if p.Line < other.Line {
		return -1
	}
	if p.Line > other.Line {
		return 1
	}
	if p.Column < other.Column {
		return -1
	}
	if p.Column > other.Column {
		return 1
	}
	return 0
}

// IsEqual reports whether both positions address the same slot.
func (p Position) IsEqual(other Position) bool {
	return p.Line == other.Line && p.Column == other.Column
}

// IsBefore reports whether p comes strictly before other.
func (p Position) IsBefore(other Position) bool {
	return p.Compare(other) < 0
}

// IsAfter reports whether p comes strictly after other.
func (p Position) IsAfter(other Position) bool {
	return p.Compare(other) > 0
}

// Clone returns a copy of p.
func (p Position) Clone() Position {
	return Position{Line: p.Line, Column: p.Column}
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d:%d)", p.Line, p.Column)
}

// MinPosition returns the earlier of two positions.
func MinPosition(a, b Position) Position {
	if b.IsBefore(a) {
		return b
	}
	return a
}

// MaxPosition returns the later of two positions.
func MaxPosition(a, b Position) Position {
	if b.IsAfter(a) {
		return b
	}
	return a
}
