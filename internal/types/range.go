// internal/types/range.go
package types

import "fmt"

// Range is a span between two positions. Both ends are inclusive for
// containment checks.
//
// NewRange does not normalize. Callers that build a Range from two arbitrary
// positions must use RangeBetween, or pass the smaller position first.
type Range struct {
	Start Position
	End   Position
}

// NewRange creates a Range from raw line/column pairs.
func NewRange(startLine, startColumn, endLine, endColumn int) Range {
	return Range{
		Start: Position{Line: startLine, Column: startColumn},
		End:   Position{Line: endLine, Column: endColumn},
	}
}

// RangeBetween creates a normalized Range spanning a and b in either order.
func RangeBetween(a, b Position) Range {
	return Range{Start: MinPosition(a, b), End: MaxPosition(a, b)}
}

// SetStart returns a copy of r with a new start.
func (r Range) SetStart(line, column int) Range {
	r.Start = Position{Line: line, Column: column}
	return r
}

// SetEnd returns a copy of r with a new end.
func (r Range) SetEnd(line, column int) Range {
	r.End = Position{Line: line, Column: column}
	return r
}

// IsNormalized reports whether Start is not after End.
func (r Range) IsNormalized() bool {
	return !r.Start.IsAfter(r.End)
}

// Normalize returns r with Start <= End.
func (r Range) Normalize() Range {
	if r.IsNormalized() {
		return r
	}
	return Range{Start: r.End, End: r.Start}
}

// IsEmpty returns true if start equals end.
func (r Range) IsEmpty() bool {
	return r.Start.IsEqual(r.End)
}

// IsSingleLine returns true if the range spans only one line.
func (r Range) IsSingleLine() bool {
	return r.Start.Line == r.End.Line
}

// ContainsPosition reports whether (line, column) lies between Start and End
// inclusive. r must be normalized.
func (r Range) ContainsPosition(line, column int) bool {
	return r.Contains(Position{Line: line, Column: column})
}

// Contains is ContainsPosition for a Position value.
func (r Range) Contains(p Position) bool {
	return !p.IsBefore(r.Start) && !p.IsAfter(r.End)
}

// IntersectsRange reports whether the two spans overlap. Touching ends count
// as overlap. Both ranges must be normalized.
func (r Range) IntersectsRange(other Range) bool {
	return !r.Start.IsAfter(other.End) && !other.Start.IsAfter(r.End)
}

// IsEqual reports whether both ends match.
func (r Range) IsEqual(other Range) bool {
	return r.Start.IsEqual(other.Start) && r.End.IsEqual(other.End)
}

// Clone returns a copy of r.
func (r Range) Clone() Range {
	return Range{Start: r.Start.Clone(), End: r.End.Clone()}
}

// String returns a human-readable representation of the range.
func (r Range) String() string {
	return fmt.Sprintf("[%s-%s]", r.Start, r.End)
}
