// Package history provides undo/redo functionality via a change history stack.
package history

import "github.com/bethropolis/scribe/internal/types"

// ActionType indicates whether text was inserted or deleted.
type ActionType int

const (
	InsertAction ActionType = iota
	DeleteAction
)

func (a ActionType) String() string {
	if a == InsertAction {
		return "insert"
	}
	return "delete"
}

// Change represents a single, reversible text operation.
type Change struct {
	Type         ActionType
	Text         string         // Text inserted or text deleted; may span lines
	Start        types.Position // Where the change began
	End          types.Position // Position after inserted text, or end of deleted text
	CursorBefore types.Position // Cursor position *before* this change was applied
}

// Range returns the span the change covers in the document where its text
// is present.
func (c Change) Range() types.Range {
	return types.Range{Start: c.Start, End: c.End}
}
