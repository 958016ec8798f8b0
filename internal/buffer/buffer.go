// internal/buffer/buffer.go
package buffer

import "github.com/bethropolis/scribe/internal/types"

// Buffer defines the interface for line-structured text storage.
// Lines and columns are 1-based; columns count runes.
type Buffer interface {
	Line(n int) (string, error)
	LineCount() int
	LineLength(n int) (int, error)
	Text() string
	SetText(text string) types.EditInfo

	// Mutations return EditInfo describing the touched lines.
	InsertText(line, column int, text string) (types.EditInfo, error)
	InsertLine(at int, text string) (types.EditInfo, error)
	SplitLine(line, column int) (types.EditInfo, error)
	DeleteText(line, column, length int) (types.EditInfo, error)

	// Addressing
	Validate(pos types.Position) error
	Clamp(pos types.Position) types.Position
	TextInRange(r types.Range) (string, error)
	RangeLength(r types.Range) (int, error)

	IsModified() bool
	MarkSaved()
}
