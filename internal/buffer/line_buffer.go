// internal/buffer/line_buffer.go
package buffer

import (
	"fmt"
	"strings"

	"github.com/bethropolis/scribe/internal/types"
	"github.com/bethropolis/scribe/internal/utils"
)

// LineBuffer stores a document as a slice of lines without separators.
// There is always at least one line; empty text is one empty line.
type LineBuffer struct {
	lines    []string
	modified bool // Track if buffer has changes since the last MarkSaved
}

// NewLineBuffer creates a LineBuffer holding text.
func NewLineBuffer(text string) *LineBuffer {
	return &LineBuffer{lines: splitLines(text)}
}

// splitLines splits on "\n". strings.Split never returns an empty slice.
func splitLines(text string) []string {
	return strings.Split(text, "\n")
}

// LineCount returns the number of lines. Never zero.
func (lb *LineBuffer) LineCount() int {
	return len(lb.lines)
}

// Line returns the content of line n.
func (lb *LineBuffer) Line(n int) (string, error) {
	if err := lb.checkLine(n); err != nil {
		return "", err
	}
	return lb.lines[n-1], nil
}

// LineLength returns the rune count of line n.
func (lb *LineBuffer) LineLength(n int) (int, error) {
	if err := lb.checkLine(n); err != nil {
		return 0, err
	}
	return utils.RuneLen(lb.lines[n-1]), nil
}

// Lines returns a copy of all lines.
func (lb *LineBuffer) Lines() []string {
	out := make([]string, len(lb.lines))
	copy(out, lb.lines)
	return out
}

// Text joins the lines with "\n".
func (lb *LineBuffer) Text() string {
	return strings.Join(lb.lines, "\n")
}

// SetText replaces the whole document.
func (lb *LineBuffer) SetText(text string) types.EditInfo {
	oldCount := len(lb.lines)
	lb.lines = splitLines(text)
	lb.modified = true
	return types.EditInfo{StartLine: 1, OldEndLine: oldCount, NewEndLine: len(lb.lines)}
}

// IsModified returns true if the buffer changed since the last MarkSaved.
func (lb *LineBuffer) IsModified() bool {
	return lb.modified
}

// MarkSaved clears the modified flag after the host persisted Text().
func (lb *LineBuffer) MarkSaved() {
	lb.modified = false
}

// --- Validation ---

func (lb *LineBuffer) checkLine(n int) error {
	if n < 1 || n > len(lb.lines) {
		return fmt.Errorf("%w: line %d not in 1..%d", ErrOutOfBounds, n, len(lb.lines))
	}
	return nil
}

// columnOffset validates column on line n and returns its byte offset.
func (lb *LineBuffer) columnOffset(n, column int) (int, error) {
	if err := lb.checkLine(n); err != nil {
		return 0, err
	}
	line := lb.lines[n-1]
	offset := utils.RuneIndexToByteOffset(line, column-1)
	if column < 1 || offset < 0 {
		return 0, fmt.Errorf("%w: column %d not in 1..%d on line %d",
			ErrOutOfBounds, column, utils.RuneLen(line)+1, n)
	}
	return offset, nil
}

// Validate returns an ErrOutOfBounds error if pos is not addressable.
func (lb *LineBuffer) Validate(pos types.Position) error {
	_, err := lb.columnOffset(pos.Line, pos.Column)
	return err
}

// Clamp returns the nearest valid position to pos.
func (lb *LineBuffer) Clamp(pos types.Position) types.Position {
	pos.Line = max(1, min(pos.Line, len(lb.lines)))
	maxCol := utils.RuneLen(lb.lines[pos.Line-1]) + 1
	pos.Column = max(1, min(pos.Column, maxCol))
	return pos
}

// --- Modification primitives ---

// InsertText splices text into a single line. text must not contain "\n";
// multi-line insertion is composed from SplitLine and InsertLine.
func (lb *LineBuffer) InsertText(line, column int, text string) (types.EditInfo, error) {
	if strings.ContainsRune(text, '\n') {
		return types.EditInfo{}, fmt.Errorf("%w: newline in single-line insert at %d:%d", ErrMalformedEdit, line, column)
	}
	offset, err := lb.columnOffset(line, column)
	if err != nil {
		return types.EditInfo{}, fmt.Errorf("invalid insert position: %w", err)
	}
	edit := types.EditInfo{StartLine: line, OldEndLine: line, NewEndLine: line}
	if text == "" {
		return edit, nil
	}

	current := lb.lines[line-1]
	lb.lines[line-1] = current[:offset] + text + current[offset:]
	lb.modified = true
	return edit, nil
}

// SplitLine breaks line at column; the remainder becomes a new line below.
func (lb *LineBuffer) SplitLine(line, column int) (types.EditInfo, error) {
	offset, err := lb.columnOffset(line, column)
	if err != nil {
		return types.EditInfo{}, fmt.Errorf("invalid split position: %w", err)
	}

	current := lb.lines[line-1]
	head, tail := current[:offset], current[offset:]

	lb.lines = append(lb.lines, "")
	copy(lb.lines[line+1:], lb.lines[line:])
	lb.lines[line-1] = head
	lb.lines[line] = tail
	lb.modified = true

	return types.EditInfo{StartLine: line, OldEndLine: line, NewEndLine: line + 1}, nil
}

// InsertLine injects a new line so that it becomes line number at.
// at may be LineCount()+1 to append.
func (lb *LineBuffer) InsertLine(at int, text string) (types.EditInfo, error) {
	if strings.ContainsRune(text, '\n') {
		return types.EditInfo{}, fmt.Errorf("%w: newline in inserted line %d", ErrMalformedEdit, at)
	}
	if at < 1 || at > len(lb.lines)+1 {
		return types.EditInfo{}, fmt.Errorf("%w: cannot insert line at %d (1..%d)", ErrOutOfBounds, at, len(lb.lines)+1)
	}

	lb.lines = append(lb.lines, "")
	copy(lb.lines[at:], lb.lines[at-1:])
	lb.lines[at-1] = text
	lb.modified = true

	// Nothing existing was rewritten, so the old end sits just above the new line.
	return types.EditInfo{StartLine: at, OldEndLine: at - 1, NewEndLine: at}, nil
}

// DeleteText removes length characters starting at (line, column). The
// separator between two lines counts as one character, so a delete running
// past end-of-line absorbs the following lines until length is consumed.
func (lb *LineBuffer) DeleteText(line, column, length int) (types.EditInfo, error) {
	if length < 0 {
		return types.EditInfo{}, fmt.Errorf("%w: negative delete length %d", ErrMalformedEdit, length)
	}
	offset, err := lb.columnOffset(line, column)
	if err != nil {
		return types.EditInfo{}, fmt.Errorf("invalid delete position: %w", err)
	}
	if length == 0 {
		return types.EditInfo{StartLine: line, OldEndLine: line, NewEndLine: line}, nil
	}

	// Walk forward without mutating so a failure leaves the buffer intact.
	endIdx := line - 1
	tail := lb.lines[endIdx][offset:]
	remaining := length
	for remaining > utils.RuneLen(tail) {
		remaining -= utils.RuneLen(tail) + 1 // rest of the line plus its separator
		endIdx++
		if endIdx >= len(lb.lines) {
			return types.EditInfo{}, fmt.Errorf("%w: deleting %d characters from %d:%d runs past end of document",
				ErrOutOfBounds, length, line, column)
		}
		tail = lb.lines[endIdx]
	}
	cut := utils.RuneIndexToByteOffset(tail, remaining)

	merged := lb.lines[line-1][:offset] + tail[cut:]
	lb.lines[line-1] = merged
	if endIdx > line-1 {
		lb.lines = append(lb.lines[:line], lb.lines[endIdx+1:]...)
	}
	lb.modified = true

	return types.EditInfo{StartLine: line, OldEndLine: endIdx + 1, NewEndLine: line}, nil
}

// --- Addressing helpers ---

// Offset converts pos to a character offset from the start of the document,
// counting each line separator as one character.
func (lb *LineBuffer) Offset(pos types.Position) (int, error) {
	if err := lb.Validate(pos); err != nil {
		return 0, err
	}
	offset := 0
	for i := 0; i < pos.Line-1; i++ {
		offset += utils.RuneLen(lb.lines[i]) + 1
	}
	return offset + pos.Column - 1, nil
}

// PositionAt is the inverse of Offset.
func (lb *LineBuffer) PositionAt(offset int) (types.Position, error) {
	if offset < 0 {
		return types.Position{}, fmt.Errorf("%w: negative offset %d", ErrOutOfBounds, offset)
	}
	remaining := offset
	for i, line := range lb.lines {
		n := utils.RuneLen(line)
		if remaining <= n {
			return types.Position{Line: i + 1, Column: remaining + 1}, nil
		}
		remaining -= n + 1
	}
	return types.Position{}, fmt.Errorf("%w: offset %d past end of document", ErrOutOfBounds, offset)
}

// TextInRange returns the text between the normalized ends of r.
func (lb *LineBuffer) TextInRange(r types.Range) (string, error) {
	r = r.Normalize()
	startOff, err := lb.columnOffset(r.Start.Line, r.Start.Column)
	if err != nil {
		return "", fmt.Errorf("invalid range start: %w", err)
	}
	endOff, err := lb.columnOffset(r.End.Line, r.End.Column)
	if err != nil {
		return "", fmt.Errorf("invalid range end: %w", err)
	}

	if r.IsSingleLine() {
		return lb.lines[r.Start.Line-1][startOff:endOff], nil
	}

	var sb strings.Builder
	sb.WriteString(lb.lines[r.Start.Line-1][startOff:])
	for i := r.Start.Line; i < r.End.Line-1; i++ {
		sb.WriteByte('\n')
		sb.WriteString(lb.lines[i])
	}
	sb.WriteByte('\n')
	sb.WriteString(lb.lines[r.End.Line-1][:endOff])
	return sb.String(), nil
}

// RangeLength returns the number of characters spanned by r.
func (lb *LineBuffer) RangeLength(r types.Range) (int, error) {
	r = r.Normalize()
	start, err := lb.Offset(r.Start)
	if err != nil {
		return 0, err
	}
	end, err := lb.Offset(r.End)
	if err != nil {
		return 0, err
	}
	return end - start, nil
}

// Ensure LineBuffer satisfies the Buffer interface
var _ Buffer = (*LineBuffer)(nil)
