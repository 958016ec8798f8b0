package text

import (
	"fmt"
	"strings"

	"github.com/bethropolis/scribe/internal/buffer"
	"github.com/bethropolis/scribe/internal/core/history"
	"github.com/bethropolis/scribe/internal/event"
	"github.com/bethropolis/scribe/internal/logger"
	"github.com/bethropolis/scribe/internal/types"
	"github.com/bethropolis/scribe/internal/utils"
)

// Operations handles text insertion/deletion
type Operations struct {
	editor EditorInterface
}

// EditorInterface defines editor methods needed
type EditorInterface interface {
	GetBuffer() buffer.Buffer
	GetCursor() types.Position
	SetCursor(pos types.Position)
	GetSelection() (types.Range, bool)
	ClearSelection()
	GetEventManager() *event.Manager
	GetHistoryManager() *history.Manager
}

// NewOperations creates a text operations manager
func NewOperations(editor EditorInterface) *Operations {
	return &Operations{
		editor: editor,
	}
}

// notify publishes one buffer mutation.
func (o *Operations) notify(edit types.EditInfo) {
	if eventManager := o.editor.GetEventManager(); eventManager != nil {
		eventManager.Dispatch(event.TypeBufferModified, event.BufferModifiedData{Edit: edit})
	}
}

// record pushes a change onto the undo stack, if there is one.
func (o *Operations) record(change history.Change) {
	if histMgr := o.editor.GetHistoryManager(); histMgr != nil {
		histMgr.RecordChange(change)
	}
}

// ApplyInsert inserts text, which may span lines, at pos and returns the
// position just after it. It does not touch the cursor or history.
//
// A multi-line insert splits the target line at pos, appends the first
// piece to the head, injects the middle pieces as new lines and prefixes
// the last piece to the remainder of the original line.
func (o *Operations) ApplyInsert(pos types.Position, text string) (types.Position, error) {
	buf := o.editor.GetBuffer()
	if err := buf.Validate(pos); err != nil {
		return pos, fmt.Errorf("insert at %v: %w", pos, err)
	}
	if text == "" {
		return pos, nil
	}

	pieces := strings.Split(text, "\n")
	if len(pieces) == 1 {
		edit, err := buf.InsertText(pos.Line, pos.Column, text)
		if err != nil {
			return pos, err
		}
		o.notify(edit)
		return pos.WithColumn(pos.Column + utils.RuneLen(text)), nil
	}

	edit, err := buf.SplitLine(pos.Line, pos.Column)
	if err != nil {
		return pos, err
	}
	o.notify(edit)

	if pieces[0] != "" {
		if edit, err = buf.InsertText(pos.Line, pos.Column, pieces[0]); err != nil {
			return pos, err
		}
		o.notify(edit)
	}
	for i, piece := range pieces[1 : len(pieces)-1] {
		if edit, err = buf.InsertLine(pos.Line+1+i, piece); err != nil {
			return pos, err
		}
		o.notify(edit)
	}

	lastLine := pos.Line + len(pieces) - 1
	last := pieces[len(pieces)-1]
	if last != "" {
		if edit, err = buf.InsertText(lastLine, 1, last); err != nil {
			return pos, err
		}
		o.notify(edit)
	}

	logger.DebugTagf("text", "inserted %d line(s) at %v", len(pieces), pos)
	return types.NewPosition(lastLine, utils.RuneLen(last)+1), nil
}

// ApplyDelete removes the text of r and returns it. It does not touch the
// cursor or history.
func (o *Operations) ApplyDelete(r types.Range) (string, error) {
	buf := o.editor.GetBuffer()
	r = r.Normalize()

	removed, err := buf.TextInRange(r)
	if err != nil {
		return "", fmt.Errorf("delete %v: %w", r, err)
	}
	length, err := buf.RangeLength(r)
	if err != nil {
		return "", fmt.Errorf("delete %v: %w", r, err)
	}
	if length == 0 {
		return "", nil
	}

	edit, err := buf.DeleteText(r.Start.Line, r.Start.Column, length)
	if err != nil {
		return "", err
	}
	o.notify(edit)
	logger.DebugTagf("text", "deleted %d character(s) at %v", length, r.Start)
	return removed, nil
}

// InsertText inserts text at the cursor, replacing the selection if any,
// and moves the cursor past it.
func (o *Operations) InsertText(text string) error {
	if _, err := o.DeleteSelection(); err != nil {
		return err
	}
	if text == "" {
		return nil
	}

	start := o.editor.GetCursor()
	end, err := o.ApplyInsert(start, text)
	if err != nil {
		return err
	}
	o.record(history.Change{
		Type:         history.InsertAction,
		Text:         text,
		Start:        start,
		End:          end,
		CursorBefore: start,
	})
	o.editor.SetCursor(end)
	return nil
}

// InsertRune inserts a single rune at cursor
func (o *Operations) InsertRune(r rune) error {
	return o.InsertText(string(r))
}

// InsertNewLine splits the line at the cursor; the cursor moves to the start
// of the new line.
func (o *Operations) InsertNewLine() error {
	return o.InsertText("\n")
}

// DeleteSelection deletes the selected text and puts the cursor at its
// start. It reports false when nothing was selected.
func (o *Operations) DeleteSelection() (bool, error) {
	sel, ok := o.editor.GetSelection()
	if !ok {
		o.editor.ClearSelection()
		return false, nil
	}

	cursorBefore := o.editor.GetCursor()
	removed, err := o.ApplyDelete(sel)
	if err != nil {
		return false, err
	}
	o.editor.ClearSelection()
	o.record(history.Change{
		Type:         history.DeleteAction,
		Text:         removed,
		Start:        sel.Start,
		End:          sel.End,
		CursorBefore: cursorBefore,
	})
	o.editor.SetCursor(sel.Start)
	return true, nil
}

// deleteSpan deletes r, records it and leaves the cursor at r.Start.
func (o *Operations) deleteSpan(r types.Range) error {
	cursorBefore := o.editor.GetCursor()
	removed, err := o.ApplyDelete(r)
	if err != nil {
		return err
	}
	o.record(history.Change{
		Type:         history.DeleteAction,
		Text:         removed,
		Start:        r.Start,
		End:          r.End,
		CursorBefore: cursorBefore,
	})
	o.editor.SetCursor(r.Start)
	return nil
}

// DeleteBackward deletes the character before the cursor, or the selection.
// At column 1 the line is merged into the previous one.
func (o *Operations) DeleteBackward() error {
	if deleted, err := o.DeleteSelection(); deleted || err != nil {
		return err
	}

	pos := o.editor.GetCursor()
	var start types.Position
	switch {
	case pos.Column > 1:
		start = pos.WithColumn(pos.Column - 1)
	case pos.Line > 1:
		prevLen, err := o.editor.GetBuffer().LineLength(pos.Line - 1)
		if err != nil {
			return fmt.Errorf("cannot get previous line %d: %w", pos.Line-1, err)
		}
		start = types.NewPosition(pos.Line-1, prevLen+1)
	default:
		return nil // At beginning of buffer, nothing to delete
	}
	return o.deleteSpan(types.Range{Start: start, End: pos})
}

// DeleteForward deletes the character after the cursor, or the selection.
// At end of line the next line is merged into this one.
func (o *Operations) DeleteForward() error {
	if deleted, err := o.DeleteSelection(); deleted || err != nil {
		return err
	}

	buf := o.editor.GetBuffer()
	pos := o.editor.GetCursor()
	lineLen, err := buf.LineLength(pos.Line)
	if err != nil {
		return fmt.Errorf("cannot get current line %d: %w", pos.Line, err)
	}

	var end types.Position
	switch {
	case pos.Column <= lineLen:
		end = pos.WithColumn(pos.Column + 1)
	case pos.Line < buf.LineCount():
		end = types.NewPosition(pos.Line+1, 1)
	default:
		return nil // At end of buffer, nothing to delete
	}
	return o.deleteSpan(types.Range{Start: pos, End: end})
}
