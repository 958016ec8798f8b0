// internal/core/dispatch.go
package core

import (
	"fmt"

	"github.com/bethropolis/scribe/internal/input"
	"github.com/bethropolis/scribe/internal/logger"
	"github.com/bethropolis/scribe/internal/types"
)

// defaultPageHeight is used for page moves before the host sets a view size.
const defaultPageHeight = 20

// Result is the editor state after one event.
type Result struct {
	Text    string
	Cursor  types.Position
	Changed bool // The text was modified
}

// Dispatch processes one input event. Failures are logged and the event
// becomes a no-op; they never reach the caller.
func (e *Editor) Dispatch(ev input.ActionEvent) Result {
	revision := e.revision
	oldCursor := e.GetCursor()
	oldSel, oldOk := e.SelectionRange()
	oldTop, oldLeft := e.scroll.Position()

	if err := e.handle(ev); err != nil {
		logger.Warnf("Editor: %s ignored: %v", ev.Action, err)
	}

	if !isScrollAction(ev.Action) {
		e.reveal()
	}
	e.notifyCaret(oldCursor, oldSel, oldOk)
	e.notifyScroll(oldTop, oldLeft)

	return Result{
		Text:    e.buffer.Text(),
		Cursor:  e.GetCursor(),
		Changed: e.revision != revision,
	}
}

func (e *Editor) handle(ev input.ActionEvent) error {
	switch ev.Action {
	// --- Movement ---
	case input.ActionMoveUp:
		e.move(ev.Extend, e.cursorManager.MoveUp)
	case input.ActionMoveDown:
		e.move(ev.Extend, e.cursorManager.MoveDown)
	case input.ActionMoveLeft:
		e.move(ev.Extend, e.cursorManager.MoveLeft)
	case input.ActionMoveRight:
		e.move(ev.Extend, e.cursorManager.MoveRight)
	case input.ActionMovePageUp:
		e.move(ev.Extend, func() { e.cursorManager.PageMove(-1, e.pageHeight()) })
	case input.ActionMovePageDown:
		e.move(ev.Extend, func() { e.cursorManager.PageMove(1, e.pageHeight()) })
	case input.ActionMoveHome:
		e.move(ev.Extend, e.cursorManager.MoveToFirstNonBlank)
	case input.ActionMoveEnd:
		e.move(ev.Extend, e.cursorManager.MoveToLineEnd)
	case input.ActionMoveDocStart:
		e.move(ev.Extend, e.cursorManager.MoveToDocumentStart)
	case input.ActionMoveDocEnd:
		e.move(ev.Extend, e.cursorManager.MoveToDocumentEnd)
	case input.ActionMoveWordLeft:
		e.move(ev.Extend, e.cursorManager.MoveWordLeft)
	case input.ActionMoveWordRight:
		e.move(ev.Extend, e.cursorManager.MoveWordRight)
	case input.ActionClick:
		return e.click(ev)

	// --- Editing ---
	case input.ActionInsertRune:
		if ev.Rune == 0 {
			return fmt.Errorf("insert of NUL rune")
		}
		return e.textOps.InsertRune(ev.Rune)
	case input.ActionInsertNewLine:
		return e.textOps.InsertNewLine()
	case input.ActionInsertText:
		return e.textOps.InsertText(ev.Text)
	case input.ActionDeleteCharBackward:
		return e.textOps.DeleteBackward()
	case input.ActionDeleteCharForward:
		return e.textOps.DeleteForward()

	// --- History ---
	case input.ActionUndo:
		e.selectionManager.ClearSelection()
		_, err := e.historyManager.Undo()
		return err
	case input.ActionRedo:
		e.selectionManager.ClearSelection()
		_, err := e.historyManager.Redo()
		return err

	// --- Clipboard ---
	case input.ActionCopy:
		_, err := e.clipboardManager.Copy()
		return err
	case input.ActionCut:
		_, err := e.clipboardManager.Cut()
		return err
	case input.ActionPaste:
		_, err := e.clipboardManager.Paste()
		return err

	// --- Selection ---
	case input.ActionSelectAll:
		e.selectAll()
	case input.ActionClearSelection:
		e.selectionManager.ClearSelection()

	// --- Viewport ---
	case input.ActionScrollUp:
		e.scroll.ScrollUp(delta(ev))
	case input.ActionScrollDown:
		e.scroll.ScrollDown(delta(ev))
	case input.ActionScrollLeft:
		e.scroll.ScrollLeft(delta(ev))
	case input.ActionScrollRight:
		e.scroll.ScrollRight(delta(ev))

	case input.ActionSave, input.ActionQuit, input.ActionForceQuit:
		logger.DebugTagf("core", "Editor: %s is handled by the host", ev.Action)
	default:
		return fmt.Errorf("unknown action %d", int(ev.Action))
	}
	return nil
}

// move runs a cursor movement. With extend the selection grows from the
// pre-move cursor to the new one; otherwise it is dropped.
func (e *Editor) move(extend bool, fn func()) {
	if extend {
		e.selectionManager.StartOrUpdateSelection()
	} else {
		e.selectionManager.ClearSelection()
	}
	fn()
	if extend {
		e.selectionManager.StartOrUpdateSelection()
	}
}

// click places the cursor at an already resolved document position.
func (e *Editor) click(ev input.ActionEvent) error {
	if err := e.buffer.Validate(types.NewPosition(ev.Line, ev.Column)); err != nil {
		return fmt.Errorf("click: %w", err)
	}
	var err error
	e.move(ev.Extend, func() {
		err = e.cursorManager.SetPosition(ev.Line, ev.Column)
	})
	return err
}

func (e *Editor) selectAll() {
	last := e.buffer.LineCount()
	lastLen, err := e.buffer.LineLength(last)
	if err != nil {
		return
	}
	end := types.NewPosition(last, lastLen+1)
	e.selectionManager.SelectRange(types.Range{Start: types.NewPosition(1, 1), End: end})
	e.SetCursor(end)
}

func (e *Editor) pageHeight() int {
	if e.viewHeight > 0 {
		return e.viewHeight
	}
	return defaultPageHeight
}

func delta(ev input.ActionEvent) int {
	if ev.Delta == 0 {
		return 1
	}
	return ev.Delta
}

func isScrollAction(a input.Action) bool {
	return a >= input.ActionScrollUp && a <= input.ActionScrollRight
}
