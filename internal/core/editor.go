// internal/core/editor.go
package core

import (
	"fmt"

	"github.com/bethropolis/scribe/internal/buffer"
	"github.com/bethropolis/scribe/internal/core/clipboard"
	"github.com/bethropolis/scribe/internal/core/cursor"
	"github.com/bethropolis/scribe/internal/core/history"
	"github.com/bethropolis/scribe/internal/core/scroll"
	"github.com/bethropolis/scribe/internal/core/selection"
	"github.com/bethropolis/scribe/internal/core/text"
	"github.com/bethropolis/scribe/internal/event"
	"github.com/bethropolis/scribe/internal/logger"
	"github.com/bethropolis/scribe/internal/tokenizer"
	"github.com/bethropolis/scribe/internal/types"
	"github.com/bethropolis/scribe/internal/utils"
)

const (
	DefaultTabWidth  = 4
	DefaultScrollOff = 3
)

// Options configures an Editor. A zero TabWidth or MaxHistory selects the
// default; a zero ScrollOff keeps no margin around the cursor.
type Options struct {
	TabWidth   int                // Cells per tab stop when revealing the cursor
	ScrollOff  int                // Lines kept visible above/below the cursor
	MaxHistory int                // Undo depth
	Clipboard  clipboard.Provider // Optional system clipboard mirror
}

func (o Options) withDefaults() Options {
	if o.TabWidth <= 0 {
		o.TabWidth = DefaultTabWidth
	}
	if o.ScrollOff < 0 {
		o.ScrollOff = 0
	}
	if o.MaxHistory <= 0 {
		o.MaxHistory = history.DefaultMaxHistory
	}
	return o
}

// Editor owns one document and everything needed to edit it: the text, the
// cursor, the selection, the scroll offsets and the token cache. It is not
// safe for concurrent use.
type Editor struct {
	buffer       *buffer.LineBuffer
	eventManager *event.Manager
	scroll       *scroll.Scroll
	tokenizer    *tokenizer.Tokenizer
	opts         Options

	viewWidth  int // Declared by the host; 0 disables auto-reveal
	viewHeight int
	revision   int // Bumped on every buffer mutation

	// Managers
	cursorManager    *cursor.Manager
	selectionManager *selection.Manager
	historyManager   *history.Manager
	clipboardManager *clipboard.Manager
	textOps          *text.Operations
}

// NewEditor loads content into a fresh editor tokenized with language.
// The cursor starts at (1,1) and the scroll offsets at zero.
func NewEditor(content, language string, opts Options) *Editor {
	e := &Editor{
		buffer:       buffer.NewLineBuffer(content),
		eventManager: event.NewManager(),
		scroll:       scroll.New(0, 0),
		tokenizer:    tokenizer.New(language),
		opts:         opts.withDefaults(),
	}

	e.cursorManager = cursor.NewManager(e.buffer)
	e.selectionManager = selection.NewManager(e)
	e.historyManager = history.NewManager(e, e.opts.MaxHistory)
	e.textOps = text.NewOperations(e)
	e.clipboardManager = clipboard.NewManager(e, e.opts.Clipboard)

	// The token cache follows every primitive mutation.
	e.eventManager.Subscribe(event.TypeBufferModified, func(ev event.Event) bool {
		data, ok := ev.Data.(event.BufferModifiedData)
		if !ok {
			return false
		}
		e.revision++
		e.tokenizer.Apply(data.Edit, e.buffer)
		return false
	})

	e.tokenizer.Tokenize(content)
	logger.Debugf("Editor: loaded %d line(s), language %q", e.buffer.LineCount(), e.tokenizer.Language())
	return e
}

// --- Accessors used by the managers ---

// GetBuffer returns the editor's buffer.
func (e *Editor) GetBuffer() buffer.Buffer {
	return e.buffer
}

// GetCursor returns the current cursor position.
func (e *Editor) GetCursor() types.Position {
	return e.cursorManager.GetPosition()
}

// SetCursor moves the cursor to pos, clamped into the document.
func (e *Editor) SetCursor(pos types.Position) {
	pos = e.buffer.Clamp(pos)
	if err := e.cursorManager.SetPosition(pos.Line, pos.Column); err != nil {
		logger.Warnf("Editor.SetCursor: %v", err)
	}
}

// GetSelection returns the normalized selection, if any.
func (e *Editor) GetSelection() (types.Range, bool) {
	return e.selectionManager.GetSelection()
}

// ClearSelection drops the selection.
func (e *Editor) ClearSelection() {
	e.selectionManager.ClearSelection()
}

// GetEventManager returns the bus the editor publishes on.
func (e *Editor) GetEventManager() *event.Manager {
	return e.eventManager
}

// GetHistoryManager returns the undo stack.
func (e *Editor) GetHistoryManager() *history.Manager {
	return e.historyManager
}

// ApplyInsert inserts text without touching history or the cursor.
func (e *Editor) ApplyInsert(pos types.Position, text string) (types.Position, error) {
	return e.textOps.ApplyInsert(pos, text)
}

// ApplyDelete deletes r without touching history or the cursor.
func (e *Editor) ApplyDelete(r types.Range) (string, error) {
	return e.textOps.ApplyDelete(r)
}

// InsertText inserts text at the cursor, replacing the selection.
func (e *Editor) InsertText(text string) error {
	return e.textOps.InsertText(text)
}

// DeleteSelection deletes the selected text.
func (e *Editor) DeleteSelection() (bool, error) {
	return e.textOps.DeleteSelection()
}

// --- Queries ---

// Text returns the whole document.
func (e *Editor) Text() string {
	return e.buffer.Text()
}

// LineCount returns the number of lines, always at least 1.
func (e *Editor) LineCount() int {
	return e.buffer.LineCount()
}

// Line returns the text of the 1-based line n.
func (e *Editor) Line(n int) (string, error) {
	return e.buffer.Line(n)
}

// CursorPosition returns the cursor position.
func (e *Editor) CursorPosition() types.Position {
	return e.GetCursor()
}

// SelectionRange returns the normalized selection; ok is false when there
// is none.
func (e *Editor) SelectionRange() (types.Range, bool) {
	return e.selectionManager.GetSelection()
}

// SelectRange selects r and moves the cursor to its end. Both ends must be
// valid positions.
func (e *Editor) SelectRange(r types.Range) error {
	if err := e.buffer.Validate(r.Start); err != nil {
		return fmt.Errorf("select %v: %w", r, err)
	}
	if err := e.buffer.Validate(r.End); err != nil {
		return fmt.Errorf("select %v: %w", r, err)
	}
	oldCursor := e.GetCursor()
	oldSel, oldOk := e.SelectionRange()

	e.selectionManager.SelectRange(r)
	e.SetCursor(r.End)
	e.notifyCaret(oldCursor, oldSel, oldOk)
	return nil
}

// ScrollPosition returns the top line offset and left column offset.
func (e *Editor) ScrollPosition() (top, left int) {
	return e.scroll.Position()
}

// SetScrollPosition sets the offsets; negative values clamp to zero.
func (e *Editor) SetScrollPosition(top, left int) {
	oldTop, oldLeft := e.scroll.Position()
	e.scroll.Set(top, left)
	e.notifyScroll(oldTop, oldLeft)
}

// SetViewSize declares the host's text area in rows and cells. Until it is
// called the editor never scrolls on its own.
func (e *Editor) SetViewSize(width, height int) {
	e.viewWidth = max(width, 0)
	e.viewHeight = max(height, 0)
	oldTop, oldLeft := e.scroll.Position()
	e.reveal()
	e.notifyScroll(oldTop, oldLeft)
}

// ViewSize returns the declared text area size.
func (e *Editor) ViewSize() (width, height int) {
	return e.viewWidth, e.viewHeight
}

// Tokens returns the token strings of line n; empty if not tokenized.
func (e *Editor) Tokens(line int) []string {
	return e.tokenizer.GetTokens(line)
}

// LineTokens returns the tokens of line n with their kinds and columns.
func (e *Editor) LineTokens(line int) []tokenizer.Token {
	return e.tokenizer.LineTokens(line)
}

// Language returns the tokenizer language id.
func (e *Editor) Language() string {
	return e.tokenizer.Language()
}

// SetLanguage switches the tokenizer language. Cached tokens are kept
// until Retokenize or the next edit of a line.
func (e *Editor) SetLanguage(id string) {
	old := e.tokenizer.Language()
	e.tokenizer.SetLanguage(id)
	if now := e.tokenizer.Language(); now != old {
		e.eventManager.Dispatch(event.TypeLanguageChanged, event.LanguageChangedData{Old: old, New: now})
	}
}

// Retokenize rebuilds the whole token cache.
func (e *Editor) Retokenize() {
	e.tokenizer.Tokenize(e.buffer.Text())
}

// IsModified reports whether the text changed since load or MarkSaved.
func (e *Editor) IsModified() bool {
	return e.buffer.IsModified()
}

// MarkSaved records that the host persisted the current text.
func (e *Editor) MarkSaved() {
	e.buffer.MarkSaved()
}

// CanUndo reports whether there is a change to undo.
func (e *Editor) CanUndo() bool {
	return e.historyManager.CanUndo()
}

// CanRedo reports whether there is a change to redo.
func (e *Editor) CanRedo() bool {
	return e.historyManager.CanRedo()
}

// Revision counts buffer mutations since load.
func (e *Editor) Revision() int {
	return e.revision
}

// --- Notifications ---

func (e *Editor) notifyCaret(oldCursor types.Position, oldSel types.Range, oldOk bool) {
	if cur := e.GetCursor(); !cur.IsEqual(oldCursor) {
		e.eventManager.Dispatch(event.TypeCursorMoved, event.CursorMovedData{OldPosition: oldCursor, NewPosition: cur})
	}
	sel, ok := e.SelectionRange()
	if ok != oldOk || (ok && !sel.IsEqual(oldSel)) {
		e.eventManager.Dispatch(event.TypeSelectionChanged, event.SelectionChangedData{Range: sel, Active: ok})
	}
}

func (e *Editor) notifyScroll(oldTop, oldLeft int) {
	top, left := e.scroll.Position()
	if top != oldTop || left != oldLeft {
		e.eventManager.Dispatch(event.TypeScrollChanged, event.ScrollChangedData{Top: top, Left: left})
	}
}

// reveal scrolls the cursor into the declared view.
func (e *Editor) reveal() bool {
	if e.viewWidth <= 0 || e.viewHeight <= 0 {
		return false
	}
	pos := e.GetCursor()
	line, err := e.buffer.Line(pos.Line)
	if err != nil {
		return false
	}
	visualCol := utils.VisualColumn(line, pos.Column, e.opts.TabWidth)
	return e.scroll.Reveal(pos.Line, visualCol, e.viewHeight, e.viewWidth, e.opts.ScrollOff)
}
