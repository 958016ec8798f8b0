package history

import (
	"fmt"

	"github.com/bethropolis/scribe/internal/logger"
	"github.com/bethropolis/scribe/internal/types"
)

const DefaultMaxHistory = 100

// EditorInterface defines the methods the history manager needs from the
// editor. The apply methods must not record history themselves.
type EditorInterface interface {
	ApplyInsert(pos types.Position, text string) (types.Position, error)
	ApplyDelete(r types.Range) (string, error)
	SetCursor(types.Position)
}

// Manager handles the undo/redo stack.
type Manager struct {
	editor       EditorInterface
	changes      []Change
	currentIndex int // Index of the *next* change to potentially Redo
	maxHistory   int
}

// NewManager creates a history manager.
func NewManager(editor EditorInterface, maxHistory int) *Manager {
	if maxHistory <= 0 {
		maxHistory = DefaultMaxHistory
	}
	return &Manager{
		editor:     editor,
		changes:    make([]Change, 0, maxHistory),
		maxHistory: maxHistory,
	}
}

// RecordChange adds a new change, clearing any redo history.
func (m *Manager) RecordChange(change Change) {
	// If current index isn't at the end, truncate the redo history
	if m.currentIndex < len(m.changes) {
		m.changes = m.changes[:m.currentIndex]
	}

	m.changes = append(m.changes, change)

	// Limit history size, dropping the oldest changes first
	if len(m.changes) > m.maxHistory {
		m.changes = m.changes[len(m.changes)-m.maxHistory:]
	}

	m.currentIndex = len(m.changes)
	logger.DebugTagf("history", "History: Recorded %v %q at %v. Index: %d, Count: %d",
		change.Type, change.Text, change.Start, m.currentIndex, len(m.changes))
}

// Undo reverts the last recorded change.
func (m *Manager) Undo() (bool, error) {
	if m.currentIndex <= 0 {
		logger.DebugTagf("history", "History: Nothing to undo.")
		return false, nil
	}

	change := m.changes[m.currentIndex-1]
	logger.DebugTagf("history", "History: Undoing change %d (%v)", m.currentIndex-1, change.Type)

	var err error
	switch change.Type {
	case InsertAction:
		_, err = m.editor.ApplyDelete(change.Range())
	case DeleteAction:
		_, err = m.editor.ApplyInsert(change.Start, change.Text)
	}
	if err != nil {
		return false, fmt.Errorf("undo failed: %w", err)
	}

	m.currentIndex--
	m.editor.SetCursor(change.CursorBefore)
	return true, nil
}

// Redo reapplies the last undone change.
func (m *Manager) Redo() (bool, error) {
	if m.currentIndex >= len(m.changes) {
		logger.DebugTagf("history", "History: Nothing to redo. currentIndex=%d, len(changes)=%d", m.currentIndex, len(m.changes))
		return false, nil
	}

	change := m.changes[m.currentIndex]
	logger.DebugTagf("history", "History: Redoing change %d (%v) %q at %v",
		m.currentIndex, change.Type, change.Text, change.Start)

	var finalCursor types.Position
	var err error
	switch change.Type {
	case InsertAction:
		// Cursor after insert is at the end of the inserted text
		finalCursor, err = m.editor.ApplyInsert(change.Start, change.Text)
	case DeleteAction:
		// Cursor after delete is where the deletion started
		_, err = m.editor.ApplyDelete(change.Range())
		finalCursor = change.Start
	}
	if err != nil {
		return false, fmt.Errorf("redo failed: %w", err)
	}

	m.currentIndex++
	m.editor.SetCursor(finalCursor)
	return true, nil
}

// Clear resets the history stack. Call this on file load.
func (m *Manager) Clear() {
	m.changes = m.changes[:0] // Clear slice while keeping allocated capacity
	m.currentIndex = 0
	logger.DebugTagf("history", "History: Cleared.")
}

// CanUndo returns true if there are changes that can be undone.
func (m *Manager) CanUndo() bool {
	return m.currentIndex > 0
}

// CanRedo returns true if there are changes that can be redone.
func (m *Manager) CanRedo() bool {
	return m.currentIndex < len(m.changes)
}

// Len returns the number of stored changes.
func (m *Manager) Len() int {
	return len(m.changes)
}
