package selection

import (
	"github.com/bethropolis/scribe/internal/logger"
	"github.com/bethropolis/scribe/internal/types"
)

// Manager handles text selection state and logic.
type Manager struct {
	editor EditorInterface // Interface to get cursor position

	// --- State owned by Selection Manager ---
	selecting bool
	anchor    types.Position // Where the selection began
	active    types.Position // Usually follows cursor
}

// EditorInterface defines what the selection manager needs from editor.
type EditorInterface interface {
	GetCursor() types.Position // Need current cursor pos
}

// NewManager creates a new selection manager.
func NewManager(editor EditorInterface) *Manager {
	return &Manager{editor: editor}
}

// HasSelection reports whether a non-empty span is selected.
func (m *Manager) HasSelection() bool {
	return m.selecting && !m.anchor.IsEqual(m.active)
}

// GetSelection returns the normalized selection range. ok is false when
// nothing is selected, including an anchor that has not moved yet.
func (m *Manager) GetSelection() (types.Range, bool) {
	if !m.HasSelection() {
		return types.Range{}, false
	}
	return types.RangeBetween(m.anchor, m.active), true
}

// Anchor returns the fixed end of the selection.
func (m *Manager) Anchor() types.Position {
	return m.anchor
}

// Active returns the moving end of the selection.
func (m *Manager) Active() types.Position {
	return m.active
}

// ClearSelection resets the selection state.
func (m *Manager) ClearSelection() {
	if m.selecting { // Only log if selection was actually active
		logger.DebugTagf("selection", "Selection Manager: Cleared")
	}
	m.selecting = false
	m.anchor = types.Position{}
	m.active = types.Position{}
}

// StartOrUpdateSelection is called before and after an extending move
// (e.g. Shift+Arrow). The first call anchors at the cursor; later calls move
// the active end to it.
func (m *Manager) StartOrUpdateSelection() {
	currentCursor := m.editor.GetCursor()

	if !m.selecting {
		m.anchor = currentCursor
		m.selecting = true
		logger.DebugTagf("selection", "Selection Manager: Started at %v", m.anchor)
	}
	m.active = currentCursor
}

// UpdateSelectionEnd moves the active end to the cursor if selecting.
func (m *Manager) UpdateSelectionEnd() {
	if m.selecting {
		m.active = m.editor.GetCursor()
		logger.DebugTagf("selection", "Selection Manager: Updated end to %v", m.active)
	}
}

// SelectRange selects r with r.Start as the anchor and r.End as the active end.
func (m *Manager) SelectRange(r types.Range) {
	m.anchor = r.Start
	m.active = r.End
	m.selecting = true
	logger.DebugTagf("selection", "Selection Manager: Selected %v", r)
}

// IsSelecting returns the raw selecting flag state.
func (m *Manager) IsSelecting() bool {
	return m.selecting
}
