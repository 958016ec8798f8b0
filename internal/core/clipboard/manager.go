package clipboard

import (
	"fmt"

	"github.com/bethropolis/scribe/internal/buffer"
	"github.com/bethropolis/scribe/internal/logger"
	"github.com/bethropolis/scribe/internal/types"
)

// Provider is an external clipboard the internal register is mirrored to.
type Provider interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// EditorInterface defines methods needed from editor
type EditorInterface interface {
	GetBuffer() buffer.Buffer
	GetSelection() (types.Range, bool)
	DeleteSelection() (bool, error)
	InsertText(text string) error
}

// Manager handles clipboard operations
type Manager struct {
	editor   EditorInterface
	register string
	provider Provider // nil keeps the clipboard editor-local
}

// NewManager creates a new clipboard manager
func NewManager(editor EditorInterface, provider Provider) *Manager {
	return &Manager{
		editor:   editor,
		provider: provider,
	}
}

// Register returns the internal clipboard content.
func (m *Manager) Register() string {
	return m.register
}

// Copy puts the selected text on the clipboard. It reports false when
// nothing is selected.
func (m *Manager) Copy() (bool, error) {
	sel, ok := m.editor.GetSelection()
	if !ok {
		return false, nil // Not an error, just nothing to copy
	}

	content, err := m.editor.GetBuffer().TextInRange(sel)
	if err != nil {
		return false, fmt.Errorf("failed to extract selected text for copy: %w", err)
	}
	m.store(content)
	return true, nil
}

// Cut copies the selection and deletes it.
func (m *Manager) Cut() (bool, error) {
	copied, err := m.Copy()
	if !copied || err != nil {
		return false, err
	}
	if _, err := m.editor.DeleteSelection(); err != nil {
		return false, fmt.Errorf("failed to delete selection after copy: %w", err)
	}
	return true, nil
}

// Paste inserts the clipboard content at the cursor, replacing any
// selection. The external provider wins when it has text.
func (m *Manager) Paste() (bool, error) {
	content := m.load()
	if content == "" {
		return false, nil // Nothing in clipboard
	}
	if err := m.editor.InsertText(content); err != nil {
		return false, fmt.Errorf("paste failed: %w", err)
	}
	logger.DebugTagf("clipboard", "ClipboardManager: Pasted %d bytes", len(content))
	return true, nil
}

func (m *Manager) store(content string) {
	m.register = content
	logger.DebugTagf("clipboard", "ClipboardManager: Copied %d bytes", len(content))
	if m.provider == nil {
		return
	}
	if err := m.provider.WriteAll(content); err != nil {
		logger.Warnf("ClipboardManager: system clipboard write failed: %v", err)
	}
}

func (m *Manager) load() string {
	if m.provider != nil {
		text, err := m.provider.ReadAll()
		if err == nil && text != "" {
			return text
		}
		if err != nil {
			logger.Warnf("ClipboardManager: system clipboard read failed, using register: %v", err)
		}
	}
	return m.register
}
