// internal/event/event.go
package event

import (
	"fmt"

	"github.com/bethropolis/scribe/internal/types"
)

// Type identifies the kind of event.
type Type int

// Define specific event types.
const (
	TypeUnknown Type = iota

	// Document events
	TypeBufferModified // Fired after every successful insert/delete/split/merge
	TypeBufferLoaded   // Fired by the host after a document is opened
	TypeBufferSaved    // Fired by the host after Text() was persisted

	// Caret and view events
	TypeCursorMoved      // Fired when the cursor position changes
	TypeSelectionChanged // Fired when the selection starts, changes or clears
	TypeScrollChanged    // Fired when the scroll offsets change

	TypeLanguageChanged // Fired when the tokenizer language changes

	// Application lifecycle events
	TypeAppReady // Fired when the host is fully initialized
	TypeAppQuit  // Fired just before the host terminates
)

func (t Type) String() string {
	switch t {
	case TypeBufferModified:
		return "BufferModified"
	case TypeBufferLoaded:
		return "BufferLoaded"
	case TypeBufferSaved:
		return "BufferSaved"
	case TypeCursorMoved:
		return "CursorMoved"
	case TypeSelectionChanged:
		return "SelectionChanged"
	case TypeScrollChanged:
		return "ScrollChanged"
	case TypeLanguageChanged:
		return "LanguageChanged"
	case TypeAppReady:
		return "AppReady"
	case TypeAppQuit:
		return "AppQuit"
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Event is the structure passed through the event bus.
type Event struct {
	Type Type        // The kind of event
	Data interface{} // Payload carrying event-specific data
}

// --- Specific Event Data Structures ---

// BufferModifiedData carries the touched line span of one buffer mutation.
type BufferModifiedData struct {
	Edit types.EditInfo
}

// BufferLoadedData contains info about the loaded document.
type BufferLoadedData struct {
	FilePath string
	Language string
}

// BufferSavedData contains info about the saved document.
type BufferSavedData struct {
	FilePath string
}

// CursorMovedData contains the old and new cursor positions.
type CursorMovedData struct {
	OldPosition types.Position
	NewPosition types.Position
}

// SelectionChangedData carries the visible selection. Active is false when
// the selection was cleared.
type SelectionChangedData struct {
	Range  types.Range
	Active bool
}

// ScrollChangedData carries the new viewport offsets.
type ScrollChangedData struct {
	Top  int
	Left int
}

// LanguageChangedData carries the new and previous tokenizer language ids.
type LanguageChangedData struct {
	Old string
	New string
}

// AppQuitData could contain exit code or reason later.
type AppQuitData struct{}

// AppReadyData could contain initial config or state later.
type AppReadyData struct{}
