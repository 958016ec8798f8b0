// internal/input/action.go
package input

// Action represents a command or operation to be performed by the editor.
type Action int

// Define the set of possible editor actions.
const (
	// --- Meta Actions ---
	ActionUnknown Action = iota // Default/invalid action
	ActionQuit
	ActionForceQuit // Quit without checking modified status
	ActionSave

	// --- Cursor Movement ---
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionMovePageUp
	ActionMovePageDown
	ActionMoveHome // Beginning of line
	ActionMoveEnd  // End of line
	ActionMoveDocStart
	ActionMoveDocEnd
	ActionMoveWordLeft
	ActionMoveWordRight
	ActionClick // Pointer click already resolved to Line/Column

	// --- Text Manipulation ---
	ActionInsertRune         // Requires Rune argument
	ActionInsertNewLine      // Specific action for Enter
	ActionInsertText         // Requires Text argument; may span lines
	ActionDeleteCharForward  // Delete key
	ActionDeleteCharBackward // Backspace key

	// --- History / Clipboard ---
	ActionUndo
	ActionRedo
	ActionCopy
	ActionCut
	ActionPaste

	// --- Selection ---
	ActionSelectAll
	ActionClearSelection

	// --- Viewport ---
	ActionScrollUp // Delta lines
	ActionScrollDown
	ActionScrollLeft // Delta columns
	ActionScrollRight
)

var actionNames = map[Action]string{
	ActionUnknown:            "Unknown",
	ActionQuit:               "Quit",
	ActionForceQuit:          "ForceQuit",
	ActionSave:               "Save",
	ActionMoveUp:             "MoveUp",
	ActionMoveDown:           "MoveDown",
	ActionMoveLeft:           "MoveLeft",
	ActionMoveRight:          "MoveRight",
	ActionMovePageUp:         "MovePageUp",
	ActionMovePageDown:       "MovePageDown",
	ActionMoveHome:           "MoveHome",
	ActionMoveEnd:            "MoveEnd",
	ActionMoveDocStart:       "MoveDocStart",
	ActionMoveDocEnd:         "MoveDocEnd",
	ActionMoveWordLeft:       "MoveWordLeft",
	ActionMoveWordRight:      "MoveWordRight",
	ActionClick:              "Click",
	ActionInsertRune:         "InsertRune",
	ActionInsertNewLine:      "InsertNewLine",
	ActionInsertText:         "InsertText",
	ActionDeleteCharForward:  "DeleteCharForward",
	ActionDeleteCharBackward: "DeleteCharBackward",
	ActionUndo:               "Undo",
	ActionRedo:               "Redo",
	ActionCopy:               "Copy",
	ActionCut:                "Cut",
	ActionPaste:              "Paste",
	ActionSelectAll:          "SelectAll",
	ActionClearSelection:     "ClearSelection",
	ActionScrollUp:           "ScrollUp",
	ActionScrollDown:         "ScrollDown",
	ActionScrollLeft:         "ScrollLeft",
	ActionScrollRight:        "ScrollRight",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// ActionEvent is one decoded input event with its payload.
type ActionEvent struct {
	Action Action
	Rune   rune   // Used for ActionInsertRune
	Text   string // Used for ActionInsertText
	Line   int    // Used for ActionClick (1-based)
	Column int    // Used for ActionClick (1-based)
	Delta  int    // Used for scroll actions; 0 means 1
	Extend bool   // Movement extends the selection (Shift held)
}

// Key builds an event for a payload-free action.
func Key(action Action) ActionEvent {
	return ActionEvent{Action: action}
}

// Rune builds an ActionInsertRune event.
func Rune(r rune) ActionEvent {
	return ActionEvent{Action: ActionInsertRune, Rune: r}
}

// Text builds an ActionInsertText event.
func Text(text string) ActionEvent {
	return ActionEvent{Action: ActionInsertText, Text: text}
}

// Click builds an ActionClick event for a resolved position.
func Click(line, column int) ActionEvent {
	return ActionEvent{Action: ActionClick, Line: line, Column: column}
}

// IsMovement reports whether the action only moves the cursor.
func (a Action) IsMovement() bool {
	return a >= ActionMoveUp && a <= ActionClick
}
