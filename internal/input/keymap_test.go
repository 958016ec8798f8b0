package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestProcessEvent(t *testing.T) {
	p := NewInputProcessor()

	tests := []struct {
		name string
		ev   *tcell.EventKey
		want ActionEvent
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), Rune('x')},
		{"shifted rune", tcell.NewEventKey(tcell.KeyRune, 'X', tcell.ModShift), Rune('X')},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), Key(ActionInsertNewLine)},
		{"tab", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), Rune('\t')},
		{"backspace", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), Key(ActionDeleteCharBackward)},
		{"delete", tcell.NewEventKey(tcell.KeyDelete, 0, tcell.ModNone), Key(ActionDeleteCharForward)},
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), Key(ActionMoveLeft)},
		{"shift left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModShift), ActionEvent{Action: ActionMoveLeft, Extend: true}},
		{"ctrl right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModCtrl), Key(ActionMoveWordRight)},
		{"ctrl shift right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModCtrl|tcell.ModShift), ActionEvent{Action: ActionMoveWordRight, Extend: true}},
		{"ctrl home", tcell.NewEventKey(tcell.KeyHome, 0, tcell.ModCtrl), Key(ActionMoveDocStart)},
		{"page down", tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone), Key(ActionMovePageDown)},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), Key(ActionClearSelection)},
		{"ctrl z key", tcell.NewEventKey(tcell.KeyCtrlZ, 0, tcell.ModCtrl), Key(ActionUndo)},
		{"ctrl y key", tcell.NewEventKey(tcell.KeyCtrlY, 0, tcell.ModCtrl), Key(ActionRedo)},
		{"ctrl s key", tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl), Key(ActionSave)},
		{"ctrl v rune", tcell.NewEventKey(tcell.KeyRune, 'v', tcell.ModCtrl), Key(ActionPaste)},
		{"ctrl C rune", tcell.NewEventKey(tcell.KeyRune, 'C', tcell.ModCtrl), Key(ActionCopy)},
		{"unbound ctrl rune", tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModCtrl), Key(ActionUnknown)},
		{"alt rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt), Key(ActionUnknown)},
		{"alt q force quits", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModAlt), Key(ActionForceQuit)},
		{"shift delete does not extend", tcell.NewEventKey(tcell.KeyDelete, 0, tcell.ModShift), Key(ActionDeleteCharForward)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.ProcessEvent(tt.ev); got != tt.want {
				t.Errorf("ProcessEvent() = %+v (%s), want %+v (%s)", got, got.Action, tt.want, tt.want.Action)
			}
		})
	}
}

func TestActionString(t *testing.T) {
	if ActionUndo.String() != "Undo" {
		t.Errorf("ActionUndo.String() = %q", ActionUndo.String())
	}
	if Action(9999).String() != "Unknown" {
		t.Errorf("out of range action = %q", Action(9999).String())
	}
	if !ActionMoveWordLeft.IsMovement() || !ActionClick.IsMovement() || ActionInsertRune.IsMovement() {
		t.Error("IsMovement classification is wrong")
	}
}
