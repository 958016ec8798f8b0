// internal/input/keymap.go
package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Keymap maps specific key events to editor actions.
type Keymap map[tcell.Key]Action        // For special keys (Enter, Arrows, etc.)
type RuneKeymap map[rune]Action         // For Ctrl+letter sent as a rune
type ModKeymap map[tcell.ModMask]Keymap // For keys combined with modifiers (Ctrl, Alt)

// InputProcessor translates tcell events into ActionEvents.
type InputProcessor struct {
	keymap     Keymap
	ctrlRunes  RuneKeymap
	altRunes   RuneKeymap
	modKeymap  ModKeymap
	extendable map[Action]bool // Movements that Shift turns into selection
}

// NewInputProcessor creates a processor with default keybindings.
func NewInputProcessor() *InputProcessor {
	p := &InputProcessor{
		keymap:     make(Keymap),
		ctrlRunes:  make(RuneKeymap),
		altRunes:   make(RuneKeymap),
		modKeymap:  make(ModKeymap),
		extendable: make(map[Action]bool),
	}
	p.loadDefaultBindings()
	return p
}

// loadDefaultBindings sets up the initial key mappings.
func (p *InputProcessor) loadDefaultBindings() {
	// --- Simple Keys ---
	p.keymap[tcell.KeyUp] = ActionMoveUp
	p.keymap[tcell.KeyDown] = ActionMoveDown
	p.keymap[tcell.KeyLeft] = ActionMoveLeft
	p.keymap[tcell.KeyRight] = ActionMoveRight
	p.keymap[tcell.KeyPgUp] = ActionMovePageUp
	p.keymap[tcell.KeyPgDn] = ActionMovePageDown
	p.keymap[tcell.KeyHome] = ActionMoveHome
	p.keymap[tcell.KeyEnd] = ActionMoveEnd
	p.keymap[tcell.KeyEnter] = ActionInsertNewLine
	p.keymap[tcell.KeyBackspace] = ActionDeleteCharBackward
	p.keymap[tcell.KeyBackspace2] = ActionDeleteCharBackward // Often used for Backspace
	p.keymap[tcell.KeyDelete] = ActionDeleteCharForward
	p.keymap[tcell.KeyEscape] = ActionClearSelection

	// --- Ctrl chords; tcell reports these as dedicated keys ---
	p.keymap[tcell.KeyCtrlS] = ActionSave
	p.keymap[tcell.KeyCtrlQ] = ActionQuit
	p.keymap[tcell.KeyCtrlZ] = ActionUndo
	p.keymap[tcell.KeyCtrlY] = ActionRedo
	p.keymap[tcell.KeyCtrlC] = ActionCopy
	p.keymap[tcell.KeyCtrlX] = ActionCut
	p.keymap[tcell.KeyCtrlV] = ActionPaste
	p.keymap[tcell.KeyCtrlA] = ActionSelectAll

	// Some terminals send Ctrl+letter as a rune with the Ctrl modifier.
	for key, r := range map[tcell.Key]rune{
		tcell.KeyCtrlS: 's', tcell.KeyCtrlQ: 'q', tcell.KeyCtrlZ: 'z', tcell.KeyCtrlY: 'y',
		tcell.KeyCtrlC: 'c', tcell.KeyCtrlX: 'x', tcell.KeyCtrlV: 'v', tcell.KeyCtrlA: 'a',
	} {
		p.ctrlRunes[r] = p.keymap[key]
	}

	p.altRunes['q'] = ActionForceQuit

	ctrlMap := make(Keymap)
	ctrlMap[tcell.KeyLeft] = ActionMoveWordLeft
	ctrlMap[tcell.KeyRight] = ActionMoveWordRight
	ctrlMap[tcell.KeyHome] = ActionMoveDocStart
	ctrlMap[tcell.KeyEnd] = ActionMoveDocEnd
	p.modKeymap[tcell.ModCtrl] = ctrlMap

	for _, a := range []Action{
		ActionMoveUp, ActionMoveDown, ActionMoveLeft, ActionMoveRight,
		ActionMovePageUp, ActionMovePageDown, ActionMoveHome, ActionMoveEnd,
		ActionMoveDocStart, ActionMoveDocEnd, ActionMoveWordLeft, ActionMoveWordRight,
	} {
		p.extendable[a] = true
	}
}

// ProcessEvent takes a tcell key event and returns the corresponding ActionEvent.
func (p *InputProcessor) ProcessEvent(ev *tcell.EventKey) ActionEvent {
	key := ev.Key()
	mod := ev.Modifiers()
	runeVal := ev.Rune()

	shift := mod&tcell.ModShift != 0
	mod &^= tcell.ModShift

	// 1. Check Modifier + Key combinations
	if modKeyMap, modOk := p.modKeymap[mod]; modOk {
		if action, keyOk := modKeyMap[key]; keyOk {
			return p.event(action, shift)
		}
	}
	if key == tcell.KeyRune && mod&tcell.ModCtrl != 0 {
		if action, ok := p.ctrlRunes[unicode.ToLower(runeVal)]; ok {
			return ActionEvent{Action: action}
		}
		return ActionEvent{Action: ActionUnknown}
	}
	if key == tcell.KeyRune && mod == tcell.ModAlt {
		if action, ok := p.altRunes[unicode.ToLower(runeVal)]; ok {
			return ActionEvent{Action: action}
		}
		return ActionEvent{Action: ActionUnknown}
	}

	// Ctrl+letter keys already imply the Ctrl modifier.
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		mod &^= tcell.ModCtrl
	}

	// 2. Check simple Key mappings
	if mod == tcell.ModNone {
		if action, ok := p.keymap[key]; ok {
			return p.event(action, shift)
		}
	}

	// 3. Plain runes, including Shift for capitals, insert themselves.
	if key == tcell.KeyRune && mod == tcell.ModNone {
		return ActionEvent{Action: ActionInsertRune, Rune: runeVal}
	}
	if key == tcell.KeyTab && mod == tcell.ModNone {
		return ActionEvent{Action: ActionInsertRune, Rune: '\t'}
	}

	// 4. No mapping found
	return ActionEvent{Action: ActionUnknown}
}

func (p *InputProcessor) event(action Action, shift bool) ActionEvent {
	return ActionEvent{Action: action, Extend: shift && p.extendable[action]}
}
