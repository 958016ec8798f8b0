// internal/app/app.go
package app

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/scribe/internal/config"
	"github.com/bethropolis/scribe/internal/core"
	"github.com/bethropolis/scribe/internal/event"
	"github.com/bethropolis/scribe/internal/input"
	"github.com/bethropolis/scribe/internal/logger"
	"github.com/bethropolis/scribe/internal/statusbar"
	"github.com/bethropolis/scribe/internal/theme"
	"github.com/bethropolis/scribe/internal/tokenizer"
	"github.com/bethropolis/scribe/internal/tui"
	"github.com/bethropolis/scribe/internal/utils"
)

// wheelLines is how far one mouse wheel notch scrolls.
const wheelLines = 3

// autosaveTick is posted to the screen when the autosave delay elapses.
type autosaveTick struct{}

// App encapsulates the core components and main loop of the editor.
// All editor access happens on the goroutine running Run.
type App struct {
	tuiManager     *tui.TUI
	editor         *core.Editor
	inputProcessor *input.InputProcessor
	statusBar      *statusbar.StatusBar
	eventManager   *event.Manager
	activeTheme    *theme.Theme
	cfg            *config.Config
	filePath       string

	autosave      utils.Debouncer
	dragging      bool // Button 1 held since a click in the text area
	quitRequested bool // Quit was pressed once with unsaved changes
	quit          bool
}

// NewApp creates an application on the real terminal.
func NewApp(filePath string, cfg *config.Config) (*App, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create tcell screen: %w", err)
	}
	return NewAppWithScreen(filePath, cfg, screen)
}

// NewAppWithScreen creates an application drawing on screen.
func NewAppWithScreen(filePath string, cfg *config.Config, screen tcell.Screen) (*App, error) {
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}

	text, err := loadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load '%s': %w", filePath, err)
	}

	language := tokenizer.LanguageForFile(filePath)
	if language == tokenizer.PlainText && cfg.Editor.DefaultLanguage != "" {
		language = cfg.Editor.DefaultLanguage
	}

	activeTheme := theme.FromChroma(cfg.Editor.Style)
	tuiManager, err := tui.NewWithScreen(screen, activeTheme.GetStyle("Default"))
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}

	editor := core.NewEditor(text, language, cfg.Editor.CoreOptions())

	a := &App{
		tuiManager:     tuiManager,
		editor:         editor,
		inputProcessor: input.NewInputProcessor(),
		statusBar:      statusbar.New(statusbar.ConfigFromTheme(activeTheme, config.MessageTimeout)),
		eventManager:   editor.GetEventManager(),
		activeTheme:    activeTheme,
		cfg:            cfg,
		filePath:       filePath,
	}

	// --- Subscribe App components to editor events ---
	a.eventManager.Subscribe(event.TypeCursorMoved, a.handleCursorMovedForStatus)
	a.eventManager.Subscribe(event.TypeBufferModified, a.handleBufferModifiedForStatus)
	a.eventManager.Subscribe(event.TypeBufferSaved, a.handleBufferSavedForStatus)
	a.eventManager.Subscribe(event.TypeBufferLoaded, a.handleBufferLoadedForStatus)
	a.eventManager.Subscribe(event.TypeLanguageChanged, a.handleLanguageChangedForStatus)

	a.eventManager.Dispatch(event.TypeBufferLoaded, event.BufferLoadedData{FilePath: filePath, Language: language})
	a.resize()
	return a, nil
}

// Run starts the event loop and returns when the user quits.
func (a *App) Run() error {
	defer a.tuiManager.Close()
	defer a.autosave.Stop()

	a.eventManager.Dispatch(event.TypeAppReady, event.AppReadyData{})
	a.statusBar.SetTemporaryMessage("Scribe - Ctrl+S Save | Ctrl+Q Quit")
	a.drawEditor()

	for !a.quit {
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			break // Screen finalized
		}
		if a.HandleEvent(ev) {
			a.drawEditor()
		}
	}

	a.eventManager.Dispatch(event.TypeAppQuit, event.AppQuitData{})
	if a.editor.IsModified() {
		logger.Warnf("App: Exited with unsaved changes.")
	}
	logger.Infof("App: Exiting application.")
	return nil
}

// HandleEvent processes one terminal event and reports whether a redraw
// is needed.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.tuiManager.Sync()
		a.resize()
		return true
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventMouse:
		return a.handleMouse(ev)
	case *tcell.EventInterrupt:
		if _, ok := ev.Data().(autosaveTick); ok && a.editor.IsModified() {
			logger.DebugTagf("autosave", "timer fired at %s", a.autosave.LastCalled().Format(time.TimeOnly))
			a.save(true)
			return true
		}
	}
	return false
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	action := a.inputProcessor.ProcessEvent(ev)
	logger.DebugTagf("input", "App: key %s -> %s", ev.Name(), action.Action)

	if action.Action != input.ActionQuit {
		a.quitRequested = false
	}

	switch action.Action {
	case input.ActionUnknown:
		return false
	case input.ActionSave:
		a.save(false)
		return true
	case input.ActionQuit:
		if a.editor.IsModified() && !a.quitRequested {
			a.quitRequested = true
			a.statusBar.SetTemporaryMessage("Unsaved changes - Ctrl+Q again to quit")
			return true
		}
		a.quit = true
		return false
	case input.ActionForceQuit:
		a.quit = true
		return false
	}

	a.dispatch(action)
	return true
}

func (a *App) handleMouse(ev *tcell.EventMouse) bool {
	x, y := ev.Position()
	buttons := ev.Buttons()

	switch {
	case buttons&tcell.WheelUp != 0:
		a.dispatch(input.ActionEvent{Action: input.ActionScrollUp, Delta: wheelLines})
	case buttons&tcell.WheelDown != 0:
		a.dispatch(input.ActionEvent{Action: input.ActionScrollDown, Delta: wheelLines})
	case buttons&tcell.WheelLeft != 0:
		a.dispatch(input.ActionEvent{Action: input.ActionScrollLeft, Delta: wheelLines})
	case buttons&tcell.WheelRight != 0:
		a.dispatch(input.ActionEvent{Action: input.ActionScrollRight, Delta: wheelLines})
	case buttons&tcell.Button1 != 0:
		pos, ok := tui.ScreenToPosition(a.tuiManager, a.editor, x, y, a.cfg.Editor.TabWidth)
		if !ok {
			return false
		}
		click := input.Click(pos.Line, pos.Column)
		// Moving with the button held, or Shift+click, extends the selection.
		click.Extend = a.dragging || ev.Modifiers()&tcell.ModShift != 0
		a.dragging = true
		a.dispatch(click)
	default:
		a.dragging = false
		return false
	}
	return true
}

// dispatch hands an action to the editor and schedules autosave on edits.
func (a *App) dispatch(action input.ActionEvent) {
	res := a.editor.Dispatch(action)
	if res.Changed {
		a.scheduleAutosave()
	}
}

func (a *App) scheduleAutosave() {
	delay := a.cfg.Editor.Autosave()
	if delay <= 0 || a.filePath == "" {
		return
	}
	a.autosave.Debounce(delay, func() {
		// Runs on a timer goroutine; the save itself happens in the event loop.
		if err := a.tuiManager.PostEvent(tcell.NewEventInterrupt(autosaveTick{})); err != nil {
			logger.Debugf("App: autosave event dropped: %v", err)
		}
	})
}

// Editor returns the editor instance.
func (a *App) Editor() *core.Editor {
	return a.editor
}

// Quitting reports whether the user asked to leave.
func (a *App) Quitting() bool {
	return a.quit
}
