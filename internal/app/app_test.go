package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/scribe/internal/config"
	"github.com/bethropolis/scribe/internal/types"
)

func newTestApp(t *testing.T, content string) (*App, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "note.txt")
	if content != "" {
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	cfg := config.NewDefaultConfig()
	cfg.Editor.SystemClipboard = false

	sim := tcell.NewSimulationScreen("UTF-8")
	a, err := NewAppWithScreen(path, cfg, sim)
	if err != nil {
		t.Fatalf("NewAppWithScreen: %v", err)
	}
	t.Cleanup(a.tuiManager.Close)
	sim.SetSize(40, 10)
	a.HandleEvent(tcell.NewEventResize(40, 10))
	return a, path
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModCtrl)
}

func typeText(a *App, text string) {
	for _, r := range text {
		a.HandleEvent(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
	}
}

func TestApp_EditAndSave(t *testing.T) {
	a, path := newTestApp(t, "hello\n")
	if a.Editor().Language() != "plaintext" {
		t.Errorf("Language() = %q", a.Editor().Language())
	}

	typeText(a, "X")
	if !a.Editor().IsModified() {
		t.Fatal("typing did not modify the document")
	}

	a.HandleEvent(key(tcell.KeyCtrlS))
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "Xhello\n" {
		t.Errorf("file = %q", data)
	}
	if a.Editor().IsModified() {
		t.Error("save did not clear the modified flag")
	}
	info, _ := os.Stat(path)
	if info.Mode().Perm() != 0o600 {
		t.Errorf("save changed the file mode to %v", info.Mode().Perm())
	}
}

func TestApp_NewFile(t *testing.T) {
	a, path := newTestApp(t, "")
	typeText(a, "new")
	a.HandleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	a.HandleEvent(key(tcell.KeyCtrlS))

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "new\n" {
		t.Errorf("file = %q", data)
	}
}

func TestApp_QuitConfirmsUnsavedChanges(t *testing.T) {
	a, _ := newTestApp(t, "abc")
	a.HandleEvent(key(tcell.KeyCtrlQ))
	if !a.Quitting() {
		t.Fatal("clean document did not quit")
	}

	b, _ := newTestApp(t, "abc")
	typeText(b, "x")
	b.HandleEvent(key(tcell.KeyCtrlQ))
	if b.Quitting() {
		t.Fatal("quit with unsaved changes did not ask first")
	}
	b.HandleEvent(key(tcell.KeyCtrlQ))
	if !b.Quitting() {
		t.Fatal("second Ctrl+Q did not quit")
	}
}

func TestApp_MouseClickAndDrag(t *testing.T) {
	a, _ := newTestApp(t, "hello\nworld")
	// Gutter is two cells wide.
	a.HandleEvent(tcell.NewEventMouse(4, 1, tcell.Button1, tcell.ModNone))
	if got := a.Editor().CursorPosition(); got != types.NewPosition(2, 3) {
		t.Fatalf("cursor after click = %v", got)
	}

	a.HandleEvent(tcell.NewEventMouse(6, 1, tcell.Button1, tcell.ModNone))
	a.HandleEvent(tcell.NewEventMouse(6, 1, tcell.ButtonNone, tcell.ModNone))
	sel, ok := a.Editor().SelectionRange()
	if !ok || sel != types.NewRange(2, 3, 2, 5) {
		t.Fatalf("selection after drag = %v, %v", sel, ok)
	}

	a.HandleEvent(tcell.NewEventMouse(2, 0, tcell.Button1, tcell.ModNone))
	if _, ok := a.Editor().SelectionRange(); ok {
		t.Fatal("new click kept the selection")
	}
}

func TestApp_MouseWheel(t *testing.T) {
	a, _ := newTestApp(t, "a\nb\nc")
	a.HandleEvent(tcell.NewEventMouse(5, 5, tcell.WheelDown, tcell.ModNone))
	if top, _ := a.Editor().ScrollPosition(); top != wheelLines {
		t.Fatalf("top after wheel = %d", top)
	}
	a.HandleEvent(tcell.NewEventMouse(5, 5, tcell.WheelUp, tcell.ModNone))
	if top, _ := a.Editor().ScrollPosition(); top != 0 {
		t.Fatalf("top after wheel up = %d", top)
	}
}

func TestApp_Autosave(t *testing.T) {
	a, path := newTestApp(t, "abc")
	typeText(a, "z")

	a.HandleEvent(tcell.NewEventInterrupt(autosaveTick{}))
	data, _ := os.ReadFile(path)
	if string(data) != "zabc" {
		t.Errorf("file after autosave = %q", data)
	}
	if a.Editor().IsModified() {
		t.Error("autosave did not clear the modified flag")
	}
}

func TestApp_StatusBar(t *testing.T) {
	a, path := newTestApp(t, "one\ntwo")
	a.statusBar.ResetTemporaryMessage()
	a.HandleEvent(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone))
	a.updateStatusBarContent()

	want := path + " -- Ln 2, Col 1 -- plaintext"
	if got := a.statusBar.Text(); got != want {
		t.Errorf("status = %q, want %q", got, want)
	}
}
