package app

import (
	"github.com/bethropolis/scribe/internal/logger"
	"github.com/bethropolis/scribe/internal/tui"
)

// drawEditor clears screen and redraws all components.
func (a *App) drawEditor() {
	a.updateStatusBarContent()

	screen := a.tuiManager.GetScreen()
	width, height := a.tuiManager.Size()
	tabWidth := a.cfg.Editor.TabWidth
	logger.DebugTagf("draw", "drawEditor: Screen Size (%d x %d)", width, height)

	a.tuiManager.Clear()
	tui.DrawBuffer(a.tuiManager, a.editor, a.activeTheme, tabWidth)
	a.statusBar.Draw(screen, width, height)
	tui.DrawCursor(a.tuiManager, a.editor, tabWidth)
	a.tuiManager.Show()
}

// resize tells the editor how much text fits on screen.
func (a *App) resize() {
	layout := tui.LayoutFor(a.tuiManager, a.editor)
	a.editor.SetViewSize(layout.TextWidth, layout.TextHeight)
}

// updateStatusBarContent pushes current editor state to the status bar component.
func (a *App) updateStatusBarContent() {
	a.statusBar.SetFileInfo(a.filePath, a.editor.IsModified())
	a.statusBar.SetCursorInfo(a.editor.CursorPosition())
}
