package app

import (
	"github.com/bethropolis/scribe/internal/event"
	"github.com/bethropolis/scribe/internal/logger"
)

// handleCursorMovedForStatus updates the status bar based on cursor position
func (a *App) handleCursorMovedForStatus(e event.Event) bool {
	if data, ok := e.Data.(event.CursorMovedData); ok {
		a.statusBar.SetCursorInfo(data.NewPosition)
	}
	return false // Not consumed
}

// handleBufferModifiedForStatus updates the modified indicator.
func (a *App) handleBufferModifiedForStatus(e event.Event) bool {
	a.updateStatusBarContent()
	return false // Not consumed
}

// handleBufferSavedForStatus updates the status bar when buffer is saved
func (a *App) handleBufferSavedForStatus(e event.Event) bool {
	a.updateStatusBarContent()
	return false // Not consumed
}

// handleBufferLoadedForStatus shows the file and its detected language.
func (a *App) handleBufferLoadedForStatus(e event.Event) bool {
	if data, ok := e.Data.(event.BufferLoadedData); ok {
		logger.Debugf("App: loaded '%s' as %s", data.FilePath, data.Language)
		a.statusBar.SetLanguage(data.Language)
	}
	a.updateStatusBarContent()
	return false // Not consumed
}

// handleLanguageChangedForStatus retokenizes and shows the new language.
func (a *App) handleLanguageChangedForStatus(e event.Event) bool {
	if data, ok := e.Data.(event.LanguageChangedData); ok {
		a.statusBar.SetLanguage(data.New)
		a.editor.Retokenize()
	}
	return false // Not consumed
}
