package app

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/bethropolis/scribe/internal/event"
	"github.com/bethropolis/scribe/internal/logger"
)

const defaultFileMode fs.FileMode = 0o644

// loadFile reads path. A missing file starts an empty document.
func loadFile(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Infof("App: '%s' does not exist, starting a new file", path)
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(string(data), "\r\n", "\n"), nil
}

// writeFile replaces path with text, keeping the mode of an existing file.
func writeFile(path, text string) error {
	mode := defaultFileMode
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	return os.WriteFile(path, []byte(text), mode)
}

// save persists the document and reports the outcome on the status bar.
func (a *App) save(auto bool) {
	if a.filePath == "" {
		a.statusBar.SetTemporaryMessage("No file name - start scribe with a path to save")
		return
	}
	if err := writeFile(a.filePath, a.editor.Text()); err != nil {
		logger.Errorf("App: save failed: %v", err)
		a.statusBar.SetTemporaryMessage("Save failed: %v", err)
		return
	}
	a.autosave.Stop()
	a.editor.MarkSaved()
	a.eventManager.Dispatch(event.TypeBufferSaved, event.BufferSavedData{FilePath: a.filePath})

	verb := "Saved"
	if auto {
		verb = "Autosaved"
	}
	a.statusBar.SetTemporaryMessage("%s %s (%d lines)", verb, a.filePath, a.editor.LineCount())
	logger.Infof("App: %s %s", verb, a.filePath)
}
