// internal/tui/drawing.go
package tui

import (
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/bethropolis/scribe/internal/core"
	"github.com/bethropolis/scribe/internal/logger"
	"github.com/bethropolis/scribe/internal/theme"
	"github.com/bethropolis/scribe/internal/types"
	"github.com/bethropolis/scribe/internal/utils"
)

// StatusBarHeight is the number of rows reserved below the text area.
const StatusBarHeight = 1

// lineNumberPadding is the space between the line number and the text.
const lineNumberPadding = 1

// Layout splits the screen into gutter, text area and status bar.
type Layout struct {
	Width, Height int
	Gutter        int // Line number column, including padding
	TextWidth     int
	TextHeight    int
}

// ComputeLayout returns the layout for a screen and a document length.
func ComputeLayout(width, height, lineCount int) Layout {
	l := Layout{Width: width, Height: height}
	l.TextHeight = max(height-StatusBarHeight, 0)

	l.Gutter = len(strconv.Itoa(max(lineCount, 1))) + lineNumberPadding
	if l.Gutter >= width { // Not enough space for gutter and text
		l.Gutter = 0
	}
	l.TextWidth = max(width-l.Gutter, 0)
	return l
}

// LayoutFor returns the current layout of t for ed.
func LayoutFor(t *TUI, ed *core.Editor) Layout {
	width, height := t.Size()
	return ComputeLayout(width, height, ed.LineCount())
}

// isPositionWithin checks if pos is within [start, end).
func isPositionWithin(pos types.Position, r types.Range) bool {
	return !pos.IsBefore(r.Start) && pos.IsBefore(r.End)
}

// lineStyles returns one style per rune column of line n (index 0 is
// column 1), coloured by the token kinds.
func lineStyles(ed *core.Editor, th *theme.Theme, n int, runeCount int) []tcell.Style {
	styles := make([]tcell.Style, runeCount)
	def := th.GetStyle("Default")
	for i := range styles {
		styles[i] = def
	}
	for _, tok := range ed.LineTokens(n) {
		style := th.TokenStyle(tok.Kind)
		start := tok.Column - 1
		end := min(start+utils.RuneLen(tok.Text), runeCount)
		for i := max(start, 0); i < end; i++ {
			styles[i] = style
		}
	}
	return styles
}

// DrawBuffer draws the visible portion of the document.
func DrawBuffer(t *TUI, ed *core.Editor, th *theme.Theme, tabWidth int) {
	tabWidth = max(tabWidth, 1)
	defaultStyle := th.GetStyle("Default")
	lineNumberStyle := th.GetStyle("LineNumber")
	selectionStyle := th.GetStyle("Selection")

	layout := LayoutFor(t, ed)
	if layout.TextHeight <= 0 || layout.Width <= 0 {
		return
	}
	top, left := ed.ScrollPosition()
	sel, selectionActive := ed.SelectionRange()
	cursor := ed.CursorPosition()
	maxDigits := layout.Gutter - lineNumberPadding

	for screenY := 0; screenY < layout.TextHeight; screenY++ {
		lineNum := top + screenY + 1

		// --- A: Fill the row with the default style ---
		for fillX := 0; fillX < layout.Width; fillX++ {
			t.screen.SetContent(fillX, screenY, ' ', nil, defaultStyle)
		}

		line, err := ed.Line(lineNum)
		if err != nil {
			continue // Below the document
		}

		// --- B: Line number gutter ---
		if layout.Gutter > 0 {
			numStyle := lineNumberStyle
			if lineNum == cursor.Line {
				numStyle = numStyle.Bold(true)
			}
			for i, r := range fmt.Sprintf("%*d", maxDigits, lineNum) {
				t.screen.SetContent(i, screenY, r, nil, numStyle)
			}
		}

		// --- C: Text ---
		runes := []rune(line)
		styles := lineStyles(ed, th, lineNum, len(runes))
		visualX := 0
		runeIndex := 0
		gr := uniseg.NewGraphemes(line)
		for gr.Next() {
			clusterRunes := gr.Runes()
			clusterWidth := gr.Width()
			if clusterRunes[0] == '\t' {
				clusterWidth = tabWidth - visualX%tabWidth
			}

			style := styles[runeIndex]
			if selectionActive && isPositionWithin(types.NewPosition(lineNum, runeIndex+1), sel) {
				style = selectionStyle
			}

			for cell := 0; cell < clusterWidth; cell++ {
				screenX := visualX + cell - left + layout.Gutter
				if screenX < layout.Gutter || screenX >= layout.Width {
					continue
				}
				switch {
				case cell > 0 || clusterRunes[0] == '\t':
					t.screen.SetContent(screenX, screenY, ' ', nil, style)
				default:
					t.screen.SetContent(screenX, screenY, clusterRunes[0], clusterRunes[1:], style)
				}
			}

			visualX += clusterWidth
			runeIndex += len(clusterRunes)
			if visualX >= left+layout.TextWidth {
				break
			}
		}

		// A selected line break shows as one highlighted cell.
		if selectionActive && isPositionWithin(types.NewPosition(lineNum, len(runes)+1), sel) {
			if screenX := visualX - left + layout.Gutter; screenX >= layout.Gutter && screenX < layout.Width {
				t.screen.SetContent(screenX, screenY, ' ', nil, selectionStyle)
			}
		}
	}
}

// DrawCursor positions the terminal cursor, hiding it when off screen.
func DrawCursor(t *TUI, ed *core.Editor, tabWidth int) {
	layout := LayoutFor(t, ed)
	top, left := ed.ScrollPosition()
	cursor := ed.CursorPosition()

	cursorVisualCol := 0
	if line, err := ed.Line(cursor.Line); err == nil {
		cursorVisualCol = utils.VisualColumn(line, cursor.Column, tabWidth)
	} else {
		logger.Debugf("DrawCursor: Error getting line %d: %v", cursor.Line, err)
	}

	screenX := cursorVisualCol - left + layout.Gutter
	screenY := cursor.Line - 1 - top
	if screenX < layout.Gutter || screenX >= layout.Width || screenY < 0 || screenY >= layout.TextHeight {
		t.screen.HideCursor()
		return
	}
	t.screen.ShowCursor(screenX, screenY)
}

// ScreenToPosition maps a screen cell to a document position. Rows below
// the document map to the last line; cells past a line's end map to its
// end. ok is false for the gutter and the status bar.
func ScreenToPosition(t *TUI, ed *core.Editor, x, y, tabWidth int) (types.Position, bool) {
	layout := LayoutFor(t, ed)
	if y < 0 || y >= layout.TextHeight || x < layout.Gutter || x >= layout.Width {
		return types.Position{}, false
	}
	top, left := ed.ScrollPosition()
	lineNum := min(top+y+1, ed.LineCount())
	line, err := ed.Line(lineNum)
	if err != nil {
		return types.Position{}, false
	}
	column := utils.BufferColumn(line, x-layout.Gutter+left, tabWidth)
	return types.NewPosition(lineNum, column), true
}
