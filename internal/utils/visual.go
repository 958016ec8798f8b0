package utils

import "github.com/rivo/uniseg"

// VisualColumn returns the number of terminal cells taken by the text before
// the 1-based rune column on line. Tabs advance to the next multiple of
// tabWidth; other grapheme clusters use their display width.
func VisualColumn(line string, column, tabWidth int) int {
	if column <= 1 {
		return 0
	}
	if tabWidth < 1 {
		tabWidth = 1
	}
	visualWidth := 0
	currentRuneIndex := 0
	gr := uniseg.NewGraphemes(line)
	for gr.Next() {
		if currentRuneIndex >= column-1 {
			break
		}
		runes := gr.Runes()
		if runes[0] == '\t' {
			visualWidth = (visualWidth/tabWidth + 1) * tabWidth
		} else {
			visualWidth += gr.Width()
		}
		currentRuneIndex += len(runes)
	}
	return visualWidth
}

// BufferColumn is the inverse of VisualColumn: it returns the 1-based rune
// column whose cell span covers visualCol. Cells past the end of the line map
// to the end-of-line slot.
func BufferColumn(line string, visualCol, tabWidth int) int {
	if tabWidth < 1 {
		tabWidth = 1
	}
	currentVisual := 0
	currentRuneIndex := 0
	gr := uniseg.NewGraphemes(line)
	for gr.Next() {
		runes := gr.Runes()
		next := currentVisual + gr.Width()
		if runes[0] == '\t' {
			next = (currentVisual/tabWidth + 1) * tabWidth
		}
		if visualCol < next {
			return currentRuneIndex + 1
		}
		currentVisual = next
		currentRuneIndex += len(runes)
	}
	return currentRuneIndex + 1
}
