package cursor

import (
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// WordStarts returns the 1-based columns at which non-blank word segments of
// line begin. Segmentation follows Unicode word boundaries, so punctuation
// runs form their own segments.
func WordStarts(line string) []int {
	var starts []int
	column := 1
	state := -1
	rest := line
	for len(rest) > 0 {
		var word string
		word, rest, state = uniseg.FirstWordInString(rest, state)
		first, _ := utf8.DecodeRuneInString(word)
		if !unicode.IsSpace(first) {
			starts = append(starts, column)
		}
		column += utf8.RuneCountInString(word)
	}
	return starts
}
