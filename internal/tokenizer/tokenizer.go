// Package tokenizer keeps a per-line cache of lexical tokens.
package tokenizer

import (
	"slices"
	"strings"

	"github.com/bethropolis/scribe/internal/logger"
	"github.com/bethropolis/scribe/internal/types"
)

// LineSource is the read side of a document, used for incremental updates.
type LineSource interface {
	Line(n int) (string, error)
	LineCount() int
}

// Tokenizer caches tokens by 1-based line number. A nil cache entry means
// the line has not been tokenized.
type Tokenizer struct {
	language string
	rules    Rules
	lines    [][]Token // index 0 is line 1
}

// New creates a Tokenizer using the rules for language.
func New(language string) *Tokenizer {
	return &Tokenizer{
		language: normalizeID(language),
		rules:    rulesFor(language),
	}
}

// Language returns the current language id.
func (t *Tokenizer) Language() string {
	return t.language
}

// SetLanguage switches the rules used by later tokenization. Cached tokens
// are kept until the caller re-tokenizes.
func (t *Tokenizer) SetLanguage(id string) {
	t.language = normalizeID(id)
	t.rules = rulesFor(id)
	logger.DebugTagf("tokenizer", "language set to %q", t.language)
}

// Tokenize replaces the cache with tokens for every line of text.
func (t *Tokenizer) Tokenize(text string) {
	split := strings.Split(text, "\n")
	t.lines = make([][]Token, len(split))
	for i, line := range split {
		t.lines[i] = t.rules.TokenizeLine(line)
	}
	logger.DebugTagf("tokenizer", "tokenized %d lines as %q", len(split), t.language)
}

// Apply updates the cache after one buffer mutation: entries below the edit
// shift by its line delta, entries inside it are replaced, and only lines
// edit.StartLine..edit.NewEndLine are re-tokenized from src.
func (t *Tokenizer) Apply(edit types.EditInfo, src LineSource) {
	if edit.IsZero() {
		return
	}
	lo := edit.StartLine - 1
	if lo < 0 {
		lo = 0
	}
	for len(t.lines) < lo {
		t.lines = append(t.lines, nil)
	}
	hi := min(max(edit.OldEndLine, lo), len(t.lines))

	fresh := make([][]Token, 0, edit.NewEndLine-edit.StartLine+1)
	for n := edit.StartLine; n <= edit.NewEndLine; n++ {
		line, err := src.Line(n)
		if err != nil {
			logger.Warnf("tokenizer: cannot re-tokenize line %d: %v", n, err)
			fresh = append(fresh, nil)
			continue
		}
		fresh = append(fresh, t.rules.TokenizeLine(line))
	}
	t.lines = slices.Replace(t.lines, lo, hi, fresh...)

	if count := src.LineCount(); len(t.lines) > count {
		t.lines = t.lines[:count]
	}
	logger.DebugTagf("tokenizer", "applied edit %+v, re-tokenized %d line(s)", edit, len(fresh))
}

// Invalidate forgets the tokens of line n.
func (t *Tokenizer) Invalidate(n int) {
	if n >= 1 && n <= len(t.lines) {
		t.lines[n-1] = nil
	}
}

// LineTokens returns the tokens of line n, or nil if it was never tokenized.
func (t *Tokenizer) LineTokens(n int) []Token {
	if n < 1 || n > len(t.lines) {
		return nil
	}
	return t.lines[n-1]
}

// GetTokens returns the token texts of line n. It never fails; lines that
// were not tokenized yield an empty slice.
func (t *Tokenizer) GetTokens(n int) []string {
	tokens := t.LineTokens(n)
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Text
	}
	return out
}

// Len returns the number of cached lines.
func (t *Tokenizer) Len() int {
	return len(t.lines)
}
