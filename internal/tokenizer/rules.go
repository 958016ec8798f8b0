package tokenizer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/bethropolis/scribe/internal/logger"
	"github.com/bethropolis/scribe/internal/utils"
)

// Token is one lexical token of a line.
type Token struct {
	Text   string
	Kind   chroma.TokenType
	Column int // 1-based rune column of the first character
}

// Rules turn a single line into tokens. Lines never contain "\n".
type Rules interface {
	TokenizeLine(line string) []Token
}

// whitespaceRules yields maximal runs of non-space characters.
type whitespaceRules struct{}

func (whitespaceRules) TokenizeLine(line string) []Token {
	tokens := []Token{}
	start := -1
	for i, r := range line {
		switch {
		case unicode.IsSpace(r) && start >= 0:
			tokens = append(tokens, wordToken(line, start, i))
			start = -1
		case !unicode.IsSpace(r) && start < 0:
			start = i
		}
	}
	if start >= 0 {
		tokens = append(tokens, wordToken(line, start, len(line)))
	}
	return tokens
}

// wordToken builds the token for the byte span [from, to) of line.
func wordToken(line string, from, to int) Token {
	return Token{
		Text:   line[from:to],
		Kind:   chroma.Text,
		Column: utils.ByteOffsetToRuneIndex(line, from) + 1,
	}
}

// lexerRules runs a chroma lexer over one line and keeps its non-blank tokens.
type lexerRules struct {
	lexer chroma.Lexer
}

func (lr lexerRules) TokenizeLine(line string) []Token {
	iterator, err := lr.lexer.Tokenise(nil, line)
	if err != nil {
		logger.Warnf("tokenizer: %s lexer failed, using whitespace rules: %v", lr.lexer.Config().Name, err)
		return whitespaceRules{}.TokenizeLine(line)
	}

	tokens := []Token{}
	column := 1
	for _, tok := range iterator.Tokens() {
		// Lexers configured with EnsureNL append a newline to the input.
		value := strings.TrimRight(tok.Value, "\n")
		trimmed := strings.TrimLeftFunc(value, unicode.IsSpace)
		lead := utf8.RuneCountInString(value) - utf8.RuneCountInString(trimmed)
		if text := strings.TrimRightFunc(trimmed, unicode.IsSpace); text != "" {
			tokens = append(tokens, Token{Text: text, Kind: tok.Type, Column: column + lead})
		}
		column += utf8.RuneCountInString(value)
	}
	return tokens
}

// rulesFor resolves a language id to its rules. Unknown ids fall back to
// whitespace rules.
func rulesFor(id string) Rules {
	id = normalizeID(id)
	if id == "" || id == PlainText {
		return whitespaceRules{}
	}

	name := id
	if lang, ok := lookup(id); ok {
		if lang.Lexer == "" {
			return whitespaceRules{}
		}
		name = lang.Lexer
	}

	lexer := lexers.Get(name)
	if lexer == nil {
		logger.Warnf("tokenizer: no lexer for language %q, using whitespace rules", id)
		return whitespaceRules{}
	}
	return lexerRules{lexer: chroma.Coalesce(lexer)}
}
