// internal/theme/theme.go
package theme

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/scribe/internal/logger"
)

// Theme maps UI element names and token kinds to terminal styles.
type Theme struct {
	Name   string
	IsDark bool
	Styles map[string]tcell.Style

	tokens     *chroma.Style
	tokenCache map[chroma.TokenType]tcell.Style
}

// FromChroma builds a theme from a registered chroma style. Unknown names
// fall back to chroma's default style.
func FromChroma(name string) *Theme {
	cs, ok := styles.Registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		logger.Warnf("Theme: style %q not found, using %q", name, styles.Fallback.Name)
		cs = styles.Fallback
	}

	bg := cs.Get(chroma.Background)
	base := tcell.StyleDefault.
		Foreground(chromaToTcell(bg.Colour)).
		Background(chromaToTcell(bg.Background))

	lineNumbers := base
	if ln := cs.Get(chroma.LineNumbers); ln.Colour.IsSet() {
		lineNumbers = lineNumbers.Foreground(chromaToTcell(ln.Colour))
	}

	selection := base.Reverse(true)
	if hl := cs.Get(chroma.LineHighlight); hl.Background.IsSet() && hl.Background != bg.Background {
		selection = base.Background(chromaToTcell(hl.Background))
	}

	statusBar := base.Reverse(true)
	isDark := !bg.Background.IsSet() || bg.Background.Brightness() < 0.5

	return &Theme{
		Name:   cs.Name,
		IsDark: isDark,
		Styles: map[string]tcell.Style{
			// --- UI Elements ---
			"Default":           base,
			"LineNumber":        lineNumbers,
			"Selection":         selection,
			"StatusBar":         statusBar,
			"StatusBarModified": statusBar.Bold(true),
			"StatusBarMessage":  statusBar.Bold(true),
		},
		tokens:     cs,
		tokenCache: make(map[chroma.TokenType]tcell.Style),
	}
}

// GetStyle returns the style for a UI element. A dotted name falls back to
// its base name, then to "Default".
func (t *Theme) GetStyle(name string) tcell.Style {
	// 1. Try exact name
	if style, ok := t.Styles[name]; ok {
		return style
	}

	// 2. Try base name (part before first dot)
	if dotIndex := strings.Index(name, "."); dotIndex != -1 {
		if style, ok := t.Styles[name[:dotIndex]]; ok {
			return style
		}
	}

	// 3. Return "Default" style
	if defStyle, ok := t.Styles["Default"]; ok {
		if name != "Default" {
			logger.Debugf("Theme '%s': Style '%s' not found, falling back to 'Default'", t.Name, name)
		}
		return defStyle
	}

	// 4. Absolute fallback
	logger.Warnf("Theme '%s': Style '%s' and 'Default' style not found, using tcell default.", t.Name, name)
	return tcell.StyleDefault
}

// TokenStyle returns the style for a token kind on the default background.
func (t *Theme) TokenStyle(kind chroma.TokenType) tcell.Style {
	if style, ok := t.tokenCache[kind]; ok {
		return style
	}
	style := t.GetStyle("Default")
	if t.tokens != nil {
		entry := t.tokens.Get(kind)
		if entry.Colour.IsSet() {
			style = style.Foreground(chromaToTcell(entry.Colour))
		}
		if entry.Bold == chroma.Yes {
			style = style.Bold(true)
		}
		if entry.Italic == chroma.Yes {
			style = style.Italic(true)
		}
		if entry.Underline == chroma.Yes {
			style = style.Underline(true)
		}
	}
	if t.tokenCache == nil {
		t.tokenCache = make(map[chroma.TokenType]tcell.Style)
	}
	t.tokenCache[kind] = style
	return style
}

func chromaToTcell(c chroma.Colour) tcell.Color {
	if !c.IsSet() {
		return tcell.ColorDefault
	}
	return tcell.NewRGBColor(int32(c.Red()), int32(c.Green()), int32(c.Blue()))
}
