package theme

import (
	"testing"

	"github.com/alecthomas/chroma/v2"
	"github.com/gdamore/tcell/v2"
)

func TestFromChroma(t *testing.T) {
	th := FromChroma("monokai")
	if th.Name != "monokai" {
		t.Fatalf("Name = %q", th.Name)
	}
	if !th.IsDark {
		t.Error("monokai should be dark")
	}
	fg, bg, _ := th.GetStyle("Default").Decompose()
	if fg == tcell.ColorDefault || bg == tcell.ColorDefault {
		t.Errorf("Default style lacks colours: fg=%v bg=%v", fg, bg)
	}
}

func TestFromChroma_UnknownFallsBack(t *testing.T) {
	th := FromChroma("no-such-style")
	if _, ok := th.Styles["Default"]; !ok || th.tokens == nil || th.Name == "" {
		t.Fatalf("fallback theme is incomplete: %+v", th)
	}
}

func TestGetStyleFallbacks(t *testing.T) {
	def := tcell.StyleDefault.Foreground(tcell.ColorRed)
	bar := tcell.StyleDefault.Foreground(tcell.ColorBlue)
	th := &Theme{Name: "t", Styles: map[string]tcell.Style{"Default": def, "StatusBar": bar}}

	if th.GetStyle("StatusBar.Extra") != bar {
		t.Error("dotted name did not fall back to its base")
	}
	if th.GetStyle("Missing") != def {
		t.Error("unknown name did not fall back to Default")
	}
	if (&Theme{}).GetStyle("Missing") != tcell.StyleDefault {
		t.Error("empty theme did not fall back to tcell default")
	}
}

func TestTokenStyle(t *testing.T) {
	th := FromChroma("monokai")
	kw := th.TokenStyle(chroma.Keyword)
	kwFg, _, _ := kw.Decompose()
	defFg, _, _ := th.GetStyle("Default").Decompose()
	if kwFg == defFg {
		t.Errorf("keyword foreground %v equals default", kwFg)
	}
	if th.TokenStyle(chroma.Keyword) != kw {
		t.Error("TokenStyle is not stable")
	}

	bare := &Theme{Styles: map[string]tcell.Style{"Default": tcell.StyleDefault}}
	if bare.TokenStyle(chroma.Keyword) != tcell.StyleDefault {
		t.Error("theme without chroma style should use Default")
	}
}
