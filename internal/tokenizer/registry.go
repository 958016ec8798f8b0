package tokenizer

import (
	"path/filepath"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/bethropolis/scribe/internal/logger"
)

// PlainText is the language id whose rules split lines on whitespace only.
const PlainText = "plaintext"

// Language describes a language id known to the registry.
type Language struct {
	// ID is the language identifier hosts pass to SetLanguage.
	ID string

	// Extensions maps file extensions to this language
	Extensions []string

	// Lexer is the chroma lexer name or alias. Empty means whitespace rules.
	Lexer string
}

var (
	// Global language registry
	registry struct {
		sync.RWMutex
		languages     []*Language
		byID          map[string]*Language
		extToLanguage map[string]*Language
	}

	// One-time initialization
	initOnce sync.Once
)

// initialize sets up the registry and registers the built-in languages.
func initialize() {
	initOnce.Do(func() {
		registry.byID = make(map[string]*Language)
		registry.extToLanguage = make(map[string]*Language)
		for _, l := range builtinLanguages {
			register(l)
		}
		logger.DebugTagf("tokenizer", "Language registry initialized with %d languages", len(registry.languages))
	})
}

// Register adds a language to the registry. A later registration of the same
// id or extension overrides the earlier one.
func Register(lang *Language) {
	initialize()
	registry.Lock()
	defer registry.Unlock()
	register(lang)
}

func register(lang *Language) {
	id := normalizeID(lang.ID)
	registry.languages = append(registry.languages, lang)
	registry.byID[id] = lang

	for _, ext := range lang.Extensions {
		lowerExt := strings.ToLower(ext)
		if existing, ok := registry.extToLanguage[lowerExt]; ok && existing.ID != lang.ID {
			logger.Warnf("Extension %s already registered to %s, overriding with %s",
				lowerExt, existing.ID, lang.ID)
		}
		registry.extToLanguage[lowerExt] = lang
	}
}

// lookup returns the registered language for id, if any.
func lookup(id string) (*Language, bool) {
	initialize()
	registry.RLock()
	defer registry.RUnlock()
	lang, ok := registry.byID[normalizeID(id)]
	return lang, ok
}

// LanguageForFile returns the language id for a file path. Registered
// extensions win; otherwise chroma's filename patterns are consulted, and
// anything unknown is PlainText.
func LanguageForFile(path string) string {
	initialize()

	ext := strings.ToLower(filepath.Ext(path))
	registry.RLock()
	lang, ok := registry.extToLanguage[ext]
	registry.RUnlock()
	if ok {
		return lang.ID
	}

	lexer := lexers.Match(filepath.Base(path))
	if lexer == nil {
		return PlainText
	}
	cfg := lexer.Config()
	if cfg.Name == PlainText {
		return PlainText
	}
	if len(cfg.Aliases) > 0 {
		return cfg.Aliases[0]
	}
	return normalizeID(cfg.Name)
}

// Languages returns all registered languages
func Languages() []*Language {
	initialize()

	registry.RLock()
	defer registry.RUnlock()

	result := make([]*Language, len(registry.languages))
	copy(result, registry.languages)
	return result
}

func normalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}
