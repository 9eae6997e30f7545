package i18n

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/greenpulse/pulseauth/session"
)

// Table is a nested translation table: values are either strings or further
// Tables (via map[string]any), addressed by dotted keys.
type Table map[string]any

var paramPattern = regexp.MustCompile(`\{(\w+)\}`)

// Translator resolves keys for one active language. Safe for concurrent use;
// SetLanguage may race with T and simply affects subsequent lookups.
type Translator struct {
	mu      sync.RWMutex
	lang    session.Language
	bundles map[session.Language]Table
}

// New creates a Translator for lang, preloaded with the built-in minimal
// tables.
func New(lang session.Language) *Translator {
	if !lang.Valid() {
		lang = session.LanguageEnglish
	}

	bundles := make(map[session.Language]Table, len(builtinTables))
	for l, t := range builtinTables {
		bundles[l] = t
	}

	return &Translator{
		lang:    lang,
		bundles: bundles,
	}
}

// WithBundle merges table over the existing table for lang, key by top-level
// key, and returns the Translator for chaining.
func (t *Translator) WithBundle(lang session.Language, table Table) *Translator {
	t.mu.Lock()
	defer t.mu.Unlock()

	existing, ok := t.bundles[lang]
	if !ok {
		t.bundles[lang] = table
		return t
	}

	merged := make(Table, len(existing)+len(table))
	for k, v := range existing {
		merged[k] = v
	}
	for k, v := range table {
		merged[k] = v
	}
	t.bundles[lang] = merged
	return t
}

// Language returns the active language.
func (t *Translator) Language() session.Language {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.lang
}

// SetLanguage switches the active language. Invalid values are ignored.
func (t *Translator) SetLanguage(lang session.Language) {
	if !lang.Valid() {
		return
	}
	t.mu.Lock()
	t.lang = lang
	t.mu.Unlock()
}

// T resolves key in the active language, falling back to English and then to
// the key itself. params replace {name} placeholders in the resolved string;
// placeholders without a matching param are left as-is.
func (t *Translator) T(key string, params map[string]any) string {
	t.mu.RLock()
	lang := t.lang
	value, ok := lookup(t.bundles[lang], key)
	if !ok && lang != session.LanguageEnglish {
		value, ok = lookup(t.bundles[session.LanguageEnglish], key)
	}
	t.mu.RUnlock()

	if !ok {
		return key
	}
	if len(params) == 0 {
		return value
	}

	return paramPattern.ReplaceAllStringFunc(value, func(match string) string {
		name := match[1 : len(match)-1]
		if v, ok := params[name]; ok {
			return fmt.Sprint(v)
		}
		return match
	})
}

func lookup(table Table, key string) (string, bool) {
	if table == nil {
		return "", false
	}

	var current any = table
	for _, part := range strings.Split(key, ".") {
		var node map[string]any
		switch v := current.(type) {
		case Table:
			node = v
		case map[string]any:
			node = v
		default:
			return "", false
		}
		current = node[part]
	}

	s, ok := current.(string)
	return s, ok
}
