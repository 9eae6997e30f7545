package prefs

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"

	"github.com/greenpulse/pulseauth/session"
	"github.com/greenpulse/pulseauth/storage"
)

const (
	themeEntrySuffix    = "-theme"
	languageEntrySuffix = "-language"
)

// ErrInvalidTheme rejects theme values outside light/dark/system.
var ErrInvalidTheme = errors.New("prefs: invalid theme")

// ErrInvalidLanguage rejects language values outside en/hi/od.
var ErrInvalidLanguage = errors.New("prefs: invalid language")

// Manager reads and writes the persisted theme and language preferences.
// Values are cached in memory, so an unavailable store costs one warning and
// nothing else.
type Manager struct {
	kv          storage.Store
	themeKey    string
	languageKey string

	// systemDark answers "does the host prefer dark?" when the theme is
	// system. Nil means light.
	systemDark func() bool

	mu       sync.Mutex
	theme    session.Theme
	language session.Language
	loaded   bool
}

// NewManager creates a Manager persisting under namespace. systemDark may be
// nil.
func NewManager(kv storage.Store, namespace string, systemDark func() bool) *Manager {
	return &Manager{
		kv:          kv,
		themeKey:    namespace + themeEntrySuffix,
		languageKey: namespace + languageEntrySuffix,
		systemDark:  systemDark,
	}
}

// load pulls both persisted values once, ignoring anything absent, invalid,
// or unreadable. Callers hold m.mu.
func (m *Manager) load(ctx context.Context) {
	if m.loaded {
		return
	}
	m.loaded = true
	m.theme = session.ThemeLight
	m.language = ""

	if raw, err := m.kv.Get(ctx, m.themeKey); err == nil {
		if t := session.Theme(raw); t.Valid() {
			m.theme = t
		}
	} else if !errors.Is(err, storage.ErrNotFound) {
		log.Print("pulseauth: preference storage unavailable, using defaults")
	}

	if raw, err := m.kv.Get(ctx, m.languageKey); err == nil {
		if l := session.Language(raw); l.Valid() {
			m.language = l
		}
	}
}

// Theme returns the stored theme preference, defaulting to light.
func (m *Manager) Theme(ctx context.Context) session.Theme {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.load(ctx)
	return m.theme
}

// SetTheme validates and stores t. A storage failure keeps the in-memory
// value and is not reported.
func (m *Manager) SetTheme(ctx context.Context, t session.Theme) error {
	if !t.Valid() {
		return ErrInvalidTheme
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.load(ctx)
	m.theme = t
	if err := m.kv.Set(ctx, m.themeKey, string(t)); err != nil {
		log.Print("pulseauth: could not persist theme preference")
	}
	return nil
}

// ResolvedTheme collapses the preference to a concrete light/dark value,
// consulting the system probe when the preference is system.
func (m *Manager) ResolvedTheme(ctx context.Context) session.Theme {
	t := m.Theme(ctx)
	if t != session.ThemeSystem {
		return t
	}
	if m.systemDark != nil && m.systemDark() {
		return session.ThemeDark
	}
	return session.ThemeLight
}

// Language returns the stored language preference. When nothing valid is
// stored, the locale hint is consulted via [DetectLanguage].
func (m *Manager) Language(ctx context.Context, localeHint string) session.Language {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.load(ctx)
	if m.language != "" {
		return m.language
	}
	return DetectLanguage(localeHint)
}

// SetLanguage validates and stores l. A storage failure keeps the in-memory
// value and is not reported.
func (m *Manager) SetLanguage(ctx context.Context, l session.Language) error {
	if !l.Valid() {
		return ErrInvalidLanguage
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.load(ctx)
	m.language = l
	if err := m.kv.Set(ctx, m.languageKey, string(l)); err != nil {
		log.Print("pulseauth: could not persist language preference")
	}
	return nil
}

// DetectLanguage maps a BCP 47 locale tag to a supported language: "hi*" to
// Hindi, "or*" to Odia, anything else to English.
func DetectLanguage(locale string) session.Language {
	locale = strings.ToLower(locale)
	switch {
	case strings.HasPrefix(locale, "hi"):
		return session.LanguageHindi
	case strings.HasPrefix(locale, "or"):
		return session.LanguageOdia
	default:
		return session.LanguageEnglish
	}
}
