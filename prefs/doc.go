// Package prefs persists the two standalone UI preferences, theme and
// language, in the same key-value store the session engine uses, under
// "<namespace>-theme" and "<namespace>-language". Both degrade silently when
// the store is unavailable: reads fall back to defaults, writes keep the
// in-memory value for the rest of the process.
package prefs
