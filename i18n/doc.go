// Package i18n resolves dotted translation keys ("auth.loginFailed") against
// nested per-language tables, with {param} substitution. A missing
// translation falls back to English and finally to the key itself, so a gap
// in a table never breaks rendering.
package i18n
