// Package session holds the persisted session model and its codec: the user
// snapshot, the expiry-stamped token, and the [Store] that mirrors both into
// a key-value store under fixed entry names.
//
// The token is base64 of a small JSON object, byte-compatible with what the
// GreenPulse web client writes. It is reversible and unsigned: a local expiry
// marker, not a credential. Decode failures of either entry are reported as
// absence, never as panics.
package session
