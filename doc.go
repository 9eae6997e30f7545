// Package pulseauth is the client-side session engine for the GreenPulse
// agricultural dashboard. It owns the single current authenticated identity
// and mediates the whole session lifecycle: login, signup, logout, profile
// updates, and restoration of a previously persisted session.
//
// The engine is deliberately a UX-layer component. Its session token is a
// locally minted, unsigned, inspectable expiry marker, never an
// authentication proof. Introducing a real backend means replacing the token
// path with a server-issued, verifiable credential; nothing here should be
// reused as a security boundary.
//
// # Architecture boundaries
//
// pulseauth is the public surface. It exposes [Engine], [Builder], [Config],
// the [Directory] abstraction over the user lookup table, and value types
// (User, SignupData, AuditEvent, MetricsSnapshot). Credential rules, password
// hashing, the persisted session codec, and the storage abstraction live in
// the credential, password, session, and storage subpackages.
//
// # Failure contract
//
// Operations report failures as sentinel errors ([ErrInvalidCredentials],
// [ErrEmailExists], ...) and never panic. Persistence is best-effort: when
// the underlying [storage.Store] is unavailable the engine logs, emits an
// audit event, and keeps operating in memory for the remainder of the
// process lifetime. Malformed persisted state is treated as absent and
// purged, never surfaced.
package pulseauth
