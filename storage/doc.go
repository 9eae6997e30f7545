// Package storage defines the key-value store the session engine persists
// into. It is the Go stand-in for the browser's local storage: string keys,
// string values, synchronous access, and no guarantees beyond best effort.
//
// Two implementations ship with the module: [MemoryStore] for tests and for
// running without any persistence, and [RedisStore] for sharing persisted
// state across process restarts. Callers may supply their own.
package storage
