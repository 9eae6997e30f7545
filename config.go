package pulseauth

import (
	"errors"
	"time"

	"github.com/greenpulse/pulseauth/session"
)

// Config groups all engine tunables. Zero values are not usable; start from
// [Builder.New]'s defaults and override.
type Config struct {
	Session  SessionConfig
	Password PasswordConfig
	Signup   SignupConfig
	Audit    AuditConfig
	Metrics  MetricsConfig
}

// SessionConfig controls persistence naming and session lifetime behavior.
type SessionConfig struct {
	// StorageNamespace prefixes the two persisted entry names
	// ("<namespace>-user", "<namespace>-session").
	StorageNamespace string
	// SimulatedLatency is slept inside Login and Signup, standing in for the
	// network round trip of a real backend. Zero disables it. The sleep is
	// not cancellable; an in-flight call always resolves.
	SimulatedLatency time.Duration
	// RestoreOnBuild runs session restoration once inside [Builder.Build].
	RestoreOnBuild bool
}

// PasswordConfig carries the Argon2id cost parameters. Memory is in KiB.
type PasswordConfig struct {
	Memory      uint32
	Time        uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

// SignupConfig controls account creation behavior.
type SignupConfig struct {
	// RegisterInDirectory inserts freshly created accounts into the
	// [Directory], so a new user can log out and log back in. Disable to
	// reproduce the web client's behavior of only creating the live session.
	RegisterInDirectory bool
	// DefaultTheme is assigned to new accounts.
	DefaultTheme Theme
}

// AuditConfig controls the async audit dispatcher.
type AuditConfig struct {
	Enabled    bool
	BufferSize int
	// DropIfFull drops events (counting them) instead of blocking the
	// emitting operation when the buffer is full.
	DropIfFull bool
}

// MetricsConfig controls the in-process counters.
type MetricsConfig struct {
	Enabled                 bool
	EnableLatencyHistograms bool
}

func defaultConfig() Config {
	return Config{
		Session: SessionConfig{
			StorageNamespace: "greenpulse",
			SimulatedLatency: 0,
			RestoreOnBuild:   true,
		},
		Password: PasswordConfig{
			Memory:      65536,
			Time:        3,
			Parallelism: 2,
			SaltLength:  16,
			KeyLength:   32,
		},
		Signup: SignupConfig{
			RegisterInDirectory: true,
			DefaultTheme:        ThemeSystem,
		},
		Audit: AuditConfig{
			Enabled:    false,
			BufferSize: 1024,
			DropIfFull: true,
		},
		Metrics: MetricsConfig{
			Enabled:                 false,
			EnableLatencyHistograms: false,
		},
	}
}

func cloneConfig(cfg Config) Config {
	// All fields are values; a struct copy is a deep copy. The function stays
	// so adding a slice or map field later has one place to handle it.
	return cfg
}

// Validate checks structural invariants. Password parameter bounds are
// enforced separately by the password package at Build time.
func (c Config) Validate() error {
	if c.Session.StorageNamespace == "" {
		return errors.New("Session.StorageNamespace must not be empty")
	}
	if c.Session.SimulatedLatency < 0 {
		return errors.New("Session.SimulatedLatency must not be negative")
	}
	if !c.Signup.DefaultTheme.Valid() {
		return errors.New("Signup.DefaultTheme must be light, dark, or system")
	}
	if c.Audit.Enabled && c.Audit.BufferSize <= 0 {
		return errors.New("Audit.BufferSize must be positive when audit is enabled")
	}
	return nil
}

// TokenTTL is re-exported for callers that need the fixed validity window.
const TokenTTL = session.TokenTTL
