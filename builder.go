package pulseauth

import (
	"context"
	"errors"
	"time"

	"github.com/greenpulse/pulseauth/password"
	"github.com/greenpulse/pulseauth/session"
	"github.com/greenpulse/pulseauth/storage"
)

// Builder assembles an [Engine]. Construction is allocation-only until Build;
// Build wires the hasher, persistence, audit, and metrics and (by default)
// performs the one startup session restore.
type Builder struct {
	config Config

	storage   storage.Store
	directory Directory
	auditSink AuditSink
	clock     func() time.Time

	built bool
}

// New returns a Builder loaded with the default configuration.
func New() *Builder {
	return &Builder{
		config: defaultConfig(),
	}
}

// WithConfig replaces the whole configuration.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cloneConfig(cfg)
	return b
}

// WithStorage sets the key-value store sessions persist into. When omitted,
// an in-process [storage.MemoryStore] is used and persistence does not
// survive the process.
func (b *Builder) WithStorage(kv storage.Store) *Builder {
	b.storage = kv
	return b
}

// WithDirectory sets the user lookup table. Required.
func (b *Builder) WithDirectory(dir Directory) *Builder {
	b.directory = dir
	return b
}

// WithAuditSink sets the destination for audit events. Ignored unless
// [AuditConfig.Enabled] is set.
func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.auditSink = sink
	return b
}

// WithClock overrides the engine's time source. Intended for tests that need
// deterministic token expiry.
func (b *Builder) WithClock(now func() time.Time) *Builder {
	b.clock = now
	return b
}

// WithMetricsEnabled toggles the in-process counters.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// Build validates the configuration, assembles the engine, and runs the
// startup restore when configured. A Builder can build at most once.
func (b *Builder) Build() (*Engine, error) {
	if b.built {
		return nil, errors.New("builder already used")
	}

	cfg := cloneConfig(b.config)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if b.directory == nil {
		return nil, errors.New("user directory required")
	}

	kv := b.storage
	if kv == nil {
		kv = storage.NewMemoryStore()
	}

	clock := b.clock
	if clock == nil {
		clock = time.Now
	}

	hasher, err := password.NewArgon2(password.Config{
		Memory:      cfg.Password.Memory,
		Time:        cfg.Password.Time,
		Parallelism: cfg.Password.Parallelism,
		SaltLength:  cfg.Password.SaltLength,
		KeyLength:   cfg.Password.KeyLength,
	})
	if err != nil {
		return nil, err
	}

	engine := &Engine{
		config:    cfg,
		directory: b.directory,
		hasher:    hasher,
		sessions:  session.NewStore(kv, cfg.Session.StorageNamespace),
		audit:     newAuditDispatcher(cfg.Audit, b.auditSink),
		metrics:   NewMetrics(cfg.Metrics),
		now:       clock,
	}

	if cfg.Session.RestoreOnBuild {
		engine.Restore(context.Background())
	}

	b.built = true

	return engine, nil
}
