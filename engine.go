package pulseauth

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/greenpulse/pulseauth/session"
)

// Engine owns the single current authenticated identity. At most one user is
// live per Engine; every lifecycle operation goes through it, and the
// in-memory state is mirrored to persisted storage on a best-effort basis.
//
// Operations are serialized: the engine models a single cooperative client,
// and a second Login while one is in flight simply waits its turn. State and
// CurrentUser may be read concurrently at any time.
type Engine struct {
	config    Config
	directory Directory
	hasher    passwordVerifier
	sessions  *session.Store
	audit     *auditDispatcher
	metrics   *Metrics
	now       func() time.Time

	mu    sync.Mutex
	state atomic.Int32
	user  *User
	token string
}

// passwordVerifier is what the engine needs from the hasher. Narrowed to an
// interface so tests can substitute a failing verifier.
type passwordVerifier interface {
	Hash(password string) (string, error)
	Verify(password, encodedHash string) (bool, error)
}

// Close flushes and stops the audit dispatcher. The engine itself holds no
// other resources.
func (e *Engine) Close() {
	if e == nil {
		return
	}
	if e.audit != nil {
		e.audit.Close()
	}
}

// State reports the engine's current lifecycle position.
func (e *Engine) State() State {
	if e == nil {
		return StateUnauthenticated
	}
	return State(e.state.Load())
}

// IsLoading reports whether a login, signup, or restore is in flight.
func (e *Engine) IsLoading() bool {
	return e.State() == StateAuthenticating
}

// IsAuthenticated reports whether a current user is set.
func (e *Engine) IsAuthenticated() bool {
	return e.State() == StateAuthenticated
}

// CurrentUser returns a copy of the current user, or nil when
// unauthenticated. Mutating the copy does not affect the session; use
// [Engine.UpdateProfile].
func (e *Engine) CurrentUser() *User {
	if e == nil {
		return nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.user.Clone()
}

// AuditDropped reports how many audit events were discarded because the
// dispatcher buffer was full.
func (e *Engine) AuditDropped() uint64 {
	if e == nil || e.audit == nil {
		return 0
	}
	return e.audit.Dropped()
}

// MetricsSnapshot returns a point-in-time copy of all counters.
func (e *Engine) MetricsSnapshot() MetricsSnapshot {
	if e == nil || e.metrics == nil {
		return MetricsSnapshot{
			Counters:   map[MetricID]uint64{},
			Histograms: map[MetricID][]uint64{},
		}
	}
	return e.metrics.Snapshot()
}

func (e *Engine) metricInc(id MetricID) {
	if e == nil || e.metrics == nil {
		return
	}
	e.metrics.Inc(id)
}

func (e *Engine) emitAudit(
	ctx context.Context,
	eventType string,
	success bool,
	userID string,
	opErr error,
	metadata func() map[string]string,
) {
	if e == nil || e.audit == nil {
		return
	}

	event := AuditEvent{
		Timestamp: e.now(),
		EventType: eventType,
		UserID:    userID,
		Client:    clientLabelFromContext(ctx),
		Success:   success,
	}
	if opErr != nil {
		event.Error = opErr.Error()
	}
	if metadata != nil {
		event.Metadata = metadata()
	}

	e.audit.Emit(ctx, event)
}

// setCurrent replaces the in-memory session and mirrors it to storage.
// Callers hold e.mu.
func (e *Engine) setCurrent(ctx context.Context, u *User, token string) {
	e.user = u
	e.token = token
	e.persist(ctx)
}

// persist mirrors the current session to storage. Storage failures are
// swallowed: the engine keeps operating in memory for the remainder of the
// process lifetime. Callers hold e.mu.
func (e *Engine) persist(ctx context.Context) {
	if e.user == nil {
		return
	}
	if err := e.sessions.Save(ctx, e.user, e.token); err != nil {
		e.storageDegraded(ctx, "save", err)
	}
}

// purgePersisted erases both persisted entries, best-effort. Callers hold e.mu.
func (e *Engine) purgePersisted(ctx context.Context) {
	if err := e.sessions.Clear(ctx); err != nil {
		e.storageDegraded(ctx, "clear", err)
	}
}

func (e *Engine) storageDegraded(ctx context.Context, op string, err error) {
	log.Print("pulseauth: session storage unavailable, continuing in memory")
	e.metricInc(MetricStorageError)
	e.emitAudit(ctx, auditEventStorageDegraded, false, "", err, func() map[string]string {
		return map[string]string{
			"operation": op,
		}
	})
}

// simulateRoundTrip stands in for the network latency of a real backend
// call. Not cancellable: an in-flight login or signup always resolves.
func (e *Engine) simulateRoundTrip() {
	if d := e.config.Session.SimulatedLatency; d > 0 {
		time.Sleep(d)
	}
}

// stateAfterOp recomputes the observable state from the user slot. Callers
// hold e.mu.
func (e *Engine) stateAfterOp() {
	if e.user != nil {
		e.state.Store(int32(StateAuthenticated))
	} else {
		e.state.Store(int32(StateUnauthenticated))
	}
}

func (e *Engine) ready() bool {
	return e != nil && e.directory != nil && e.sessions != nil && e.hasher != nil
}
