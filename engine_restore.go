package pulseauth

import (
	"context"
	"log"
)

// Restore loads the persisted session, normally once at startup (Build runs
// it when [SessionConfig.RestoreOnBuild] is set). When both entries are
// present, decode, and the token has not expired, the engine transitions
// directly to authenticated with the restored user. Anything else (absent
// entries, malformed data, an elapsed expiry) purges both entries and leaves
// the engine unauthenticated. Restore never fails to the caller.
//
// It returns true when a session was restored.
func (e *Engine) Restore(ctx context.Context) bool {
	if !e.ready() {
		return false
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.state.Store(int32(StateAuthenticating))
	defer e.stateAfterOp()

	u, token, err := e.sessions.Load(ctx)
	if err != nil {
		// Storage down: nothing to restore and nothing worth purging.
		log.Print("pulseauth: session storage unavailable during restore")
		e.metricInc(MetricStorageError)
		e.emitAudit(ctx, auditEventStorageDegraded, false, "", err, func() map[string]string {
			return map[string]string{
				"operation": "restore",
			}
		})
		return false
	}

	if u == nil || token == nil {
		// Absent or malformed persisted data, treated identically.
		e.purgePersisted(ctx)
		return false
	}

	if token.Expired(e.now().UnixMilli()) {
		e.purgePersisted(ctx)
		e.metricInc(MetricSessionExpired)
		e.metricInc(MetricSessionInvalidated)
		e.emitAudit(ctx, auditEventSessionExpired, false, token.UserID, nil, nil)
		return false
	}

	e.user = u
	e.token = token.Opaque()

	e.metricInc(MetricSessionRestored)
	e.emitAudit(ctx, auditEventSessionRestored, true, u.ID, nil, nil)

	return true
}
