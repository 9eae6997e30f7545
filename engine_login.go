package pulseauth

import (
	"context"
	"strings"
	"time"

	"github.com/greenpulse/pulseauth/credential"
	"github.com/greenpulse/pulseauth/session"
)

// Login authenticates email/password against the directory for the requested
// role. On success it stamps the user's last-login time, mints a fresh
// 24-hour token, replaces the current session, and persists both entries,
// overwriting any previously persisted session unconditionally.
//
// Failures are reported as [ErrInvalidEmail] or [ErrInvalidCredentials] and
// leave any existing session untouched. There is no retry; the caller may
// re-invoke.
func (e *Engine) Login(ctx context.Context, email, password string, role Role) error {
	if !e.ready() {
		return ErrEngineNotReady
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.state.Store(int32(StateAuthenticating))
	defer e.stateAfterOp()

	start := e.now()
	defer func() {
		if e.metrics.LatencyEnabled() {
			e.metrics.Observe(MetricLoginLatency, time.Since(start))
		}
	}()

	e.simulateRoundTrip()

	if !credential.ValidEmail(email) {
		e.metricInc(MetricLoginFailure)
		e.emitAudit(ctx, auditEventLoginFailure, false, "", ErrInvalidEmail, func() map[string]string {
			return map[string]string{
				"reason": "invalid_email",
			}
		})
		return ErrInvalidEmail
	}

	account, err := e.directory.FindByEmail(ctx, strings.ToLower(email))
	if err != nil {
		e.metricInc(MetricLoginFailure)
		e.emitAudit(ctx, auditEventLoginFailure, false, "", ErrInvalidCredentials, func() map[string]string {
			return map[string]string{
				"reason": "user_not_found",
			}
		})
		return ErrInvalidCredentials
	}

	if account.User.Role != role {
		e.metricInc(MetricLoginFailure)
		e.emitAudit(ctx, auditEventLoginFailure, false, account.User.ID, ErrInvalidCredentials, func() map[string]string {
			return map[string]string{
				"reason": "role_mismatch",
			}
		})
		return ErrInvalidCredentials
	}

	ok, err := e.hasher.Verify(password, account.PasswordHash)
	if err != nil || !ok {
		e.metricInc(MetricLoginFailure)
		e.emitAudit(ctx, auditEventLoginFailure, false, account.User.ID, ErrInvalidCredentials, func() map[string]string {
			return map[string]string{
				"reason": "password_mismatch",
			}
		})
		return ErrInvalidCredentials
	}
	password = ""

	now := e.now()
	u := account.User.Clone()
	u.LastLogin = now

	e.setCurrent(ctx, u, session.EncodeToken(u.ID, now))

	e.metricInc(MetricSessionCreated)
	e.metricInc(MetricLoginSuccess)
	e.emitAudit(ctx, auditEventLoginSuccess, true, u.ID, nil, func() map[string]string {
		return map[string]string{
			"role": string(u.Role),
		}
	})

	return nil
}
