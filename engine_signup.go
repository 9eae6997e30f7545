package pulseauth

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/greenpulse/pulseauth/credential"
	"github.com/greenpulse/pulseauth/session"
)

// Signup registers a new account and immediately starts a session for it.
// Validation short-circuits at the first failure, in a fixed order: email
// shape, password strength, password confirmation, terms acceptance, then
// the duplicate-email lookup. On any failure nothing is mutated.
//
// When [SignupConfig.RegisterInDirectory] is set (the default), the new
// account is also inserted into the directory so the user can log out and
// log back in later.
func (e *Engine) Signup(ctx context.Context, data SignupData) error {
	if !e.ready() {
		return ErrEngineNotReady
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.state.Store(int32(StateAuthenticating))
	defer e.stateAfterOp()

	e.simulateRoundTrip()

	if err := e.validateSignup(ctx, data); err != nil {
		if errors.Is(err, ErrEmailExists) {
			e.metricInc(MetricSignupDuplicate)
		} else {
			e.metricInc(MetricSignupFailure)
		}
		e.emitAudit(ctx, auditEventSignupFailure, false, "", err, nil)
		return err
	}

	now := e.now()
	u := newUserFromSignup(data, uuid.NewString(), e.config.Signup.DefaultTheme)
	u.CreatedAt = now
	u.LastLogin = now

	hash, err := e.hasher.Hash(data.Password)
	if err != nil {
		e.metricInc(MetricSignupFailure)
		e.emitAudit(ctx, auditEventSignupFailure, false, "", err, nil)
		return err
	}

	if e.config.Signup.RegisterInDirectory {
		if err := e.directory.Insert(ctx, Account{User: *u.Clone(), PasswordHash: hash}); err != nil {
			e.metricInc(MetricSignupFailure)
			e.emitAudit(ctx, auditEventSignupFailure, false, "", err, nil)
			return err
		}
	}

	e.setCurrent(ctx, u, session.EncodeToken(u.ID, now))

	e.metricInc(MetricSessionCreated)
	e.metricInc(MetricSignupSuccess)
	e.emitAudit(ctx, auditEventSignupSuccess, true, u.ID, nil, func() map[string]string {
		return map[string]string{
			"role": string(u.Role),
		}
	})

	return nil
}

func (e *Engine) validateSignup(ctx context.Context, data SignupData) error {
	if !credential.ValidEmail(data.Email) {
		return ErrInvalidEmail
	}

	if check := credential.CheckPassword(data.Password); !check.OK {
		switch check.Reason {
		case credential.ReasonTooShort:
			return ErrPasswordTooShort
		default:
			return ErrPasswordComplexity
		}
	}

	if data.Password != data.ConfirmPassword {
		return ErrPasswordMismatch
	}

	if !data.AcceptTerms {
		return ErrTermsNotAccepted
	}

	if _, err := e.directory.FindByEmail(ctx, strings.ToLower(data.Email)); err == nil {
		return ErrEmailExists
	}

	if !data.Role.Valid() {
		return ErrInvalidRole
	}

	return nil
}

func newUserFromSignup(data SignupData, id string, theme Theme) *User {
	u := &User{
		ID:          id,
		Email:       data.Email,
		FullName:    data.FullName,
		PhoneNumber: data.PhoneNumber,
		Role:        data.Role,
		Language:    data.Language,
		Theme:       theme,

		FarmerType:              data.FarmerType,
		CropsGrown:              data.CropsGrown,
		FieldArea:               data.FieldArea,
		Location:                data.Location,
		GPSCoordinate:           data.GPSCoordinate,
		PreferredPesticideBrand: data.PreferredPesticideBrand,
		FarmInfrastructure:      data.FarmInfrastructure,
		IrrigationType:          data.IrrigationType,
		Certifications:          data.Certifications,

		Designation:   data.Designation,
		Department:    data.Department,
		RegionScope:   data.RegionScope,
		OfficialEmail: data.OfficialEmail,
	}

	u.ProfileComplete = profileComplete(u)
	return u
}

// profileComplete derives the completion flag: farmers need a declared scale
// and at least one crop; government users need designation and department.
func profileComplete(u *User) bool {
	switch u.Role {
	case RoleFarmer:
		return u.FarmerType != "" && len(u.CropsGrown) > 0
	case RoleGovernment:
		return u.Designation != "" && u.Department != ""
	default:
		return false
	}
}
