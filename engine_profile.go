package pulseauth

import "context"

// UpdateProfile shallow-merges updates into the current user and re-persists
// the snapshot. It returns false without mutation when no user is currently
// authenticated.
func (e *Engine) UpdateProfile(ctx context.Context, updates ProfileUpdate) bool {
	if !e.ready() {
		return false
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.user == nil {
		return false
	}

	applyProfileUpdate(e.user, updates)
	e.user.ProfileComplete = profileComplete(e.user)
	e.persist(ctx)

	e.metricInc(MetricProfileUpdated)
	e.emitAudit(ctx, auditEventProfileUpdated, true, e.user.ID, nil, nil)

	return true
}

// Logout unconditionally clears the in-memory session and erases both
// persisted entries. Calling it while already unauthenticated is a no-op
// that still leaves storage empty; Logout is idempotent.
func (e *Engine) Logout(ctx context.Context) {
	if !e.ready() {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	hadSession := e.user != nil
	userID := ""
	if hadSession {
		userID = e.user.ID
	}

	e.user = nil
	e.token = ""
	e.purgePersisted(ctx)
	e.state.Store(int32(StateUnauthenticated))

	if hadSession {
		e.metricInc(MetricLogout)
		e.metricInc(MetricSessionInvalidated)
		e.emitAudit(ctx, auditEventLogout, true, userID, nil, nil)
	}
}

func applyProfileUpdate(u *User, updates ProfileUpdate) {
	if updates.FullName != nil {
		u.FullName = *updates.FullName
	}
	if updates.PhoneNumber != nil {
		u.PhoneNumber = *updates.PhoneNumber
	}
	if updates.Language != nil && updates.Language.Valid() {
		u.Language = *updates.Language
	}
	if updates.Theme != nil && updates.Theme.Valid() {
		u.Theme = *updates.Theme
	}

	if updates.FarmerType != nil {
		u.FarmerType = *updates.FarmerType
	}
	if updates.CropsGrown != nil {
		u.CropsGrown = cloneOrClear(updates.CropsGrown)
	}
	if updates.FieldArea != nil {
		u.FieldArea = *updates.FieldArea
	}
	if updates.Location != nil {
		loc := *updates.Location
		u.Location = &loc
	}
	if updates.GPSCoordinate != nil {
		u.GPSCoordinate = *updates.GPSCoordinate
	}
	if updates.PreferredPesticideBrand != nil {
		u.PreferredPesticideBrand = cloneOrClear(updates.PreferredPesticideBrand)
	}
	if updates.FarmInfrastructure != nil {
		u.FarmInfrastructure = cloneOrClear(updates.FarmInfrastructure)
	}
	if updates.IrrigationType != nil {
		u.IrrigationType = *updates.IrrigationType
	}
	if updates.Certifications != nil {
		u.Certifications = cloneOrClear(updates.Certifications)
	}

	if updates.Designation != nil {
		u.Designation = *updates.Designation
	}
	if updates.Department != nil {
		u.Department = *updates.Department
	}
	if updates.RegionScope != nil {
		u.RegionScope = *updates.RegionScope
	}
	if updates.OfficialEmail != nil {
		u.OfficialEmail = *updates.OfficialEmail
	}
}

func cloneOrClear(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
