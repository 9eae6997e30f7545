package pulseauth

import (
	"context"

	"github.com/greenpulse/pulseauth/session"
)

// User is the authenticated identity snapshot. See [session.User] for the
// persisted field layout.
type User = session.User

// Location places a farm administratively.
type Location = session.Location

// Role distinguishes farmer and government accounts.
type Role = session.Role

// FarmerType is the self-declared scale of a farmer's operation.
type FarmerType = session.FarmerType

// Language is a UI language preference.
type Language = session.Language

// Theme is a UI theme preference.
type Theme = session.Theme

const (
	// RoleFarmer is an exported Role value.
	RoleFarmer = session.RoleFarmer
	// RoleGovernment is an exported Role value.
	RoleGovernment = session.RoleGovernment

	// FarmerSmallScale is an exported FarmerType value.
	FarmerSmallScale = session.FarmerSmallScale
	// FarmerMediumScale is an exported FarmerType value.
	FarmerMediumScale = session.FarmerMediumScale
	// FarmerLargeScale is an exported FarmerType value.
	FarmerLargeScale = session.FarmerLargeScale

	// LanguageEnglish is an exported Language value.
	LanguageEnglish = session.LanguageEnglish
	// LanguageHindi is an exported Language value.
	LanguageHindi = session.LanguageHindi
	// LanguageOdia is an exported Language value.
	LanguageOdia = session.LanguageOdia

	// ThemeLight is an exported Theme value.
	ThemeLight = session.ThemeLight
	// ThemeDark is an exported Theme value.
	ThemeDark = session.ThemeDark
	// ThemeSystem is an exported Theme value.
	ThemeSystem = session.ThemeSystem
)

// State is the engine's lifecycle position. The machine cycles between
// StateUnauthenticated and StateAuthenticated for the lifetime of the client;
// StateAuthenticating is transient while a login, signup, or restore is in
// flight.
type State int32

const (
	// StateUnauthenticated means no current user.
	StateUnauthenticated State = iota
	// StateAuthenticating means a login, signup, or restore is in flight.
	StateAuthenticating
	// StateAuthenticated means a current user is set.
	StateAuthenticated
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticating:
		return "authenticating"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// SignupData is the full registration payload. Credential fields live only
// here; they are never part of the persisted [User].
type SignupData struct {
	FullName        string
	Email           string
	PhoneNumber     string
	Password        string
	ConfirmPassword string
	DateOfBirth     string
	Role            Role
	Language        Language
	AcceptTerms     bool

	// Farmer-specific.
	FarmerType              FarmerType
	CropsGrown              []string
	FieldArea               float64
	Location                *Location
	GPSCoordinate           string
	PreferredPesticideBrand []string
	FarmInfrastructure      []string
	IrrigationType          string
	Certifications          []string

	// Government-specific.
	Designation   string
	Department    string
	RegionScope   string
	OfficialEmail string
}

// ProfileUpdate is a shallow partial update of the current user. Nil pointer
// fields are left untouched; nil slices are left untouched while empty
// non-nil slices clear the field.
type ProfileUpdate struct {
	FullName    *string
	PhoneNumber *string
	Language    *Language
	Theme       *Theme

	FarmerType              *FarmerType
	CropsGrown              []string
	FieldArea               *float64
	Location                *Location
	GPSCoordinate           *string
	PreferredPesticideBrand []string
	FarmInfrastructure      []string
	IrrigationType          *string
	Certifications          []string

	Designation   *string
	Department    *string
	RegionScope   *string
	OfficialEmail *string
}

// Account pairs a user snapshot with its credential hash. The hash never
// leaves the [Directory]; the engine only passes it to the verifier.
type Account struct {
	User         User
	PasswordHash string
}

// Directory is the user lookup table behind a narrow interface, so the
// bundled in-memory fixture can later be swapped for a persistent datastore
// without touching the engine's control flow. Lookups are case-insensitive
// on email.
type Directory interface {
	// FindByEmail returns the account registered under email, or
	// [ErrUserNotFound].
	FindByEmail(ctx context.Context, email string) (Account, error)
	// Insert registers a new account, or returns [ErrEmailExists].
	Insert(ctx context.Context, account Account) error
}
