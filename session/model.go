package session

import "time"

// Role distinguishes the two dashboard audiences. The set is closed.
type Role string

const (
	// RoleFarmer marks accounts that manage their own fields and crops.
	RoleFarmer Role = "farmer"
	// RoleGovernment marks agricultural department accounts with a region scope.
	RoleGovernment Role = "government"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleFarmer || r == RoleGovernment
}

// FarmerType is the self-declared scale of a farmer's operation.
type FarmerType string

const (
	// FarmerSmallScale is an exported FarmerType value.
	FarmerSmallScale FarmerType = "small-scale"
	// FarmerMediumScale is an exported FarmerType value.
	FarmerMediumScale FarmerType = "medium-scale"
	// FarmerLargeScale is an exported FarmerType value.
	FarmerLargeScale FarmerType = "large-scale"
)

// Language is a UI language preference.
type Language string

const (
	// LanguageEnglish is an exported Language value.
	LanguageEnglish Language = "en"
	// LanguageHindi is an exported Language value.
	LanguageHindi Language = "hi"
	// LanguageOdia is an exported Language value.
	LanguageOdia Language = "od"
)

// Valid reports whether l is one of the supported languages.
func (l Language) Valid() bool {
	return l == LanguageEnglish || l == LanguageHindi || l == LanguageOdia
}

// Theme is a UI theme preference. ThemeSystem defers to the host.
type Theme string

const (
	// ThemeLight is an exported Theme value.
	ThemeLight Theme = "light"
	// ThemeDark is an exported Theme value.
	ThemeDark Theme = "dark"
	// ThemeSystem is an exported Theme value.
	ThemeSystem Theme = "system"
)

// Valid reports whether t is one of the supported themes.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark || t == ThemeSystem
}

// Location places a farm administratively, down to the village.
type Location struct {
	Country  string `json:"country"`
	State    string `json:"state"`
	District string `json:"district"`
	Village  string `json:"village"`
}

// User is the authenticated identity snapshot the engine holds in memory and
// mirrors to storage. Field names in JSON match the persisted layout of the
// GreenPulse web client, so an existing browser session survives a swap of
// implementations.
//
// Farmer-specific and government-specific fields are optional and only
// populated for the matching role.
type User struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`
	Role        Role   `json:"role"`

	Language Language `json:"language"`
	Theme    Theme    `json:"theme"`

	// Farmer-specific.
	FarmerType              FarmerType `json:"farmerType,omitempty"`
	CropsGrown              []string   `json:"cropsGrown,omitempty"`
	FieldArea               float64    `json:"fieldArea,omitempty"`
	Location                *Location  `json:"location,omitempty"`
	GPSCoordinate           string     `json:"gpsCoordinate,omitempty"`
	PreferredPesticideBrand []string   `json:"preferredPesticideBrands,omitempty"`
	FarmInfrastructure      []string   `json:"farmInfrastructure,omitempty"`
	IrrigationType          string     `json:"irrigationType,omitempty"`
	Certifications          []string   `json:"certifications,omitempty"`

	// Government-specific.
	Designation   string `json:"designation,omitempty"`
	Department    string `json:"department,omitempty"`
	RegionScope   string `json:"regionScope,omitempty"`
	OfficialEmail string `json:"officialEmail,omitempty"`

	ProfileComplete bool      `json:"profileComplete"`
	CreatedAt       time.Time `json:"createdAt"`
	LastLogin       time.Time `json:"lastLogin,omitzero"`
}

// Clone returns a deep copy of u. The engine hands out clones so callers
// cannot mutate the current session behind its back.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}

	c := *u
	c.CropsGrown = cloneStrings(u.CropsGrown)
	c.PreferredPesticideBrand = cloneStrings(u.PreferredPesticideBrand)
	c.FarmInfrastructure = cloneStrings(u.FarmInfrastructure)
	c.Certifications = cloneStrings(u.Certifications)
	if u.Location != nil {
		loc := *u.Location
		c.Location = &loc
	}
	return &c
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
