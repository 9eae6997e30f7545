package pulseauth

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/greenpulse/pulseauth/password"
)

// MemoryDirectory is an in-process [Directory] keyed by lowercased email.
// It is the mock backing store standing in for a real backend.
type MemoryDirectory struct {
	mu      sync.RWMutex
	byEmail map[string]Account
}

// NewMemoryDirectory creates an empty MemoryDirectory.
func NewMemoryDirectory() *MemoryDirectory {
	return &MemoryDirectory{
		byEmail: map[string]Account{},
	}
}

// FindByEmail implements [Directory].
func (d *MemoryDirectory) FindByEmail(_ context.Context, email string) (Account, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	account, ok := d.byEmail[strings.ToLower(email)]
	if !ok {
		return Account{}, ErrUserNotFound
	}
	return account, nil
}

// Insert implements [Directory].
func (d *MemoryDirectory) Insert(_ context.Context, account Account) error {
	key := strings.ToLower(account.User.Email)

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.byEmail[key]; exists {
		return ErrEmailExists
	}
	d.byEmail[key] = account
	return nil
}

// DemoPassword is the shared fixed credential of the two seed accounts.
const DemoPassword = "password123"

// SeedDemoDirectory builds the two-account demonstration fixture: one farmer
// and one government user, both authenticating with [DemoPassword]. The
// hasher is used so the directory only ever holds credential hashes.
func SeedDemoDirectory(hasher *password.Argon2) (*MemoryDirectory, error) {
	hash, err := hasher.Hash(DemoPassword)
	if err != nil {
		return nil, err
	}

	d := NewMemoryDirectory()
	ctx := context.Background()

	farmer := Account{
		User: User{
			ID:          "1",
			Email:       "farmer@test.com",
			FullName:    "Rajesh Kumar",
			PhoneNumber: "+91 9876543210",
			Role:        RoleFarmer,
			FarmerType:  FarmerMediumScale,
			Language:    LanguageEnglish,
			Theme:       ThemeSystem,
			CropsGrown:  []string{"Rice", "Wheat", "Sugarcane"},
			FieldArea:   25,
			Location: &Location{
				Country:  "India",
				State:    "Odisha",
				District: "Cuttack",
				Village:  "Salipur",
			},
			GPSCoordinate:      "20.4625, 85.9189",
			IrrigationType:     "Drip",
			FarmInfrastructure: []string{"Tractor", "Drip Irrigation"},
			ProfileComplete:    true,
			CreatedAt:          time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		},
		PasswordHash: hash,
	}

	government := Account{
		User: User{
			ID:              "2",
			Email:           "gov@test.com",
			FullName:        "Dr. Priya Sharma",
			PhoneNumber:     "+91 9876543211",
			Role:            RoleGovernment,
			Language:        LanguageEnglish,
			Theme:           ThemeSystem,
			Designation:     "Agricultural Officer",
			Department:      "Department of Agriculture",
			RegionScope:     "Cuttack District",
			OfficialEmail:   "priya.sharma@gov.od.in",
			ProfileComplete: true,
			CreatedAt:       time.Date(2024, 1, 10, 9, 15, 0, 0, time.UTC),
		},
		PasswordHash: hash,
	}

	if err := d.Insert(ctx, farmer); err != nil {
		return nil, err
	}
	if err := d.Insert(ctx, government); err != nil {
		return nil, err
	}
	return d, nil
}
