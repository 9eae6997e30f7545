package pulseauth

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryDirectory(t *testing.T) {
	dir := NewMemoryDirectory()
	ctx := context.Background()

	if _, err := dir.FindByEmail(ctx, "nobody@example.com"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("lookup of unknown email = %v, want ErrUserNotFound", err)
	}

	account := Account{
		User:         User{ID: "10", Email: "Mixed@Example.com", Role: RoleFarmer},
		PasswordHash: "hash",
	}
	if err := dir.Insert(ctx, account); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	// Lookups are case-insensitive on email.
	got, err := dir.FindByEmail(ctx, "mixed@example.COM")
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if got.User.ID != "10" || got.PasswordHash != "hash" {
		t.Fatalf("found account = %+v", got)
	}

	dup := Account{User: User{ID: "11", Email: "MIXED@example.com"}}
	if err := dir.Insert(ctx, dup); !errors.Is(err, ErrEmailExists) {
		t.Fatalf("duplicate Insert = %v, want ErrEmailExists", err)
	}
}

func TestSeedDemoDirectory(t *testing.T) {
	hasher := testHasher(t)
	dir, err := SeedDemoDirectory(hasher)
	if err != nil {
		t.Fatalf("SeedDemoDirectory: %v", err)
	}
	ctx := context.Background()

	farmer, err := dir.FindByEmail(ctx, "farmer@test.com")
	if err != nil {
		t.Fatalf("farmer lookup: %v", err)
	}
	if farmer.User.Role != RoleFarmer || farmer.User.FullName != "Rajesh Kumar" {
		t.Errorf("farmer = %+v", farmer.User)
	}
	if len(farmer.User.CropsGrown) != 3 {
		t.Errorf("farmer crops = %v", farmer.User.CropsGrown)
	}

	gov, err := dir.FindByEmail(ctx, "gov@test.com")
	if err != nil {
		t.Fatalf("government lookup: %v", err)
	}
	if gov.User.Role != RoleGovernment || gov.User.OfficialEmail != "priya.sharma@gov.od.in" {
		t.Errorf("government user = %+v", gov.User)
	}

	// Only hashes are stored, and they verify the shared demo credential.
	if farmer.PasswordHash == DemoPassword {
		t.Fatal("fixture stored the plaintext password")
	}
	ok, err := hasher.Verify(DemoPassword, farmer.PasswordHash)
	if err != nil || !ok {
		t.Fatalf("demo password did not verify: ok=%v err=%v", ok, err)
	}
}
