package pulseauth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/greenpulse/pulseauth/session"
	"github.com/greenpulse/pulseauth/storage"
)

func TestLoginDemoFarmer(t *testing.T) {
	engine := newTestEngine(t, nil)
	ctx := context.Background()

	if err := engine.Login(ctx, "farmer@test.com", DemoPassword, RoleFarmer); err != nil {
		t.Fatalf("Login: %v", err)
	}

	if !engine.IsAuthenticated() {
		t.Fatal("not authenticated after successful login")
	}
	u := engine.CurrentUser()
	if u == nil {
		t.Fatal("CurrentUser nil after login")
	}
	if u.FullName != "Rajesh Kumar" {
		t.Errorf("FullName = %q", u.FullName)
	}
	if u.Role != RoleFarmer {
		t.Errorf("Role = %q", u.Role)
	}
	if u.FarmerType != FarmerMediumScale {
		t.Errorf("FarmerType = %q", u.FarmerType)
	}
	if !u.ProfileComplete {
		t.Error("ProfileComplete false for the seeded farmer")
	}
	if !u.LastLogin.Equal(testTime) {
		t.Errorf("LastLogin = %v, want %v", u.LastLogin, testTime)
	}
}

func TestLoginDemoGovernment(t *testing.T) {
	engine := newTestEngine(t, nil)

	if err := engine.Login(context.Background(), "gov@test.com", DemoPassword, RoleGovernment); err != nil {
		t.Fatalf("Login: %v", err)
	}
	u := engine.CurrentUser()
	if u.Designation != "Agricultural Officer" {
		t.Errorf("Designation = %q", u.Designation)
	}
	if u.Department != "Department of Agriculture" {
		t.Errorf("Department = %q", u.Department)
	}
}

func TestLoginEmailCaseInsensitive(t *testing.T) {
	engine := newTestEngine(t, nil)

	if err := engine.Login(context.Background(), "Farmer@Test.COM", DemoPassword, RoleFarmer); err != nil {
		t.Fatalf("Login with mixed-case email: %v", err)
	}
}

func TestLoginInvalidEmailShape(t *testing.T) {
	dir := &countingDirectory{inner: seedTestDirectory(t)}
	engine := newTestEngine(t, func(b *Builder) { b.WithDirectory(dir) })

	err := engine.Login(context.Background(), "not-an-email", DemoPassword, RoleFarmer)
	if !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("error = %v, want ErrInvalidEmail", err)
	}
	if dir.finds != 0 {
		t.Errorf("directory consulted %d times for an invalid email", dir.finds)
	}
	if engine.IsAuthenticated() {
		t.Fatal("authenticated after rejected login")
	}
}

func TestLoginFailures(t *testing.T) {
	cases := []struct {
		name     string
		email    string
		password string
		role     Role
	}{
		{"unknown email", "stranger@test.com", DemoPassword, RoleFarmer},
		{"wrong password", "farmer@test.com", "Password999", RoleFarmer},
		{"role mismatch", "farmer@test.com", DemoPassword, RoleGovernment},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			engine := newTestEngine(t, nil)

			err := engine.Login(context.Background(), tc.email, tc.password, tc.role)
			if !errors.Is(err, ErrInvalidCredentials) {
				t.Fatalf("error = %v, want ErrInvalidCredentials", err)
			}
			if engine.IsAuthenticated() {
				t.Fatal("authenticated after rejected login")
			}
			if engine.CurrentUser() != nil {
				t.Fatal("CurrentUser non-nil after rejected login")
			}
		})
	}
}

func TestLoginFailureKeepsExistingSession(t *testing.T) {
	engine := newTestEngine(t, nil)
	ctx := context.Background()

	if err := engine.Login(ctx, "farmer@test.com", DemoPassword, RoleFarmer); err != nil {
		t.Fatalf("Login: %v", err)
	}

	err := engine.Login(ctx, "farmer@test.com", "Wrong12345", RoleFarmer)
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("error = %v, want ErrInvalidCredentials", err)
	}

	if !engine.IsAuthenticated() {
		t.Fatal("rejected login cleared the existing session")
	}
	if u := engine.CurrentUser(); u == nil || u.Email != "farmer@test.com" {
		t.Fatalf("existing session user = %+v", u)
	}
}

func TestLoginPersistsSession(t *testing.T) {
	kv := storage.NewMemoryStore()
	engine := newTestEngine(t, func(b *Builder) { b.WithStorage(kv) })
	ctx := context.Background()

	if err := engine.Login(ctx, "farmer@test.com", DemoPassword, RoleFarmer); err != nil {
		t.Fatalf("Login: %v", err)
	}

	snapshot, err := kv.Get(ctx, "greenpulse-user")
	if err != nil {
		t.Fatalf("user entry missing: %v", err)
	}
	if u := session.DecodeUser(snapshot); u == nil || u.Email != "farmer@test.com" {
		t.Fatalf("persisted user = %+v", u)
	}

	opaque, err := kv.Get(ctx, "greenpulse-session")
	if err != nil {
		t.Fatalf("session entry missing: %v", err)
	}
	tok := session.DecodeToken(opaque)
	if tok == nil {
		t.Fatal("persisted token did not decode")
	}
	if tok.UserID != "1" {
		t.Errorf("token user = %q, want %q", tok.UserID, "1")
	}
	wantExp := testTime.UnixMilli() + (24 * time.Hour).Milliseconds()
	if tok.ExpiresAt != wantExp {
		t.Errorf("token exp = %d, want %d", tok.ExpiresAt, wantExp)
	}
}

func TestLoginOverwritesPreviousSession(t *testing.T) {
	kv := storage.NewMemoryStore()
	engine := newTestEngine(t, func(b *Builder) { b.WithStorage(kv) })
	ctx := context.Background()

	if err := engine.Login(ctx, "farmer@test.com", DemoPassword, RoleFarmer); err != nil {
		t.Fatalf("first Login: %v", err)
	}
	if err := engine.Login(ctx, "gov@test.com", DemoPassword, RoleGovernment); err != nil {
		t.Fatalf("second Login: %v", err)
	}

	if u := engine.CurrentUser(); u.Email != "gov@test.com" {
		t.Fatalf("CurrentUser = %q after second login", u.Email)
	}
	snapshot, err := kv.Get(ctx, "greenpulse-user")
	if err != nil {
		t.Fatalf("user entry missing: %v", err)
	}
	if u := session.DecodeUser(snapshot); u == nil || u.Email != "gov@test.com" {
		t.Fatalf("persisted user = %+v, want the second login", u)
	}
}

func TestLoginStorageFailureStillAuthenticates(t *testing.T) {
	broken := &brokenStore{err: errors.New("backend down")}
	engine := newTestEngine(t, func(b *Builder) {
		b.WithStorage(broken).WithMetricsEnabled(true)
	})

	if err := engine.Login(context.Background(), "farmer@test.com", DemoPassword, RoleFarmer); err != nil {
		t.Fatalf("Login with broken storage: %v", err)
	}
	if !engine.IsAuthenticated() {
		t.Fatal("storage failure prevented authentication")
	}
	snap := engine.MetricsSnapshot()
	if snap.Counters[MetricStorageError] == 0 {
		t.Error("storage failure not counted")
	}
}

func TestLoginSimulatedLatency(t *testing.T) {
	cfg := testConfig()
	cfg.Session.SimulatedLatency = 20 * time.Millisecond

	b := New().WithConfig(cfg).WithDirectory(seedTestDirectory(t))
	engine, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	t.Cleanup(engine.Close)

	start := time.Now()
	if err := engine.Login(context.Background(), "farmer@test.com", DemoPassword, RoleFarmer); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Errorf("login returned after %v, before the simulated round trip", elapsed)
	}
}

// countingDirectory records lookups so tests can assert the directory was not
// consulted.
type countingDirectory struct {
	inner Directory
	finds int
}

func (d *countingDirectory) FindByEmail(ctx context.Context, email string) (Account, error) {
	d.finds++
	return d.inner.FindByEmail(ctx, email)
}

func (d *countingDirectory) Insert(ctx context.Context, account Account) error {
	return d.inner.Insert(ctx, account)
}
