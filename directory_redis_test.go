package pulseauth

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, redis.UniversalClient) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisDirectory(t *testing.T) {
	_, client := newTestRedis(t)
	dir := NewRedisDirectory(client, "")
	ctx := context.Background()

	if _, err := dir.FindByEmail(ctx, "nobody@example.com"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("lookup of unknown email = %v, want ErrUserNotFound", err)
	}

	account := Account{
		User: User{
			ID:         "10",
			Email:      "Anita@Example.com",
			FullName:   "Anita Das",
			Role:       RoleFarmer,
			FarmerType: FarmerSmallScale,
			CropsGrown: []string{"Rice"},
		},
		PasswordHash: "$argon2id$stub",
	}
	if err := dir.Insert(ctx, account); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	got, err := dir.FindByEmail(ctx, "anita@example.com")
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if got.User.FullName != "Anita Das" || got.PasswordHash != "$argon2id$stub" {
		t.Fatalf("found account = %+v", got)
	}
	if got.User.FarmerType != FarmerSmallScale || len(got.User.CropsGrown) != 1 {
		t.Fatalf("profile fields did not round-trip: %+v", got.User)
	}

	dup := Account{User: User{ID: "11", Email: "ANITA@example.com"}}
	if err := dir.Insert(ctx, dup); !errors.Is(err, ErrEmailExists) {
		t.Fatalf("duplicate Insert = %v, want ErrEmailExists", err)
	}
}

func TestRedisDirectoryCorruptRecord(t *testing.T) {
	mr, client := newTestRedis(t)
	dir := NewRedisDirectory(client, "gpdir")

	if err := mr.Set("gpdir:broken@example.com", "{not json"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	if _, err := dir.FindByEmail(context.Background(), "broken@example.com"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("corrupt record lookup = %v, want ErrUserNotFound", err)
	}
}

func TestRedisDirectoryUnavailable(t *testing.T) {
	mr, client := newTestRedis(t)
	dir := NewRedisDirectory(client, "")
	ctx := context.Background()

	mr.Close()

	if _, err := dir.FindByEmail(ctx, "any@example.com"); !errors.Is(err, ErrDirectoryUnavailable) {
		t.Fatalf("FindByEmail = %v, want ErrDirectoryUnavailable", err)
	}
	err := dir.Insert(ctx, Account{User: User{ID: "1", Email: "any@example.com"}})
	if !errors.Is(err, ErrDirectoryUnavailable) {
		t.Fatalf("Insert = %v, want ErrDirectoryUnavailable", err)
	}
}

func TestEngineOverRedisDirectory(t *testing.T) {
	_, client := newTestRedis(t)
	dir := NewRedisDirectory(client, "")
	ctx := context.Background()

	engine := newTestEngine(t, func(b *Builder) { b.WithDirectory(dir) })

	if err := engine.Signup(ctx, validFarmerSignup()); err != nil {
		t.Fatalf("Signup: %v", err)
	}
	engine.Logout(ctx)

	if err := engine.Login(ctx, "anita@example.com", "Sunrise99", RoleFarmer); err != nil {
		t.Fatalf("login after signup through Redis directory: %v", err)
	}
}
