package storage

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

func TestRedisStore(t *testing.T) {
	mr, client := newTestRedis(t)
	kv := NewRedisStore(client, "gp")
	ctx := context.Background()

	if _, err := kv.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get missing key error = %v, want ErrNotFound", err)
	}

	if err := kv.Set(ctx, "greenpulse-session", "token"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	// The prefix is applied on the wire.
	if got, err := mr.Get("gp:greenpulse-session"); err != nil || got != "token" {
		t.Fatalf("raw key = %q (%v), want %q", got, err, "token")
	}

	value, err := kv.Get(ctx, "greenpulse-session")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if value != "token" {
		t.Fatalf("Get = %q, want %q", value, "token")
	}

	if err := kv.Delete(ctx, "greenpulse-session"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := kv.Get(ctx, "greenpulse-session"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get after delete error = %v, want ErrNotFound", err)
	}
}

func TestRedisStoreNoPrefix(t *testing.T) {
	mr, client := newTestRedis(t)
	kv := NewRedisStore(client, "")
	ctx := context.Background()

	if err := kv.Set(ctx, "greenpulse-user", "snapshot"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got, err := mr.Get("greenpulse-user"); err != nil || got != "snapshot" {
		t.Fatalf("raw key = %q (%v), want %q", got, err, "snapshot")
	}
}

func TestRedisStoreUnavailable(t *testing.T) {
	mr, client := newTestRedis(t)
	kv := NewRedisStore(client, "gp")
	ctx := context.Background()

	mr.Close()

	if _, err := kv.Get(ctx, "any"); !errors.Is(err, ErrRedisUnavailable) {
		t.Fatalf("Get error = %v, want ErrRedisUnavailable", err)
	}
	if err := kv.Set(ctx, "any", "value"); !errors.Is(err, ErrRedisUnavailable) {
		t.Fatalf("Set error = %v, want ErrRedisUnavailable", err)
	}
	if err := kv.Delete(ctx, "any"); !errors.Is(err, ErrRedisUnavailable) {
		t.Fatalf("Delete error = %v, want ErrRedisUnavailable", err)
	}
}
