package pulseauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

const directoryKeyPrefix = "gpdir"

type redisDirectoryRecord struct {
	User         User   `json:"user"`
	PasswordHash string `json:"password_hash"`
}

// RedisDirectory is a [Directory] whose accounts live in Redis, keyed by
// lowercased email. It lets several clients share one registration pool,
// which the in-memory fixture cannot.
type RedisDirectory struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisDirectory wraps client. The optional prefix isolates deployments;
// when empty, a default is used.
func NewRedisDirectory(client redis.UniversalClient, prefix string) *RedisDirectory {
	if prefix == "" {
		prefix = directoryKeyPrefix
	}
	return &RedisDirectory{
		client: client,
		prefix: prefix,
	}
}

func (d *RedisDirectory) key(email string) string {
	return d.prefix + ":" + strings.ToLower(email)
}

// FindByEmail implements [Directory].
func (d *RedisDirectory) FindByEmail(ctx context.Context, email string) (Account, error) {
	raw, err := d.client.Get(ctx, d.key(email)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Account{}, ErrUserNotFound
		}
		return Account{}, fmt.Errorf("%w: %v", ErrDirectoryUnavailable, err)
	}

	var record redisDirectoryRecord
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		// A corrupt record is indistinguishable from a missing one for the
		// login flow.
		return Account{}, ErrUserNotFound
	}

	return Account{User: record.User, PasswordHash: record.PasswordHash}, nil
}

// Insert implements [Directory]. Registration races on the same email are
// settled by SETNX: exactly one writer wins.
func (d *RedisDirectory) Insert(ctx context.Context, account Account) error {
	raw, err := json.Marshal(redisDirectoryRecord{
		User:         account.User,
		PasswordHash: account.PasswordHash,
	})
	if err != nil {
		return err
	}

	created, err := d.client.SetNX(ctx, d.key(account.User.Email), raw, 0).Result()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDirectoryUnavailable, err)
	}
	if !created {
		return ErrEmailExists
	}
	return nil
}
