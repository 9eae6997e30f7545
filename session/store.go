package session

import (
	"context"
	"errors"

	"github.com/greenpulse/pulseauth/storage"
)

const (
	userEntrySuffix  = "-user"
	tokenEntrySuffix = "-session"
)

// Store mirrors the current user snapshot and session token into a
// [storage.Store] under two fixed entry names, "<namespace>-user" and
// "<namespace>-session". It never interprets storage failures itself; the
// engine decides whether to degrade or surface them.
type Store struct {
	kv       storage.Store
	userKey  string
	tokenKey string
}

// NewStore creates a Store persisting under the given namespace.
func NewStore(kv storage.Store, namespace string) *Store {
	return &Store{
		kv:       kv,
		userKey:  namespace + userEntrySuffix,
		tokenKey: namespace + tokenEntrySuffix,
	}
}

// Save writes both entries, overwriting any previous session unconditionally.
// When the user entry writes but the token entry fails the persisted state is
// torn; Load treats that as no session, so a torn write cannot resurrect a
// half-session.
func (s *Store) Save(ctx context.Context, u *User, token string) error {
	snapshot, err := EncodeUser(u)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, s.userKey, snapshot); err != nil {
		return err
	}
	return s.kv.Set(ctx, s.tokenKey, token)
}

// Load reads both entries and decodes them. Absent or malformed entries come
// back as nils with no error; the error return is reserved for the store
// being unavailable.
func (s *Store) Load(ctx context.Context) (*User, *Token, error) {
	snapshot, err := s.kv.Get(ctx, s.userKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil, nil
		}
		return nil, nil, err
	}

	opaque, err := s.kv.Get(ctx, s.tokenKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil, nil
		}
		return nil, nil, err
	}

	return DecodeUser(snapshot), DecodeToken(opaque), nil
}

// Clear erases both entries. Clearing an empty store is a no-op, so Clear is
// idempotent.
func (s *Store) Clear(ctx context.Context) error {
	userErr := s.kv.Delete(ctx, s.userKey)
	tokenErr := s.kv.Delete(ctx, s.tokenKey)
	return errors.Join(userErr, tokenErr)
}
