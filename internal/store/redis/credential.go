package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/hblboard/hblboard/internal/credential"
)

// Store persists the single credential blob in Redis: one opaque blob,
// read once at startup, written on authentication, cleared on sign-out or
// corruption.
type Store struct {
	client *redis.Client
}

// NewStore creates a Redis-backed credential store.
func NewStore(client *redis.Client) *Store {
	return &Store{
		client: client,
	}
}

// Save writes the credential blob.
func (s *Store) Save(ctx context.Context, cred *credential.Credential) error {
	data, err := json.Marshal(cred)
	if err != nil {
		return fmt.Errorf("failed to marshal credential: %w", err)
	}

	// No TTL: the token's expiry is unknown to us and only manifests as
	// authentication failures upstream.
	if err := s.client.Set(ctx, KeyCredential, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save credential: %w", err)
	}
	return nil
}

// Load reads the credential blob. Returns credential.ErrNotFound when none
// is stored and credential.ErrMalformed when the stored value does not
// parse or is incomplete.
func (s *Store) Load(ctx context.Context) (*credential.Credential, error) {
	data, err := s.client.Get(ctx, KeyCredential).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, credential.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load credential: %w", err)
	}

	var cred credential.Credential
	if err := json.Unmarshal(data, &cred); err != nil {
		return nil, fmt.Errorf("%w: %v", credential.ErrMalformed, err)
	}
	if cred.Token == "" {
		return nil, fmt.Errorf("%w: stored blob has no token", credential.ErrMalformed)
	}

	return &cred, nil
}

// Clear removes the credential blob. Clearing an absent blob is not an
// error.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, KeyCredential).Err(); err != nil {
		return fmt.Errorf("failed to clear credential: %w", err)
	}
	return nil
}
