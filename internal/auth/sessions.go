// internal/auth/sessions.go
package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"internship-allocator/internal/common/errors"
)

const sessionKeyPrefix = "session:"

// SessionStore keeps bearer tokens in Redis with a rolling TTL so sessions
// survive a server restart and expire on their own.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{client: client, ttl: ttl}
}

// Create mints a new opaque token bound to the given email.
func (s *SessionStore) Create(ctx context.Context, email string) (string, error) {
	token := uuid.New().String()
	if err := s.client.Set(ctx, sessionKeyPrefix+token, email, s.ttl).Err(); err != nil {
		return "", errors.NewSessionStoreFailedError(err)
	}
	return token, nil
}

// Lookup resolves a token to its email and refreshes the TTL. An unknown or
// expired token yields an invalid-token error.
func (s *SessionStore) Lookup(ctx context.Context, token string) (string, error) {
	email, err := s.client.Get(ctx, sessionKeyPrefix+token).Result()
	if err == redis.Nil {
		return "", errors.NewInvalidTokenError()
	}
	if err != nil {
		return "", errors.NewSessionStoreFailedError(err)
	}
	// Best-effort refresh: a failed EXPIRE only shortens the session.
	s.client.Expire(ctx, sessionKeyPrefix+token, s.ttl)
	return email, nil
}

// Delete removes a token. Deleting an unknown token is not an error.
func (s *SessionStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
		return errors.NewSessionStoreFailedError(err)
	}
	return nil
}
