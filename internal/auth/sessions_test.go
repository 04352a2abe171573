// internal/auth/sessions_test.go
package auth

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"internship-allocator/internal/common/errors"
)

func TestSessionStore_CreateUsesTTL(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := NewSessionStore(db, time.Hour)

	mock.Regexp().ExpectSet(`session:.+`, `.+`, time.Hour).SetVal("OK")

	token, err := store.Create(context.Background(), "hr.it@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionStore_LookupRefreshesTTL(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := NewSessionStore(db, time.Hour)

	mock.ExpectGet("session:tok-1").SetVal("hr.it@example.com")
	mock.ExpectExpire("session:tok-1", time.Hour).SetVal(true)

	email, err := store.Lookup(context.Background(), "tok-1")
	require.NoError(t, err)
	assert.Equal(t, "hr.it@example.com", email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionStore_LookupUnknownToken(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := NewSessionStore(db, time.Hour)

	mock.ExpectGet("session:ghost").RedisNil()

	_, err := store.Lookup(context.Background(), "ghost")
	assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidToken))
}

func TestSessionStore_Delete(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := NewSessionStore(db, time.Hour)

	mock.ExpectDel("session:tok-1").SetVal(1)

	require.NoError(t, store.Delete(context.Background(), "tok-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
