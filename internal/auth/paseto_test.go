package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPasetoService(t *testing.T) *PasetoService {
	t.Helper()

	svc, err := NewPasetoService([]byte("0123456789abcdef0123456789abcdef"))
	require.NoError(t, err)
	return svc
}

func TestNewPasetoService_KeyLength(t *testing.T) {
	_, err := NewPasetoService([]byte("too-short"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "32 bytes")

	_, err = NewPasetoService([]byte("0123456789abcdef0123456789abcdef"))
	require.NoError(t, err)
}

func TestPasetoService_Roundtrip(t *testing.T) {
	svc := testPasetoService(t)

	token, err := svc.CreateToken(42, "alice", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.VerifyToken(token)
	require.NoError(t, err)

	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.WithinDuration(t, time.Now(), claims.IssuedAt, 5*time.Second)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, 5*time.Second)
}

func TestPasetoService_WrongKey(t *testing.T) {
	svc := testPasetoService(t)

	token, err := svc.CreateToken(1, "alice", time.Hour)
	require.NoError(t, err)

	other, err := NewPasetoService([]byte("ffffffffffffffffffffffffffffffff"))
	require.NoError(t, err)

	_, err = other.VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasetoService_ExpiredToken(t *testing.T) {
	svc := testPasetoService(t)

	token, err := svc.CreateToken(1, "alice", -time.Minute)
	require.NoError(t, err)

	_, err = svc.VerifyToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestPasetoService_GarbageToken(t *testing.T) {
	svc := testPasetoService(t)

	_, err := svc.VerifyToken("not-a-paseto-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
