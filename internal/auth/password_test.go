package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := hashPassword("pw123")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(hash, "$argon2id$"), "hash should be argon2id encoded")
	assert.NotContains(t, hash, "pw123", "hash must not contain the plaintext password")
	assert.True(t, verifyPassword(hash, "pw123"))
	assert.False(t, verifyPassword(hash, "wrong-password"))
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	first, err := hashPassword("same-password")
	require.NoError(t, err)

	second, err := hashPassword("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "two hashes of the same password should differ")
	assert.True(t, verifyPassword(first, "same-password"))
	assert.True(t, verifyPassword(second, "same-password"))
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	tests := []struct {
		name string
		hash string
	}{
		{"empty", ""},
		{"plaintext", "pw123"},
		{"wrong part count", "$argon2id$v=19$pw123"},
		{"bad params", "$argon2id$v=19$garbage$c2FsdA$aGFzaA"},
		{"bad base64 salt", "$argon2id$v=19$m=65536,t=3,p=4$!!!$aGFzaA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, verifyPassword(tt.hash, "pw123"))
		})
	}
}
