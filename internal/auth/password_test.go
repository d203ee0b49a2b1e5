package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("password123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	require.NotEqual(t, "password123", hash)

	require.True(t, CheckPassword("password123", hash))
	require.False(t, CheckPassword("password124", hash))
	require.False(t, CheckPassword("", hash))
}

func TestHashPassword_SaltUniqueness(t *testing.T) {
	h1, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	h2, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)

	require.NotEqual(t, h1, h2, "two hashes of the same password must differ")
	require.True(t, CheckPassword("correct horse battery staple", h1))
	require.True(t, CheckPassword("correct horse battery staple", h2))
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	require.False(t, CheckPassword("password123", "not-a-bcrypt-hash"))
	require.False(t, CheckPassword("password123", ""))
}
