package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	for _, password := range []string{"password123", "x", "pässwörd with spaces", strings.Repeat("a", 72)} {
		hash, err := HashPassword(password)
		require.NoError(t, err)
		assert.NotEqual(t, password, hash)

		ok, err := CheckPassword(password, hash)
		require.NoError(t, err)
		assert.True(t, ok, password)

		ok, err = CheckPassword(password+"!", hash)
		require.NoError(t, err)
		assert.False(t, ok, password)
	}
}

func TestHashPassword_Salted(t *testing.T) {
	a, err := HashPassword("same")
	require.NoError(t, err)
	b, err := HashPassword("same")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	ok, err := CheckPassword("secret", "not-a-bcrypt-hash")
	assert.False(t, ok)
	assert.Error(t, err)
}
