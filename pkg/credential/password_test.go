package credential_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/credcheck/pkg/credential"
)

func TestParsePassword(t *testing.T) {
	t.Run("accepts a password meeting the default policy", func(t *testing.T) {
		password, ok := credential.ParsePassword("GoodPass123", nil)
		require.True(t, ok)
		assert.Equal(t, "GoodPass123", password.Reveal())
	})

	t.Run("rejects a short password", func(t *testing.T) {
		password, ok := credential.ParsePassword("short", nil)
		assert.False(t, ok)
		assert.True(t, password.IsZero())
	})

	t.Run("honors a custom predicate", func(t *testing.T) {
		never := func(string) bool { return false }
		_, ok := credential.ParsePassword("GoodPass123", never)
		assert.False(t, ok)
	})
}

func TestPassword_String(t *testing.T) {
	password, ok := credential.ParsePassword("GoodPass123", nil)
	require.True(t, ok)

	t.Run("redacts the secret", func(t *testing.T) {
		assert.Equal(t, "[REDACTED]", password.String())
		assert.NotContains(t, fmt.Sprintf("%v", password), "GoodPass123")
		assert.NotContains(t, fmt.Sprintf("%s", password), "GoodPass123")
	})

	t.Run("Reveal returns the secret", func(t *testing.T) {
		assert.Equal(t, "GoodPass123", password.Reveal())
	})
}

func TestPassword_Hash(t *testing.T) {
	password, ok := credential.ParsePassword("GoodPass123", nil)
	require.True(t, ok)

	t.Run("hash verifies against the original secret", func(t *testing.T) {
		hash, err := password.Hash(bcrypt.MinCost)
		require.NoError(t, err)

		assert.True(t, credential.VerifyPassword(hash, "GoodPass123"))
		assert.False(t, credential.VerifyPassword(hash, "WrongPass123"))
	})

	t.Run("out-of-range cost falls back to the default", func(t *testing.T) {
		hash, err := password.Hash(-1)
		require.NoError(t, err)

		cost, err := bcrypt.Cost(hash)
		require.NoError(t, err)
		assert.Equal(t, bcrypt.DefaultCost, cost)
	})
}
