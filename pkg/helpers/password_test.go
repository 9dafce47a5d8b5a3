package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("test123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "test123", hash)

	// Salted: two hashes of the same password differ.
	hash2, err := HashPassword("test123")
	require.NoError(t, err)
	assert.NotEqual(t, hash, hash2)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 12, cost)
}

func TestCompareHashAndPassword(t *testing.T) {
	hash, err := HashPassword("test123")
	require.NoError(t, err)

	assert.True(t, CompareHashAndPassword(hash, "test123"))
	assert.False(t, CompareHashAndPassword(hash, "wrong"))
	assert.False(t, CompareHashAndPassword("", "test123"))
}
