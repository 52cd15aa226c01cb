package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	passwordHash, err := HashPassword("sr")
	require.NoError(t, err)
	assert.NotEmpty(t, passwordHash)
	assert.True(t, CheckPasswordHash("sr", passwordHash))
	assert.False(t, CheckPasswordHash("other", passwordHash))
}

func TestCheckPasswordHash_MalformedHash(t *testing.T) {
	// a broken stored hash must behave exactly like a mismatch
	assert.False(t, CheckPasswordHash("sr", "not-a-bcrypt-hash"))
	assert.False(t, CheckPasswordHash("sr", ""))
}
