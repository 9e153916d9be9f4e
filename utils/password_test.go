package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret-pass", hash)

	assert.NoError(t, VerifyPassword(hash, "s3cret-pass"))
	assert.Error(t, VerifyPassword(hash, "wrong-pass"))
	assert.Error(t, VerifyPassword(hash, ""))
}
