package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret")

	token, err := GenerateToken("65f1c0ffee0000000000abcd", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "65f1c0ffee0000000000abcd", claims.ID)
	assert.Equal(t, "admin", claims.Role)
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret")

	token, err := GenerateToken("someid", "personel")
	require.NoError(t, err)

	_, err = ValidateToken(token + "x")
	assert.Error(t, err)

	_, err = ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "first_secret")
	token, err := GenerateToken("someid", "personel")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "second_secret")
	_, err = ValidateToken(token)
	assert.Error(t, err)
}
