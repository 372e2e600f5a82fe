package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT(42, "test-secret", 60)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := VerifyJWT(token, "test-secret")
	require.NoError(t, err)
	assert.EqualValues(t, 42, userID)
}

func TestVerifyJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWT(42, "test-secret", 60)
	require.NoError(t, err)

	_, err = VerifyJWT(token, "other-secret")
	assert.Error(t, err)
}

func TestVerifyJWTExpired(t *testing.T) {
	token, err := GenerateJWT(42, "test-secret", -5)
	require.NoError(t, err)

	_, err = VerifyJWT(token, "test-secret")
	assert.Error(t, err)
}

func TestVerifyJWTGarbage(t *testing.T) {
	_, err := VerifyJWT("not-a-token", "test-secret")
	assert.Error(t, err)
}
