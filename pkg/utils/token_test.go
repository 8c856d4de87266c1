package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	token, err := CreateSessionToken(42, true)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.True(t, claims.IsAdmin)
}

func TestSessionTokenRejectsTampering(t *testing.T) {
	token, err := CreateSessionToken(42, false)
	require.NoError(t, err)

	_, err = ValidateSessionToken(token + "x")
	assert.Error(t, err)

	_, err = ValidateSessionToken("not-a-token")
	assert.Error(t, err)
}
