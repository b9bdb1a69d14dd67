package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRoundTrip(t *testing.T) {
	signed, err := SignSession("s3cret", SessionClaims{SessionID: "abc", APIToken: "tok"}, time.Hour)
	require.NoError(t, err)

	claims, err := ParseSession("s3cret", signed)
	require.NoError(t, err)
	assert.Equal(t, "abc", claims.SessionID)
	assert.Equal(t, "tok", claims.APIToken)
}

func TestParseSessionWrongSecret(t *testing.T) {
	signed, err := SignSession("s3cret", SessionClaims{SessionID: "abc"}, time.Hour)
	require.NoError(t, err)

	_, err = ParseSession("other", signed)
	assert.Error(t, err)
}

func TestParseSessionExpired(t *testing.T) {
	signed, err := SignSession("s3cret", SessionClaims{SessionID: "abc"}, -time.Minute)
	require.NoError(t, err)

	_, err = ParseSession("s3cret", signed)
	assert.Error(t, err)
}

func TestParseSessionMissingSessionID(t *testing.T) {
	signed, err := SignSession("s3cret", SessionClaims{}, time.Hour)
	require.NoError(t, err)

	_, err = ParseSession("s3cret", signed)
	assert.Error(t, err)
}
