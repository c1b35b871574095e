package auth

import (
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())

	token, err := IssueToken("test-secret", userID)
	require.NoError(t, err)

	parsed, err := VerifyToken("test-secret", token)
	require.NoError(t, err)
	assert.Equal(t, userID, parsed)
}

func TestTokenWrongSecret(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())

	token, err := IssueToken("test-secret", userID)
	require.NoError(t, err)

	_, err = VerifyToken("other-secret", token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenGarbage(t *testing.T) {
	_, err := VerifyToken("test-secret", "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter2hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2hunter2", hash)

	assert.True(t, CheckPassword(hash, "hunter2hunter2"))
	assert.False(t, CheckPassword(hash, "wrong-password"))
}
