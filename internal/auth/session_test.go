package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionManager_TokenRoundTrip(t *testing.T) {
	manager := NewSessionManager()
	userID := uuid.New()

	token, err := manager.IssueToken(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := manager.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)

	// Bearer prefix is tolerated
	got, err = manager.VerifyToken("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestSessionManager_RejectsBadTokens(t *testing.T) {
	manager := NewSessionManager()

	_, err := manager.VerifyToken("not-a-token")
	assert.Error(t, err)

	// Token signed with a different secret
	other := &SessionManager{secret: []byte("other-secret"), ttl: time.Hour}
	token, err := other.IssueToken(uuid.New())
	require.NoError(t, err)

	_, err = manager.VerifyToken(token)
	assert.Error(t, err)
}

func TestSessionManager_RejectsExpiredTokens(t *testing.T) {
	manager := &SessionManager{secret: []byte("test-secret"), ttl: -time.Minute}

	token, err := manager.IssueToken(uuid.New())
	require.NoError(t, err)

	_, err = manager.VerifyToken(token)
	assert.Error(t, err)
}
