package auth

import (
	"testing"
	"time"

	"github.com/gdugdh24/matrimony-backend/internal/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestTokenManager_RoundTrip(t *testing.T) {
	m := NewTokenManager(testSecret, time.Hour)

	token, expiresAt, err := m.Issue(42)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	userID, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, 42, userID)
}

func TestTokenManager_Expired(t *testing.T) {
	m := NewTokenManager(testSecret, time.Minute)
	issued := time.Now().Add(-time.Hour)
	m.now = func() time.Time { return issued }

	token, _, err := m.Issue(1)
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.Parse(token)
	require.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	token, _, err := NewTokenManager(testSecret, time.Hour).Issue(1)
	require.NoError(t, err)

	_, err = NewTokenManager("another-secret-another-secret-xx", time.Hour).Parse(token)
	require.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestTokenManager_RejectsOtherAlgorithms(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"uid": 1}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewTokenManager(testSecret, time.Hour).Parse(token)
	require.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestTokenManager_Garbage(t *testing.T) {
	_, err := NewTokenManager(testSecret, time.Hour).Parse("not-a-token")
	require.ErrorIs(t, err, domain.ErrInvalidToken)
}
