package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	service := NewTokenService("test-secret", 24*time.Hour)

	testCases := []struct {
		name  string
		email string
		role  string
	}{
		{"login token", "admin@cornerinspirasi.id", "super_admin"},
		{"editor token", "editor@cornerinspirasi.id", "editor"},
		{"register token without role", "new@cornerinspirasi.id", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			userID := uuid.New()

			token, err := service.Issue(userID, tc.email, tc.role)
			require.NoError(t, err)

			claims, err := service.Verify(token)
			require.NoError(t, err)
			require.Equal(t, userID.String(), claims.UserID)
			require.Equal(t, tc.email, claims.Email)
			require.Equal(t, tc.role, claims.Role)
		})
	}
}

func TestTokenExpiry(t *testing.T) {
	service := NewTokenService("test-secret", 24*time.Hour)

	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return current }

	token, err := service.Issue(uuid.New(), "admin@cornerinspirasi.id", "editor")
	require.NoError(t, err)

	// Still valid just inside the lifetime.
	current = current.Add(23 * time.Hour)
	_, err = service.Verify(token)
	require.NoError(t, err)

	current = current.Add(2 * time.Hour)
	_, err = service.Verify(token)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenTamperDetection(t *testing.T) {
	service := NewTokenService("test-secret", 24*time.Hour)

	token, err := service.Issue(uuid.New(), "admin@cornerinspirasi.id", "editor")
	require.NoError(t, err)

	tampered := []byte(token)
	mid := len(tampered) / 2
	if tampered[mid] == 'A' {
		tampered[mid] = 'B'
	} else {
		tampered[mid] = 'A'
	}

	_, err = service.Verify(string(tampered))
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenRejectsWrongSecretAndGarbage(t *testing.T) {
	service := NewTokenService("test-secret", 24*time.Hour)
	other := NewTokenService("other-secret", 24*time.Hour)

	token, err := service.Issue(uuid.New(), "admin@cornerinspirasi.id", "editor")
	require.NoError(t, err)

	_, err = other.Verify(token)
	require.ErrorIs(t, err, ErrTokenInvalid)

	_, err = service.Verify("not-a-token")
	require.ErrorIs(t, err, ErrTokenInvalid)
}
