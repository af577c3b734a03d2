package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPasswordRoundTrip(t *testing.T) {
	testCases := []struct {
		name     string
		password string
	}{
		{"simple", "admin123"},
		{"empty", ""},
		{"unicode", "käta-sandi-密码-🔒"},
		{"spaces", "correct horse battery staple"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			hash, err := HashPassword(tc.password)
			require.NoError(t, err)
			require.NotEqual(t, tc.password, hash)

			require.True(t, VerifyPassword(tc.password, hash))
			require.False(t, VerifyPassword(tc.password+"x", hash))
		})
	}
}

func TestHashPasswordSaltsEveryCall(t *testing.T) {
	first, err := HashPassword("admin123")
	require.NoError(t, err)

	second, err := HashPassword("admin123")
	require.NoError(t, err)

	require.NotEqual(t, first, second)
	require.True(t, VerifyPassword("admin123", first))
	require.True(t, VerifyPassword("admin123", second))
}

func TestVerifyPasswordRejectsGarbageHash(t *testing.T) {
	require.False(t, VerifyPassword("admin123", "not-a-bcrypt-hash"))
}
