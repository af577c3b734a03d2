package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/Nabielworkss/Corner-Inspirasi/internal/database"
	"github.com/Nabielworkss/Corner-Inspirasi/pkg/utils"
)

type fakeUserStore struct {
	users map[string]*database.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*database.User)}
}

func (f *fakeUserStore) GetByEmail(ctx context.Context, email string) (*database.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserStore) Create(ctx context.Context, user *database.User) error {
	user.ID = uuid.New()
	f.users[user.Email] = user
	return nil
}

func (f *fakeUserStore) add(t *testing.T, email, password, role string) *database.User {
	t.Helper()

	hash, err := utils.HashPassword(password)
	require.NoError(t, err)

	user := &database.User{
		ID:           uuid.New(),
		Username:     "tester",
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	f.users[email] = user
	return user
}

type serviceFixture struct {
	service *Service
	store   *fakeUserStore
	clock   *time.Time
}

func newServiceFixture(allowlist ...string) *serviceFixture {
	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	fixture := &serviceFixture{
		store: newFakeUserStore(),
		clock: &current,
	}

	tokens := NewTokenService("test-secret", 24*time.Hour)
	tokens.now = func() time.Time { return current }

	lockout := NewLockoutTracker(5, 15*time.Minute)
	lockout.now = func() time.Time { return current }

	fixture.service = NewService(fixture.store, tokens, lockout, allowlist)
	return fixture
}

func TestLoginSuccess(t *testing.T) {
	fixture := newServiceFixture()
	seeded := fixture.store.add(t, "a@b.com", "correct horse", database.RoleEditor)

	user, token, err := fixture.service.Login(context.Background(), "a@b.com", "correct horse")
	require.NoError(t, err)
	require.Equal(t, seeded.ID, user.ID)

	claims, err := fixture.service.Tokens().Verify(token)
	require.NoError(t, err)
	require.Equal(t, seeded.ID.String(), claims.UserID)
	require.Equal(t, "a@b.com", claims.Email)
	require.Equal(t, database.RoleEditor, claims.Role)
}

func TestLoginUnknownEmailMatchesWrongPassword(t *testing.T) {
	fixture := newServiceFixture()
	fixture.store.add(t, "a@b.com", "correct horse", database.RoleEditor)

	_, _, unknownErr := fixture.service.Login(context.Background(), "ghost@b.com", "whatever")
	_, _, wrongErr := fixture.service.Login(context.Background(), "a@b.com", "wrong")

	require.ErrorIs(t, unknownErr, ErrInvalidCredentials)
	require.ErrorIs(t, wrongErr, ErrInvalidCredentials)
}

func TestLoginUnknownEmailStillCountsTowardLockout(t *testing.T) {
	fixture := newServiceFixture()

	for i := 0; i < 5; i++ {
		_, _, err := fixture.service.Login(context.Background(), "ghost@b.com", "whatever")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	}

	_, _, err := fixture.service.Login(context.Background(), "ghost@b.com", "whatever")
	var rateLimited *RateLimitError
	require.ErrorAs(t, err, &rateLimited)
}

func TestLoginLockoutScenario(t *testing.T) {
	fixture := newServiceFixture()
	fixture.store.add(t, "a@b.com", "correct horse", database.RoleEditor)

	for i := 0; i < 5; i++ {
		_, _, err := fixture.service.Login(context.Background(), "a@b.com", "wrong")
		require.ErrorIs(t, err, ErrInvalidCredentials, "attempt %d", i+1)
	}

	// Even the correct password is rejected while locked out.
	_, _, err := fixture.service.Login(context.Background(), "a@b.com", "correct horse")
	var rateLimited *RateLimitError
	require.ErrorAs(t, err, &rateLimited)
	require.Equal(t, 15, rateLimited.RetryAfterMinutes)

	*fixture.clock = fixture.clock.Add(16 * time.Minute)

	user, token, err := fixture.service.Login(context.Background(), "a@b.com", "correct horse")
	require.NoError(t, err)
	require.NotNil(t, user)
	require.NotEmpty(t, token)

	// Counters were reset, a single failure does not lock again.
	_, _, err = fixture.service.Login(context.Background(), "a@b.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginSuccessClearsFailureCount(t *testing.T) {
	fixture := newServiceFixture()
	fixture.store.add(t, "a@b.com", "correct horse", database.RoleEditor)

	for i := 0; i < 2; i++ {
		_, _, err := fixture.service.Login(context.Background(), "a@b.com", "wrong")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	}

	_, _, err := fixture.service.Login(context.Background(), "a@b.com", "correct horse")
	require.NoError(t, err)

	// Four more failures stay under the limit, the fifth locks.
	for i := 0; i < 4; i++ {
		_, _, err = fixture.service.Login(context.Background(), "a@b.com", "wrong")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	}

	_, _, err = fixture.service.Login(context.Background(), "a@b.com", "correct horse")
	var rateLimited *RateLimitError
	require.ErrorAs(t, err, &rateLimited)
}

func TestRegisterAllowlist(t *testing.T) {
	fixture := newServiceFixture("allowed@cornerinspirasi.id")

	_, _, err := fixture.service.Register(context.Background(), RegisterInput{
		Username: "intruder",
		Email:    "intruder@example.com",
		Password: "hunter22",
	})
	require.ErrorIs(t, err, ErrNotAllowlisted)

	user, token, err := fixture.service.Register(context.Background(), RegisterInput{
		Username: "redaksi",
		Email:    "allowed@cornerinspirasi.id",
		Password: "hunter22",
	})
	require.NoError(t, err)
	require.Equal(t, database.RoleEditor, user.Role)
	require.NotEqual(t, "hunter22", user.PasswordHash)

	// Register-issued tokens omit the role claim.
	claims, err := fixture.service.Tokens().Verify(token)
	require.NoError(t, err)
	require.Empty(t, claims.Role)
	require.Equal(t, user.ID.String(), claims.UserID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	fixture := newServiceFixture("allowed@cornerinspirasi.id")

	input := RegisterInput{
		Username: "redaksi",
		Email:    "allowed@cornerinspirasi.id",
		Password: "hunter22",
	}

	_, _, err := fixture.service.Register(context.Background(), input)
	require.NoError(t, err)

	_, _, err = fixture.service.Register(context.Background(), input)
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisteredUserCanLogin(t *testing.T) {
	fixture := newServiceFixture("allowed@cornerinspirasi.id")

	_, _, err := fixture.service.Register(context.Background(), RegisterInput{
		Username: "redaksi",
		Email:    "allowed@cornerinspirasi.id",
		Password: "hunter22",
	})
	require.NoError(t, err)

	user, _, err := fixture.service.Login(context.Background(), "allowed@cornerinspirasi.id", "hunter22")
	require.NoError(t, err)
	require.Equal(t, "redaksi", user.Username)
}
