package auth

import (
	"context"
	"errors"

	"github.com/Nabielworkss/Corner-Inspirasi/internal/database"
	"github.com/Nabielworkss/Corner-Inspirasi/pkg/utils"
)

// UserStore is the credential-store contract the authentication flow
// depends on. Lookups for unknown emails must return ErrUserNotFound.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*database.User, error)
	Create(ctx context.Context, user *database.User) error
}

type Service struct {
	users     UserStore
	tokens    *TokenService
	lockout   *LockoutTracker
	allowlist []string
}

func NewService(users UserStore, tokens *TokenService, lockout *LockoutTracker, allowlist []string) *Service {
	return &Service{
		users:     users,
		tokens:    tokens,
		lockout:   lockout,
		allowlist: allowlist,
	}
}

func (s *Service) Tokens() *TokenService {
	return s.tokens
}

// Login runs the authentication flow: lockout check, user lookup,
// password verification. An unknown email and a wrong password both
// count a failure and surface as ErrInvalidCredentials; a success clears
// the failure counter and issues a token carrying the user's role.
func (s *Service) Login(ctx context.Context, identifier, password string) (*database.User, string, error) {
	if err := s.lockout.Check(identifier); err != nil {
		return nil, "", err
	}

	user, err := s.users.GetByEmail(ctx, identifier)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			s.lockout.RecordFailure(identifier)
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !utils.VerifyPassword(password, user.PasswordHash) {
		s.lockout.RecordFailure(identifier)
		return nil, "", ErrInvalidCredentials
	}

	s.lockout.Clear(identifier)

	token, err := s.tokens.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
	FullName *string
}

// Register creates an account for an allowlisted email and issues a
// token as if freshly logged in. New accounts default to the editor
// role; register-issued tokens carry no role claim.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*database.User, string, error) {
	if !s.allowed(input.Email) {
		return nil, "", ErrNotAllowlisted
	}

	_, err := s.users.GetByEmail(ctx, input.Email)
	if err == nil {
		return nil, "", ErrEmailTaken
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, "", err
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, "", err
	}

	user := &database.User{
		Username:     input.Username,
		Email:        input.Email,
		FullName:     input.FullName,
		PasswordHash: hash,
		Role:         database.RoleEditor,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(user.ID, user.Email, "")
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *Service) allowed(email string) bool {
	for _, allowed := range s.allowlist {
		if email == allowed {
			return true
		}
	}
	return false
}
