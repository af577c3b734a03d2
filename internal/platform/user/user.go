package user

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Nabielworkss/Corner-Inspirasi/internal/auth"
	"github.com/Nabielworkss/Corner-Inspirasi/internal/database"
)

// UserService implements auth.UserStore on top of GORM.
type UserService struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*database.User, error) {
	var user database.User

	result := s.db.WithContext(ctx).First(&user, "email = ?", email)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, auth.ErrUserNotFound
		}
		return nil, result.Error
	}
	return &user, nil
}

func (s *UserService) Create(ctx context.Context, user *database.User) error {
	result := s.db.WithContext(ctx).Create(user)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
