package category

import (
	"context"

	"gorm.io/gorm"

	"github.com/Nabielworkss/Corner-Inspirasi/internal/database"
)

type CategoryService struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

func (s *CategoryService) List(ctx context.Context) ([]database.Category, error) {
	var categories []database.Category

	result := s.db.WithContext(ctx).Order("name ASC").Find(&categories)
	if result.Error != nil {
		return nil, result.Error
	}
	return categories, nil
}

func (s *CategoryService) Create(ctx context.Context, category *database.Category) error {
	result := s.db.WithContext(ctx).Create(category)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
