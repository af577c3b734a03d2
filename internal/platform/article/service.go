package article

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Nabielworkss/Corner-Inspirasi/internal/database"
)

var ErrArticleNotFound = errors.New("article not found")

// Filter mirrors the query surface of the public article listing.
type Filter struct {
	Slug         string
	CategorySlug string
	IsFeatured   *bool
	Sort         string
	Start        int
	Limit        int
	Populate     bool
}

type ArticleService struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *ArticleService {
	return &ArticleService{db: db}
}

func (s *ArticleService) List(ctx context.Context, filter Filter) ([]database.Article, error) {
	query := s.db.WithContext(ctx).Model(&database.Article{})

	if filter.Slug != "" {
		query = query.Where("slug = ?", filter.Slug)
	}
	if filter.IsFeatured != nil {
		query = query.Where("is_featured = ?", *filter.IsFeatured)
	}
	if filter.CategorySlug != "" {
		var category database.Category
		result := s.db.WithContext(ctx).First(&category, "slug = ?", filter.CategorySlug)
		if result.Error == nil {
			query = query.Where("category_id = ?", category.ID)
		}
	}

	switch filter.Sort {
	case "views:desc":
		query = query.Order("views DESC")
	case "views:asc":
		query = query.Order("views ASC")
	default:
		query = query.Order("created_at DESC")
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 25
	}
	query = query.Offset(filter.Start).Limit(limit)

	if filter.Populate {
		query = query.Preload("Category").Preload("Author")
	}

	var articles []database.Article
	if result := query.Find(&articles); result.Error != nil {
		return nil, result.Error
	}
	return articles, nil
}

// GetByID fetches a single article and bumps its view counter. The
// increment happens in the database so concurrent reads do not lose
// counts.
func (s *ArticleService) GetByID(ctx context.Context, id string, populate bool) (*database.Article, error) {
	query := s.db.WithContext(ctx)
	if populate {
		query = query.Preload("Category").Preload("Author")
	}

	var article database.Article
	result := query.First(&article, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, result.Error
	}

	result = s.db.WithContext(ctx).Model(&database.Article{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1"))
	if result.Error != nil {
		return nil, result.Error
	}
	article.Views++

	return &article, nil
}

func (s *ArticleService) Create(ctx context.Context, article *database.Article) error {
	result := s.db.WithContext(ctx).Create(article)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
