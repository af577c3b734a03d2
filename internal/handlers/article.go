package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Nabielworkss/Corner-Inspirasi/internal/auth"
	"github.com/Nabielworkss/Corner-Inspirasi/internal/config"
	"github.com/Nabielworkss/Corner-Inspirasi/internal/database"
	particle "github.com/Nabielworkss/Corner-Inspirasi/internal/platform/article"
)

// articleData builds the attributes envelope the presentation layer
// consumes. Relations are only embedded when populate was requested.
func articleData(a *database.Article, populate bool) fiber.Map {
	attributes := fiber.Map{
		"title":          a.Title,
		"slug":           a.Slug,
		"excerpt":        a.Excerpt,
		"content":        a.Content,
		"featured_image": a.FeaturedImage,
		"views":          a.Views,
		"is_featured":    a.IsFeatured,
		"publishedAt":    a.PublishedAt,
		"createdAt":      a.CreatedAt,
		"updatedAt":      a.UpdatedAt,
	}

	if populate && a.Category != nil {
		attributes["category"] = fiber.Map{
			"data": fiber.Map{
				"id": a.Category.ID,
				"attributes": fiber.Map{
					"name": a.Category.Name,
					"slug": a.Category.Slug,
				},
			},
		}
	}

	if populate && a.Author != nil {
		attributes["author"] = fiber.Map{
			"data": fiber.Map{
				"id": a.Author.ID,
				"attributes": fiber.Map{
					"username":  a.Author.Username,
					"email":     a.Author.Email,
					"full_name": a.Author.FullName,
				},
			},
		}
	}

	return fiber.Map{"id": a.ID, "attributes": attributes}
}

func GetArticles(c *fiber.Ctx) error {
	db := c.Locals("db").(*gorm.DB)

	articleService := particle.NewService(db)

	filter := particle.Filter{
		Slug:         c.Query("filters_slug"),
		CategorySlug: c.Query("filters_category_slug"),
		Sort:         c.Query("sort"),
		Start:        c.QueryInt("pagination_start", 0),
		Limit:        c.QueryInt("pagination_limit", 25),
		Populate:     c.Query("populate") != "",
	}
	if c.Query("filters_is_featured") != "" {
		featured := c.QueryBool("filters_is_featured")
		filter.IsFeatured = &featured
	}

	articles, err := articleService.List(c.Context(), filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}

	data := make([]fiber.Map, 0, len(articles))
	for i := range articles {
		data = append(data, articleData(&articles[i], filter.Populate))
	}

	return c.JSON(fiber.Map{"data": data})
}

func GetArticle(c *fiber.Ctx) error {
	db := c.Locals("db").(*gorm.DB)

	articleService := particle.NewService(db)

	populate := c.Query("populate") != ""

	article, err := articleService.GetByID(c.Context(), c.Params("id"), populate)
	if err != nil {
		if errors.Is(err, particle.ErrArticleNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Artikel tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}

	return c.JSON(fiber.Map{"data": articleData(article, populate)})
}

func CreateArticle(c *fiber.Ctx) error {
	db := c.Locals("db").(*gorm.DB)
	claims := c.Locals("claims").(*auth.Claims)

	articleService := particle.NewService(db)

	type ArticleInput struct {
		Title         string  `json:"title" validate:"required"`
		Slug          string  `json:"slug" validate:"required"`
		Excerpt       string  `json:"excerpt" validate:"required"`
		Content       string  `json:"content" validate:"required"`
		FeaturedImage *string `json:"featured_image"`
		CategoryID    *string `json:"category_id"`
		IsFeatured    bool    `json:"is_featured"`
	}

	var input ArticleInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid input"})
	}

	if err := config.Validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	authorID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
	}

	now := time.Now().UTC()
	article := database.Article{
		Title:         input.Title,
		Slug:          input.Slug,
		Excerpt:       input.Excerpt,
		Content:       input.Content,
		FeaturedImage: input.FeaturedImage,
		AuthorID:      &authorID,
		IsFeatured:    input.IsFeatured,
		PublishedAt:   &now,
	}
	if input.CategoryID != nil {
		categoryID, err := uuid.Parse(*input.CategoryID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid category ID"})
		}
		article.CategoryID = &categoryID
	}

	if err := articleService.Create(c.Context(), &article); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": articleData(&article, false)})
}
