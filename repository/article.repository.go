package repository

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"marketwire/models"

	"gorm.io/gorm"
)

// DefaultListLimit caps article listings when the caller does not ask for a
// specific limit.
const DefaultListLimit = 20

// ArticleFilters carries the optional list filters. Zero values mean "not
// set"; set filters compose with AND.
type ArticleFilters struct {
	Category string
	Featured bool
	Limit    int
}

// ArticleUpdate carries a partial update. Nil pointers leave the stored value
// untouched.
type ArticleUpdate struct {
	Title        *string
	Slug         *string
	Summary      *string
	Content      *string
	Category     *string
	Subcategory  *string
	ImageURL     *string
	AuthorName   *string
	TickerSymbol *string
	IsFeatured   *bool
	IsEditorPick *bool
	Status       *string
}

// ArticleRepository is the persistence boundary for articles. Absence is
// reported as a nil record, never as an error.
type ArticleRepository interface {
	List(filters ArticleFilters) ([]models.Article, error)
	AllPublished() ([]models.Article, error)
	GetBySlug(slug string) (*models.Article, error)
	Create(article *models.Article) error
	Update(id uint, updates ArticleUpdate) (*models.Article, error)
	Delete(id uint) (bool, error)
	Search(query string) ([]models.Article, error)
	Count() (int64, error)
}

type gormArticleRepository struct {
	db *gorm.DB
}

// NewArticleRepository returns a GORM-backed ArticleRepository.
func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &gormArticleRepository{db: db}
}

// List returns published articles ordered by publication time descending.
func (r *gormArticleRepository) List(filters ArticleFilters) ([]models.Article, error) {
	limit := filters.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}

	query := r.db.Model(&models.Article{}).
		Where("status = ?", models.StatusPublished).
		Order("published_at DESC").
		Limit(limit)

	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}
	if filters.Featured {
		query = query.Where("is_featured = ?", true)
	}

	articles := []models.Article{}
	if err := query.Find(&articles).Error; err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return articles, nil
}

// AllPublished returns every published article, newest first. Used by the
// sitemap, which must list the whole catalogue.
func (r *gormArticleRepository) AllPublished() ([]models.Article, error) {
	articles := []models.Article{}
	err := r.db.
		Where("status = ?", models.StatusPublished).
		Order("published_at DESC").
		Find(&articles).Error
	if err != nil {
		return nil, fmt.Errorf("all published articles: %w", err)
	}
	return articles, nil
}

// GetBySlug returns the published article with the exact slug, or nil.
func (r *gormArticleRepository) GetBySlug(slug string) (*models.Article, error) {
	var article models.Article
	err := r.db.
		Where("slug = ? AND status = ?", slug, models.StatusPublished).
		First(&article).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get article by slug: %w", err)
	}
	return &article, nil
}

// Create persists a new article, stamping the lifecycle timestamps.
// PublishedAt is set only when the article lands as published.
func (r *gormArticleRepository) Create(article *models.Article) error {
	now := time.Now()
	if article.Status == "" {
		article.Status = models.StatusPublished
	}
	article.CreatedAt = now
	article.UpdatedAt = now
	if article.Status == models.StatusPublished {
		article.PublishedAt = &now
	} else {
		article.PublishedAt = nil
	}

	if err := r.db.Create(article).Error; err != nil {
		return fmt.Errorf("create article: %w", err)
	}
	return nil
}

// Update applies only the supplied fields and always refreshes updated_at.
// Returns nil when the id does not exist. Slug collisions surface as a
// storage error from the unique index.
func (r *gormArticleRepository) Update(id uint, updates ArticleUpdate) (*models.Article, error) {
	columns := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if updates.Title != nil {
		columns["title"] = *updates.Title
	}
	if updates.Slug != nil {
		columns["slug"] = *updates.Slug
	}
	if updates.Summary != nil {
		columns["summary"] = *updates.Summary
	}
	if updates.Content != nil {
		columns["content"] = *updates.Content
	}
	if updates.Category != nil {
		columns["category"] = *updates.Category
	}
	if updates.Subcategory != nil {
		columns["subcategory"] = *updates.Subcategory
	}
	if updates.ImageURL != nil {
		columns["image_url"] = *updates.ImageURL
	}
	if updates.AuthorName != nil {
		columns["author_name"] = *updates.AuthorName
	}
	if updates.TickerSymbol != nil {
		columns["ticker_symbol"] = *updates.TickerSymbol
	}
	if updates.IsFeatured != nil {
		columns["is_featured"] = *updates.IsFeatured
	}
	if updates.IsEditorPick != nil {
		columns["is_editor_pick"] = *updates.IsEditorPick
	}
	if updates.Status != nil {
		columns["status"] = *updates.Status
	}

	result := r.db.Model(&models.Article{}).Where("id = ?", id).Updates(columns)
	if result.Error != nil {
		return nil, fmt.Errorf("update article: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	var article models.Article
	if err := r.db.First(&article, id).Error; err != nil {
		return nil, fmt.Errorf("reload article: %w", err)
	}
	return &article, nil
}

// Delete removes the row. Deleting an absent id reports found=false.
func (r *gormArticleRepository) Delete(id uint) (bool, error) {
	result := r.db.Delete(&models.Article{}, id)
	if result.Error != nil {
		return false, fmt.Errorf("delete article: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// Search matches the query case-insensitively against titles of published
// articles. An empty query returns an empty slice, never the whole table.
func (r *gormArticleRepository) Search(query string) ([]models.Article, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return []models.Article{}, nil
	}

	pattern := "%" + strings.ToLower(trimmed) + "%"
	articles := []models.Article{}
	err := r.db.
		Where("status = ?", models.StatusPublished).
		Where("LOWER(title) LIKE ?", pattern).
		Order("published_at DESC").
		Find(&articles).Error
	if err != nil {
		return nil, fmt.Errorf("search articles: %w", err)
	}
	return articles, nil
}

// Count returns the number of articles in any status.
func (r *gormArticleRepository) Count() (int64, error) {
	var total int64
	if err := r.db.Model(&models.Article{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("count articles: %w", err)
	}
	return total, nil
}
