package models

import (
	"time"
)

const (
	StatusPublished = "published"
	StatusDraft     = "draft"
)

// Article is a news/analysis record with editorial metadata. Column tags pin
// the snake_case storage names; JSON tags expose the camelCase API names.
type Article struct {
	ID           uint       `json:"id" gorm:"primarykey"`
	Title        string     `json:"title" gorm:"column:title;not null"`
	Slug         string     `json:"slug" gorm:"column:slug;uniqueIndex;not null"`
	Summary      string     `json:"summary" gorm:"column:summary;not null"`
	Content      string     `json:"content" gorm:"column:content;type:text;not null"`
	Category     string     `json:"category" gorm:"column:category;not null;index"`
	Subcategory  *string    `json:"subcategory" gorm:"column:subcategory"`
	ImageURL     string     `json:"imageUrl" gorm:"column:image_url;not null"`
	AuthorName   string     `json:"authorName" gorm:"column:author_name;not null"`
	TickerSymbol *string    `json:"tickerSymbol" gorm:"column:ticker_symbol"`
	IsFeatured   bool       `json:"isFeatured" gorm:"column:is_featured;default:false"`
	IsEditorPick bool       `json:"isEditorPick" gorm:"column:is_editor_pick;default:false"`
	Status       string     `json:"status" gorm:"column:status;default:published;index"`
	PublishedAt  *time.Time `json:"publishedAt" gorm:"column:published_at;index"`
	CreatedAt    time.Time  `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt    time.Time  `json:"updatedAt" gorm:"column:updated_at"`
}
