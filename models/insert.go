package models

// InsertArticle is the create payload: an Article minus the generated fields
// (id and the lifecycle timestamps).
type InsertArticle struct {
	Title        string  `json:"title"`
	Slug         string  `json:"slug"`
	Summary      string  `json:"summary"`
	Content      string  `json:"content"`
	Category     string  `json:"category"`
	Subcategory  *string `json:"subcategory,omitempty"`
	ImageURL     string  `json:"imageUrl"`
	AuthorName   string  `json:"authorName"`
	TickerSymbol *string `json:"tickerSymbol,omitempty"`
	IsFeatured   bool    `json:"isFeatured"`
	IsEditorPick bool    `json:"isEditorPick"`
	Status       string  `json:"status,omitempty"`
}

// ArticlePatch is the partial update payload. Nil fields are omitted from
// the request body and left untouched by the server.
type ArticlePatch struct {
	Title        *string `json:"title,omitempty"`
	Slug         *string `json:"slug,omitempty"`
	Summary      *string `json:"summary,omitempty"`
	Content      *string `json:"content,omitempty"`
	Category     *string `json:"category,omitempty"`
	Subcategory  *string `json:"subcategory,omitempty"`
	ImageURL     *string `json:"imageUrl,omitempty"`
	AuthorName   *string `json:"authorName,omitempty"`
	TickerSymbol *string `json:"tickerSymbol,omitempty"`
	IsFeatured   *bool   `json:"isFeatured,omitempty"`
	IsEditorPick *bool   `json:"isEditorPick,omitempty"`
	Status       *string `json:"status,omitempty"`
}
