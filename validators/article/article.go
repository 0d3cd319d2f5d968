package articleValidator

import (
	"regexp"
	"strconv"
	"strings"

	"marketwire/middleware"
	"marketwire/models"
	"marketwire/repository"

	"github.com/gofiber/fiber/v2"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

type articleBody struct {
	Title        *string `json:"title"`
	Slug         *string `json:"slug"`
	Summary      *string `json:"summary"`
	Content      *string `json:"content"`
	Category     *string `json:"category"`
	Subcategory  *string `json:"subcategory"`
	ImageURL     *string `json:"imageUrl"`
	AuthorName   *string `json:"authorName"`
	TickerSymbol *string `json:"tickerSymbol"`
	IsFeatured   *bool   `json:"isFeatured"`
	IsEditorPick *bool   `json:"isEditorPick"`
	Status       *string `json:"status"`
}

// requiredFields lists the mandatory create fields in the order they are
// reported. The first missing one is what the response names.
var requiredFields = []struct {
	name  string
	value func(*articleBody) *string
}{
	{"title", func(b *articleBody) *string { return b.Title }},
	{"slug", func(b *articleBody) *string { return b.Slug }},
	{"summary", func(b *articleBody) *string { return b.Summary }},
	{"content", func(b *articleBody) *string { return b.Content }},
	{"category", func(b *articleBody) *string { return b.Category }},
	{"imageUrl", func(b *articleBody) *string { return b.ImageURL }},
	{"authorName", func(b *articleBody) *string { return b.AuthorName }},
}

// CreateArticle validates the full insert payload and stashes the resulting
// model in Locals as "validatedArticle".
func CreateArticle() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(articleBody)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		for _, rf := range requiredFields {
			v := rf.value(reqData)
			if v == nil || strings.TrimSpace(*v) == "" {
				return middleware.ValidationErrorResponse(c, rf.name+" is required!", rf.name)
			}
		}

		if !slugPattern.MatchString(*reqData.Slug) {
			return middleware.ValidationErrorResponse(c, "Slug must be lowercase letters, digits and hyphens!", "slug")
		}

		status := models.StatusPublished
		if reqData.Status != nil {
			if msg := checkStatus(*reqData.Status); msg != "" {
				return middleware.ValidationErrorResponse(c, msg, "status")
			}
			status = *reqData.Status
		}

		article := &models.Article{
			Title:        strings.TrimSpace(*reqData.Title),
			Slug:         *reqData.Slug,
			Summary:      strings.TrimSpace(*reqData.Summary),
			Content:      *reqData.Content,
			Category:     strings.TrimSpace(*reqData.Category),
			Subcategory:  reqData.Subcategory,
			ImageURL:     strings.TrimSpace(*reqData.ImageURL),
			AuthorName:   strings.TrimSpace(*reqData.AuthorName),
			TickerSymbol: reqData.TickerSymbol,
			Status:       status,
		}
		if reqData.IsFeatured != nil {
			article.IsFeatured = *reqData.IsFeatured
		}
		if reqData.IsEditorPick != nil {
			article.IsEditorPick = *reqData.IsEditorPick
		}

		c.Locals("validatedArticle", article)
		return c.Next()
	}
}

// UpdateArticle validates a partial payload. Fields that are present must
// still pass the create rules; absent fields stay untouched.
func UpdateArticle() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := strconv.Atoi(c.Params("id")); err != nil {
			return middleware.ValidationErrorResponse(c, "Article id must be a number!", "id")
		}

		reqData := new(articleBody)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		for _, rf := range requiredFields {
			v := rf.value(reqData)
			if v != nil && strings.TrimSpace(*v) == "" {
				return middleware.ValidationErrorResponse(c, rf.name+" must not be empty!", rf.name)
			}
		}
		if reqData.Slug != nil && !slugPattern.MatchString(*reqData.Slug) {
			return middleware.ValidationErrorResponse(c, "Slug must be lowercase letters, digits and hyphens!", "slug")
		}
		if reqData.Status != nil {
			if msg := checkStatus(*reqData.Status); msg != "" {
				return middleware.ValidationErrorResponse(c, msg, "status")
			}
		}

		updates := repository.ArticleUpdate{
			Title:        reqData.Title,
			Slug:         reqData.Slug,
			Summary:      reqData.Summary,
			Content:      reqData.Content,
			Category:     reqData.Category,
			Subcategory:  reqData.Subcategory,
			ImageURL:     reqData.ImageURL,
			AuthorName:   reqData.AuthorName,
			TickerSymbol: reqData.TickerSymbol,
			IsFeatured:   reqData.IsFeatured,
			IsEditorPick: reqData.IsEditorPick,
			Status:       reqData.Status,
		}

		c.Locals("validatedUpdates", updates)
		return c.Next()
	}
}

// ListQuery validates the optional list filters (category, featured, limit).
func ListQuery() fiber.Handler {
	return func(c *fiber.Ctx) error {
		filters := repository.ArticleFilters{
			Category: c.Query("category"),
		}

		if featured := c.Query("featured"); featured != "" {
			if featured != "true" && featured != "false" {
				return middleware.ValidationErrorResponse(c, "Featured must be true or false!", "featured")
			}
			filters.Featured = featured == "true"
		}

		if limit := c.Query("limit"); limit != "" {
			n, err := strconv.Atoi(limit)
			if err != nil || n < 1 {
				return middleware.ValidationErrorResponse(c, "Limit must be a positive number!", "limit")
			}
			filters.Limit = n
		}

		c.Locals("validatedFilters", filters)
		return c.Next()
	}
}

func checkStatus(status string) string {
	if status != models.StatusPublished && status != models.StatusDraft {
		return "Status must be published or draft!"
	}
	return ""
}
