package articleController

import (
	"log"
	"strconv"

	"marketwire/middleware"
	"marketwire/models"
	"marketwire/repository"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes the article endpoints over an ArticleRepository.
type Handler struct {
	articles repository.ArticleRepository
}

// NewHandler builds an article Handler.
func NewHandler(articles repository.ArticleRepository) *Handler {
	return &Handler{articles: articles}
}

// List returns published articles, newest first, with optional filters.
func (h *Handler) List(c *fiber.Ctx) error {
	filters := c.Locals("validatedFilters").(repository.ArticleFilters)

	articles, err := h.articles.List(filters)
	if err != nil {
		log.Printf("List articles error: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch articles!")
	}
	return c.JSON(articles)
}

// GetBySlug returns a single published article.
func (h *Handler) GetBySlug(c *fiber.Ctx) error {
	article, err := h.articles.GetBySlug(c.Params("slug"))
	if err != nil {
		log.Printf("Get article error: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch article!")
	}
	if article == nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Article not found")
	}
	return c.JSON(article)
}

// Create persists a new article from the CMS form.
func (h *Handler) Create(c *fiber.Ctx) error {
	article := c.Locals("validatedArticle").(*models.Article)

	if err := h.articles.Create(article); err != nil {
		// Uniqueness violations land here too; the client gets no detail.
		log.Printf("Create article error: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create article!")
	}
	return c.Status(fiber.StatusCreated).JSON(article)
}

// Update applies a partial update to one article.
func (h *Handler) Update(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	updates := c.Locals("validatedUpdates").(repository.ArticleUpdate)

	article, err := h.articles.Update(uint(id), updates)
	if err != nil {
		log.Printf("Update article error: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update article!")
	}
	if article == nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Article not found")
	}
	return c.JSON(article)
}

// Delete removes one article permanently.
func (h *Handler) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return middleware.ValidationErrorResponse(c, "Article id must be a number!", "id")
	}

	found, err := h.articles.Delete(uint(id))
	if err != nil {
		log.Printf("Delete article error: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete article!")
	}
	if !found {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Article not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Search matches published article titles case-insensitively. An empty query
// yields an empty result set.
func (h *Handler) Search(c *fiber.Ctx) error {
	results, err := h.articles.Search(c.Query("q"))
	if err != nil {
		log.Printf("Search articles error: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to search articles!")
	}
	return c.JSON(results)
}
