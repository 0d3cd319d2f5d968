package stockController

import (
	"log"

	"marketwire/middleware"
	"marketwire/repository"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes the read-only stock endpoints.
type Handler struct {
	stocks repository.StockRepository
}

// NewHandler builds a stock Handler.
func NewHandler(stocks repository.StockRepository) *Handler {
	return &Handler{stocks: stocks}
}

// List returns every ticker snapshot ordered by symbol.
func (h *Handler) List(c *fiber.Ctx) error {
	stocks, err := h.stocks.List()
	if err != nil {
		log.Printf("List stocks error: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch stocks!")
	}
	return c.JSON(stocks)
}

// GetBySymbol returns one ticker snapshot.
func (h *Handler) GetBySymbol(c *fiber.Ctx) error {
	stock, err := h.stocks.GetBySymbol(c.Params("symbol"))
	if err != nil {
		log.Printf("Get stock error: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch stock!")
	}
	if stock == nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Stock not found")
	}
	return c.JSON(stock)
}
