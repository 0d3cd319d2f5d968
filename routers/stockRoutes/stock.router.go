package stockRoutes

import (
	"marketwire/contract"
	stockController "marketwire/controllers/stock"

	"github.com/gofiber/fiber/v2"
)

// SetupStockRoutes registers the public, read-only stock endpoints.
func SetupStockRoutes(app *fiber.App, h *stockController.Handler) {
	app.Add(contract.Stocks.List.Method, contract.Stocks.List.Path, h.List)
	app.Add(contract.Stocks.Get.Method, contract.Stocks.Get.Path, h.GetBySymbol)
}
