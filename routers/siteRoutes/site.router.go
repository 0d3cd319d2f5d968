package siteRoutes

import (
	"marketwire/contract"
	siteController "marketwire/controllers/site"

	"github.com/gofiber/fiber/v2"
)

// SetupSiteRoutes registers the sitemap and the market placeholder pages.
func SetupSiteRoutes(app *fiber.App, h *siteController.Handler) {
	app.Add(contract.Site.Sitemap.Method, contract.Site.Sitemap.Path, h.Sitemap)
	app.Add(contract.Site.MarketCategory.Method, contract.Site.MarketCategory.Path, h.MarketCategory)
}
