package routers

import (
	articleController "marketwire/controllers/article"
	authController "marketwire/controllers/auth"
	siteController "marketwire/controllers/site"
	stockController "marketwire/controllers/stock"
	"marketwire/repository"
	"marketwire/routers/articleRoutes"
	"marketwire/routers/authRoutes"
	"marketwire/routers/siteRoutes"
	"marketwire/routers/stockRoutes"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Register wires every route group against the given database. Tests call
// this with an in-memory database to exercise the full HTTP surface.
func Register(app *fiber.App, db *gorm.DB) {
	articles := repository.NewArticleRepository(db)
	stocks := repository.NewStockRepository(db)
	admins := repository.NewAdminRepository(db)

	articleRoutes.SetupArticleRoutes(app, articleController.NewHandler(articles))
	stockRoutes.SetupStockRoutes(app, stockController.NewHandler(stocks))
	authRoutes.SetupAuthRoutes(app, authController.NewHandler(admins))
	siteRoutes.SetupSiteRoutes(app, siteController.NewHandler(articles))
}
