package articleRoutes

import (
	"marketwire/contract"
	articleController "marketwire/controllers/article"
	"marketwire/middleware"
	articleValidator "marketwire/validators/article"

	"github.com/gofiber/fiber/v2"
)

// SetupArticleRoutes registers the public article reads and the JWT-gated
// CMS mutations, all from the shared contract declarations.
func SetupArticleRoutes(app *fiber.App, h *articleController.Handler) {
	app.Add(contract.Articles.List.Method, contract.Articles.List.Path, articleValidator.ListQuery(), h.List)
	app.Add(contract.Articles.Search.Method, contract.Articles.Search.Path, h.Search)
	app.Add(contract.Articles.Get.Method, contract.Articles.Get.Path, h.GetBySlug)

	// Mutations fail closed: the JWT gate runs before any validation
	app.Add(contract.Articles.Create.Method, contract.Articles.Create.Path, middleware.JWTMiddleware, articleValidator.CreateArticle(), h.Create)
	app.Add(contract.Articles.Update.Method, contract.Articles.Update.Path, middleware.JWTMiddleware, articleValidator.UpdateArticle(), h.Update)
	app.Add(contract.Articles.Delete.Method, contract.Articles.Delete.Path, middleware.JWTMiddleware, h.Delete)
}
