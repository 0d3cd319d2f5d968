package siteController

import (
	"encoding/xml"
	"fmt"
	"log"
	"strings"

	"marketwire/config"
	"marketwire/middleware"
	"marketwire/repository"

	"github.com/gofiber/fiber/v2"
)

// MarketCategories is the fixed navigation list mirrored in the sitemap.
var MarketCategories = []string{
	"indian-markets",
	"global-markets",
	"ipo",
	"mutual-funds",
	"learn",
}

type sitemapURL struct {
	Loc string `xml:"loc"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// Handler renders the non-JSON surfaces: sitemap and market placeholder pages.
type Handler struct {
	articles repository.ArticleRepository
}

// NewHandler builds a site Handler.
func NewHandler(articles repository.ArticleRepository) *Handler {
	return &Handler{articles: articles}
}

// Sitemap lists the home page, the fixed market categories and every
// published article.
func (h *Handler) Sitemap(c *fiber.Ctx) error {
	base := strings.TrimSuffix(config.AppConfig.SiteBaseURL, "/")

	set := urlSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  []sitemapURL{{Loc: base + "/"}},
	}
	for _, category := range MarketCategories {
		set.URLs = append(set.URLs, sitemapURL{Loc: base + "/market/" + category})
	}

	articles, err := h.articles.AllPublished()
	if err != nil {
		log.Printf("Sitemap error: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to build sitemap!")
	}
	for _, article := range articles {
		set.URLs = append(set.URLs, sitemapURL{Loc: base + "/article/" + article.Slug})
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		log.Printf("Sitemap marshal error: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to build sitemap!")
	}

	c.Set(fiber.HeaderContentType, "application/xml")
	return c.SendString(xml.Header + string(body))
}

// MarketCategory renders a placeholder page for any market segment path so
// every declared navigation target stays resolvable during content rollout.
func (h *Handler) MarketCategory(c *fiber.Ctx) error {
	category := c.Params("category")
	title := strings.ReplaceAll(category, "-", " ")

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(fmt.Sprintf(`<html>
  <head><title>%s | Market Segments</title></head>
  <body>
    <h1>%s</h1>
    <p>Articles for this category will appear here.</p>
    <a href="/">Back to Home</a>
  </body>
</html>`, title, strings.ToUpper(title)))
}
