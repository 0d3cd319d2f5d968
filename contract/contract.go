// Package contract declares every API endpoint as data. The routers register
// handlers from these declarations and the client builds requests from them,
// so the two sides cannot drift apart.
package contract

import "strings"

// Endpoint describes one API operation.
type Endpoint struct {
	Method string
	Path   string // fiber-style template, e.g. /api/articles/:slug
	Auth   bool   // true if a valid admin session is required
}

// Articles groups the article endpoints.
var Articles = struct {
	List   Endpoint
	Get    Endpoint
	Create Endpoint
	Update Endpoint
	Delete Endpoint
	Search Endpoint
}{
	List:   Endpoint{Method: "GET", Path: "/api/articles"},
	Get:    Endpoint{Method: "GET", Path: "/api/articles/:slug"},
	Create: Endpoint{Method: "POST", Path: "/api/articles", Auth: true},
	Update: Endpoint{Method: "PATCH", Path: "/api/articles/:id", Auth: true},
	Delete: Endpoint{Method: "DELETE", Path: "/api/articles/:id", Auth: true},
	Search: Endpoint{Method: "GET", Path: "/api/search"},
}

// Stocks groups the stock endpoints.
var Stocks = struct {
	List Endpoint
	Get  Endpoint
}{
	List: Endpoint{Method: "GET", Path: "/api/stocks"},
	Get:  Endpoint{Method: "GET", Path: "/api/stocks/:symbol"},
}

// Auth groups the admin session endpoints.
var Auth = struct {
	Login Endpoint
}{
	Login: Endpoint{Method: "POST", Path: "/api/auth/login"},
}

// Site groups the non-JSON surfaces.
var Site = struct {
	Sitemap        Endpoint
	MarketCategory Endpoint
}{
	Sitemap:        Endpoint{Method: "GET", Path: "/sitemap.xml"},
	MarketCategory: Endpoint{Method: "GET", Path: "/market/:category"},
}

// BuildURL substitutes named :params into a path template.
func BuildURL(path string, params map[string]string) string {
	url := path
	for key, value := range params {
		url = strings.Replace(url, ":"+key, value, 1)
	}
	return url
}
