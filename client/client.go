// Package client is the typed API client used by the site frontends: every
// endpoint of the contract wrapped in a cache-aware fetch method, with list
// invalidation and toast notifications after CMS mutations.
package client

import (
	"encoding/json"
	"fmt"
	"strconv"
	"sync"

	"marketwire/contract"
	"marketwire/models"
	"marketwire/utils"

	"github.com/go-resty/resty/v2"
)

// APIError carries the server-supplied error body.
type APIError struct {
	StatusCode int
	Message    string
	Field      string
}

func (e *APIError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s (field %s)", e.Message, e.Field)
	}
	return e.Message
}

// ListFilters mirrors the query parameters of the article list endpoint.
type ListFilters struct {
	Category string
	Featured bool
	Limit    int
}

func (f ListFilters) queryParams() map[string]string {
	params := map[string]string{}
	if f.Category != "" {
		params["category"] = f.Category
	}
	if f.Featured {
		params["featured"] = "true"
	}
	if f.Limit > 0 {
		params["limit"] = strconv.Itoa(f.Limit)
	}
	return params
}

// Client wraps the REST API. Reads are cache-first with a background
// refresh; mutations invalidate the cached article lists on success and
// never touch the cache on failure.
type Client struct {
	http     *resty.Client
	cache    *queryCache
	notifier Notifier

	mu    sync.RWMutex
	token string
}

// New builds a Client for the given base URL. A nil notifier disables
// toasts.
func New(baseURL string, notifier Notifier) *Client {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	return &Client{
		http:     resty.New().SetBaseURL(baseURL),
		cache:    newQueryCache(),
		notifier: notifier,
	}
}

// SetToken installs the admin session token used by the CMS mutations.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *Client) authToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Login obtains and installs an admin session token.
func (c *Client) Login(email, password string) error {
	result := struct {
		Token string `json:"token"`
	}{}

	resp, err := c.http.R().
		SetBody(map[string]string{"email": email, "password": password}).
		SetResult(&result).
		Post(contract.Auth.Login.Path)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return apiErrorFrom(resp)
	}

	c.SetToken(result.Token)
	return nil
}

// --- Reads ---

// ListArticles returns the published article list for the given filters.
func (c *Client) ListArticles(filters ListFilters) ([]models.Article, error) {
	params := filters.queryParams()
	key := cacheKey(contract.Articles.List.Path, params)

	if cached, ok := c.cache.get(key); ok {
		go c.refreshArticles(key, contract.Articles.List.Path, params)
		return cached.([]models.Article), nil
	}

	var articles []models.Article
	if err := c.doGet(contract.Articles.List.Path, params, &articles); err != nil {
		return nil, err
	}
	c.cache.set(key, articles)
	return articles, nil
}

// GetArticle returns one published article, or nil when it does not exist.
func (c *Client) GetArticle(slug string) (*models.Article, error) {
	url := contract.BuildURL(contract.Articles.Get.Path, map[string]string{"slug": slug})
	key := cacheKey(contract.Articles.Get.Path, map[string]string{"slug": slug})

	if cached, ok := c.cache.get(key); ok {
		article := cached.(models.Article)
		return &article, nil
	}

	var article models.Article
	if err := c.doGet(url, nil, &article); err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	c.cache.set(key, article)
	return &article, nil
}

// SearchArticles matches published article titles against the query.
func (c *Client) SearchArticles(query string) ([]models.Article, error) {
	params := map[string]string{"q": query}
	key := cacheKey(contract.Articles.Search.Path, params)

	if cached, ok := c.cache.get(key); ok {
		go c.refreshArticles(key, contract.Articles.Search.Path, params)
		return cached.([]models.Article), nil
	}

	var results []models.Article
	if err := c.doGet(contract.Articles.Search.Path, params, &results); err != nil {
		return nil, err
	}
	c.cache.set(key, results)
	return results, nil
}

// ListStocks returns every ticker snapshot.
func (c *Client) ListStocks() ([]models.Stock, error) {
	key := cacheKey(contract.Stocks.List.Path, nil)

	if cached, ok := c.cache.get(key); ok {
		go func() {
			var fresh []models.Stock
			if err := c.doGet(contract.Stocks.List.Path, nil, &fresh); err == nil {
				c.cache.set(key, fresh)
			}
		}()
		return cached.([]models.Stock), nil
	}

	var stocks []models.Stock
	if err := c.doGet(contract.Stocks.List.Path, nil, &stocks); err != nil {
		return nil, err
	}
	c.cache.set(key, stocks)
	return stocks, nil
}

// GetStock returns one ticker snapshot, or nil when the symbol is unknown.
func (c *Client) GetStock(symbol string) (*models.Stock, error) {
	url := contract.BuildURL(contract.Stocks.Get.Path, map[string]string{"symbol": symbol})

	var stock models.Stock
	if err := c.doGet(url, nil, &stock); err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &stock, nil
}

// --- Mutations ---

// CreateArticle publishes a new article. When the slug is left empty it is
// derived from the title, matching the CMS form behaviour.
func (c *Client) CreateArticle(input models.InsertArticle) (*models.Article, error) {
	if input.Slug == "" {
		input.Slug = utils.Slugify(input.Title)
	}

	var created models.Article
	resp, err := c.http.R().
		SetAuthToken(c.authToken()).
		SetBody(input).
		SetResult(&created).
		Post(contract.Articles.Create.Path)
	if err := mutationError(resp, err); err != nil {
		c.notifier.Error(mutationMessage(err, "Failed to create article"))
		return nil, err
	}

	c.invalidateArticleLists()
	c.notifier.Success("Article published successfully")
	return &created, nil
}

// UpdateArticle applies a partial update to one article.
func (c *Client) UpdateArticle(id uint, patch models.ArticlePatch) (*models.Article, error) {
	url := contract.BuildURL(contract.Articles.Update.Path, map[string]string{"id": strconv.Itoa(int(id))})

	var updated models.Article
	resp, err := c.http.R().
		SetAuthToken(c.authToken()).
		SetBody(patch).
		SetResult(&updated).
		Patch(url)
	if err := mutationError(resp, err); err != nil {
		c.notifier.Error(mutationMessage(err, "Failed to update article"))
		return nil, err
	}

	c.invalidateArticleLists()
	c.notifier.Success("Article updated successfully")
	return &updated, nil
}

// DeleteArticle removes one article.
func (c *Client) DeleteArticle(id uint) error {
	url := contract.BuildURL(contract.Articles.Delete.Path, map[string]string{"id": strconv.Itoa(int(id))})

	resp, err := c.http.R().
		SetAuthToken(c.authToken()).
		Delete(url)
	if err := mutationError(resp, err); err != nil {
		c.notifier.Error(mutationMessage(err, "Failed to delete article"))
		return err
	}

	c.invalidateArticleLists()
	c.notifier.Success("Article deleted successfully")
	return nil
}

// --- Internals ---

func (c *Client) doGet(url string, query map[string]string, out interface{}) error {
	req := c.http.R().SetResult(out)
	if len(query) > 0 {
		req.SetQueryParams(query)
	}
	resp, err := req.Get(url)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return apiErrorFrom(resp)
	}
	return nil
}

func (c *Client) refreshArticles(key, url string, params map[string]string) {
	var fresh []models.Article
	if err := c.doGet(url, params, &fresh); err == nil {
		c.cache.set(key, fresh)
	}
}

// invalidateArticleLists flushes every cached article read. The next read
// after a mutation always hits the server.
func (c *Client) invalidateArticleLists() {
	c.cache.invalidatePrefix(contract.Articles.List.Path)
	c.cache.invalidatePrefix(contract.Articles.Search.Path)
}

func apiErrorFrom(resp *resty.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode(), Message: "Request failed"}

	var body struct {
		Message string `json:"message"`
		Field   string `json:"field"`
	}
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Message != "" {
		apiErr.Message = body.Message
		apiErr.Field = body.Field
	}
	return apiErr
}

func mutationError(resp *resty.Response, err error) error {
	if err != nil {
		return err
	}
	if resp.IsError() {
		return apiErrorFrom(resp)
	}
	return nil
}

func mutationMessage(err error, fallback string) string {
	if apiErr, ok := err.(*APIError); ok && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

func isNotFound(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.StatusCode == 404
}
