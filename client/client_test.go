package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"marketwire/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	mu        sync.Mutex
	successes []string
	errors    []string
}

func (n *recordingNotifier) Success(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, message)
}

func (n *recordingNotifier) Error(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errors = append(n.errors, message)
}

func (n *recordingNotifier) lastError() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.errors) == 0 {
		return ""
	}
	return n.errors[len(n.errors)-1]
}

func (n *recordingNotifier) lastSuccess() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.successes) == 0 {
		return ""
	}
	return n.successes[len(n.successes)-1]
}

func articleNamed(id uint, title string) models.Article {
	return models.Article{ID: id, Title: title, Slug: "slug", Category: "Learn"}
}

func TestCacheKeyIsStableAndCollisionFree(t *testing.T) {
	a := cacheKey("/api/articles", map[string]string{"category": "Learn", "limit": "5"})
	b := cacheKey("/api/articles", map[string]string{"limit": "5", "category": "Learn"})
	assert.Equal(t, a, b)

	c := cacheKey("/api/articles", map[string]string{"category": "Learn"})
	assert.NotEqual(t, a, c)
	assert.NotEqual(t, c, cacheKey("/api/articles", nil))
}

func TestInvalidatePrefix(t *testing.T) {
	cache := newQueryCache()
	cache.set("/api/articles?limit=5", 1)
	cache.set("/api/articles/:slug?slug=x", 2)
	cache.set("/api/stocks", 3)

	cache.invalidatePrefix("/api/articles")

	_, ok := cache.get("/api/articles?limit=5")
	assert.False(t, ok)
	_, ok = cache.get("/api/articles/:slug?slug=x")
	assert.False(t, ok)
	_, ok = cache.get("/api/stocks")
	assert.True(t, ok)
}

func TestListArticlesIsCacheFirst(t *testing.T) {
	var current atomic.Value
	current.Store([]models.Article{articleNamed(1, "first")})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(current.Load())
	}))
	defer server.Close()

	c := New(server.URL, nil)

	got, err := c.ListArticles(ListFilters{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "first", got[0].Title)

	// The server now serves different data; the cached value wins on the
	// immediate read.
	current.Store([]models.Article{articleNamed(2, "second")})

	cached, err := c.ListArticles(ListFilters{})
	require.NoError(t, err)
	require.Len(t, cached, 1)
	assert.Equal(t, "first", cached[0].Title)
}

func TestDistinctFiltersDoNotShareCacheEntries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("category") == "Learn" {
			json.NewEncoder(w).Encode([]models.Article{articleNamed(1, "learn")})
			return
		}
		json.NewEncoder(w).Encode([]models.Article{articleNamed(2, "all")})
	}))
	defer server.Close()

	c := New(server.URL, nil)

	all, err := c.ListArticles(ListFilters{})
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "all", all[0].Title)

	learn, err := c.ListArticles(ListFilters{Category: "Learn"})
	require.NoError(t, err)
	require.Len(t, learn, 1)
	assert.Equal(t, "learn", learn[0].Title)
}

func TestMutationSuccessInvalidatesListCache(t *testing.T) {
	var current atomic.Value
	current.Store([]models.Article{articleNamed(1, "before")})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.Method == http.MethodPost {
			current.Store([]models.Article{articleNamed(2, "after")})
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(articleNamed(2, "after"))
			return
		}
		json.NewEncoder(w).Encode(current.Load())
	}))
	defer server.Close()

	notifier := &recordingNotifier{}
	c := New(server.URL, notifier)

	before, err := c.ListArticles(ListFilters{})
	require.NoError(t, err)
	assert.Equal(t, "before", before[0].Title)

	created, err := c.CreateArticle(models.InsertArticle{
		Title: "after", Slug: "after", Summary: "s", Content: "c",
		Category: "Learn", ImageURL: "i", AuthorName: "a",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(2), created.ID)
	assert.Equal(t, "Article published successfully", notifier.lastSuccess())

	// The invalidated cache forces a fresh fetch
	after, err := c.ListArticles(ListFilters{})
	require.NoError(t, err)
	assert.Equal(t, "after", after[0].Title)
}

func TestMutationFailureLeavesCacheAloneAndSurfacesMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.Method == http.MethodPost {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"message": "title is required!", "field": "title"})
			return
		}
		json.NewEncoder(w).Encode([]models.Article{articleNamed(1, "stable")})
	}))
	defer server.Close()

	notifier := &recordingNotifier{}
	c := New(server.URL, notifier)

	_, err := c.ListArticles(ListFilters{})
	require.NoError(t, err)

	_, err = c.CreateArticle(models.InsertArticle{Slug: "x"})
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "title is required!", apiErr.Message)
	assert.Equal(t, "title", apiErr.Field)
	assert.Equal(t, "title is required!", notifier.lastError())
	assert.Empty(t, notifier.successes)

	// Cached list is untouched
	cached, err := c.ListArticles(ListFilters{})
	require.NoError(t, err)
	assert.Equal(t, "stable", cached[0].Title)
}

func TestCreateDerivesSlugFromTitle(t *testing.T) {
	var received models.InsertArticle
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(articleNamed(1, received.Title))
	}))
	defer server.Close()

	c := New(server.URL, nil)
	_, err := c.CreateArticle(models.InsertArticle{Title: "Market Rally: Sensex Hits All-Time High"})
	require.NoError(t, err)
	assert.Equal(t, "market-rally-sensex-hits-all-time-high", received.Slug)
}

func TestLoginInstallsTokenForMutations(t *testing.T) {
	var sawAuth atomic.Bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/auth/login" {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]string{"token": "session-token"})
			return
		}
		if r.Header.Get("Authorization") == "Bearer session-token" {
			sawAuth.Store(true)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	c := New(server.URL, nil)
	require.NoError(t, c.Login("admin@example.com", "secret"))
	require.NoError(t, c.DeleteArticle(7))
	assert.True(t, sawAuth.Load())
}

func TestGetArticleAndStockNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "not found"})
	}))
	defer server.Close()

	c := New(server.URL, nil)

	article, err := c.GetArticle("missing")
	require.NoError(t, err)
	assert.Nil(t, article)

	stock, err := c.GetStock("MISSING")
	require.NoError(t, err)
	assert.Nil(t, stock)
}

func TestWatchStocksPollsUntilStopped(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]models.Stock{{Symbol: "NIFTY", Price: "22,700.00"}})
	}))
	defer server.Close()

	c := New(server.URL, nil)

	snapshots := make(chan []models.Stock, 8)
	stop := c.WatchStocks(10*time.Millisecond, func(s []models.Stock) {
		select {
		case snapshots <- s:
		default:
		}
	})

	select {
	case snap := <-snapshots:
		require.Len(t, snap, 1)
		assert.Equal(t, "NIFTY", snap[0].Symbol)
	case <-time.After(2 * time.Second):
		t.Fatal("no poll within deadline")
	}
	stop()

	// After stop the hit counter settles
	stop()
	settled := hits.Load()
	time.Sleep(50 * time.Millisecond)
	assert.LessOrEqual(t, hits.Load(), settled+1)
}
