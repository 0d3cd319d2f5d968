package utils

import (
	"testing"

	"marketwire/database"
	"marketwire/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedDatabase(t *testing.T) {
	db, err := database.OpenTest()
	require.NoError(t, err)
	articles := repository.NewArticleRepository(db)
	stocks := repository.NewStockRepository(db)

	// Empty store starts empty
	list, err := articles.List(repository.ArticleFilters{Limit: 1})
	require.NoError(t, err)
	assert.Empty(t, list)

	require.NoError(t, SeedDatabase(articles, stocks))

	seeded, err := articles.List(repository.ArticleFilters{})
	require.NoError(t, err)
	require.Len(t, seeded, 3)
	// Newest first by publication time
	for i := 1; i < len(seeded); i++ {
		require.NotNil(t, seeded[i].PublishedAt)
		assert.False(t, seeded[i-1].PublishedAt.Before(*seeded[i].PublishedAt))
	}

	allStocks, err := stocks.List()
	require.NoError(t, err)
	require.Len(t, allStocks, 5)
	symbols := make([]string, 0, 5)
	for _, s := range allStocks {
		symbols = append(symbols, s.Symbol)
	}
	assert.Equal(t, []string{"HDFCBANK", "NIFTY", "RELIANCE", "SENSEX", "TCS"}, symbols)

	// Re-seeding an already-populated store is a no-op
	require.NoError(t, SeedDatabase(articles, stocks))
	count, err := articles.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	stockCount, err := stocks.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(5), stockCount)
}
