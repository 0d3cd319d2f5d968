package repository

import (
	"testing"

	"marketwire/database"
	"marketwire/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStockRepo(t *testing.T) StockRepository {
	t.Helper()
	db, err := database.OpenTest()
	require.NoError(t, err)
	return NewStockRepository(db)
}

func seedStocks(t *testing.T, repo StockRepository) {
	t.Helper()
	for _, s := range []models.Stock{
		{Symbol: "TCS", Name: "TCS", Price: "3,950.00", Change: "-12.50", ChangePercent: "-0.32%"},
		{Symbol: "NIFTY", Name: "Nifty 50", Price: "22,642.80", Change: "+110.15", ChangePercent: "+0.49%"},
		{Symbol: "RELIANCE", Name: "Reliance Ind.", Price: "2,980.00", Change: "+15.00", ChangePercent: "+0.51%"},
		{Symbol: "HDFCBANK", Name: "HDFC Bank", Price: "1,540.00", Change: "+22.00", ChangePercent: "+1.45%"},
		{Symbol: "SENSEX", Name: "BSE Sensex", Price: "75,124.50", Change: "+350.20", ChangePercent: "+0.47%"},
	} {
		stock := s
		require.NoError(t, repo.Create(&stock))
	}
}

func TestListStocksOrdersBySymbol(t *testing.T) {
	repo := newStockRepo(t)
	seedStocks(t, repo)

	stocks, err := repo.List()
	require.NoError(t, err)
	require.Len(t, stocks, 5)

	symbols := make([]string, 0, len(stocks))
	for _, s := range stocks {
		symbols = append(symbols, s.Symbol)
	}
	assert.Equal(t, []string{"HDFCBANK", "NIFTY", "RELIANCE", "SENSEX", "TCS"}, symbols)
}

func TestGetStockBySymbol(t *testing.T) {
	repo := newStockRepo(t)
	seedStocks(t, repo)

	stock, err := repo.GetBySymbol("RELIANCE")
	require.NoError(t, err)
	require.NotNil(t, stock)
	assert.Equal(t, "Reliance Ind.", stock.Name)
	assert.Equal(t, "2,980.00", stock.Price)

	missing, err := repo.GetBySymbol("NOPE")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestDuplicateSymbolRejected(t *testing.T) {
	repo := newStockRepo(t)
	seedStocks(t, repo)

	dup := models.Stock{Symbol: "TCS", Name: "Other", Price: "1", Change: "0", ChangePercent: "0%"}
	assert.Error(t, repo.Create(&dup))
}

func TestUpdateQuoteReplacesDisplayStrings(t *testing.T) {
	repo := newStockRepo(t)
	seedStocks(t, repo)

	found, err := repo.UpdateQuote("TCS", "4,001.10", "+51.10", "+1.29%")
	require.NoError(t, err)
	assert.True(t, found)

	stock, err := repo.GetBySymbol("TCS")
	require.NoError(t, err)
	require.NotNil(t, stock)
	assert.Equal(t, "4,001.10", stock.Price)
	assert.Equal(t, "+51.10", stock.Change)
	assert.Equal(t, "+1.29%", stock.ChangePercent)
	assert.Equal(t, "TCS", stock.Name) // name untouched

	found, err = repo.UpdateQuote("NOPE", "1", "0", "0%")
	require.NoError(t, err)
	assert.False(t, found)
}
