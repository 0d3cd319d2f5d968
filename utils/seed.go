package utils

import (
	"log"

	"marketwire/models"
	"marketwire/repository"
)

func strPtr(s string) *string { return &s }

// SeedDatabase loads the launch content on an empty store: three articles
// and the five index/large-cap tickers. Does nothing when articles already
// exist, so restarts are safe.
func SeedDatabase(articles repository.ArticleRepository, stocks repository.StockRepository) error {
	existing, err := articles.List(repository.ArticleFilters{Limit: 1})
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	log.Println("Seeding launch content...")

	seedArticles := []models.Article{
		{
			Title:        "Market Rally: Sensex Hits All-Time High",
			Slug:         "market-rally-sensex-high",
			Summary:      "Indian benchmark indices touched new highs today driven by banking and IT stocks.",
			Content:      "The BSE Sensex crossed the 75,000 mark for the first time... (Full article content)",
			Category:     "Indian Markets",
			ImageURL:     "https://images.unsplash.com/photo-1611974765270-ca1258634369?auto=format&fit=crop&q=80&w=1000",
			AuthorName:   "Market Analyst",
			IsFeatured:   true,
			TickerSymbol: strPtr("SENSEX"),
		},
		{
			Title:       "Top 5 Mid-Cap Stocks for 2026",
			Slug:        "top-5-mid-cap-stocks-2026",
			Summary:     "A detailed analysis of mid-cap stocks showing strong growth potential.",
			Content:     "Mid-cap stocks have historically outperformed... (Full article content)",
			Category:    "Indian Markets",
			Subcategory: strPtr("Mid Cap"),
			ImageURL:    "https://images.unsplash.com/photo-1590283603385-17ffb3a7f29f?auto=format&fit=crop&q=80&w=1000",
			AuthorName:  "Research Team",
		},
		{
			Title:      "Understanding IPOs: A Beginner's Guide",
			Slug:       "understanding-ipos-guide",
			Summary:    "Everything you need to know before investing in an Initial Public Offering.",
			Content:    "IPOs can be lucrative but carry risks... (Full article content)",
			Category:   "Learn",
			ImageURL:   "https://images.unsplash.com/photo-1579532551690-3842daef459b?auto=format&fit=crop&q=80&w=1000",
			AuthorName: "Education Desk",
		},
	}
	for i := range seedArticles {
		if err := articles.Create(&seedArticles[i]); err != nil {
			return err
		}
	}

	seedStocks := []models.Stock{
		{Symbol: "SENSEX", Name: "BSE Sensex", Price: "75,124.50", Change: "+350.20", ChangePercent: "+0.47%", Sector: strPtr("Index")},
		{Symbol: "NIFTY", Name: "Nifty 50", Price: "22,642.80", Change: "+110.15", ChangePercent: "+0.49%", Sector: strPtr("Index")},
		{Symbol: "RELIANCE", Name: "Reliance Ind.", Price: "2,980.00", Change: "+15.00", ChangePercent: "+0.51%", Sector: strPtr("Energy")},
		{Symbol: "TCS", Name: "TCS", Price: "3,950.00", Change: "-12.50", ChangePercent: "-0.32%", Sector: strPtr("Technology")},
		{Symbol: "HDFCBANK", Name: "HDFC Bank", Price: "1,540.00", Change: "+22.00", ChangePercent: "+1.45%", Sector: strPtr("Banking")},
	}
	for i := range seedStocks {
		if err := stocks.Create(&seedStocks[i]); err != nil {
			return err
		}
	}

	log.Printf("Seeded %d articles and %d stocks", len(seedArticles), len(seedStocks))
	return nil
}
