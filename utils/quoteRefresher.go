package utils

import (
	"fmt"
	"log"

	"marketwire/config"
	"marketwire/repository"

	"github.com/go-resty/resty/v2"
	"github.com/robfig/cron/v3"
)

// quoteSnapshot is one entry of the upstream feed payload.
type quoteSnapshot struct {
	Symbol        string `json:"symbol"`
	Price         string `json:"price"`
	Change        string `json:"change"`
	ChangePercent string `json:"changePercent"`
}

// StartQuoteRefresher schedules periodic pulls of display quotes from the
// configured feed. Returns nil without scheduling anything when no feed URL
// is configured; stocks then keep their seeded values.
func StartQuoteRefresher(stocks repository.StockRepository) *cron.Cron {
	if config.AppConfig.QuoteApiURL == "" {
		log.Println("[QUOTE-REFRESHER] QUOTE_API_URL not set, refresher disabled")
		return nil
	}

	c := cron.New()
	if _, err := c.AddFunc(config.AppConfig.QuoteRefreshSpec, func() {
		if err := RefreshQuotes(stocks, config.AppConfig.QuoteApiURL); err != nil {
			log.Printf("[QUOTE-REFRESHER] Refresh failed: %v", err)
		}
	}); err != nil {
		log.Printf("[QUOTE-REFRESHER] Invalid cron spec %q: %v", config.AppConfig.QuoteRefreshSpec, err)
		return nil
	}

	c.Start()
	log.Printf("[QUOTE-REFRESHER] Started with spec %q", config.AppConfig.QuoteRefreshSpec)
	return c
}

// RefreshQuotes fetches the feed once and updates every known symbol.
// Symbols the store does not carry are skipped.
func RefreshQuotes(stocks repository.StockRepository, feedURL string) error {
	var snapshots []quoteSnapshot

	client := resty.New()
	resp, err := client.R().SetResult(&snapshots).Get(feedURL)
	if err != nil {
		return fmt.Errorf("fetch quotes: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("quote feed returned %s", resp.Status())
	}

	updated := 0
	for _, snap := range snapshots {
		if snap.Symbol == "" {
			continue
		}
		found, err := stocks.UpdateQuote(snap.Symbol, snap.Price, snap.Change, snap.ChangePercent)
		if err != nil {
			return err
		}
		if found {
			updated++
		}
	}

	log.Printf("[QUOTE-REFRESHER] Updated %d of %d quotes", updated, len(snapshots))
	return nil
}
