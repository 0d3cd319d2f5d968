package client

import (
	"sync"
	"time"

	"marketwire/contract"
	"marketwire/models"
)

// StockPollInterval approximates near-real-time pricing: staleness never
// exceeds one interval. This is polling, not push.
const StockPollInterval = 30 * time.Second

// WatchStocks polls the stock list on the given interval (or
// StockPollInterval when zero) and hands each fresh snapshot to fn. Failed
// polls are skipped; the previous snapshot stays cached. The returned stop
// function ends the loop.
func (c *Client) WatchStocks(interval time.Duration, fn func([]models.Stock)) (stop func()) {
	if interval <= 0 {
		interval = StockPollInterval
	}

	done := make(chan struct{})
	var once sync.Once
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				var fresh []models.Stock
				if err := c.doGet(contract.Stocks.List.Path, nil, &fresh); err != nil {
					continue
				}
				c.cache.set(cacheKey(contract.Stocks.List.Path, nil), fresh)
				if fn != nil {
					fn(fresh)
				}
			}
		}
	}()

	return func() { once.Do(func() { close(done) }) }
}
