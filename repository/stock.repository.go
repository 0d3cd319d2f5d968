package repository

import (
	"errors"
	"fmt"

	"marketwire/models"

	"gorm.io/gorm"
)

// StockRepository is the persistence boundary for ticker snapshots. The API
// surface only reads stocks; Create backs the startup seed and UpdateQuote
// backs the optional upstream refresher.
type StockRepository interface {
	List() ([]models.Stock, error)
	GetBySymbol(symbol string) (*models.Stock, error)
	Create(stock *models.Stock) error
	UpdateQuote(symbol, price, change, changePercent string) (bool, error)
	Count() (int64, error)
}

type gormStockRepository struct {
	db *gorm.DB
}

// NewStockRepository returns a GORM-backed StockRepository.
func NewStockRepository(db *gorm.DB) StockRepository {
	return &gormStockRepository{db: db}
}

// List returns all stocks ordered by symbol ascending.
func (r *gormStockRepository) List() ([]models.Stock, error) {
	stocks := []models.Stock{}
	if err := r.db.Order("symbol ASC").Find(&stocks).Error; err != nil {
		return nil, fmt.Errorf("list stocks: %w", err)
	}
	return stocks, nil
}

// GetBySymbol returns the stock with the exact symbol, or nil.
func (r *gormStockRepository) GetBySymbol(symbol string) (*models.Stock, error) {
	var stock models.Stock
	err := r.db.Where("symbol = ?", symbol).First(&stock).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &stock, nil
}

// Create inserts a stock row. Symbol uniqueness is enforced by the store.
func (r *gormStockRepository) Create(stock *models.Stock) error {
	if err := r.db.Create(stock).Error; err != nil {
		return fmt.Errorf("create stock: %w", err)
	}
	return nil
}

// UpdateQuote replaces the display strings for one symbol. Reports
// found=false for unknown symbols.
func (r *gormStockRepository) UpdateQuote(symbol, price, change, changePercent string) (bool, error) {
	result := r.db.Model(&models.Stock{}).
		Where("symbol = ?", symbol).
		Updates(map[string]interface{}{
			"price":          price,
			"change":         change,
			"change_percent": changePercent,
		})
	if result.Error != nil {
		return false, fmt.Errorf("update quote: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// Count returns the number of stock rows.
func (r *gormStockRepository) Count() (int64, error) {
	var total int64
	if err := r.db.Model(&models.Stock{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("count stocks: %w", err)
	}
	return total, nil
}
