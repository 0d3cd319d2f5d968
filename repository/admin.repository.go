package repository

import (
	"errors"
	"fmt"

	"marketwire/models"

	"gorm.io/gorm"
)

// AdminRepository manages the CMS account.
type AdminRepository interface {
	GetByEmail(email string) (*models.Admin, error)
	Upsert(email, passwordHash string) error
}

type gormAdminRepository struct {
	db *gorm.DB
}

// NewAdminRepository returns a GORM-backed AdminRepository.
func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &gormAdminRepository{db: db}
}

// GetByEmail returns the admin with the exact email, or nil.
func (r *gormAdminRepository) GetByEmail(email string) (*models.Admin, error) {
	var admin models.Admin
	err := r.db.Where("email = ?", email).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get admin: %w", err)
	}
	return &admin, nil
}

// Upsert creates the admin row or refreshes its password hash.
func (r *gormAdminRepository) Upsert(email, passwordHash string) error {
	existing, err := r.GetByEmail(email)
	if err != nil {
		return err
	}
	if existing == nil {
		if err := r.db.Create(&models.Admin{Email: email, Password: passwordHash}).Error; err != nil {
			return fmt.Errorf("create admin: %w", err)
		}
		return nil
	}
	if err := r.db.Model(existing).Update("password", passwordHash).Error; err != nil {
		return fmt.Errorf("update admin: %w", err)
	}
	return nil
}
