package repositories

import (
	"kalahaat/internal/models"
)

// ProductRepository defines the interface for product data access.
// GetAll returns products newest-first; that ordering is part of the
// catalog contract, not incidental.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
	DeleteBySeller(sellerID string) (int, error)
}
