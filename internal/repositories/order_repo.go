package repositories

import (
	"kalahaat/internal/models"
)

// OrderRepository defines the interface for order data access.
// GetAll returns orders newest-first. Orders are never deleted; only
// their status changes after creation.
type OrderRepository interface {
	GetAll() ([]models.Order, error)
	GetByID(id string) (*models.Order, error)
	Create(order *models.Order) error
	UpdateStatus(id string, status models.OrderStatus) error
}
