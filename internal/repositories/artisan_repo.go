package repositories

import "kalahaat/internal/models"

// ArtisanRepository defines the interface for artisan profile data access.
type ArtisanRepository interface {
	GetAll() ([]models.Artisan, error)
	GetByID(id string) (*models.Artisan, error)
	GetByContact(contact string) (*models.Artisan, error)
	Create(artisan *models.Artisan) error
	Update(artisan *models.Artisan) error
	Delete(id string) error
}
