package repositories

import (
	"fmt"

	"kalahaat/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMArtisanRepository is a GORM implementation of ArtisanRepository.
type GORMArtisanRepository struct {
	db *gorm.DB
}

// NewGORMArtisanRepository creates a new instance of GORMArtisanRepository.
func NewGORMArtisanRepository(db *gorm.DB) *GORMArtisanRepository {
	return &GORMArtisanRepository{
		db: db,
	}
}

// GetAll retrieves all artisans from the database.
func (r *GORMArtisanRepository) GetAll() ([]models.Artisan, error) {
	var artisans []models.Artisan
	if err := r.db.Find(&artisans).Error; err != nil {
		return nil, fmt.Errorf("failed to get all artisans: %w", err)
	}
	return artisans, nil
}

// GetByID retrieves an artisan by ID from the database.
func (r *GORMArtisanRepository) GetByID(id string) (*models.Artisan, error) {
	var artisan models.Artisan
	if err := r.db.First(&artisan, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("artisan with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get artisan by ID %s: %w", id, err)
	}
	return &artisan, nil
}

// GetByContact retrieves the artisan registered with the mobile number.
func (r *GORMArtisanRepository) GetByContact(contact string) (*models.Artisan, error) {
	var artisan models.Artisan
	if err := r.db.First(&artisan, "contact = ?", contact).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("artisan with contact %s not found", contact)
		}
		return nil, fmt.Errorf("failed to get artisan by contact %s: %w", contact, err)
	}
	return &artisan, nil
}

// Create creates a new artisan in the database.
func (r *GORMArtisanRepository) Create(artisan *models.Artisan) error {
	if artisan.ID == "" {
		artisan.ID = uuid.New().String()
	}
	if err := r.db.Create(artisan).Error; err != nil {
		return fmt.Errorf("failed to create artisan: %w", err)
	}
	return nil
}

// Update updates an existing artisan in the database.
func (r *GORMArtisanRepository) Update(artisan *models.Artisan) error {
	res := r.db.Save(artisan)
	if res.Error != nil {
		return fmt.Errorf("failed to update artisan: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("artisan with ID %s not found for update", artisan.ID)
	}
	return nil
}

// Delete deletes an artisan by ID from the database.
func (r *GORMArtisanRepository) Delete(id string) error {
	res := r.db.Delete(&models.Artisan{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete artisan: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("artisan with ID %s not found for deletion", id)
	}
	return nil
}
