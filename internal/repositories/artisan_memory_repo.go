package repositories

import (
	"fmt"
	"sync"

	"kalahaat/internal/models"

	"github.com/google/uuid"
)

// MemoryArtisanRepository is the process-lifetime implementation of
// ArtisanRepository.
type MemoryArtisanRepository struct {
	artisans []models.Artisan
	mu       sync.RWMutex
}

// NewMemoryArtisanRepository creates a new instance of MemoryArtisanRepository.
func NewMemoryArtisanRepository() *MemoryArtisanRepository {
	return &MemoryArtisanRepository{}
}

// GetAll returns all artisans in registration order.
func (r *MemoryArtisanRepository) GetAll() ([]models.Artisan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Artisan, len(r.artisans))
	copy(out, r.artisans)
	return out, nil
}

// GetByID returns an artisan by ID.
func (r *MemoryArtisanRepository) GetByID(id string) (*models.Artisan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.artisans {
		if r.artisans[i].ID == id {
			a := r.artisans[i]
			return &a, nil
		}
	}
	return nil, fmt.Errorf("artisan with ID %s not found", id)
}

// GetByContact returns the artisan registered with the mobile number.
func (r *MemoryArtisanRepository) GetByContact(contact string) (*models.Artisan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.artisans {
		if r.artisans[i].Contact == contact {
			a := r.artisans[i]
			return &a, nil
		}
	}
	return nil, fmt.Errorf("artisan with contact %s not found", contact)
}

// Create adds a new artisan. The contact number must be unique.
func (r *MemoryArtisanRepository) Create(artisan *models.Artisan) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.artisans {
		if r.artisans[i].Contact == artisan.Contact {
			return fmt.Errorf("artisan with contact %s already exists", artisan.Contact)
		}
	}
	if artisan.ID == "" {
		artisan.ID = uuid.New().String()
	}
	r.artisans = append(r.artisans, *artisan)
	return nil
}

// Update modifies an existing artisan.
func (r *MemoryArtisanRepository) Update(artisan *models.Artisan) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.artisans {
		if r.artisans[i].ID == artisan.ID {
			r.artisans[i] = *artisan
			return nil
		}
	}
	return fmt.Errorf("artisan with ID %s not found for update", artisan.ID)
}

// Delete removes an artisan by ID.
func (r *MemoryArtisanRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.artisans {
		if r.artisans[i].ID == id {
			r.artisans = append(r.artisans[:i], r.artisans[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("artisan with ID %s not found for deletion", id)
}
