package repositories

import (
	"fmt"
	"sync"

	"kalahaat/internal/models"

	"github.com/google/uuid"
)

// MemoryProductRepository is the process-lifetime implementation of
// ProductRepository. A slice (not a map) backs it because the catalog
// contract is newest-first ordering.
type MemoryProductRepository struct {
	products []models.Product
	mu       sync.RWMutex
}

// NewMemoryProductRepository creates a new instance of MemoryProductRepository.
func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{}
}

// GetAll returns all products, newest first.
func (r *MemoryProductRepository) GetAll() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

// GetByID returns a product by its ID.
func (r *MemoryProductRepository) GetByID(id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.products {
		if r.products[i].ID == id {
			p := r.products[i]
			return &p, nil
		}
	}
	return nil, fmt.Errorf("product with ID %s not found", id)
}

// Create prepends a new product so the newest listing appears first.
func (r *MemoryProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	r.products = append([]models.Product{*product}, r.products...)
	return nil
}

// Update modifies an existing product in place.
func (r *MemoryProductRepository) Update(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID == product.ID {
			r.products[i] = *product
			return nil
		}
	}
	return fmt.Errorf("product with ID %s not found for update", product.ID)
}

// Delete removes a product by its ID.
func (r *MemoryProductRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("product with ID %s not found for deletion", id)
}

// DeleteBySeller removes every product owned by the seller and returns
// how many were removed. Used by the artisan cascade.
func (r *MemoryProductRepository) DeleteBySeller(sellerID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.products[:0]
	removed := 0
	for _, p := range r.products {
		if p.SellerID == sellerID {
			removed++
			continue
		}
		kept = append(kept, p)
	}
	r.products = kept
	return removed, nil
}
