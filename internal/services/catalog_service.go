package services

import (
	"kalahaat/internal/models"
	"kalahaat/internal/repositories"

	"github.com/sirupsen/logrus"
)

// CatalogService handles business logic related to the product catalog.
// Authorization is enforced here, not in the HTTP layer: the checks hold
// no matter what the UI exposes.
type CatalogService struct {
	productRepo repositories.ProductRepository
	artisanRepo repositories.ArtisanRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(productRepo repositories.ProductRepository, artisanRepo repositories.ArtisanRepository) *CatalogService {
	return &CatalogService{
		productRepo: productRepo,
		artisanRepo: artisanRepo,
	}
}

// ListProducts retrieves all products, newest first. Read access is
// unrestricted for all roles.
func (s *CatalogService) ListProducts() ([]models.Product, error) {
	return s.productRepo.GetAll()
}

// GetProduct retrieves a single product by its ID.
func (s *CatalogService) GetProduct(id string) (*models.Product, error) {
	return s.productRepo.GetByID(id)
}

// AddProduct creates a new listing. Producers may only list under their
// own seller id; admins may list for any seller. The seller must reference
// an existing artisan or the admin identity.
func (s *CatalogService) AddProduct(actor *models.User, product *models.Product) error {
	if !models.ActorCan(actor, models.PermAddProduct) {
		return ErrPermissionDenied
	}
	if product.SellerID == "" {
		product.SellerID = actor.ID
	}
	if actor.Role == models.RoleProducer && product.SellerID != actor.ID {
		return ErrPermissionDenied
	}
	if product.SellerID != models.AdminUserID {
		if _, err := s.artisanRepo.GetByID(product.SellerID); err != nil {
			return ErrUnknownSeller
		}
	}
	if err := s.productRepo.Create(product); err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{"product_id": product.ID, "seller_id": product.SellerID}).Info("product listed")
	return nil
}

/// DeleteProduct removes a listing. Admin only: producers may not delete,
// which is an authorization rule rather than a UI limitation.
func (s *CatalogService) DeleteProduct(actor *models.User, id string) error {
	if !models.ActorCan(actor, models.PermDeleteProduct) {
		return ErrPermissionDenied
	}
	return s.productRepo.Delete(id)
}
