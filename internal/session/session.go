// Package session owns the authoritative state of the single active
// session: the current actor, their cart, and the composed commerce
// services. Every mutation goes through one mutex, which supplies the
// happens-before ordering the workflows rely on (a verification flip is
// visible to any later read, and order creation plus cart clearing are
// never observable as separate steps).
package session

import (
	"sync"

	"kalahaat/internal/models"
	"kalahaat/internal/services"
)

// Store is the single stateful container composing identity, catalog,
// cart, orders and onboarding. It is constructed with New and injected
// where needed; there is no ambient global instance, so tests build fresh
// isolated stores.
type Store struct {
	mu   sync.Mutex
	user *models.User
	cart *models.Cart

	auth       *services.AuthService
	catalog    *services.CatalogService
	orders     *services.OrderService
	onboarding *services.OnboardingService
	settlement *services.SettlementService
}

// New creates an empty session store: no actor, empty cart.
func New(
	auth *services.AuthService,
	catalog *services.CatalogService,
	orders *services.OrderService,
	onboarding *services.OnboardingService,
	settlement *services.SettlementService,
) *Store {
	return &Store{
		cart:       models.NewCart(),
		auth:       auth,
		catalog:    catalog,
		orders:     orders,
		onboarding: onboarding,
		settlement: settlement,
	}
}

// ---- Identity ----

// Current returns a copy of the current actor, or nil when the session is
// unauthenticated (guest).
func (s *Store) Current() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// LoginWithPassword runs the password path (admin, team member) and sets
// the current actor on success.
func (s *Store) LoginWithPassword(username, password string) (*services.LoginResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result, err := s.auth.LoginWithPassword(username, password)
	if err != nil {
		return nil, err
	}
	s.setActor(result.User)
	return result, nil
}

// LoginAsCustomer sets a customer actor without a credential check (the
// intentionally-unauthenticated path).
func (s *Store) LoginAsCustomer(name string) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	user := s.auth.LoginAsCustomer(name)
	s.setActor(user)
	return user
}

// RequestCode starts the one-time-code path for a producer.
func (s *Store) RequestCode(mobile string) error {
	return s.auth.RequestCode(mobile)
}

// VerifyCode completes the one-time-code path and sets the current actor
// on success.
func (s *Store) VerifyCode(mobile, code string) (*services.LoginResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result, err := s.auth.VerifyCode(mobile, code)
	if err != nil {
		return nil, err
	}
	s.setActor(result.User)
	return result, nil
}

// Logout clears the current actor and the cart. Simple cleanup, not an
// audit-relevant event.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.cart.Clear()
}

// RegisterTeamMember creates an unverified staff account. The session
// actor does not change.
func (s *Store) RegisterTeamMember(req services.RegisterTeamMemberRequest) (*models.TeamMember, error) {
	return s.auth.RegisterTeamMember(req)
}

// RequestPasswordReset sends a reset notification if the email matches a
// staff account or the admin.
func (s *Store) RequestPasswordReset(email string) error {
	return s.auth.RequestPasswordReset(email)
}

// setActor replaces the current actor wholesale. Actor switches always
// go through a login path; the cart is only cleared by Logout.
func (s *Store) setActor(user *models.User) {
	s.user = user
}

// ---- Catalog ----

// Products lists the catalog, newest first.
func (s *Store) Products() ([]models.Product, error) {
	return s.catalog.ListProducts()
}

// AddProduct lists a product as the current actor.
func (s *Store) AddProduct(product *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.AddProduct(s.user, product)
}

// DeleteProduct removes a product as the current actor (admin only).
func (s *Store) DeleteProduct(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.DeleteProduct(s.user, id)
}

// ---- Cart ----

// AddToCart adds the product with the given id to the session cart,
// incrementing the quantity if it is already present.
func (s *Store) AddToCart(productID string) error {
	product, err := s.catalog.GetProduct(productID)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Add(*product)
	return nil
}

// RemoveFromCart removes the entry for the product id entirely.
func (s *Store) RemoveFromCart(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Remove(productID)
}

// ClearCart empties the session cart.
func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Clear()
}

// CartItems returns a snapshot of the session cart.
func (s *Store) CartItems() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Items()
}

// CartTotal returns the current cart total.
func (s *Store) CartTotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Total()
}

// ---- Orders ----

// PlaceOrder converts the session cart into a pending order and clears
// the cart as one unit. It inherits the silent no-op semantics of
// OrderService.PlaceOrder: nil order, nil error when there is no actor or
// the cart is empty.
func (s *Store) PlaceOrder(shipping *models.ShippingDetails, paymentMethod string) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orders.PlaceOrder(s.user, s.cart, shipping, paymentMethod)
}

// Orders lists all orders, newest first.
func (s *Store) Orders() ([]models.Order, error) {
	return s.orders.GetAllOrders()
}

// UpdateOrderStatus advances or cancels an order as the current actor.
func (s *Store) UpdateOrderStatus(id string, status models.OrderStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orders.UpdateOrderStatus(s.user, id, status)
}

// Overview aggregates the dashboard numbers. Revenue excludes cancelled
// orders.
type Overview struct {
	TotalRevenue   float64 `json:"total_revenue"`
	TotalOrders    int     `json:"total_orders"`
	ActiveProducts int     `json:"active_products"`
	AvgOrderValue  float64 `json:"avg_order_value"`
}

// Stats computes the admin overview.
func (s *Store) Stats() (*Overview, error) {
	orders, err := s.orders.GetAllOrders()
	if err != nil {
		return nil, err
	}
	revenue, err := s.orders.TotalRevenue()
	if err != nil {
		return nil, err
	}
	products, err := s.catalog.ListProducts()
	if err != nil {
		return nil, err
	}

	overview := &Overview{
		TotalRevenue:   revenue,
		TotalOrders:    len(orders),
		ActiveProducts: len(products),
	}
	if overview.TotalOrders > 0 {
		overview.AvgOrderValue = revenue / float64(overview.TotalOrders)
	}
	return overview, nil
}

// ---- Onboarding ----

// RegisterArtisan creates an unverified producer profile.
func (s *Store) RegisterArtisan(req services.RegisterArtisanRequest) (*models.Artisan, error) {
	return s.onboarding.RegisterArtisan(req)
}

// ApproveArtisan verifies an artisan as the current actor (admin only).
func (s *Store) ApproveArtisan(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.onboarding.ApproveArtisan(s.user, id)
}

// DeleteArtisan removes an artisan and every product they sell, as one
// unit, as the current actor (admin only).
func (s *Store) DeleteArtisan(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.onboarding.DeleteArtisan(s.user, id)
}

// VerifyTeamMember verifies a staff account as the current actor (admin
// only).
func (s *Store) VerifyTeamMember(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.onboarding.VerifyTeamMember(s.user, id)
}

// Artisans lists all producer profiles.
func (s *Store) Artisans() ([]models.Artisan, error) {
	return s.onboarding.Artisans()
}

// PendingArtisans lists profiles waiting for approval.
func (s *Store) PendingArtisans() ([]models.Artisan, error) {
	return s.onboarding.PendingArtisans()
}

// TeamMembers lists staff accounts as the current actor.
func (s *Store) TeamMembers() ([]models.TeamMember, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.onboarding.TeamMembers(s.user)
}

// ---- Settlement ----

// BankDetails returns the marketplace payout account as the current
// actor (admin only).
func (s *Store) BankDetails() (*models.BankDetails, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settlement.BankDetails(s.user)
}

// SaveBankDetails replaces the payout account as the current actor
// (admin only).
func (s *Store) SaveBankDetails(details models.BankDetails) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settlement.SaveBankDetails(s.user, details)
}
