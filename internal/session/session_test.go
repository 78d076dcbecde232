package session_test

import (
	"testing"

	"kalahaat/internal/models"
	"kalahaat/internal/notification"
	"kalahaat/internal/repositories"
	"kalahaat/internal/services"
	"kalahaat/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newStore wires a fresh store over the in-memory repositories, the way
// main does it with the memory storage driver.
func newStore(t *testing.T) *session.Store {
	t.Helper()

	productRepo := repositories.NewMemoryProductRepository()
	orderRepo := repositories.NewMemoryOrderRepository()
	artisanRepo := repositories.NewMemoryArtisanRepository()
	teamRepo := repositories.NewMemoryTeamMemberRepository()

	auth, err := services.NewAuthService(
		teamRepo,
		artisanRepo,
		notification.NewLogSMSSender(),
		notification.NewLogMailer(),
		"test-secret",
		services.AdminAccount{Username: "admin", Password: "admin123", Email: "admin@example.com", Name: "Administrator"},
	)
	require.NoError(t, err)

	return session.New(
		auth,
		services.NewCatalogService(productRepo, artisanRepo),
		services.NewOrderService(orderRepo, nil),
		services.NewOnboardingService(artisanRepo, teamRepo, productRepo),
		services.NewSettlementService(),
	)
}

func loginAdmin(t *testing.T, store *session.Store) {
	t.Helper()
	_, err := store.LoginWithPassword("admin", "admin123")
	require.NoError(t, err)
}

func addProduct(t *testing.T, store *session.Store, title string, price float64) string {
	t.Helper()
	product := &models.Product{Title: title, Price: price, Category: models.CategoryPaintings, Stock: 10}
	require.NoError(t, store.AddProduct(product))
	return product.ID
}

func TestStore_StartsAsGuest(t *testing.T) {
	store := newStore(t)

	assert.Nil(t, store.Current())
	assert.Empty(t, store.CartItems())
	assert.Equal(t, 0.0, store.CartTotal())
}

func TestStore_CustomerCheckout(t *testing.T) {
	store := newStore(t)
	loginAdmin(t, store)
	productID := addProduct(t, store, "Warli Painting", 100.0)

	store.Logout()
	customer := store.LoginAsCustomer("Asha")
	assert.Equal(t, models.RoleCustomer, customer.Role)

	// Same product twice becomes one entry with quantity 2.
	require.NoError(t, store.AddToCart(productID))
	require.NoError(t, store.AddToCart(productID))
	items := store.CartItems()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 200.0, store.CartTotal())

	order, err := store.PlaceOrder(&models.ShippingDetails{Name: "Asha", City: "Pune"}, "cod")
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, customer.ID, order.CustomerID)
	assert.Equal(t, 200.0, order.Total)
	assert.Equal(t, models.OrderPending, order.Status)

	// Checkout emptied the cart and the order is on record.
	assert.Empty(t, store.CartItems())
	orders, err := store.Orders()
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, order.ID, orders[0].ID)
}

func TestStore_PlaceOrderPreconditions(t *testing.T) {
	store := newStore(t)
	loginAdmin(t, store)
	productID := addProduct(t, store, "Bamboo Flute", 50.0)

	// Empty cart: silent no-op.
	order, err := store.PlaceOrder(nil, "cod")
	assert.NoError(t, err)
	assert.Nil(t, order)

	// No actor: a guest can browse and fill the cart, but checkout is a
	// silent no-op.
	store.Logout()
	require.NoError(t, store.AddToCart(productID))
	require.Len(t, store.CartItems(), 1)
	order, err = store.PlaceOrder(nil, "cod")
	assert.NoError(t, err)
	assert.Nil(t, order)

	orders, err := store.Orders()
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestStore_LogoutClearsCart(t *testing.T) {
	store := newStore(t)
	loginAdmin(t, store)
	productID := addProduct(t, store, "Dokra Statue", 300.0)

	store.Logout()
	store.LoginAsCustomer("Asha")
	require.NoError(t, store.AddToCart(productID))
	require.Len(t, store.CartItems(), 1)

	store.Logout()
	assert.Nil(t, store.Current())
	assert.Empty(t, store.CartItems())
}

func TestStore_TeamMemberOnboarding(t *testing.T) {
	store := newStore(t)

	member, err := store.RegisterTeamMember(services.RegisterTeamMemberRequest{
		Name:     "Jane Staff",
		Username: "jane_staff",
		Password: "secret123",
		Contact:  "9822003003",
		Email:    "jane@example.com",
	})
	require.NoError(t, err)
	assert.False(t, member.IsVerified)

	// Correct password, but the account has not been approved yet.
	_, err = store.LoginWithPassword("jane_staff", "secret123")
	assert.ErrorIs(t, err, services.ErrNotVerified)

	loginAdmin(t, store)
	require.NoError(t, store.VerifyTeamMember(member.ID))
	store.Logout()

	result, err := store.LoginWithPassword("jane_staff", "secret123")
	require.NoError(t, err)
	assert.Equal(t, models.RoleTeamMember, result.User.Role)

	// Verified staff can move orders but not approve artisans.
	assert.ErrorIs(t, store.ApproveArtisan("any"), services.ErrPermissionDenied)
}

func TestStore_ArtisanLifecycle(t *testing.T) {
	store := newStore(t)

	artisan, err := store.RegisterArtisan(services.RegisterArtisanRequest{
		Name:     "Sita Mhase",
		ShopName: "Warli Art House",
		ArtType:  "Warli painting",
		Location: "Palghar",
		Contact:  "9822001001",
	})
	require.NoError(t, err)

	pending, err := store.PendingArtisans()
	require.NoError(t, err)
	require.Len(t, pending, 1)

	loginAdmin(t, store)
	require.NoError(t, store.ApproveArtisan(artisan.ID))
	pending, err = store.PendingArtisans()
	require.NoError(t, err)
	assert.Empty(t, pending)

	// Admin lists a product under the artisan, then removing the artisan
	// cascades to the listing.
	product := &models.Product{SellerID: artisan.ID, Title: "Harvest Painting", Price: 500.0, Category: models.CategoryPaintings}
	require.NoError(t, store.AddProduct(product))
	products, err := store.Products()
	require.NoError(t, err)
	require.Len(t, products, 1)

	require.NoError(t, store.DeleteArtisan(artisan.ID))
	products, err = store.Products()
	require.NoError(t, err)
	assert.Empty(t, products)

	artisans, err := store.Artisans()
	require.NoError(t, err)
	assert.Empty(t, artisans)
}

func TestStore_OrderStatusFlow(t *testing.T) {
	store := newStore(t)
	loginAdmin(t, store)
	productID := addProduct(t, store, "Warli Painting", 100.0)

	store.Logout()
	store.LoginAsCustomer("Asha")
	require.NoError(t, store.AddToCart(productID))
	order, err := store.PlaceOrder(nil, "upi")
	require.NoError(t, err)

	// Customers cannot move orders.
	assert.ErrorIs(t, store.UpdateOrderStatus(order.ID, models.OrderProcessing), services.ErrPermissionDenied)

	store.Logout()
	loginAdmin(t, store)
	require.NoError(t, store.UpdateOrderStatus(order.ID, models.OrderProcessing))
	require.NoError(t, store.UpdateOrderStatus(order.ID, models.OrderShipped))
	require.NoError(t, store.UpdateOrderStatus(order.ID, models.OrderDelivered))

	// Delivered is terminal.
	assert.ErrorIs(t, store.UpdateOrderStatus(order.ID, models.OrderPending), services.ErrInvalidTransition)
}

func TestStore_Stats(t *testing.T) {
	store := newStore(t)
	loginAdmin(t, store)
	firstID := addProduct(t, store, "Painting", 100.0)
	secondID := addProduct(t, store, "Flute", 50.0)

	store.Logout()
	store.LoginAsCustomer("Asha")
	require.NoError(t, store.AddToCart(firstID))
	first, err := store.PlaceOrder(nil, "cod")
	require.NoError(t, err)
	require.NoError(t, store.AddToCart(secondID))
	_, err = store.PlaceOrder(nil, "cod")
	require.NoError(t, err)

	// Cancel the first order; its total must drop out of revenue but the
	// order still counts.
	store.Logout()
	loginAdmin(t, store)
	require.NoError(t, store.UpdateOrderStatus(first.ID, models.OrderCancelled))

	stats, err := store.Stats()
	require.NoError(t, err)
	assert.Equal(t, 50.0, stats.TotalRevenue)
	assert.Equal(t, 2, stats.TotalOrders)
	assert.Equal(t, 2, stats.ActiveProducts)
	assert.Equal(t, 25.0, stats.AvgOrderValue)
}
