package services_test

import (
	"kalahaat/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll() ([]models.Product, error) {
	args := m.Called()
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(id string) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockProductRepository) DeleteBySeller(sellerID string) (int, error) {
	args := m.Called(sellerID)
	return args.Int(0), args.Error(1)
}

// MockOrderRepository is a mock implementation of repositories.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) GetAll() ([]models.Order, error) {
	args := m.Called()
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByID(id string) (*models.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) Create(order *models.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateStatus(id string, status models.OrderStatus) error {
	args := m.Called(id, status)
	return args.Error(0)
}

// MockArtisanRepository is a mock implementation of repositories.ArtisanRepository
type MockArtisanRepository struct {
	mock.Mock
}

func (m *MockArtisanRepository) GetAll() ([]models.Artisan, error) {
	args := m.Called()
	return args.Get(0).([]models.Artisan), args.Error(1)
}

func (m *MockArtisanRepository) GetByID(id string) (*models.Artisan, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Artisan), args.Error(1)
}

func (m *MockArtisanRepository) GetByContact(contact string) (*models.Artisan, error) {
	args := m.Called(contact)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Artisan), args.Error(1)
}

func (m *MockArtisanRepository) Create(artisan *models.Artisan) error {
	args := m.Called(artisan)
	return args.Error(0)
}

func (m *MockArtisanRepository) Update(artisan *models.Artisan) error {
	args := m.Called(artisan)
	return args.Error(0)
}

func (m *MockArtisanRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockTeamMemberRepository is a mock implementation of repositories.TeamMemberRepository
type MockTeamMemberRepository struct {
	mock.Mock
}

func (m *MockTeamMemberRepository) GetAll() ([]models.TeamMember, error) {
	args := m.Called()
	return args.Get(0).([]models.TeamMember), args.Error(1)
}

func (m *MockTeamMemberRepository) GetByID(id string) (*models.TeamMember, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TeamMember), args.Error(1)
}

func (m *MockTeamMemberRepository) GetByUsername(username string) (*models.TeamMember, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TeamMember), args.Error(1)
}

func (m *MockTeamMemberRepository) GetByEmail(email string) (*models.TeamMember, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TeamMember), args.Error(1)
}

func (m *MockTeamMemberRepository) Create(member *models.TeamMember) error {
	args := m.Called(member)
	return args.Error(0)
}

func (m *MockTeamMemberRepository) Update(member *models.TeamMember) error {
	args := m.Called(member)
	return args.Error(0)
}

// recordingSMSSender captures the last code handed to the SMS channel so
// tests can complete the one-time-code flow.
type recordingSMSSender struct {
	mobiles []string
	codes   []string
}

func (r *recordingSMSSender) SendLoginCode(mobile, code string) error {
	r.mobiles = append(r.mobiles, mobile)
	r.codes = append(r.codes, code)
	return nil
}

func (r *recordingSMSSender) lastCode() string {
	if len(r.codes) == 0 {
		return ""
	}
	return r.codes[len(r.codes)-1]
}

// recordingMailer captures password reset notifications.
type recordingMailer struct {
	emails []string
}

func (r *recordingMailer) SendPasswordReset(email, name string) error {
	r.emails = append(r.emails, email)
	return nil
}

// recordingPublisher captures published event routing keys and bodies.
type recordingPublisher struct {
	routingKeys []string
	bodies      [][]byte
}

func (r *recordingPublisher) Publish(exchange, routingKey string, body []byte) error {
	r.routingKeys = append(r.routingKeys, routingKey)
	r.bodies = append(r.bodies, body)
	return nil
}
