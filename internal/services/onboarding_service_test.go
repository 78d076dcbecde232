package services_test

import (
	"fmt"
	"testing"

	"kalahaat/internal/models"
	"kalahaat/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	adminActor = &models.User{ID: models.AdminUserID, Role: models.RoleAdmin}
	staffActor = &models.User{ID: "tm-1", Role: models.RoleTeamMember}
)

func TestOnboardingService_RegisterArtisan(t *testing.T) {
	artisanRepo := new(MockArtisanRepository)
	service := services.NewOnboardingService(artisanRepo, new(MockTeamMemberRepository), new(MockProductRepository))

	req := services.RegisterArtisanRequest{
		Name:     "Sita Mhase",
		ShopName: "Warli Art House",
		ArtType:  "Warli painting",
		Location: "Palghar",
		Contact:  "9822001001",
	}

	artisanRepo.On("GetByContact", "9822001001").Return(nil, fmt.Errorf("not found")).Once()
	artisanRepo.On("Create", mock.AnythingOfType("*models.Artisan")).Return(nil).Once()

	artisan, err := service.RegisterArtisan(req)
	require.NoError(t, err)
	// Registration never yields a verified profile.
	assert.False(t, artisan.IsVerified)
	assert.Equal(t, "Warli Art House", artisan.ShopName)
	artisanRepo.AssertExpectations(t)
}

func TestOnboardingService_RegisterArtisan_Rejections(t *testing.T) {
	artisanRepo := new(MockArtisanRepository)
	service := services.NewOnboardingService(artisanRepo, new(MockTeamMemberRepository), new(MockProductRepository))

	_, err := service.RegisterArtisan(services.RegisterArtisanRequest{Contact: "12345"})
	assert.ErrorIs(t, err, services.ErrInvalidMobile)

	existing := &models.Artisan{ID: "art-1", Contact: "9822001001"}
	artisanRepo.On("GetByContact", "9822001001").Return(existing, nil).Once()
	_, err = service.RegisterArtisan(services.RegisterArtisanRequest{Contact: "9822001001"})
	assert.ErrorIs(t, err, services.ErrContactTaken)
	artisanRepo.AssertNotCalled(t, "Create")
}

func TestOnboardingService_ApproveArtisan(t *testing.T) {
	artisanRepo := new(MockArtisanRepository)
	service := services.NewOnboardingService(artisanRepo, new(MockTeamMemberRepository), new(MockProductRepository))

	pending := &models.Artisan{ID: "art-1", IsVerified: false}
	artisanRepo.On("GetByID", "art-1").Return(pending, nil).Once()
	artisanRepo.On("Update", mock.AnythingOfType("*models.Artisan")).Run(func(args mock.Arguments) {
		assert.True(t, args.Get(0).(*models.Artisan).IsVerified)
	}).Return(nil).Once()

	assert.NoError(t, service.ApproveArtisan(adminActor, "art-1"))
	artisanRepo.AssertExpectations(t)
}

func TestOnboardingService_ApproveArtisan_Idempotent(t *testing.T) {
	artisanRepo := new(MockArtisanRepository)
	service := services.NewOnboardingService(artisanRepo, new(MockTeamMemberRepository), new(MockProductRepository))

	verified := &models.Artisan{ID: "art-1", IsVerified: true}
	artisanRepo.On("GetByID", "art-1").Return(verified, nil).Once()

	// Approving twice is a no-op, not an error, and no write happens.
	assert.NoError(t, service.ApproveArtisan(adminActor, "art-1"))
	artisanRepo.AssertNotCalled(t, "Update")
}

func TestOnboardingService_ApproveArtisan_AdminOnly(t *testing.T) {
	artisanRepo := new(MockArtisanRepository)
	service := services.NewOnboardingService(artisanRepo, new(MockTeamMemberRepository), new(MockProductRepository))

	assert.ErrorIs(t, service.ApproveArtisan(staffActor, "art-1"), services.ErrPermissionDenied)
	assert.ErrorIs(t, service.ApproveArtisan(nil, "art-1"), services.ErrPermissionDenied)
	artisanRepo.AssertNotCalled(t, "GetByID")
}

func TestOnboardingService_DeleteArtisan_CascadesProducts(t *testing.T) {
	artisanRepo := new(MockArtisanRepository)
	productRepo := new(MockProductRepository)
	service := services.NewOnboardingService(artisanRepo, new(MockTeamMemberRepository), productRepo)

	artisanRepo.On("GetByID", "art-1").Return(&models.Artisan{ID: "art-1"}, nil).Once()
	productRepo.On("DeleteBySeller", "art-1").Return(3, nil).Once()
	artisanRepo.On("Delete", "art-1").Return(nil).Once()

	assert.NoError(t, service.DeleteArtisan(adminActor, "art-1"))
	artisanRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
}

func TestOnboardingService_DeleteArtisan_ProductFailureKeepsArtisan(t *testing.T) {
	artisanRepo := new(MockArtisanRepository)
	productRepo := new(MockProductRepository)
	service := services.NewOnboardingService(artisanRepo, new(MockTeamMemberRepository), productRepo)

	artisanRepo.On("GetByID", "art-1").Return(&models.Artisan{ID: "art-1"}, nil).Once()
	productRepo.On("DeleteBySeller", "art-1").Return(0, fmt.Errorf("database error")).Once()

	assert.Error(t, service.DeleteArtisan(adminActor, "art-1"))
	// Products go first; a failure there must not strand listings under a
	// deleted seller.
	artisanRepo.AssertNotCalled(t, "Delete")
}

func TestOnboardingService_DeleteArtisan_NotFound(t *testing.T) {
	artisanRepo := new(MockArtisanRepository)
	productRepo := new(MockProductRepository)
	service := services.NewOnboardingService(artisanRepo, new(MockTeamMemberRepository), productRepo)

	artisanRepo.On("GetByID", "ghost").Return(nil, fmt.Errorf("artisan with ID ghost not found")).Once()

	err := service.DeleteArtisan(adminActor, "ghost")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	productRepo.AssertNotCalled(t, "DeleteBySeller")
}

func TestOnboardingService_VerifyTeamMember(t *testing.T) {
	teamRepo := new(MockTeamMemberRepository)
	service := services.NewOnboardingService(new(MockArtisanRepository), teamRepo, new(MockProductRepository))

	pending := &models.TeamMember{ID: "tm-2", IsVerified: false}
	teamRepo.On("GetByID", "tm-2").Return(pending, nil).Once()
	teamRepo.On("Update", mock.AnythingOfType("*models.TeamMember")).Run(func(args mock.Arguments) {
		assert.True(t, args.Get(0).(*models.TeamMember).IsVerified)
	}).Return(nil).Once()

	assert.NoError(t, service.VerifyTeamMember(adminActor, "tm-2"))

	// Idempotent once verified.
	verified := &models.TeamMember{ID: "tm-3", IsVerified: true}
	teamRepo.On("GetByID", "tm-3").Return(verified, nil).Once()
	assert.NoError(t, service.VerifyTeamMember(adminActor, "tm-3"))
	teamRepo.AssertNumberOfCalls(t, "Update", 1)

	// Team members cannot verify each other.
	assert.ErrorIs(t, service.VerifyTeamMember(staffActor, "tm-2"), services.ErrPermissionDenied)
	teamRepo.AssertExpectations(t)
}

func TestOnboardingService_PendingArtisans(t *testing.T) {
	artisanRepo := new(MockArtisanRepository)
	service := services.NewOnboardingService(artisanRepo, new(MockTeamMemberRepository), new(MockProductRepository))

	all := []models.Artisan{
		{ID: "art-1", IsVerified: true},
		{ID: "art-2", IsVerified: false},
		{ID: "art-3", IsVerified: false},
	}
	artisanRepo.On("GetAll").Return(all, nil).Once()

	pending, err := service.PendingArtisans()
	assert.NoError(t, err)
	assert.Len(t, pending, 2)
	assert.Equal(t, "art-2", pending[0].ID)
	artisanRepo.AssertExpectations(t)
}

func TestOnboardingService_TeamMembers(t *testing.T) {
	teamRepo := new(MockTeamMemberRepository)
	service := services.NewOnboardingService(new(MockArtisanRepository), teamRepo, new(MockProductRepository))

	members := []models.TeamMember{
		{ID: "tm-1", Username: "jane_staff", Password: "hashed-secret"},
	}
	teamRepo.On("GetAll").Return(members, nil).Twice()

	// Both admins and team members may view the roster.
	got, err := service.TeamMembers(adminActor)
	require.NoError(t, err)
	assert.Empty(t, got[0].Password)

	got, err = service.TeamMembers(staffActor)
	require.NoError(t, err)
	assert.Empty(t, got[0].Password)

	// Customers and producers may not.
	_, err = service.TeamMembers(&models.User{ID: "cust-1", Role: models.RoleCustomer})
	assert.ErrorIs(t, err, services.ErrPermissionDenied)
	teamRepo.AssertExpectations(t)
}
