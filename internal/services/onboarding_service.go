package services

import (
	"kalahaat/internal/models"
	"kalahaat/internal/repositories"

	"github.com/sirupsen/logrus"
)

// OnboardingService runs the two gated approval pipelines: artisan
// verification and team member verification. Both share the same shape:
// self-registration creates an unverified record, an admin flips it to
// verified exactly once, and the flip never reverts.
type OnboardingService struct {
	artisanRepo repositories.ArtisanRepository
	teamRepo    repositories.TeamMemberRepository
	productRepo repositories.ProductRepository
}

// NewOnboardingService creates a new OnboardingService.
func NewOnboardingService(
	artisanRepo repositories.ArtisanRepository,
	teamRepo repositories.TeamMemberRepository,
	productRepo repositories.ProductRepository,
) *OnboardingService {
	return &OnboardingService{
		artisanRepo: artisanRepo,
		teamRepo:    teamRepo,
		productRepo: productRepo,
	}
}

// RegisterArtisanRequest is the producer self-registration payload.
type RegisterArtisanRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	ShopName string `json:"shop_name" validate:"required,min=2,max=100"`
	ArtType  string `json:"art_type" validate:"required"`
	Location string `json:"location" validate:"required"`
	Contact  string `json:"contact" validate:"required,len=10,numeric"`
	Avatar   string `json:"avatar" validate:"omitempty,url"`
}

// RegisterArtisan creates an unverified producer profile. The artisan
// cannot use the one-time-code login path until an admin approves them.
func (s *OnboardingService) RegisterArtisan(req RegisterArtisanRequest) (*models.Artisan, error) {
	if !mobilePattern.MatchString(req.Contact) {
		return nil, ErrInvalidMobile
	}
	if existing, err := s.artisanRepo.GetByContact(req.Contact); err == nil && existing != nil {
		return nil, ErrContactTaken
	}

	artisan := &models.Artisan{
		Name:       req.Name,
		ShopName:   req.ShopName,
		ArtType:    req.ArtType,
		Location:   req.Location,
		Contact:    req.Contact,
		Avatar:     req.Avatar,
		IsVerified: false,
	}
	if err := s.artisanRepo.Create(artisan); err != nil {
		return nil, err
	}
	return artisan, nil
}

// ApproveArtisan flips an artisan to verified. Admin only. Idempotent:
// approving an already-verified artisan is a no-op, not an error.
func (s *OnboardingService) ApproveArtisan(actor *models.User, id string) error {
	if !models.ActorCan(actor, models.PermApproveArtisan) {
		return ErrPermissionDenied
	}
	artisan, err := s.artisanRepo.GetByID(id)
	if err != nil {
		return err
	}
	if artisan.IsVerified {
		return nil
	}
	artisan.IsVerified = true
	if err := s.artisanRepo.Update(artisan); err != nil {
		return err
	}
	logrus.WithField("artisan_id", id).Info("artisan approved")
	return nil
}

// DeleteArtisan removes an artisan and cascades deletion of every product
// whose sellerId matches, as one unit. Products go first so a failure
// cannot strand listings that reference a deleted seller.
func (s *OnboardingService) DeleteArtisan(actor *models.User, id string) error {
	if !models.ActorCan(actor, models.PermDeleteArtisan) {
		return ErrPermissionDenied
	}
	if _, err := s.artisanRepo.GetByID(id); err != nil {
		return err
	}

	removed, err := s.productRepo.DeleteBySeller(id)
	if err != nil {
		return err
	}
	if err := s.artisanRepo.Delete(id); err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{"artisan_id": id, "products_removed": removed}).Info("artisan deleted")
	return nil
}

// VerifyTeamMember flips a staff account to verified, unlocking the
// password login path. Admin only. Idempotent like ApproveArtisan.
func (s *OnboardingService) VerifyTeamMember(actor *models.User, id string) error {
	if !models.ActorCan(actor, models.PermVerifyTeamMember) {
		return ErrPermissionDenied
	}
	member, err := s.teamRepo.GetByID(id)
	if err != nil {
		return err
	}
	if member.IsVerified {
		return nil
	}
	member.IsVerified = true
	if err := s.teamRepo.Update(member); err != nil {
		return err
	}
	logrus.WithField("team_member_id", id).Info("team member verified")
	return nil
}

// Artisans returns all producer profiles.
func (s *OnboardingService) Artisans() ([]models.Artisan, error) {
	return s.artisanRepo.GetAll()
}

// PendingArtisans returns profiles still waiting for approval.
func (s *OnboardingService) PendingArtisans() ([]models.Artisan, error) {
	artisans, err := s.artisanRepo.GetAll()
	if err != nil {
		return nil, err
	}
	pending := make([]models.Artisan, 0)
	for _, a := range artisans {
		if !a.IsVerified {
			pending = append(pending, a)
		}
	}
	return pending, nil
}

// TeamMembers returns all staff accounts, password hashes stripped. The
// team tab is gated: only roles holding PermViewTeam may list it.
func (s *OnboardingService) TeamMembers(actor *models.User) ([]models.TeamMember, error) {
	if !models.ActorCan(actor, models.PermViewTeam) {
		return nil, ErrPermissionDenied
	}
	members, err := s.teamRepo.GetAll()
	if err != nil {
		return nil, err
	}
	for i := range members {
		members[i].Password = ""
	}
	return members, nil
}
