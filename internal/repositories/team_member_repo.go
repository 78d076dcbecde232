package repositories

import "kalahaat/internal/models"

// TeamMemberRepository defines the interface for staff account data access.
// Team members are never deleted; verification only moves forward.
type TeamMemberRepository interface {
	GetAll() ([]models.TeamMember, error)
	GetByID(id string) (*models.TeamMember, error)
	GetByUsername(username string) (*models.TeamMember, error)
	GetByEmail(email string) (*models.TeamMember, error)
	Create(member *models.TeamMember) error
	Update(member *models.TeamMember) error
}
