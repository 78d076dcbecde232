package repositories

import (
	"fmt"

	"kalahaat/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMTeamMemberRepository is a GORM implementation of TeamMemberRepository.
type GORMTeamMemberRepository struct {
	db *gorm.DB
}

// NewGORMTeamMemberRepository creates a new instance of GORMTeamMemberRepository.
func NewGORMTeamMemberRepository(db *gorm.DB) *GORMTeamMemberRepository {
	return &GORMTeamMemberRepository{
		db: db,
	}
}

// GetAll retrieves all team members from the database.
func (r *GORMTeamMemberRepository) GetAll() ([]models.TeamMember, error) {
	var members []models.TeamMember
	if err := r.db.Find(&members).Error; err != nil {
		return nil, fmt.Errorf("failed to get all team members: %w", err)
	}
	return members, nil
}

// GetByID retrieves a team member by ID from the database.
func (r *GORMTeamMemberRepository) GetByID(id string) (*models.TeamMember, error) {
	var member models.TeamMember
	if err := r.db.First(&member, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("team member with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get team member by ID %s: %w", id, err)
	}
	return &member, nil
}

// GetByUsername retrieves a team member by username from the database.
func (r *GORMTeamMemberRepository) GetByUsername(username string) (*models.TeamMember, error) {
	var member models.TeamMember
	if err := r.db.First(&member, "username = ?", username).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("team member with username %s not found", username)
		}
		return nil, fmt.Errorf("failed to get team member by username %s: %w", username, err)
	}
	return &member, nil
}

// GetByEmail retrieves a team member by email from the database.
func (r *GORMTeamMemberRepository) GetByEmail(email string) (*models.TeamMember, error) {
	var member models.TeamMember
	if err := r.db.First(&member, "email = ?", email).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("team member with email %s not found", email)
		}
		return nil, fmt.Errorf("failed to get team member by email %s: %w", email, err)
	}
	return &member, nil
}

// Create creates a new team member in the database.
func (r *GORMTeamMemberRepository) Create(member *models.TeamMember) error {
	if member.ID == "" {
		member.ID = uuid.New().String()
	}
	if err := r.db.Create(member).Error; err != nil {
		return fmt.Errorf("failed to create team member: %w", err)
	}
	return nil
}

// Update updates an existing team member in the database.
func (r *GORMTeamMemberRepository) Update(member *models.TeamMember) error {
	res := r.db.Save(member)
	if res.Error != nil {
		return fmt.Errorf("failed to update team member: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("team member with ID %s not found for update", member.ID)
	}
	return nil
}
