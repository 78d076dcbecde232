package repositories

import (
	"fmt"
	"sync"

	"kalahaat/internal/models"

	"github.com/google/uuid"
)

// MemoryTeamMemberRepository is the process-lifetime implementation of
// TeamMemberRepository.
type MemoryTeamMemberRepository struct {
	members []models.TeamMember
	mu      sync.RWMutex
}

// NewMemoryTeamMemberRepository creates a new instance of MemoryTeamMemberRepository.
func NewMemoryTeamMemberRepository() *MemoryTeamMemberRepository {
	return &MemoryTeamMemberRepository{}
}

// GetAll returns all team members in registration order.
func (r *MemoryTeamMemberRepository) GetAll() ([]models.TeamMember, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.TeamMember, len(r.members))
	copy(out, r.members)
	return out, nil
}

// GetByID returns a team member by ID.
func (r *MemoryTeamMemberRepository) GetByID(id string) (*models.TeamMember, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.members {
		if r.members[i].ID == id {
			m := r.members[i]
			return &m, nil
		}
	}
	return nil, fmt.Errorf("team member with ID %s not found", id)
}

// GetByUsername returns a team member by username.
func (r *MemoryTeamMemberRepository) GetByUsername(username string) (*models.TeamMember, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.members {
		if r.members[i].Username == username {
			m := r.members[i]
			return &m, nil
		}
	}
	return nil, fmt.Errorf("team member with username %s not found", username)
}

// GetByEmail returns a team member by email.
func (r *MemoryTeamMemberRepository) GetByEmail(email string) (*models.TeamMember, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.members {
		if r.members[i].Email == email {
			m := r.members[i]
			return &m, nil
		}
	}
	return nil, fmt.Errorf("team member with email %s not found", email)
}

// Create adds a new team member. The username must be unique.
func (r *MemoryTeamMemberRepository) Create(member *models.TeamMember) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.members {
		if r.members[i].Username == member.Username {
			return fmt.Errorf("team member with username %s already exists", member.Username)
		}
	}
	if member.ID == "" {
		member.ID = uuid.New().String()
	}
	r.members = append(r.members, *member)
	return nil
}

// Update modifies an existing team member.
func (r *MemoryTeamMemberRepository) Update(member *models.TeamMember) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.members {
		if r.members[i].ID == member.ID {
			r.members[i] = *member
			return nil
		}
	}
	return fmt.Errorf("team member with ID %s not found for update", member.ID)
}
