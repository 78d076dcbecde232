package models

import "gorm.io/gorm"

// TeamMember is a staff account. Accounts are created unverified through
// self-registration and cannot pass the password login path until an
// admin verifies them. Verification is monotonic: it never reverts.
type TeamMember struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name       string `json:"name" validate:"required,min=2,max=100"`
	Username   string `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=3,max=100"`
	Password   string `gorm:"type:varchar(255)" validate:"required,min=6"` // No json tag for security
	Contact    string `json:"contact" validate:"required,len=10,numeric"`
	Email      string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	IsVerified bool   `json:"is_verified"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// AsUser converts a team member into a session actor.
func (m *TeamMember) AsUser() *User {
	return &User{
		ID:   m.ID,
		Name: m.Name,
		Role: RoleTeamMember,
	}
}
