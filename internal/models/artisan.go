package models

import "gorm.io/gorm"

// Artisan is a producer profile. Artisans register unverified and gain
// the one-time-code login path only after an admin approves them.
type Artisan struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name       string `json:"name" validate:"required,min=2,max=100"`
	ShopName   string `json:"shop_name" validate:"required,min=2,max=100"`
	ArtType    string `json:"art_type" validate:"required"`
	Location   string `json:"location" validate:"required"`
	Contact    string `json:"contact" gorm:"uniqueIndex;type:varchar(10)" validate:"required,len=10,numeric"`
	Avatar     string `json:"avatar,omitempty"`
	IsVerified bool   `json:"is_verified"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// AsUser converts an artisan into a session actor with the producer role.
func (a *Artisan) AsUser() *User {
	return &User{
		ID:       a.ID,
		Name:     a.Name,
		Role:     RoleProducer,
		ShopName: a.ShopName,
		Location: a.Location,
		Avatar:   a.Avatar,
	}
}
