package models

import "gorm.io/gorm"

// Category classifies a product. Categories are stable keys, localized by
// the presentation layer.
type Category string

const (
	CategoryPaintings   Category = "paintings"
	CategoryHandicrafts Category = "handicrafts"
	CategoryStatues     Category = "statues"
	CategoryMinerals    Category = "minerals"
	CategoryFruits      Category = "fruits"
	CategoryClothing    Category = "clothing"
	CategoryInstruments Category = "instruments"
	CategoryCultural    Category = "cultural"
)

// Product represents a catalog listing owned by the seller referenced by
// SellerID (an artisan id or the admin identity).
type Product struct {
	ID          string   `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	SellerID    string   `json:"seller_id" gorm:"index;type:varchar(36)" validate:"required"`
	Title       string   `json:"title" validate:"required,min=3,max=100"`
	Description string   `json:"description" validate:"omitempty,max=1000"`
	Price       float64  `json:"price" validate:"gte=0"`
	Category    Category `json:"category" validate:"required,oneof=paintings handicrafts statues minerals fruits clothing instruments cultural"`
	Image       string   `json:"image" validate:"omitempty,url"`
	Stock       int      `json:"stock" validate:"gte=0"`
	gorm.Model           // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
