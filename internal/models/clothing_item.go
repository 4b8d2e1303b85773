// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/datatypes"
)

// ClothingItem represents a single garment in a user's closet. Category is a
// single-valued classification ("top", "shoes"); Style is the set of
// free-form style tags the item matches.
type ClothingItem struct {
	ID        uint                        `gorm:"primaryKey" json:"id"`
	UserID    string                      `gorm:"size:128;not null;index:idx_items_user_category" json:"user_id"`
	ImageURL  string                      `gorm:"not null" json:"image_url"`
	Category  string                      `gorm:"size:60;not null;index:idx_items_user_category" json:"category"`
	Style     datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"style"`
	CreatedAt time.Time                   `json:"created_at"`
}

// TableName specifies the table name for GORM.
func (ClothingItem) TableName() string {
	return "clothing_items"
}
