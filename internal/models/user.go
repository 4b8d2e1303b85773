// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/datatypes"
)

// User represents an OutFind account. The ID is the stable identity string
// issued by the external identity provider; rows are created on a user's
// first authenticated interaction and never hard-deleted.
type User struct {
	ID               string                      `gorm:"primaryKey;size:128" json:"id"`
	Username         string                      `gorm:"size:30;not null;uniqueIndex" json:"username"`
	Bio              string                      `gorm:"type:text" json:"bio,omitempty"`
	ProfileImageURL  string                      `json:"profile_image_url,omitempty"`
	FollowersCount   int                         `gorm:"not null;default:0" json:"followers_count"`
	FollowingCount   int                         `gorm:"not null;default:0" json:"following_count"`
	StylePreferences datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"style_preferences"`
	CreatedAt        time.Time                   `json:"created_at"`
	UpdatedAt        time.Time                   `json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (User) TableName() string {
	return "users"
}
