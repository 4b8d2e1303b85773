// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/datatypes"
)

// Post represents a shared outfit photo. Posts are read-only from the feed's
// perspective; Likes is a counter maintained outside the feed path.
type Post struct {
	ID       uint                        `gorm:"primaryKey" json:"id"`
	UserID   string                      `gorm:"size:128;not null;index" json:"user_id"`
	User     *User                       `gorm:"foreignKey:UserID" json:"user,omitempty"`
	ImageURL string                      `gorm:"not null" json:"image_url"`
	Caption  string                      `gorm:"type:text" json:"caption,omitempty"`
	Likes    int                         `gorm:"not null;default:0" json:"likes"`
	Tags     datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"tags"`
	// AuthorUsername is not persisted; joined from users at query time
	AuthorUsername string `gorm:"->" json:"author_username,omitempty"`
	// AuthorProfileImageURL is not persisted; joined from users at query time
	AuthorProfileImageURL string    `gorm:"->" json:"author_profile_image_url,omitempty"`
	CreatedAt             time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM.
func (Post) TableName() string {
	return "posts"
}
