// Package models contains data structures for the application's domain models.
package models

import "time"

// Follow represents a directed edge in the follow graph. The composite
// primary key guarantees at most one edge per ordered pair; the paired
// follower/following counters on users are adjusted only inside the same
// transaction that inserts or deletes the edge.
type Follow struct {
	FollowerID  string    `gorm:"primaryKey;size:128" json:"follower_id"`
	FollowingID string    `gorm:"primaryKey;size:128" json:"following_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM.
func (Follow) TableName() string {
	return "follows"
}
