// Package models contains data structures for the application's domain models.
package models

// Outfit is an ephemeral aggregate assembled by the outfit sampler: one
// clothing item per requested category, all matching the requested style.
// Outfits live for the duration of a request and are never persisted.
type Outfit struct {
	ID    string         `json:"outfit_id"`
	Style string         `json:"style"`
	Items []ClothingItem `json:"items"`
}
