// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"

	"outfind/internal/models"
	"outfind/internal/observability"

	"gorm.io/gorm"
)

// ClosetRepository defines the interface for clothing item data operations
type ClosetRepository interface {
	Create(ctx context.Context, item *models.ClothingItem) error
	GetByID(ctx context.Context, id uint) (*models.ClothingItem, error)
	GetByUserID(ctx context.Context, userID string, limit, offset int) ([]*models.ClothingItem, error)
	Delete(ctx context.Context, id uint) error
	// GetRandomEligibleItem picks one item uniformly at random among the
	// user's items in the given category whose style set contains the
	// requested tag. Returns (nil, nil) when no item is eligible.
	GetRandomEligibleItem(ctx context.Context, userID, category, style string) (*models.ClothingItem, error)
}

// closetRepository implements ClosetRepository
type closetRepository struct {
	db *gorm.DB
}

// NewClosetRepository creates a new closet repository
func NewClosetRepository(db *gorm.DB) ClosetRepository {
	return &closetRepository{db: db}
}

func (r *closetRepository) Create(ctx context.Context, item *models.ClothingItem) error {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return models.NewStoreError("clothing_items.create", err)
	}
	return nil
}

func (r *closetRepository) GetByID(ctx context.Context, id uint) (*models.ClothingItem, error) {
	var item models.ClothingItem
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Clothing item", id)
		}
		return nil, models.NewStoreError("clothing_items.get_by_id", err)
	}
	return &item, nil
}

func (r *closetRepository) GetByUserID(ctx context.Context, userID string, limit, offset int) ([]*models.ClothingItem, error) {
	var items []*models.ClothingItem
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&items).Error
	if err != nil {
		return nil, models.NewStoreError("clothing_items.get_by_user_id", err)
	}
	return items, nil
}

func (r *closetRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.ClothingItem{}, id).Error; err != nil {
		return models.NewStoreError("clothing_items.delete", err)
	}
	return nil
}

func (r *closetRepository) GetRandomEligibleItem(ctx context.Context, userID, category, style string) (*models.ClothingItem, error) {
	defer observability.TrackQuery("random_eligible_item", "clothing_items")()

	var item models.ClothingItem
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND category = ? AND jsonb_exists(style, ?)", userID, category, style).
		Order("RANDOM()").
		Take(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// No eligible item; the sampler omits the category.
			return nil, nil
		}
		return nil, models.NewStoreError("clothing_items.random_eligible_item", err)
	}
	return &item, nil
}
