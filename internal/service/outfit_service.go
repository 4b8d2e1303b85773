package service

import (
	"context"
	"strings"

	"outfind/internal/models"
	"outfind/internal/observability"
	"outfind/internal/repository"

	"github.com/google/uuid"
)

// OutfitService assembles randomized outfits from a user's closet: one item
// per requested category, sampled uniformly among the items matching the
// requested style. Categories with no eligible item are silently omitted.
type OutfitService struct {
	closetRepo repository.ClosetRepository
}

func NewOutfitService(closetRepo repository.ClosetRepository) *OutfitService {
	return &OutfitService{closetRepo: closetRepo}
}

// GenerateOutfit samples one eligible item per category, independently per
// category. An empty category list yields an empty outfit, not an error.
// The outfit identifier is a fresh UUID, so concurrent calls in the same
// instant cannot collide.
func (s *OutfitService) GenerateOutfit(ctx context.Context, userID, style string, categories []string) (*models.Outfit, error) {
	if strings.TrimSpace(style) == "" {
		observability.OutfitGenerationsTotal.WithLabelValues("invalid").Inc()
		return nil, models.NewValidationError("Style is required")
	}
	for _, category := range categories {
		if strings.TrimSpace(category) == "" {
			observability.OutfitGenerationsTotal.WithLabelValues("invalid").Inc()
			return nil, models.NewValidationError("Categories must be non-empty strings")
		}
	}

	outfit := &models.Outfit{
		ID:    uuid.NewString(),
		Style: style,
		Items: []models.ClothingItem{},
	}

	for _, category := range categories {
		item, err := s.closetRepo.GetRandomEligibleItem(ctx, userID, category, style)
		if err != nil {
			observability.OutfitGenerationsTotal.WithLabelValues("error").Inc()
			return nil, err
		}
		if item == nil {
			observability.OutfitEmptySlots.Inc()
			continue
		}
		outfit.Items = append(outfit.Items, *item)
	}

	observability.OutfitGenerationsTotal.WithLabelValues("ok").Inc()
	return outfit, nil
}
