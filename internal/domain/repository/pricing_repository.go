package repository

import (
	"context"

	"github.com/roofworks/exterior-cleaners-api/internal/domain/entity"
)

// PricingTierRepository defines the read-only interface over the tier catalog.
// Tiers are seed/reference data; there are no mutation operations here.
type PricingTierRepository interface {
	// List returns all tiers in storage insertion order.
	List(ctx context.Context) ([]entity.PricingTier, error)
	// GetByName returns the tier with the given unique name, or (nil, nil)
	// when no such tier exists.
	GetByName(ctx context.Context, name string) (*entity.PricingTier, error)
}
