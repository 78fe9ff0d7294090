package service

import (
	"context"
	"fmt"
	"log"

	"github.com/roofworks/exterior-cleaners-api/internal/domain/entity"
	"github.com/roofworks/exterior-cleaners-api/internal/domain/repository"
	"github.com/roofworks/exterior-cleaners-api/internal/infrastructure/cache"
	"github.com/roofworks/exterior-cleaners-api/pkg/apperror"
)

// PricingService handles the tier catalog and price resolution
type PricingService struct {
	tierRepo  repository.PricingTierRepository
	tierCache *cache.TierCache // optional, may be nil
}

// NewPricingService creates a new pricing service
func NewPricingService(tierRepo repository.PricingTierRepository, tierCache *cache.TierCache) *PricingService {
	return &PricingService{
		tierRepo:  tierRepo,
		tierCache: tierCache,
	}
}

// ListTiers returns the full tier catalog in insertion order.
func (s *PricingService) ListTiers(ctx context.Context) ([]entity.PricingTier, error) {
	if s.tierCache != nil {
		tiers, err := s.tierCache.GetTiers(ctx)
		if err != nil {
			log.Printf("Warning: tier cache read failed: %v", err)
		} else if tiers != nil {
			return tiers, nil
		}
	}

	tiers, err := s.tierRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.tierCache != nil {
		if err := s.tierCache.SetTiers(ctx, tiers); err != nil {
			log.Printf("Warning: tier cache write failed: %v", err)
		}
	}

	return tiers, nil
}

// ResolvePriceInput represents the already-validated price resolution input
type ResolvePriceInput struct {
	TierName    string
	RoofArea    float64
	JobDuration float64
}

// PriceResolution is the outcome of resolving a tier against job metrics.
// Price is nil when the metrics exceed the tier's maxima; that is a defined
// result ("N/A"), not an error.
type PriceResolution struct {
	Tier     *entity.PricingTier
	Eligible bool
	Price    *float64
}

// ResolvePrice looks up the named tier and prices the given job metrics
// against it. The caller picks the tier; the resolver only validates fit and
// prices it, and never substitutes a different tier.
func (s *PricingService) ResolvePrice(ctx context.Context, input *ResolvePriceInput) (*PriceResolution, error) {
	var fieldErrors []apperror.FieldError
	if input.TierName == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "tier_name", Message: "tier name is required"})
	}
	if input.RoofArea < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "roof_area", Message: "roof area must not be negative"})
	}
	if input.JobDuration < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "job_duration", Message: "job duration must not be negative"})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	tier, err := s.tierRepo.GetByName(ctx, input.TierName)
	if err != nil {
		return nil, err
	}
	if tier == nil {
		return nil, apperror.NewNotFoundError(fmt.Sprintf("Pricing tier %q", input.TierName))
	}

	resolution := &PriceResolution{Tier: tier}
	if tier.Covers(input.RoofArea, input.JobDuration) {
		price := tier.Price
		resolution.Eligible = true
		resolution.Price = &price
	}

	return resolution, nil
}
