package repository

import (
	"context"
	"errors"

	"github.com/roofworks/exterior-cleaners-api/internal/domain/entity"
	domainRepo "github.com/roofworks/exterior-cleaners-api/internal/domain/repository"
	"gorm.io/gorm"
)

type pricingTierRepository struct {
	db *gorm.DB
}

// NewPricingTierRepository creates a new pricing tier repository
func NewPricingTierRepository(db *gorm.DB) domainRepo.PricingTierRepository {
	return &pricingTierRepository{db: db}
}

func (r *pricingTierRepository) List(ctx context.Context) ([]entity.PricingTier, error) {
	var tiers []entity.PricingTier
	err := r.db.WithContext(ctx).Order("id ASC").Find(&tiers).Error
	return tiers, err
}

func (r *pricingTierRepository) GetByName(ctx context.Context, name string) (*entity.PricingTier, error) {
	var tier entity.PricingTier
	err := r.db.WithContext(ctx).First(&tier, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &tier, err
}
