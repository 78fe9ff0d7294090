package entity

import (
	"time"
)

// PricingTier is a named pricing bracket with the maximum roof area and job
// duration it covers, and a flat price. Tiers are seed/reference data.
type PricingTier struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"size:50;unique;not null" json:"name"`
	Description    string    `gorm:"type:text" json:"description"`
	Price          float64   `gorm:"check:price >= 0" json:"price"`
	MaxRoofArea    float64   `json:"max_roof_area"`
	MaxJobDuration float64   `json:"max_job_duration"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TableName returns the table name for the PricingTier model
func (PricingTier) TableName() string {
	return "pricing_tiers"
}

// Covers reports whether the given job metrics fall within the tier's stated
// maxima. Boundary equality counts as covered.
func (t *PricingTier) Covers(roofArea, jobDuration float64) bool {
	return roofArea <= t.MaxRoofArea && jobDuration <= t.MaxJobDuration
}
