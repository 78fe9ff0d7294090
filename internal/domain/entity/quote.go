package entity

import (
	"time"
)

// Quote represents a pre-confirmation cleaning quote saved by a staff user.
// It mirrors the Job fields; a quote becomes a job once the customer confirms.
type Quote struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"not null;index" json:"user_id"`
	Address        string    `gorm:"size:100;not null" json:"address"`
	RoofArea       float64   `gorm:"not null" json:"roof_area"`
	TileType       string    `gorm:"size:50;not null" json:"tile_type"`
	CleaningMethod string    `gorm:"size:50;not null" json:"cleaning_method"`
	TreatmentType  string    `gorm:"size:50;not null" json:"treatment_type"`
	DrainageType   string    `gorm:"size:50;not null" json:"drainage_type"`
	EstimatedDate  time.Time `gorm:"not null" json:"estimated_date"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// TableName returns the table name for the Quote model
func (Quote) TableName() string {
	return "quotes"
}
