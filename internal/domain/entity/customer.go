package entity

import (
	"time"
)

// Customer represents a customer of the cleaning business
type Customer struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"size:80;not null" json:"name"`
	Address        string    `gorm:"size:120" json:"address"`
	RoofArea       float64   `gorm:"check:roof_area >= 0" json:"roof_area"`
	TileType       string    `gorm:"size:50" json:"tile_type"`
	CleaningMethod string    `gorm:"size:50" json:"cleaning_method"`
	TreatmentType  string    `gorm:"size:50" json:"treatment_type"`
	DrainageType   string    `gorm:"size:50" json:"drainage_type"`
	EstimatedDate  time.Time `json:"estimated_date"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Relationships
	Reports []Report `gorm:"foreignKey:CustomerID" json:"-"`
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}
