package entity

import (
	"time"
)

// Job represents a confirmed cleaning job owned by a staff user
type Job struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	CustomerName   string    `gorm:"size:50;not null" json:"customer_name"`
	Address        string    `gorm:"size:200;not null" json:"address"`
	RoofArea       float64   `gorm:"not null" json:"roof_area"`
	TileType       string    `gorm:"size:50;not null" json:"tile_type"`
	CleaningMethod string    `gorm:"size:50;not null" json:"cleaning_method"`
	TreatmentType  string    `gorm:"size:50;not null" json:"treatment_type"`
	DrainageType   string    `gorm:"size:50;not null" json:"drainage_type"`
	EstimatedDate  time.Time `gorm:"not null" json:"estimated_date"`
	UserID         uint      `gorm:"not null;index" json:"user_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// TableName returns the table name for the Job model
func (Job) TableName() string {
	return "jobs"
}
