package entity

import (
	"time"
)

// Report records a customer report generated for download
type Report struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CustomerID  uint      `gorm:"not null;index" json:"customer_id"`
	DateCreated time.Time `gorm:"autoCreateTime" json:"date_created"`
	JobDuration float64   `json:"job_duration"`
	TotalCost   float64   `json:"total_cost"`
	ImageURL    *string   `gorm:"size:200" json:"image_url,omitempty"`
	Notes       *string   `gorm:"type:text" json:"notes,omitempty"`

	// Relationships
	Customer Customer `gorm:"foreignKey:CustomerID" json:"-"`
}

// TableName returns the table name for the Report model
func (Report) TableName() string {
	return "reports"
}
