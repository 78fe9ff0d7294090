package entity

import (
	"time"
)

// User represents a staff user of the system
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"size:20;unique;not null" json:"username"`
	Email     string    `gorm:"size:120;unique;not null" json:"email"`
	Password  string    `gorm:"size:60;not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Jobs   []Job   `gorm:"foreignKey:UserID" json:"-"`
	Quotes []Quote `gorm:"foreignKey:UserID" json:"-"`
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}
