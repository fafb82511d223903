package models

import (
	"time"
)

// User is a staff account for the dealership panel.
type User struct {
	ID        string    `json:"id" gorm:"primaryKey;size:191"`
	Name      string    `json:"name" gorm:"not null;size:100"`
	Email     string    `json:"email" gorm:"not null;uniqueIndex;size:191"`
	Password  string    `json:"-" gorm:"not null;size:191"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
