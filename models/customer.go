package models

import (
	"time"
)

// Customer identity fields (name, phone, nid, ...) are immutable after
// creation. Only Notes and PurchasedBikeIDs are ever updated.
type Customer struct {
	ID               string          `json:"id" gorm:"primaryKey;size:191"`
	Name             string          `json:"name" gorm:"not null;size:100"`
	FatherName       string          `json:"father_name" gorm:"size:100"`
	MotherName       string          `json:"mother_name" gorm:"size:100"`
	Phone            string          `json:"phone" gorm:"not null;size:30;index"`
	NID              string          `json:"nid" gorm:"column:nid;not null;size:50;index"`
	DOB              string          `json:"dob" gorm:"size:20"`
	Photo            string          `json:"photo,omitempty" gorm:"type:longtext"`
	Address          string          `json:"address" gorm:"size:500"`
	Notes            string          `json:"notes" gorm:"size:1000"`
	PurchasedBikeIDs StringSliceType `json:"purchased_bike_ids" gorm:"type:json"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}
