package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type RegistrationDuration string

const (
	RegistrationTwoYears RegistrationDuration = "2 years"
	RegistrationTenYears RegistrationDuration = "10 years"
)

// IsValid reports whether d is one of the two supported registration terms.
func (d RegistrationDuration) IsValid() bool {
	return d == RegistrationTwoYears || d == RegistrationTenYears
}

// Sale is written exactly once by the sale transaction and never mutated.
// There is at most one Sale per motorcycle.
type Sale struct {
	ID                   string               `json:"id" gorm:"primaryKey;size:191"`
	MotorcycleID         string               `json:"motorcycle_id" gorm:"not null;size:191;index"`
	CustomerID           string               `json:"customer_id" gorm:"not null;size:191;index"`
	SaleDate             time.Time            `json:"sale_date"`
	SalePrice            decimal.Decimal      `json:"sale_price" gorm:"type:decimal(14,2);not null"`
	RegistrationDuration RegistrationDuration `json:"registration_duration" gorm:"not null;size:20"`
	CreatedAt            time.Time            `json:"created_at"`

	Motorcycle Motorcycle `json:"motorcycle" gorm:"foreignKey:MotorcycleID"`
	Customer   Customer   `json:"customer" gorm:"foreignKey:CustomerID"`
}
