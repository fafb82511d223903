package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type MotorcycleStatus string

const (
	MotorcycleAvailable MotorcycleStatus = "available"
	MotorcycleSold      MotorcycleStatus = "sold"
)

// Motorcycle is a single physical unit in stock. The chassis number is the
// external lookup key and never changes; status only ever moves from
// available to sold.
type Motorcycle struct {
	ID                 string           `json:"id" gorm:"primaryKey;size:191"`
	Model              string           `json:"model" gorm:"not null;size:100"`
	Chassis            string           `json:"chassis" gorm:"not null;uniqueIndex;size:100"`
	Engine             string           `json:"engine" gorm:"size:100"`
	Color              string           `json:"color" gorm:"size:100"`
	Status             MotorcycleStatus `json:"status" gorm:"not null;default:available;size:20;index"`
	BuyingPrice        *decimal.Decimal `json:"buying_price,omitempty" gorm:"type:decimal(14,2)"`
	RegistrationNumber string           `json:"registration_number,omitempty" gorm:"size:100"`
	ExporterName       string           `json:"exporter_name,omitempty" gorm:"size:100"`
	ContainerID        *string          `json:"container_id,omitempty" gorm:"size:191;index"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}
