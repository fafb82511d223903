package models

import (
	"time"
)

// Container is an import shipment. Its exporter name is the default exporter
// for every motorcycle imported under it unless a unit overrides it.
type Container struct {
	ID           string          `json:"id" gorm:"primaryKey;size:191"`
	Name         string          `json:"name" gorm:"not null;size:100"`
	ExporterName string          `json:"exporter_name" gorm:"not null;size:100"`
	ImportDate   time.Time       `json:"import_date"`
	BikeIDs      StringSliceType `json:"bike_ids" gorm:"type:json"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
