package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"motostream-api/models"
)

// CustomerFields is the raw identity data submitted with a sale.
type CustomerFields struct {
	Name       string `json:"name" binding:"required"`
	FatherName string `json:"father_name" binding:"required"`
	MotherName string `json:"mother_name" binding:"required"`
	Phone      string `json:"phone" binding:"required"`
	NID        string `json:"nid" binding:"required"`
	DOB        string `json:"dob" binding:"required"`
	Photo      string `json:"photo"`
	Address    string `json:"address" binding:"required"`
	Notes      string `json:"notes"`
}

// CustomerResolver maps submitted identity fields to a canonical customer.
// Phone and nid are treated as alternate keys to the same identity: a match
// on either one resolves to the existing record, and the existing record
// stays authoritative for every other field.
type CustomerResolver struct {
	db *gorm.DB
}

func NewCustomerResolver(db *gorm.DB) *CustomerResolver {
	return &CustomerResolver{db: db}
}

// Resolve returns the existing customer matching the submitted phone or nid,
// or creates a new one with an empty purchased set. Runs against tx so a sale
// transaction sees its own writes and rolls the creation back on failure.
//
// Two truly concurrent first-time resolutions for the same person can both
// create a row; there is deliberately no unique constraint on phone or nid,
// so that remains a data-quality risk rather than a failed sale.
func (r *CustomerResolver) Resolve(tx *gorm.DB, fields CustomerFields) (*models.Customer, error) {
	if fields.Name == "" || fields.Phone == "" || fields.NID == "" {
		return nil, ErrMissingCustomerFields
	}

	// The caller reads the purchased set off the resolved row and writes it
	// back whole, so the row must stay locked until the transaction commits.
	// mysql's snapshot reads would otherwise let two sales to the same
	// customer both start from the old set; sqlite has a single writer and
	// rejects FOR UPDATE, so the clause is applied per dialect.
	query := tx
	if tx.Dialector.Name() == "mysql" {
		query = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var customer models.Customer
	err := query.Where("phone = ? OR nid = ?", fields.Phone, fields.NID).First(&customer).Error
	if err == nil {
		return &customer, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("lookup customer: %w", err)
	}

	customer = models.Customer{
		ID:               uuid.New().String(),
		Name:             fields.Name,
		FatherName:       fields.FatherName,
		MotherName:       fields.MotherName,
		Phone:            fields.Phone,
		NID:              fields.NID,
		DOB:              fields.DOB,
		Photo:            fields.Photo,
		Address:          fields.Address,
		Notes:            fields.Notes,
		PurchasedBikeIDs: models.StringSliceType{},
	}
	if err := tx.Create(&customer).Error; err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}

	return &customer, nil
}
