package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"motostream-api/models"
)

// CustomerService is the read/notes side of customers. Creation happens only
// through the resolver inside a sale transaction.
type CustomerService struct {
	db *gorm.DB
}

func NewCustomerService(db *gorm.DB) *CustomerService {
	return &CustomerService{db: db}
}

// List returns customers, optionally filtered by a free-text query. Each
// whitespace-separated term must match name, phone, nid or address.
func (s *CustomerService) List(query string) ([]models.Customer, error) {
	db := s.db.Order("created_at DESC")

	for _, term := range strings.Fields(strings.ToLower(query)) {
		like := "%" + term + "%"
		db = db.Where(
			"LOWER(name) LIKE ? OR phone LIKE ? OR LOWER(nid) LIKE ? OR LOWER(address) LIKE ?",
			like, like, like, like,
		)
	}

	var customers []models.Customer
	if err := db.Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return customers, nil
}

// Get returns one customer together with their purchased bikes.
func (s *CustomerService) Get(id string) (*models.Customer, []models.Motorcycle, error) {
	var customer models.Customer
	if err := s.db.Where("id = ?", id).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrCustomerNotFound
		}
		return nil, nil, fmt.Errorf("get customer: %w", err)
	}

	var bikes []models.Motorcycle
	if len(customer.PurchasedBikeIDs) > 0 {
		if err := s.db.Where("id IN ?", []string(customer.PurchasedBikeIDs)).
			Find(&bikes).Error; err != nil {
			return nil, nil, fmt.Errorf("load purchased bikes: %w", err)
		}
	}

	return &customer, bikes, nil
}

// UpdateNotes replaces the free-text notes. Identity fields stay immutable.
func (s *CustomerService) UpdateNotes(id, notes string) (*models.Customer, error) {
	var customer models.Customer
	if err := s.db.Where("id = ?", id).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}

	if err := s.db.Model(&customer).Update("notes", notes).Error; err != nil {
		return nil, fmt.Errorf("update notes: %w", err)
	}
	customer.Notes = notes
	return &customer, nil
}
