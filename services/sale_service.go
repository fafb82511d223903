package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"motostream-api/logger"
	"motostream-api/metrics"
	"motostream-api/models"
)

// SaleService is the single authoritative entry point for selling a bike.
// Every caller (HTTP, jobs, tests) goes through SubmitSale; there is no
// second code path that flips a motorcycle to sold.
type SaleService struct {
	db       *gorm.DB
	resolver *CustomerResolver
}

func NewSaleService(db *gorm.DB) *SaleService {
	return &SaleService{
		db:       db,
		resolver: NewCustomerResolver(db),
	}
}

// SubmitSale converts "bike X sold to customer Y for price P with term T"
// into durable state, all-or-nothing.
//
// Inside one transaction: resolve (or create) the customer, append the bike
// to their purchased set, flip the bike available -> sold, insert the sale
// row. The flip is a guarded UPDATE conditioned on status = available, so of
// two concurrent submissions for the same chassis exactly one sees a row
// affected and the other rolls back with ErrMotorcycleNotAvailable.
func (s *SaleService) SubmitSale(chassis string, fields CustomerFields, salePrice decimal.Decimal, duration models.RegistrationDuration) (*models.Sale, error) {
	// Local validation, rejected before any store interaction
	if !salePrice.IsPositive() {
		return nil, ErrInvalidSalePrice
	}
	if !duration.IsValid() {
		return nil, ErrInvalidRegistrationDuration
	}
	if fields.Name == "" || fields.Phone == "" || fields.NID == "" {
		return nil, ErrMissingCustomerFields
	}

	defer metrics.TrackDBOperation("submit_sale")(time.Now())

	var sale *models.Sale
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var bike models.Motorcycle
		if err := tx.Where("chassis = ?", chassis).First(&bike).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMotorcycleNotFound
			}
			return fmt.Errorf("lookup motorcycle: %w", err)
		}
		if bike.Status == models.MotorcycleSold {
			return ErrMotorcycleAlreadySold
		}

		customer, err := s.resolver.Resolve(tx, fields)
		if err != nil {
			return err
		}

		purchased := append(customer.PurchasedBikeIDs, bike.ID)
		if err := tx.Model(&models.Customer{}).Where("id = ?", customer.ID).
			Update("purchased_bike_ids", purchased).Error; err != nil {
			return fmt.Errorf("update purchased bikes: %w", err)
		}
		customer.PurchasedBikeIDs = purchased

		if err := s.markSold(tx, bike.ID); err != nil {
			return err
		}
		bike.Status = models.MotorcycleSold

		sale = &models.Sale{
			ID:                   uuid.New().String(),
			MotorcycleID:         bike.ID,
			CustomerID:           customer.ID,
			SaleDate:             time.Now(),
			SalePrice:            salePrice,
			RegistrationDuration: duration,
			Motorcycle:           bike,
			Customer:             *customer,
		}
		if err := tx.Omit("Motorcycle", "Customer").Create(sale).Error; err != nil {
			return fmt.Errorf("create sale: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Get().Info("sale recorded",
		zap.String("sale_id", sale.ID),
		zap.String("chassis", chassis),
		zap.String("customer_id", sale.CustomerID),
		zap.String("sale_price", salePrice.String()),
	)

	return sale, nil
}

// markSold is the compare-and-flip at the heart of the coordinator. The
// availability re-check and the status write are one statement, so a
// concurrent sale that committed between our read and this update leaves
// zero affected rows here and the losing transaction rolls back.
func (s *SaleService) markSold(tx *gorm.DB, bikeID string) error {
	res := tx.Model(&models.Motorcycle{}).
		Where("id = ? AND status = ?", bikeID, models.MotorcycleAvailable).
		Update("status", models.MotorcycleSold)
	if res.Error != nil {
		return fmt.Errorf("mark motorcycle sold: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrMotorcycleNotAvailable
	}
	return nil
}

// ListSales returns the sale history, newest first, with bike and buyer.
func (s *SaleService) ListSales() ([]models.Sale, error) {
	var sales []models.Sale
	err := s.db.Preload("Motorcycle").Preload("Customer").
		Order("sale_date DESC").Find(&sales).Error
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	return sales, nil
}

// GetSale returns one sale with its resolved bike and buyer, for the print
// slip collaborators. Read-only.
func (s *SaleService) GetSale(id string) (*models.Sale, error) {
	var sale models.Sale
	err := s.db.Preload("Motorcycle").Preload("Customer").
		Where("id = ?", id).First(&sale).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSaleNotFound
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &sale, nil
}
