package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"motostream-api/models"
)

// StockService covers single-unit stock operations. Container imports live
// in ContainerService; the sale transition lives in SaleService only.
type StockService struct {
	db *gorm.DB
}

func NewStockService(db *gorm.DB) *StockService {
	return &StockService{db: db}
}

// NewMotorcycle is a unit entering stock, by single add or container import.
type NewMotorcycle struct {
	Model        string           `json:"model" binding:"required"`
	Chassis      string           `json:"chassis" binding:"required"`
	Engine       string           `json:"engine"`
	Color        string           `json:"color"`
	ExporterName string           `json:"exporter_name"`
	BuyingPrice  *decimal.Decimal `json:"buying_price"`
}

// Add puts a single motorcycle into available stock.
func (s *StockService) Add(unit NewMotorcycle, containerID *string) (*models.Motorcycle, error) {
	bike := models.Motorcycle{
		ID:           uuid.New().String(),
		Model:        unit.Model,
		Chassis:      unit.Chassis,
		Engine:       unit.Engine,
		Color:        unit.Color,
		Status:       models.MotorcycleAvailable,
		ExporterName: unit.ExporterName,
		BuyingPrice:  unit.BuyingPrice,
		ContainerID:  containerID,
	}

	if containerID != nil {
		var container models.Container
		if err := s.db.Where("id = ?", *containerID).First(&container).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrContainerNotFound
			}
			return nil, fmt.Errorf("lookup container: %w", err)
		}
		if bike.ExporterName == "" {
			bike.ExporterName = container.ExporterName
		}
	}

	if err := s.db.Create(&bike).Error; err != nil {
		return nil, fmt.Errorf("create motorcycle: %w", err)
	}
	return &bike, nil
}

// ListAvailable returns units still in stock, newest first.
func (s *StockService) ListAvailable() ([]models.Motorcycle, error) {
	var bikes []models.Motorcycle
	err := s.db.Where("status = ?", models.MotorcycleAvailable).
		Order("created_at DESC").Find(&bikes).Error
	if err != nil {
		return nil, fmt.Errorf("list available motorcycles: %w", err)
	}
	return bikes, nil
}

// ListAll returns every unit regardless of status, newest first.
func (s *StockService) ListAll() ([]models.Motorcycle, error) {
	var bikes []models.Motorcycle
	err := s.db.Order("created_at DESC").Find(&bikes).Error
	if err != nil {
		return nil, fmt.Errorf("list motorcycles: %w", err)
	}
	return bikes, nil
}

// FindByChassis returns the unit with the given chassis number, any status.
func (s *StockService) FindByChassis(chassis string) (*models.Motorcycle, error) {
	var bike models.Motorcycle
	if err := s.db.Where("chassis = ?", chassis).First(&bike).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMotorcycleNotFound
		}
		return nil, fmt.Errorf("find motorcycle: %w", err)
	}
	return &bike, nil
}

// UpdateRegistration sets the registration number on a sold unit. The number
// only exists once a sale fixed the registration term, so it is refused
// while the bike is still available.
func (s *StockService) UpdateRegistration(id, regNumber string) (*models.Motorcycle, error) {
	var bike models.Motorcycle
	if err := s.db.Where("id = ?", id).First(&bike).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMotorcycleNotFound
		}
		return nil, fmt.Errorf("find motorcycle: %w", err)
	}
	if bike.Status != models.MotorcycleSold {
		return nil, ErrNotRegistrable
	}

	if err := s.db.Model(&bike).Update("registration_number", regNumber).Error; err != nil {
		return nil, fmt.Errorf("update registration: %w", err)
	}
	bike.RegistrationNumber = regNumber
	return &bike, nil
}

// Remove deletes an available unit from stock. The delete is guarded on
// status, mirroring the sale flip: a sale committing between a snapshot read
// and the delete would otherwise lose the row its Sale references. Zero
// affected rows on a unit that still exists means it was sold.
func (s *StockService) Remove(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND status = ?", id, models.MotorcycleAvailable).
			Delete(&models.Motorcycle{})
		if res.Error != nil {
			return fmt.Errorf("delete motorcycle: %w", res.Error)
		}
		if res.RowsAffected > 0 {
			return nil
		}

		var bike models.Motorcycle
		if err := tx.Where("id = ?", id).First(&bike).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMotorcycleNotFound
			}
			return fmt.Errorf("find motorcycle: %w", err)
		}
		return ErrMotorcycleAlreadySold
	})
}
