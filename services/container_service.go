package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"motostream-api/models"
)

// ContainerService handles import shipments and the bulk path that tags
// motorcycles with their container.
type ContainerService struct {
	db *gorm.DB
}

func NewContainerService(db *gorm.DB) *ContainerService {
	return &ContainerService{db: db}
}

func (s *ContainerService) Create(name, exporterName string, importDate time.Time) (*models.Container, error) {
	if importDate.IsZero() {
		importDate = time.Now()
	}
	container := models.Container{
		ID:           uuid.New().String(),
		Name:         name,
		ExporterName: exporterName,
		ImportDate:   importDate,
		BikeIDs:      models.StringSliceType{},
	}
	if err := s.db.Create(&container).Error; err != nil {
		return nil, fmt.Errorf("create container: %w", err)
	}
	return &container, nil
}

func (s *ContainerService) List() ([]models.Container, error) {
	var containers []models.Container
	if err := s.db.Order("created_at DESC").Find(&containers).Error; err != nil {
		return nil, fmt.Errorf("list containers: %w", err)
	}
	return containers, nil
}

func (s *ContainerService) Get(id string) (*models.Container, error) {
	var container models.Container
	if err := s.db.Where("id = ?", id).First(&container).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContainerNotFound
		}
		return nil, fmt.Errorf("get container: %w", err)
	}
	return &container, nil
}

// ImportBikes bulk-inserts units under a container. The container's exporter
// is the default for every row that does not name its own. The container's
// bike set and the new rows commit together or not at all; a bad container
// id fails the whole import as a referential error.
func (s *ContainerService) ImportBikes(containerID string, units []NewMotorcycle) ([]models.Motorcycle, error) {
	var created []models.Motorcycle

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var container models.Container
		if err := tx.Where("id = ?", containerID).First(&container).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrContainerNotFound
			}
			return fmt.Errorf("lookup container: %w", err)
		}

		bikeIDs := container.BikeIDs
		for _, unit := range units {
			exporter := unit.ExporterName
			if exporter == "" {
				exporter = container.ExporterName
			}
			bike := models.Motorcycle{
				ID:           uuid.New().String(),
				Model:        unit.Model,
				Chassis:      unit.Chassis,
				Engine:       unit.Engine,
				Color:        unit.Color,
				Status:       models.MotorcycleAvailable,
				ExporterName: exporter,
				BuyingPrice:  unit.BuyingPrice,
				ContainerID:  &container.ID,
			}
			if err := tx.Create(&bike).Error; err != nil {
				return fmt.Errorf("import motorcycle %s: %w", unit.Chassis, err)
			}
			created = append(created, bike)
			bikeIDs = append(bikeIDs, bike.ID)
		}

		if err := tx.Model(&models.Container{}).Where("id = ?", container.ID).
			Update("bike_ids", bikeIDs).Error; err != nil {
			return fmt.Errorf("update container bike set: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}
