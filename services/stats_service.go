package services

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"motostream-api/metrics"
	"motostream-api/models"
)

// StatsService answers read-only statistical queries by joining the entity
// tables. Every call recomputes from current store state; nothing caches.
type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

type DashboardStats struct {
	TotalBikes     int64           `json:"total_bikes"`
	InStock        int64           `json:"in_stock"`
	Sold           int64           `json:"sold"`
	TotalSales     int64           `json:"total_sales"`
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	TotalCustomers int64           `json:"total_customers"`
}

type ContainerStats struct {
	TotalUnits     int64           `json:"total_units"`
	AvailableUnits int64           `json:"available_units"`
	SoldUnits      int64           `json:"sold_units"`
	Investment     decimal.Decimal `json:"investment"`
	RealizedProfit decimal.Decimal `json:"realized_profit"`
}

func (s *StatsService) Dashboard() (*DashboardStats, error) {
	defer metrics.TrackDBOperation("dashboard_stats")(time.Now())

	stats := &DashboardStats{TotalRevenue: decimal.Zero}

	if err := s.db.Model(&models.Motorcycle{}).Count(&stats.TotalBikes).Error; err != nil {
		return nil, fmt.Errorf("count motorcycles: %w", err)
	}
	if err := s.db.Model(&models.Motorcycle{}).
		Where("status = ?", models.MotorcycleAvailable).Count(&stats.InStock).Error; err != nil {
		return nil, fmt.Errorf("count available: %w", err)
	}
	stats.Sold = stats.TotalBikes - stats.InStock

	if err := s.db.Model(&models.Sale{}).Count(&stats.TotalSales).Error; err != nil {
		return nil, fmt.Errorf("count sales: %w", err)
	}

	var sales []models.Sale
	if err := s.db.Select("sale_price").Find(&sales).Error; err != nil {
		return nil, fmt.Errorf("sum revenue: %w", err)
	}
	for _, sale := range sales {
		stats.TotalRevenue = stats.TotalRevenue.Add(sale.SalePrice)
	}

	if err := s.db.Model(&models.Customer{}).Count(&stats.TotalCustomers).Error; err != nil {
		return nil, fmt.Errorf("count customers: %w", err)
	}

	return stats, nil
}

// RecentSales returns the latest sales with buyer and bike for the
// dashboard feed.
func (s *StatsService) RecentSales(limit int) ([]models.Sale, error) {
	if limit <= 0 {
		limit = 5
	}
	var sales []models.Sale
	err := s.db.Preload("Motorcycle").Preload("Customer").
		Order("sale_date DESC").Limit(limit).Find(&sales).Error
	if err != nil {
		return nil, fmt.Errorf("recent sales: %w", err)
	}
	return sales, nil
}

// Container computes investment and realized profit for one shipment.
// Investment sums buying prices over all its units; realized profit sums
// sale price minus buying price over the sold ones.
func (s *StatsService) Container(containerID string) (*ContainerStats, error) {
	var bikes []models.Motorcycle
	if err := s.db.Where("container_id = ?", containerID).Find(&bikes).Error; err != nil {
		return nil, fmt.Errorf("load container bikes: %w", err)
	}

	stats := &ContainerStats{
		Investment:     decimal.Zero,
		RealizedProfit: decimal.Zero,
	}

	var soldIDs []string
	buyingPrices := make(map[string]decimal.Decimal)
	for _, bike := range bikes {
		stats.TotalUnits++
		if bike.BuyingPrice != nil {
			stats.Investment = stats.Investment.Add(*bike.BuyingPrice)
			buyingPrices[bike.ID] = *bike.BuyingPrice
		}
		if bike.Status == models.MotorcycleSold {
			stats.SoldUnits++
			soldIDs = append(soldIDs, bike.ID)
		} else {
			stats.AvailableUnits++
		}
	}

	if len(soldIDs) > 0 {
		var sales []models.Sale
		if err := s.db.Where("motorcycle_id IN ?", soldIDs).Find(&sales).Error; err != nil {
			return nil, fmt.Errorf("load container sales: %w", err)
		}
		for _, sale := range sales {
			profit := sale.SalePrice.Sub(buyingPrices[sale.MotorcycleID])
			stats.RealizedProfit = stats.RealizedProfit.Add(profit)
		}
	}

	return stats, nil
}
