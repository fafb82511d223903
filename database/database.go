package database

import (
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"motostream-api/models"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Warn),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Container{},
		&models.Motorcycle{},
		&models.Customer{},
		&models.Sale{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := addCustomIndexes(db); err != nil {
		return fmt.Errorf("failed to add custom indexes: %w", err)
	}

	return nil
}

func addCustomIndexes(db *gorm.DB) error {
	// Sales history is read newest-first, joined on both foreign keys
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_sales_sale_date ON sales(sale_date DESC)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for sales: %v\n", err)
	}

	// Customer resolution matches on phone OR nid
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_customers_phone_nid ON customers(phone, nid)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for customers: %v\n", err)
	}

	return nil
}

// SeedAdmin creates the staff login on first start if no user exists yet.
func SeedAdmin(db *gorm.DB, email, password string) error {
	var userCount int64
	db.Model(&models.User{}).Count(&userCount)

	if userCount > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := models.User{
		ID:       uuid.New().String(),
		Name:     "Admin",
		Email:    email,
		Password: string(hashed),
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	return nil
}
