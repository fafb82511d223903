package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"motostream-api/models"
)

func TestAddAndListAvailable(t *testing.T) {
	db := newTestDB(t)
	svc := NewStockService(db)

	bike, err := svc.Add(NewMotorcycle{Model: "Honda Hornet", Chassis: "CHAS070", Color: "Red"}, nil)
	require.NoError(t, err)
	assert.Equal(t, models.MotorcycleAvailable, bike.Status)

	available, err := svc.ListAvailable()
	require.NoError(t, err)
	assert.Len(t, available, 1)
}

func TestAddWithUnknownContainer(t *testing.T) {
	db := newTestDB(t)
	svc := NewStockService(db)

	containerID := "no-such-container"
	_, err := svc.Add(NewMotorcycle{Model: "Honda Hornet", Chassis: "CHAS071"}, &containerID)
	assert.ErrorIs(t, err, ErrContainerNotFound)
}

func TestListAvailableExcludesSold(t *testing.T) {
	db := newTestDB(t)
	stock := NewStockService(db)
	sales := NewSaleService(db)

	seedBike(t, db, "CHAS072", nil, nil)
	seedBike(t, db, "CHAS073", nil, nil)

	_, err := sales.SubmitSale("CHAS072", testCustomerFields("01712345678", "N1"), money(100000), models.RegistrationTwoYears)
	require.NoError(t, err)

	available, err := stock.ListAvailable()
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, "CHAS073", available[0].Chassis)

	all, err := stock.ListAll()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestUpdateRegistrationOnlyAfterSale(t *testing.T) {
	db := newTestDB(t)
	stock := NewStockService(db)
	sales := NewSaleService(db)

	bike := seedBike(t, db, "CHAS074", nil, nil)

	_, err := stock.UpdateRegistration(bike.ID, "DHAKA-METRO-LA-123456")
	assert.ErrorIs(t, err, ErrNotRegistrable)

	_, err = sales.SubmitSale("CHAS074", testCustomerFields("01712345678", "N1"), money(100000), models.RegistrationTwoYears)
	require.NoError(t, err)

	updated, err := stock.UpdateRegistration(bike.ID, "DHAKA-METRO-LA-123456")
	require.NoError(t, err)
	assert.Equal(t, "DHAKA-METRO-LA-123456", updated.RegistrationNumber)
}

func TestRemoveBlockedForSoldBike(t *testing.T) {
	db := newTestDB(t)
	stock := NewStockService(db)
	sales := NewSaleService(db)

	bike := seedBike(t, db, "CHAS075", nil, nil)
	_, err := sales.SubmitSale("CHAS075", testCustomerFields("01712345678", "N1"), money(100000), models.RegistrationTwoYears)
	require.NoError(t, err)

	err = stock.Remove(bike.ID)
	assert.ErrorIs(t, err, ErrMotorcycleAlreadySold)

	// The sold unit survives; deleting it would orphan its sale
	var stored models.Motorcycle
	assert.NoError(t, db.First(&stored, "id = ?", bike.ID).Error)
}

func TestRemoveAvailableBike(t *testing.T) {
	db := newTestDB(t)
	svc := NewStockService(db)

	bike := seedBike(t, db, "CHAS076", nil, nil)
	require.NoError(t, svc.Remove(bike.ID))

	var count int64
	db.Model(&models.Motorcycle{}).Count(&count)
	assert.EqualValues(t, 0, count)

	assert.ErrorIs(t, svc.Remove(bike.ID), ErrMotorcycleNotFound)
}

func TestFindByChassisAnyStatus(t *testing.T) {
	db := newTestDB(t)
	stock := NewStockService(db)
	sales := NewSaleService(db)

	seedBike(t, db, "CHAS077", nil, nil)
	_, err := sales.SubmitSale("CHAS077", testCustomerFields("01712345678", "N1"), money(100000), models.RegistrationTwoYears)
	require.NoError(t, err)

	bike, err := stock.FindByChassis("CHAS077")
	require.NoError(t, err)
	assert.Equal(t, models.MotorcycleSold, bike.Status)

	_, err = stock.FindByChassis("CHAS999")
	assert.ErrorIs(t, err, ErrMotorcycleNotFound)
}
