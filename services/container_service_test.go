package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"motostream-api/models"
)

func TestImportBikesInheritsExporter(t *testing.T) {
	db := newTestDB(t)
	svc := NewContainerService(db)

	lot, err := svc.Create("Feb 2024 Shipment", "Osaka Trading Co", time.Now())
	require.NoError(t, err)

	bikes, err := svc.ImportBikes(lot.ID, []NewMotorcycle{
		{Model: "Honda Hornet", Chassis: "CHAS060"},
		{Model: "Yamaha FZS", Chassis: "CHAS061", ExporterName: "Nagoya Motors"},
	})
	require.NoError(t, err)
	require.Len(t, bikes, 2)

	assert.Equal(t, "Osaka Trading Co", bikes[0].ExporterName, "container exporter is the default")
	assert.Equal(t, "Nagoya Motors", bikes[1].ExporterName, "per-unit override wins")

	for _, bike := range bikes {
		require.NotNil(t, bike.ContainerID)
		assert.Equal(t, lot.ID, *bike.ContainerID)
		assert.Equal(t, models.MotorcycleAvailable, bike.Status)
	}

	stored, err := svc.Get(lot.ID)
	require.NoError(t, err)
	assert.Len(t, stored.BikeIDs, 2)
	assert.True(t, stored.BikeIDs.Contains(bikes[0].ID))
	assert.True(t, stored.BikeIDs.Contains(bikes[1].ID))
}

func TestImportBikesUnknownContainer(t *testing.T) {
	db := newTestDB(t)
	svc := NewContainerService(db)

	_, err := svc.ImportBikes("no-such-container", []NewMotorcycle{
		{Model: "Honda Hornet", Chassis: "CHAS062"},
	})
	assert.ErrorIs(t, err, ErrContainerNotFound)

	// Referential failure imports nothing
	var count int64
	db.Model(&models.Motorcycle{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestImportBikesAppendsToExistingSet(t *testing.T) {
	db := newTestDB(t)
	svc := NewContainerService(db)

	lot, err := svc.Create("Lot-2", "Osaka Trading Co", time.Now())
	require.NoError(t, err)

	first, err := svc.ImportBikes(lot.ID, []NewMotorcycle{{Model: "Honda Hornet", Chassis: "CHAS063"}})
	require.NoError(t, err)
	second, err := svc.ImportBikes(lot.ID, []NewMotorcycle{{Model: "Honda Hornet", Chassis: "CHAS064"}})
	require.NoError(t, err)

	stored, err := svc.Get(lot.ID)
	require.NoError(t, err)
	assert.Len(t, stored.BikeIDs, 2)
	assert.True(t, stored.BikeIDs.Contains(first[0].ID))
	assert.True(t, stored.BikeIDs.Contains(second[0].ID))
}
