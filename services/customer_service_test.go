package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"motostream-api/models"
)

func TestListCustomersWithFilter(t *testing.T) {
	db := newTestDB(t)
	resolver := NewCustomerResolver(db)
	svc := NewCustomerService(db)

	_, err := resolver.Resolve(db, testCustomerFields("01712345678", "N1"))
	require.NoError(t, err)

	other := testCustomerFields("01898765432", "N2")
	other.Name = "Jamal Hossain"
	other.Address = "45 Lake View, Sylhet"
	_, err = resolver.Resolve(db, other)
	require.NoError(t, err)

	all, err := svc.List("")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	byName, err := svc.List("jamal")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Jamal Hossain", byName[0].Name)

	byPhone, err := svc.List("01712")
	require.NoError(t, err)
	require.Len(t, byPhone, 1)
	assert.Equal(t, "Rahim Uddin", byPhone[0].Name)

	// Every term must match
	none, err := svc.List("jamal bogura")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestGetCustomerWithPurchasedBikes(t *testing.T) {
	db := newTestDB(t)
	sales := NewSaleService(db)
	svc := NewCustomerService(db)

	bike := seedBike(t, db, "CHAS080", nil, nil)
	sale, err := sales.SubmitSale("CHAS080", testCustomerFields("01712345678", "N1"), money(100000), models.RegistrationTwoYears)
	require.NoError(t, err)

	customer, bikes, err := svc.Get(sale.CustomerID)
	require.NoError(t, err)
	assert.Equal(t, "Rahim Uddin", customer.Name)
	require.Len(t, bikes, 1)
	assert.Equal(t, bike.ID, bikes[0].ID)
}

func TestUpdateNotesKeepsIdentityFields(t *testing.T) {
	db := newTestDB(t)
	resolver := NewCustomerResolver(db)
	svc := NewCustomerService(db)

	created, err := resolver.Resolve(db, testCustomerFields("01712345678", "N1"))
	require.NoError(t, err)

	updated, err := svc.UpdateNotes(created.ID, "prefers cash payment")
	require.NoError(t, err)
	assert.Equal(t, "prefers cash payment", updated.Notes)
	assert.Equal(t, created.Phone, updated.Phone)
	assert.Equal(t, created.NID, updated.NID)

	_, err = svc.UpdateNotes("no-such-customer", "x")
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}
