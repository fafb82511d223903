package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"motostream-api/models"
)

func TestResolveCreatesNewCustomer(t *testing.T) {
	db := newTestDB(t)
	resolver := NewCustomerResolver(db)

	customer, err := resolver.Resolve(db, testCustomerFields("01712345678", "N1"))
	require.NoError(t, err)

	assert.NotEmpty(t, customer.ID)
	assert.Equal(t, "Rahim Uddin", customer.Name)
	assert.Empty(t, customer.PurchasedBikeIDs)

	var count int64
	db.Model(&models.Customer{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestResolveMatchesByPhoneRegardlessOfOtherFields(t *testing.T) {
	db := newTestDB(t)
	resolver := NewCustomerResolver(db)

	original, err := resolver.Resolve(db, testCustomerFields("01712345678", "N1"))
	require.NoError(t, err)

	// Same phone, everything else different, repeated calls
	for _, nid := range []string{"N2", "N3", "N4"} {
		fields := testCustomerFields("01712345678", nid)
		fields.Name = "Someone Else"
		fields.Address = "Another Address"

		resolved, err := resolver.Resolve(db, fields)
		require.NoError(t, err)
		assert.Equal(t, original.ID, resolved.ID)
		assert.Equal(t, "Rahim Uddin", resolved.Name)
	}

	var count int64
	db.Model(&models.Customer{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestResolveMatchesByNIDWithDifferentPhone(t *testing.T) {
	db := newTestDB(t)
	resolver := NewCustomerResolver(db)

	original, err := resolver.Resolve(db, testCustomerFields("01712345678", "N1"))
	require.NoError(t, err)

	resolved, err := resolver.Resolve(db, testCustomerFields("01898765432", "N1"))
	require.NoError(t, err)
	assert.Equal(t, original.ID, resolved.ID)
	assert.Equal(t, "01712345678", resolved.Phone, "stored phone stays authoritative")
}

func TestResolveDistinctIdentitiesGetDistinctRows(t *testing.T) {
	db := newTestDB(t)
	resolver := NewCustomerResolver(db)

	a, err := resolver.Resolve(db, testCustomerFields("01712345678", "N1"))
	require.NoError(t, err)
	b, err := resolver.Resolve(db, testCustomerFields("01898765432", "N2"))
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}

// The resolver, the list filter and the composite index all address the
// column as "nid"; the struct tag must keep gorm from renaming it.
func TestCustomerNIDColumnIsAddressableRaw(t *testing.T) {
	db := newTestDB(t)
	resolver := NewCustomerResolver(db)

	_, err := resolver.Resolve(db, testCustomerFields("01712345678", "1234567890"))
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.Customer{}).Where("nid = ?", "1234567890").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestResolveRejectsMissingFields(t *testing.T) {
	db := newTestDB(t)
	resolver := NewCustomerResolver(db)

	_, err := resolver.Resolve(db, CustomerFields{Phone: "01712345678"})
	assert.ErrorIs(t, err, ErrMissingCustomerFields)

	var count int64
	db.Model(&models.Customer{}).Count(&count)
	assert.EqualValues(t, 0, count)
}
