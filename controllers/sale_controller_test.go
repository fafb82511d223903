package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"motostream-api/metrics"
	"motostream-api/models"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	metrics.Init("test")
	os.Exit(m.Run())
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Container{},
		&models.Motorcycle{},
		&models.Customer{},
		&models.Sale{},
	))
	return db
}

func newSaleRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	sc := NewSaleController(db)
	router.POST("/sales", sc.SubmitSale)
	router.GET("/sales", sc.GetSales)
	return router
}

func seedAvailableBike(t *testing.T, db *gorm.DB, chassis string) *models.Motorcycle {
	t.Helper()
	bike := &models.Motorcycle{
		ID:      uuid.New().String(),
		Model:   "Honda Hornet",
		Chassis: chassis,
		Status:  models.MotorcycleAvailable,
	}
	require.NoError(t, db.Create(bike).Error)
	return bike
}

func saleBody(chassis, phone, nid, price, duration string) []byte {
	body := map[string]interface{}{
		"chassis": chassis,
		"customer": map[string]string{
			"name":        "Rahim Uddin",
			"father_name": "Karim Uddin",
			"mother_name": "Salma Begum",
			"phone":       phone,
			"nid":         nid,
			"dob":         "1990-04-12",
			"address":     "12 Station Road, Bogura",
		},
		"sale_price":            price,
		"registration_duration": duration,
	}
	b, _ := json.Marshal(body)
	return b
}

func postSale(router *gin.Engine, body []byte) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/sales", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestSubmitSaleEndpoint(t *testing.T) {
	db := newTestDB(t)
	router := newSaleRouter(db)
	seedAvailableBike(t, db, "CHAS100")

	w := postSale(router, saleBody("CHAS100", "01712345678", "1234567890", "480000", "2 years"))
	assert.Equal(t, http.StatusCreated, w.Code)

	var stored models.Motorcycle
	require.NoError(t, db.First(&stored, "chassis = ?", "CHAS100").Error)
	assert.Equal(t, models.MotorcycleSold, stored.Status)
}

func TestSubmitSaleEndpointConflictOnSecondSale(t *testing.T) {
	db := newTestDB(t)
	router := newSaleRouter(db)
	seedAvailableBike(t, db, "CHAS101")

	first := postSale(router, saleBody("CHAS101", "01712345678", "1234567890", "480000", "2 years"))
	require.Equal(t, http.StatusCreated, first.Code)

	second := postSale(router, saleBody("CHAS101", "01898765432", "9876543210", "500000", "10 years"))
	assert.Equal(t, http.StatusConflict, second.Code)

	var saleCount int64
	db.Model(&models.Sale{}).Count(&saleCount)
	assert.EqualValues(t, 1, saleCount)
}

func TestSubmitSaleEndpointValidation(t *testing.T) {
	db := newTestDB(t)
	router := newSaleRouter(db)
	seedAvailableBike(t, db, "CHAS102")

	w := postSale(router, saleBody("CHAS102", "01712345678", "1234567890", "480000", "5 years"))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var stored models.Motorcycle
	require.NoError(t, db.First(&stored, "chassis = ?", "CHAS102").Error)
	assert.Equal(t, models.MotorcycleAvailable, stored.Status)
}

func TestSubmitSaleEndpointRejectsMalformedIdentity(t *testing.T) {
	db := newTestDB(t)
	router := newSaleRouter(db)
	seedAvailableBike(t, db, "CHAS103")

	badPhone := postSale(router, saleBody("CHAS103", "+8801712345678", "1234567890", "480000", "2 years"))
	assert.Equal(t, http.StatusBadRequest, badPhone.Code)

	badNID := postSale(router, saleBody("CHAS103", "01712345678", "N1", "480000", "2 years"))
	assert.Equal(t, http.StatusBadRequest, badNID.Code)

	var stored models.Motorcycle
	require.NoError(t, db.First(&stored, "chassis = ?", "CHAS103").Error)
	assert.Equal(t, models.MotorcycleAvailable, stored.Status)

	var customerCount int64
	db.Model(&models.Customer{}).Count(&customerCount)
	assert.EqualValues(t, 0, customerCount)
}

func TestSubmitSaleEndpointUnknownChassis(t *testing.T) {
	db := newTestDB(t)
	router := newSaleRouter(db)

	w := postSale(router, saleBody("CHAS999", "01712345678", "1234567890", "480000", "2 years"))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
