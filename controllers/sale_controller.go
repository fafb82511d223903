package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"motostream-api/metrics"
	"motostream-api/models"
	"motostream-api/services"
	"motostream-api/utils"
)

type SaleController struct {
	saleService *services.SaleService
}

func NewSaleController(db *gorm.DB) *SaleController {
	return &SaleController{saleService: services.NewSaleService(db)}
}

type SubmitSaleRequest struct {
	Chassis              string                      `json:"chassis" binding:"required"`
	Customer             services.CustomerFields     `json:"customer" binding:"required"`
	SalePrice            decimal.Decimal             `json:"sale_price" binding:"required"`
	RegistrationDuration models.RegistrationDuration `json:"registration_duration" binding:"required"`
}

// SubmitSale is the only endpoint that sells a bike.
func (sc *SaleController) SubmitSale(c *gin.Context) {
	var req SubmitSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.RecordSaleRejected("bad_request")
		utils.SendValidationError(c, err.Error())
		return
	}
	if !utils.IsValidPhone(req.Customer.Phone) {
		metrics.RecordSaleRejected("validation")
		utils.SendValidationError(c, "invalid phone number")
		return
	}
	if !utils.IsValidNID(req.Customer.NID) {
		metrics.RecordSaleRejected("validation")
		utils.SendValidationError(c, "invalid nid")
		return
	}

	sale, err := sc.saleService.SubmitSale(req.Chassis, req.Customer, req.SalePrice, req.RegistrationDuration)
	if err != nil {
		switch {
		case services.IsValidation(err):
			metrics.RecordSaleRejected("validation")
		case services.IsNotFound(err):
			metrics.RecordSaleRejected("not_found")
		case services.IsConflict(err):
			metrics.RecordSaleRejected("conflict")
		default:
			metrics.RecordSaleRejected("store_error")
		}
		handleServiceError(c, err)
		return
	}

	metrics.RecordSaleCompleted()
	utils.SendCreated(c, "Sale recorded", sale)
}

func (sc *SaleController) GetSales(c *gin.Context) {
	sales, err := sc.saleService.ListSales()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sales)
}

func (sc *SaleController) GetSale(c *gin.Context) {
	sale, err := sc.saleService.GetSale(c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sale)
}
