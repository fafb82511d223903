package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"motostream-api/services"
	"motostream-api/utils"
)

type CustomerController struct {
	customerService *services.CustomerService
}

func NewCustomerController(db *gorm.DB) *CustomerController {
	return &CustomerController{customerService: services.NewCustomerService(db)}
}

type UpdateNotesRequest struct {
	Notes string `json:"notes"`
}

// GetCustomers lists customers; ?q= filters by name, phone, nid or address.
func (cc *CustomerController) GetCustomers(c *gin.Context) {
	customers, err := cc.customerService.List(c.Query("q"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (cc *CustomerController) GetCustomer(c *gin.Context) {
	customer, bikes, err := cc.customerService.Get(c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"customer":        customer,
		"purchased_bikes": bikes,
	})
}

func (cc *CustomerController) UpdateNotes(c *gin.Context) {
	var req UpdateNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	customer, err := cc.customerService.UpdateNotes(c.Param("id"), req.Notes)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SendSuccess(c, "Notes updated", customer)
}
