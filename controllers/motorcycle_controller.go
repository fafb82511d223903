package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"motostream-api/services"
	"motostream-api/utils"
)

type MotorcycleController struct {
	stockService *services.StockService
}

func NewMotorcycleController(db *gorm.DB) *MotorcycleController {
	return &MotorcycleController{stockService: services.NewStockService(db)}
}

type CreateMotorcycleRequest struct {
	services.NewMotorcycle
	ContainerID *string `json:"container_id"`
}

type UpdateRegistrationRequest struct {
	RegistrationNumber string `json:"registration_number" binding:"required"`
}

// GetStock lists available units; ?status=all includes sold ones.
func (mc *MotorcycleController) GetStock(c *gin.Context) {
	var err error
	var bikes interface{}

	if c.Query("status") == "all" {
		bikes, err = mc.stockService.ListAll()
	} else {
		bikes, err = mc.stockService.ListAvailable()
	}
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, bikes)
}

func (mc *MotorcycleController) CreateMotorcycle(c *gin.Context) {
	var req CreateMotorcycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}
	if !utils.IsValidChassis(req.Chassis) {
		utils.SendValidationError(c, "invalid chassis number")
		return
	}

	bike, err := mc.stockService.Add(req.NewMotorcycle, req.ContainerID)
	if err != nil {
		if errors.Is(err, services.ErrContainerNotFound) {
			utils.SendError(c, http.StatusUnprocessableEntity, err.Error())
			return
		}
		handleServiceError(c, err)
		return
	}

	utils.SendCreated(c, "Motorcycle added to stock", bike)
}

// FindByChassis looks a unit up for the sale form.
func (mc *MotorcycleController) FindByChassis(c *gin.Context) {
	bike, err := mc.stockService.FindByChassis(c.Param("chassis"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, bike)
}

// GetModelSpecs returns the print-slip spec lines for a unit's model.
func (mc *MotorcycleController) GetModelSpecs(c *gin.Context) {
	bike, err := mc.stockService.FindByChassis(c.Param("chassis"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	specs, ok := services.LookupModelSpecs(bike.Model)
	if !ok {
		utils.SendError(c, http.StatusNotFound, "No specs known for this model")
		return
	}
	c.JSON(http.StatusOK, specs)
}

func (mc *MotorcycleController) UpdateRegistration(c *gin.Context) {
	var req UpdateRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	bike, err := mc.stockService.UpdateRegistration(c.Param("id"), req.RegistrationNumber)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SendSuccess(c, "Registration number updated", bike)
}

func (mc *MotorcycleController) DeleteMotorcycle(c *gin.Context) {
	if err := mc.stockService.Remove(c.Param("id")); err != nil {
		handleServiceError(c, err)
		return
	}
	utils.SendSuccess(c, "Motorcycle removed from stock", nil)
}
