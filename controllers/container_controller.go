package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"motostream-api/services"
	"motostream-api/utils"
)

type ContainerController struct {
	containerService *services.ContainerService
	statsService     *services.StatsService
}

func NewContainerController(db *gorm.DB) *ContainerController {
	return &ContainerController{
		containerService: services.NewContainerService(db),
		statsService:     services.NewStatsService(db),
	}
}

type CreateContainerRequest struct {
	Name         string     `json:"name" binding:"required"`
	ExporterName string     `json:"exporter_name" binding:"required"`
	ImportDate   *time.Time `json:"import_date"`
}

type ImportBikesRequest struct {
	Bikes []services.NewMotorcycle `json:"bikes" binding:"required,min=1,dive"`
}

func (cc *ContainerController) CreateContainer(c *gin.Context) {
	var req CreateContainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	importDate := time.Time{}
	if req.ImportDate != nil {
		importDate = *req.ImportDate
	}

	container, err := cc.containerService.Create(req.Name, req.ExporterName, importDate)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SendCreated(c, "Container created", container)
}

func (cc *ContainerController) GetContainers(c *gin.Context) {
	containers, err := cc.containerService.List()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, containers)
}

// GetContainer returns one shipment together with its derived stats.
func (cc *ContainerController) GetContainer(c *gin.Context) {
	container, err := cc.containerService.Get(c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	stats, err := cc.statsService.Container(container.ID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"container": container,
		"stats":     stats,
	})
}

// ImportBikes bulk-inserts units under the container. A nonexistent
// container id fails the whole import as a referential error.
func (cc *ContainerController) ImportBikes(c *gin.Context) {
	var req ImportBikesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	bikes, err := cc.containerService.ImportBikes(c.Param("id"), req.Bikes)
	if err != nil {
		if errors.Is(err, services.ErrContainerNotFound) {
			utils.SendError(c, http.StatusUnprocessableEntity, err.Error())
			return
		}
		handleServiceError(c, err)
		return
	}

	utils.SendCreated(c, "Motorcycles imported", bikes)
}
