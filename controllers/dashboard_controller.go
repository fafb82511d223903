package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"motostream-api/services"
)

type DashboardController struct {
	statsService *services.StatsService
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{statsService: services.NewStatsService(db)}
}

func (dc *DashboardController) GetStats(c *gin.Context) {
	stats, err := dc.statsService.Dashboard()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (dc *DashboardController) GetRecentSales(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))

	sales, err := dc.statsService.RecentSales(limit)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sales)
}
