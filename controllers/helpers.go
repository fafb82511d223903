package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"motostream-api/services"
	"motostream-api/utils"
)

// handleServiceError maps the service error taxonomy to HTTP statuses.
// Anything unclassified is a store failure the caller may retry.
func handleServiceError(c *gin.Context, err error) {
	switch {
	case services.IsValidation(err):
		utils.SendValidationError(c, err.Error())
	case services.IsNotFound(err):
		utils.SendError(c, http.StatusNotFound, err.Error())
	case services.IsConflict(err):
		utils.SendError(c, http.StatusConflict, err.Error())
	default:
		utils.SendError(c, http.StatusServiceUnavailable, "Store unavailable, please retry")
	}
}
