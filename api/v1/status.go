package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jrautos/jrautos-api/dto"
	"github.com/jrautos/jrautos-api/services"
)

// StatusController exposes the public status-check endpoints.
type StatusController struct {
	service *services.StatusService
}

// NewStatusController creates a new status controller instance.
func NewStatusController(service *services.StatusService) *StatusController {
	return &StatusController{service: service}
}

// Create appends a status-check record.
func (ctl *StatusController) Create(c *gin.Context) {
	var req dto.StatusCheckCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status":  "error",
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	check, err := ctl.service.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to save status check",
		})
		return
	}

	c.JSON(http.StatusOK, check)
}

// List returns the stored status checks.
func (ctl *StatusController) List(c *gin.Context) {
	checks, err := ctl.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve status checks",
		})
		return
	}

	c.JSON(http.StatusOK, checks)
}
