package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jrautos/jrautos-api/dto"
	"github.com/jrautos/jrautos-api/services"
)

// VehicleController exposes the public catalog and the admin inventory
// endpoints.
type VehicleController struct {
	service *services.VehicleService
}

// NewVehicleController creates a new vehicle controller instance.
func NewVehicleController(service *services.VehicleService) *VehicleController {
	return &VehicleController{service: service}
}

// ListPublic returns the available vehicles, newest first.
func (ctl *VehicleController) ListPublic(c *gin.Context) {
	vehicles, err := ctl.service.ListPublic(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve vehicles",
		})
		return
	}

	c.JSON(http.StatusOK, vehicles)
}

// GetPublic returns a single available vehicle by id.
func (ctl *VehicleController) GetPublic(c *gin.Context) {
	vehicle, err := ctl.service.GetPublic(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Vehicle not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve vehicle",
		})
		return
	}

	c.JSON(http.StatusOK, vehicle)
}

// ListAll returns every vehicle, hidden ones included. Admin only.
func (ctl *VehicleController) ListAll(c *gin.Context) {
	vehicles, err := ctl.service.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve vehicles",
		})
		return
	}

	c.JSON(http.StatusOK, vehicles)
}

// Create adds a vehicle to the inventory. Admin only.
func (ctl *VehicleController) Create(c *gin.Context) {
	var req dto.VehicleCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status":  "error",
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	vehicle, err := ctl.service.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to save vehicle",
		})
		return
	}

	c.JSON(http.StatusOK, vehicle)
}

// Update applies a partial update to a vehicle. Admin only.
func (ctl *VehicleController) Update(c *gin.Context) {
	var req dto.VehicleUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status":  "error",
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	vehicle, err := ctl.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Vehicle not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update vehicle",
		})
		return
	}

	c.JSON(http.StatusOK, vehicle)
}

// Delete removes a vehicle permanently. Admin only.
func (ctl *VehicleController) Delete(c *gin.Context) {
	err := ctl.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Vehicle not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete vehicle",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Vehicle deleted successfully",
	})
}
