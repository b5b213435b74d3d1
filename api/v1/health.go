package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Welcome handles the API root.
func Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "J.R Autos API - Welcome!",
	})
}

// HealthCheck reports service liveness.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "J.R Autos API",
	})
}
