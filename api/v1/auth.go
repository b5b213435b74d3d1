package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jrautos/jrautos-api/dto"
	"github.com/jrautos/jrautos-api/services"
)

// AuthController exposes the admin login endpoint.
type AuthController struct {
	service *services.AuthService
}

// NewAuthController creates a new auth controller instance.
func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{service: service}
}

// Login exchanges the admin password for the static bearer token.
func (ctl *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status":  "error",
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	resp, err := ctl.service.Login(req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Invalid password",
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}
