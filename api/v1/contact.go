package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jrautos/jrautos-api/dto"
	"github.com/jrautos/jrautos-api/services"
)

// ContactController exposes the contact-form endpoints.
type ContactController struct {
	service *services.ContactService
}

// NewContactController creates a new contact controller instance.
func NewContactController(service *services.ContactService) *ContactController {
	return &ContactController{service: service}
}

// Submit handles a public contact-form submission. The response reflects
// only the persist stage; notification delivery is best-effort.
func (ctl *ContactController) Submit(c *gin.Context) {
	var req dto.ContactMessageCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status":  "error",
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	msg, err := ctl.service.Submit(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to save contact message",
		})
		return
	}

	c.JSON(http.StatusOK, msg)
}

// List returns every stored contact message, newest first. Admin only.
func (ctl *ContactController) List(c *gin.Context) {
	messages, err := ctl.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve contact messages",
		})
		return
	}

	c.JSON(http.StatusOK, messages)
}
