package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jrautos/jrautos-api/utils"
)

// AdminAuth guards the admin routes with the static bearer token derived
// from the admin secret. Every failure mode answers with the same 401 body
// so callers cannot tell a missing header from a wrong token.
func AdminAuth(secret string) gin.HandlerFunc {
	expected := utils.AdminToken(secret)

	return func(c *gin.Context) {
		parts := strings.Split(c.GetHeader("Authorization"), " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || !utils.TokenEqual(parts[1], expected) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Invalid or missing admin credentials",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
