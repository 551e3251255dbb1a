package middleware

import (
	"net/http"
	"strings"

	"smart-restaurant/helpers"
	"smart-restaurant/models"

	"github.com/gin-gonic/gin"
)

// Authentication validates the Authorization: Bearer <token> header and
// injects the claims into the request context. A token query parameter
// is accepted as a fallback for websocket clients, which cannot set
// request headers from the browser.
func Authentication() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ""
		if authHeader := c.GetHeader("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimPrefix(authHeader, "Bearer ")
		} else {
			token = c.Query("token")
		}
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No token provided"})
			c.Abort()
			return
		}
		claims, err := helpers.ValidateToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}
		c.Set("uid", claims.Uid)
		c.Set("name", claims.Name)
		c.Set("role", string(claims.Role))
		c.Next()
	}
}

// RequireAdmin must run after Authentication.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetRole(c) != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin access only"})
			c.Abort()
			return
		}
		c.Next()
	}
}

func GetUID(c *gin.Context) string {
	return c.GetString("uid")
}

func GetRole(c *gin.Context) models.Role {
	return models.Role(c.GetString("role"))
}
