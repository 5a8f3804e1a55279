package handlers

import (
	"newsroom-api/models"

	"github.com/gin-gonic/gin"
)

// currentUser rebuilds the authenticated principal from the claims the
// auth middleware stored on the context. Every service call receives
// it explicitly.
func currentUser(c *gin.Context) *models.User {
	userID, _ := c.Get("user_id")
	username, _ := c.Get("username")
	role, _ := c.Get("role")

	return &models.User{
		ID:       userID.(uint),
		Username: username.(string),
		Role:     models.UserRole(role.(string)),
	}
}
