package handler

import (
	"errors"

	"appointment_manager/internal/middleware"

	"github.com/gin-gonic/gin"
)

// getAuthUserID reads the authenticated user id set by the JWT middleware
func getAuthUserID(c *gin.Context) (string, error) {
	userIDVal, exists := c.Get(middleware.AuthUserKey)
	if !exists {
		return "", errors.New("user ID not found in context")
	}
	userID, ok := userIDVal.(string)
	if !ok {
		return "", errors.New("invalid user ID type in context")
	}
	return userID, nil
}

// getAuthUserRole reads the authenticated role set by the JWT middleware
func getAuthUserRole(c *gin.Context) (string, error) {
	roleVal, exists := c.Get(middleware.AuthRoleKey)
	if !exists {
		return "", errors.New("user role not found in context")
	}
	role, ok := roleVal.(string)
	if !ok {
		return "", errors.New("invalid user role type in context")
	}
	return role, nil
}
