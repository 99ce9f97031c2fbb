package middleware

import (
	"fmt"
	"strings"

	"appointment_manager/internal/apperror"
	"appointment_manager/internal/model"
	"appointment_manager/internal/response"

	"github.com/gin-gonic/gin"
)

// Authorize creates a middleware allowing only the listed roles. It must run
// after JWTAuthMiddleware.
func Authorize(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get(AuthRoleKey)
		if !exists {
			response.Error(c, apperror.Unauthorized("Please Login First"))
			return
		}

		userRole, ok := roleVal.(string)
		if !ok {
			response.Error(c, apperror.Unauthorized("Invalid token"))
			return
		}

		for _, allowed := range allowedRoles {
			if userRole == allowed {
				c.Next()
				return
			}
		}

		response.Error(c, apperror.Forbidden(fmt.Sprintf(
			"Access denied. Required roles: %s. Your role: %s",
			strings.Join(allowedRoles, ", "), userRole)))
	}
}

// RequireDoctor allows only doctors
func RequireDoctor() gin.HandlerFunc {
	return Authorize(model.RoleDoctor)
}

// RequirePatient allows only patients
func RequirePatient() gin.HandlerFunc {
	return Authorize(model.RolePatient)
}
