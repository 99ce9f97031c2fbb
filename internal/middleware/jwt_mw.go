package middleware

import (
	"errors"
	"strings"

	"appointment_manager/internal/apperror"
	"appointment_manager/internal/response"
	"appointment_manager/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	AuthUserKey  = "authUser"
	AuthEmailKey = "authEmail"
	AuthRoleKey  = "authRole"
)

// JWTAuthMiddleware verifies the bearer token and stores the actor's
// identity in the request context.
func JWTAuthMiddleware(jwtUtil *utils.JWTUtil) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			response.Error(c, apperror.Unauthorized("Access token is required"))
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			response.Error(c, apperror.Unauthorized("Please Login First"))
			return
		}

		claims, err := jwtUtil.ValidateToken(tokenString)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				response.Error(c, apperror.Unauthorized("Token has expired"))
				return
			}
			response.Error(c, apperror.Unauthorized("Invalid token"))
			return
		}

		// A structurally valid token must still carry the full identity
		if claims.UserID == "" || claims.Email == "" || claims.Role == "" {
			response.Error(c, apperror.Unauthorized("Invalid token"))
			return
		}

		c.Set(AuthUserKey, claims.UserID)
		c.Set(AuthEmailKey, claims.Email)
		c.Set(AuthRoleKey, claims.Role)

		c.Next()
	}
}
