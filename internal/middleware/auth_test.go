package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"appointment_manager/internal/model"
	"appointment_manager/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func authedRouter(jwtUtil *utils.JWTUtil, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := append([]gin.HandlerFunc{JWTAuthMiddleware(jwtUtil)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	r.GET("/secure", handlers...)
	return r
}

func doGet(r *gin.Engine, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuthMiddleware_MissingHeader(t *testing.T) {
	r := authedRouter(utils.NewJWTUtil("secret", 1))

	w := doGet(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Access token is required")
}

func TestJWTAuthMiddleware_MalformedToken(t *testing.T) {
	r := authedRouter(utils.NewJWTUtil("secret", 1))

	w := doGet(r, "not.a.jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid token")
}

func TestJWTAuthMiddleware_ExpiredToken(t *testing.T) {
	jwtUtil := utils.NewJWTUtil("secret", -1)
	token, _ := jwtUtil.GenerateToken("u1", "u@example.com", model.RolePatient)
	time.Sleep(1 * time.Second)

	r := authedRouter(jwtUtil)
	w := doGet(r, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token has expired")
}

func TestJWTAuthMiddleware_WrongSecret(t *testing.T) {
	other := utils.NewJWTUtil("other-secret", 1)
	token, _ := other.GenerateToken("u1", "u@example.com", model.RolePatient)

	r := authedRouter(utils.NewJWTUtil("secret", 1))
	w := doGet(r, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid token")
}

func TestJWTAuthMiddleware_ValidToken(t *testing.T) {
	jwtUtil := utils.NewJWTUtil("secret", 1)
	token, _ := jwtUtil.GenerateToken("u1", "u@example.com", model.RoleDoctor)

	r := authedRouter(jwtUtil)
	w := doGet(r, token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthorize_RoleAllowed(t *testing.T) {
	jwtUtil := utils.NewJWTUtil("secret", 1)
	token, _ := jwtUtil.GenerateToken("d1", "doc@example.com", model.RoleDoctor)

	r := authedRouter(jwtUtil, RequireDoctor())
	w := doGet(r, token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthorize_RoleDenied(t *testing.T) {
	jwtUtil := utils.NewJWTUtil("secret", 1)
	token, _ := jwtUtil.GenerateToken("p1", "pat@example.com", model.RolePatient)

	r := authedRouter(jwtUtil, RequireDoctor())
	w := doGet(r, token)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Required roles: DOCTOR")
	assert.Contains(t, w.Body.String(), "Your role: PATIENT")
}

func TestAuthorize_EitherRole(t *testing.T) {
	jwtUtil := utils.NewJWTUtil("secret", 1)
	mw := Authorize(model.RoleDoctor, model.RolePatient)

	for _, role := range []string{model.RoleDoctor, model.RolePatient} {
		token, _ := jwtUtil.GenerateToken("u1", "u@example.com", role)
		r := authedRouter(jwtUtil, mw)
		w := doGet(r, token)
		assert.Equal(t, http.StatusOK, w.Code, "role %s", role)
	}
}
