package handler

import (
	"net/http"

	"appointment_manager/internal/model"
	"appointment_manager/internal/response"
	"appointment_manager/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration and login
type AuthHandler struct {
	service service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(s service.AuthService) *AuthHandler {
	return &AuthHandler{service: s}
}

func (h *AuthHandler) register(c *gin.Context, role, message string) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	user, err := h.service.Register(c.Request.Context(), req, role)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusCreated, message, user)
}

func (h *AuthHandler) RegisterPatient(c *gin.Context) {
	h.register(c, model.RolePatient, "Patient registered successfully")
}

func (h *AuthHandler) RegisterDoctor(c *gin.Context) {
	h.register(c, model.RoleDoctor, "Doctor registered successfully")
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, "User logged in successfully", result)
}

// RegisterAuthRoutes registers auth routes
func (h *AuthHandler) RegisterAuthRoutes(rg *gin.RouterGroup) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/register/patient", h.RegisterPatient)
		authGroup.POST("/register/doctor", h.RegisterDoctor)
		authGroup.POST("/login", h.Login)
	}
}
