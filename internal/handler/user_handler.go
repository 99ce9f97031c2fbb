package handler

import (
	"net/http"

	"appointment_manager/internal/model"
	"appointment_manager/internal/response"
	"appointment_manager/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler serves the doctor/patient directory
type UserHandler struct {
	service service.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(s service.UserService) *UserHandler {
	return &UserHandler{service: s}
}

func (h *UserHandler) GetDoctors(c *gin.Context) {
	var specialization, search *string
	if v := c.Query("specialization"); v != "" {
		specialization = &v
	}
	if v := c.Query("search"); v != "" {
		search = &v
	}
	p := model.ParsePagination(c.Query("page"), c.Query("limit"))

	doctors, meta, err := h.service.GetDoctors(c.Request.Context(), specialization, search, p)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OKWithMeta(c, http.StatusOK, "Doctors retrieved successfully", doctors, meta)
}

func (h *UserHandler) GetPatients(c *gin.Context) {
	p := model.ParsePagination(c.Query("page"), c.Query("limit"))

	patients, meta, err := h.service.GetPatients(c.Request.Context(), p)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OKWithMeta(c, http.StatusOK, "Patients retrieved successfully", patients, meta)
}

func (h *UserHandler) GetSpecializations(c *gin.Context) {
	response.OK(c, http.StatusOK, "Specializations retrieved successfully", h.service.GetSpecializations())
}

// RegisterUserRoutes registers directory routes. The patient listing is
// doctor-only; the rest is public.
func (h *UserHandler) RegisterUserRoutes(rg *gin.RouterGroup, authMW, doctorMW gin.HandlerFunc) {
	rg.GET("/doctors", h.GetDoctors)
	rg.GET("/patients", authMW, doctorMW, h.GetPatients)
	rg.GET("/specializations", h.GetSpecializations)
}
