package handler

import (
	"net/http"

	"appointment_manager/internal/apperror"
	"appointment_manager/internal/model"
	"appointment_manager/internal/response"
	"appointment_manager/internal/service"

	"github.com/gin-gonic/gin"
)

// AppointmentHandler handles booking, listing and status updates
type AppointmentHandler struct {
	service service.AppointmentService
}

// NewAppointmentHandler creates a new AppointmentHandler
func NewAppointmentHandler(s service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: s}
}

// CreateAppointment books the acting patient with a doctor
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	patientID, err := getAuthUserID(c)
	if err != nil {
		response.Error(c, apperror.Unauthorized("Please Login First"))
		return
	}

	var req model.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	appointment, err := h.service.Create(c.Request.Context(), req.DoctorID, patientID, req.Date)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusCreated, "Appointment created successfully", appointment)
}

func (h *AppointmentHandler) GetPatientAppointments(c *gin.Context) {
	patientID, err := getAuthUserID(c)
	if err != nil {
		response.Error(c, apperror.Unauthorized("Please Login First"))
		return
	}

	var status *string
	if v := c.Query("status"); v != "" {
		status = &v
	}
	p := model.ParsePagination(c.Query("page"), c.Query("limit"))

	appointments, meta, err := h.service.GetPatientAppointments(c.Request.Context(), patientID, status, p)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OKWithMeta(c, http.StatusOK, "Patient appointments retrieved successfully", appointments, meta)
}

func (h *AppointmentHandler) GetDoctorAppointments(c *gin.Context) {
	doctorID, err := getAuthUserID(c)
	if err != nil {
		response.Error(c, apperror.Unauthorized("Please Login First"))
		return
	}

	var status, date *string
	if v := c.Query("status"); v != "" {
		status = &v
	}
	if v := c.Query("date"); v != "" {
		date = &v
	}
	p := model.ParsePagination(c.Query("page"), c.Query("limit"))

	appointments, meta, err := h.service.GetDoctorAppointments(c.Request.Context(), doctorID, status, date, p)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OKWithMeta(c, http.StatusOK, "Doctor appointments retrieved successfully", appointments, meta)
}

// UpdateAppointmentStatus transitions an appointment's status on behalf of
// its doctor or patient.
func (h *AppointmentHandler) UpdateAppointmentStatus(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		response.Error(c, apperror.Unauthorized("Please Login First"))
		return
	}
	userRole, err := getAuthUserRole(c)
	if err != nil {
		response.Error(c, apperror.Unauthorized("Please Login First"))
		return
	}

	var req model.UpdateAppointmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	appointment, err := h.service.UpdateStatus(c.Request.Context(), req.AppointmentID, req.Status, userID, userRole)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, "Appointment status updated successfully", appointment)
}

// RegisterAppointmentRoutes registers appointment routes behind auth and
// the per-group rate limit.
func (h *AppointmentHandler) RegisterAppointmentRoutes(rg *gin.RouterGroup, rateLimitMW, authMW, doctorMW, patientMW, doctorOrPatientMW gin.HandlerFunc) {
	ag := rg.Group("/appointments")
	ag.Use(rateLimitMW)
	{
		ag.POST("", authMW, patientMW, h.CreateAppointment)
		ag.GET("/patient", authMW, patientMW, h.GetPatientAppointments)
		ag.GET("/doctor", authMW, doctorMW, h.GetDoctorAppointments)
		ag.PATCH("/update-status", authMW, doctorOrPatientMW, h.UpdateAppointmentStatus)
	}
}
