package model

import "time"

const (
	StatusPending   = "PENDING"
	StatusCompleted = "COMPLETED"
	StatusCancelled = "CANCELLED"
)

// ValidStatus reports whether s is one of the three appointment statuses.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusCompleted || s == StatusCancelled
}

// Appointment represents a booking between a doctor and a patient.
// Day is the calendar day of Date and is what the double-booking rule keys on.
type Appointment struct {
	ID        string    `json:"id"`
	DoctorID  string    `json:"doctorId"`
	PatientID string    `json:"patientId"`
	Date      time.Time `json:"date"`
	Day       time.Time `json:"-"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`

	// Joined projections, present depending on the endpoint
	Doctor  *UserSummary `json:"doctor,omitempty"`
	Patient *UserSummary `json:"patient,omitempty"`
}

// CreateAppointmentRequest is used for booking an appointment
type CreateAppointmentRequest struct {
	DoctorID string `json:"doctorId" binding:"required"`
	Date     string `json:"date" binding:"required"`
}

// UpdateAppointmentStatusRequest is used for status transitions
type UpdateAppointmentStatusRequest struct {
	AppointmentID string `json:"appointment_id" binding:"required"`
	Status        string `json:"status" binding:"required"`
}

// AppointmentFilters contains optional filter parameters for appointment listings
type AppointmentFilters struct {
	Status *string
	Day    *time.Time // exact calendar day, doctor listing only
}
