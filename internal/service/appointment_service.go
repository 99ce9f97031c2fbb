package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"appointment_manager/internal/apperror"
	"appointment_manager/internal/model"
	"appointment_manager/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrDoctorNotFound      = apperror.NotFound("Doctor not found")
	ErrPatientNotFound     = apperror.NotFound("Patient not found")
	ErrInvalidDate         = apperror.BadRequest("Invalid date format. Please provide a valid date.")
	ErrDoctorNotAvailable  = apperror.Conflict("Doctor is not available at this time")
	ErrAppointmentNotFound = apperror.NotFound("Appointment not found")
	ErrNotYourAppointment  = apperror.Forbidden("You can only update your own appointments")
	ErrInvalidStatus       = apperror.BadRequest("Invalid status. Must be one of: PENDING, CANCELLED, COMPLETED")
)

// AppointmentService provides booking, listing and status transitions
type AppointmentService interface {
	Create(ctx context.Context, doctorID, patientID, dateStr string) (*model.Appointment, error)
	GetPatientAppointments(ctx context.Context, patientID string, status *string, p model.Pagination) ([]model.Appointment, model.Meta, error)
	GetDoctorAppointments(ctx context.Context, doctorID string, status, dateStr *string, p model.Pagination) ([]model.Appointment, model.Meta, error)
	UpdateStatus(ctx context.Context, appointmentID, status, actorID, actorRole string) (*model.Appointment, error)
}

type appointmentService struct {
	repo     repository.AppointmentRepository
	userRepo repository.UserRepository
}

// NewAppointmentService creates a new AppointmentService
func NewAppointmentService(repo repository.AppointmentRepository, userRepo repository.UserRepository) AppointmentService {
	return &appointmentService{repo: repo, userRepo: userRepo}
}

// parseDate accepts RFC3339 timestamps and bare YYYY-MM-DD dates
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02", s, time.Local)
}

// dayOf truncates an instant to the server-local calendar day, so inputs
// carrying a foreign UTC offset land on the same day a local clock would show.
func dayOf(t time.Time) time.Time {
	t = t.In(time.Local)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

// Create books an appointment with status PENDING. At most one PENDING or
// COMPLETED appointment may exist per doctor per calendar day; a CANCELLED
// one does not block rebooking. The availability pre-check gives the friendly
// 409 in the common case, and the doctor/day unique index catches the race
// where two bookings pass the check concurrently.
func (s *appointmentService) Create(ctx context.Context, doctorID, patientID, dateStr string) (*model.Appointment, error) {
	doctor, err := s.userRepo.FindByIDAndRole(ctx, doctorID, model.RoleDoctor)
	if err != nil {
		return nil, fmt.Errorf("failed to look up doctor: %w", err)
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	patient, err := s.userRepo.FindByIDAndRole(ctx, patientID, model.RolePatient)
	if err != nil {
		return nil, fmt.Errorf("failed to look up patient: %w", err)
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	date, err := parseDate(dateStr)
	if err != nil {
		return nil, ErrInvalidDate
	}
	day := dayOf(date)

	booked, err := s.repo.HasActiveOnDay(ctx, doctorID, day)
	if err != nil {
		return nil, fmt.Errorf("failed to check doctor availability: %w", err)
	}
	if booked {
		return nil, ErrDoctorNotAvailable
	}

	appointment := &model.Appointment{
		ID:        uuid.New().String(),
		DoctorID:  doctorID,
		PatientID: patientID,
		Date:      date,
		Day:       day,
		Status:    model.StatusPending,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Create(ctx, appointment); err != nil {
		if errors.Is(err, repository.ErrDoubleBooked) {
			return nil, ErrDoctorNotAvailable
		}
		return nil, fmt.Errorf("failed to create appointment in repo: %w", err)
	}

	appointment.Doctor = doctor.Summary()
	appointment.Patient = patient.Summary()
	return appointment, nil
}

// GetPatientAppointments lists a patient's appointments in date order
func (s *appointmentService) GetPatientAppointments(ctx context.Context, patientID string, status *string, p model.Pagination) ([]model.Appointment, model.Meta, error) {
	if status != nil && *status != "" && !model.ValidStatus(*status) {
		return nil, model.Meta{}, ErrInvalidStatus
	}

	appointments, total, err := s.repo.ListByPatient(ctx, patientID, model.AppointmentFilters{Status: status}, p)
	if err != nil {
		return nil, model.Meta{}, fmt.Errorf("failed to list patient appointments: %w", err)
	}
	return appointments, model.NewMeta(p, total), nil
}

// GetDoctorAppointments lists a doctor's appointments with an optional
// exact-day date filter.
func (s *appointmentService) GetDoctorAppointments(ctx context.Context, doctorID string, status, dateStr *string, p model.Pagination) ([]model.Appointment, model.Meta, error) {
	if status != nil && *status != "" && !model.ValidStatus(*status) {
		return nil, model.Meta{}, ErrInvalidStatus
	}

	filters := model.AppointmentFilters{Status: status}
	if dateStr != nil && *dateStr != "" {
		date, err := parseDate(*dateStr)
		if err != nil {
			return nil, model.Meta{}, ErrInvalidDate
		}
		day := dayOf(date)
		filters.Day = &day
	}

	appointments, total, err := s.repo.ListByDoctor(ctx, doctorID, filters, p)
	if err != nil {
		return nil, model.Meta{}, fmt.Errorf("failed to list doctor appointments: %w", err)
	}
	return appointments, model.NewMeta(p, total), nil
}

// UpdateStatus sets an appointment's status. Only the appointment's own
// doctor or patient may act, and any of the three statuses may be set at any
// time (transitions are deliberately unrestricted).
func (s *appointmentService) UpdateStatus(ctx context.Context, appointmentID, status, actorID, actorRole string) (*model.Appointment, error) {
	appointment, err := s.repo.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to find appointment: %w", err)
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if actorRole == model.RolePatient && appointment.PatientID != actorID {
		return nil, ErrNotYourAppointment
	}
	if actorRole == model.RoleDoctor && appointment.DoctorID != actorID {
		return nil, ErrNotYourAppointment
	}

	if !model.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	if err := s.repo.UpdateStatus(ctx, appointmentID, status); err != nil {
		return nil, fmt.Errorf("failed to update appointment status: %w", err)
	}
	appointment.Status = status

	doctor, err := s.userRepo.FindByID(ctx, appointment.DoctorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load doctor projection: %w", err)
	}
	patient, err := s.userRepo.FindByID(ctx, appointment.PatientID)
	if err != nil {
		return nil, fmt.Errorf("failed to load patient projection: %w", err)
	}
	if doctor != nil {
		appointment.Doctor = doctor.Summary()
	}
	if patient != nil {
		appointment.Patient = patient.Summary()
	}
	return appointment, nil
}
