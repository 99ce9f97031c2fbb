package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"appointment_manager/internal/model"

	"github.com/jackc/pgx/v5"
)

// ErrDoubleBooked indicates the doctor already has an active appointment on
// the requested calendar day. Raised by the partial unique index on insert,
// so the rule holds even under concurrent bookings.
var ErrDoubleBooked = errors.New("doctor already booked for this day")

// AppointmentRepository defines operations for appointment data
type AppointmentRepository interface {
	Create(ctx context.Context, a *model.Appointment) error
	FindByID(ctx context.Context, id string) (*model.Appointment, error)
	UpdateStatus(ctx context.Context, id, status string) error
	HasActiveOnDay(ctx context.Context, doctorID string, day time.Time) (bool, error)
	ListByPatient(ctx context.Context, patientID string, filters model.AppointmentFilters, p model.Pagination) ([]model.Appointment, int, error)
	ListByDoctor(ctx context.Context, doctorID string, filters model.AppointmentFilters, p model.Pagination) ([]model.Appointment, int, error)
}

type appointmentRepository struct {
	db DB
}

// NewAppointmentRepository creates a new AppointmentRepository
func NewAppointmentRepository(db DB) AppointmentRepository {
	return &appointmentRepository{db: db}
}

// Create inserts a new appointment. Returns ErrDoubleBooked when the
// doctor/day unique index rejects the row.
func (r *appointmentRepository) Create(ctx context.Context, a *model.Appointment) error {
	sql := `INSERT INTO appointments (id, doctor_id, patient_id, date, day, status, created_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING created_at`
	err := r.db.QueryRow(ctx, sql, a.ID, a.DoctorID, a.PatientID, a.Date, a.Day, a.Status, a.CreatedAt).Scan(&a.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDoubleBooked
		}
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return nil
}

// FindByID retrieves an appointment by id, nil if not found
func (r *appointmentRepository) FindByID(ctx context.Context, id string) (*model.Appointment, error) {
	a := &model.Appointment{}
	sql := `SELECT id, doctor_id, patient_id, date, day, status, created_at FROM appointments WHERE id = $1`
	err := r.db.QueryRow(ctx, sql, id).Scan(&a.ID, &a.DoctorID, &a.PatientID, &a.Date, &a.Day, &a.Status, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find appointment by ID: %w", err)
	}
	return a, nil
}

// UpdateStatus persists a status transition
func (r *appointmentRepository) UpdateStatus(ctx context.Context, id, status string) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE appointments SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update appointment status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("appointment not found for status update")
	}
	return nil
}

// HasActiveOnDay reports whether the doctor has a PENDING or COMPLETED
// appointment on the given calendar day.
func (r *appointmentRepository) HasActiveOnDay(ctx context.Context, doctorID string, day time.Time) (bool, error) {
	sql := `SELECT EXISTS(
		SELECT 1 FROM appointments
		WHERE doctor_id = $1
		  AND day = $2
		  AND status IN ('PENDING', 'COMPLETED'))`
	var exists bool
	err := r.db.QueryRow(ctx, sql, doctorID, day).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check doctor availability: %w", err)
	}
	return exists, nil
}

// ListByPatient retrieves a patient's appointments joined with the doctor
// projection, ordered by date ascending.
func (r *appointmentRepository) ListByPatient(ctx context.Context, patientID string, filters model.AppointmentFilters, p model.Pagination) ([]model.Appointment, int, error) {
	var where strings.Builder
	where.WriteString(`WHERE a.patient_id = $1`)
	args := []interface{}{patientID}
	argCount := 2

	if filters.Status != nil && *filters.Status != "" {
		where.WriteString(fmt.Sprintf(" AND a.status = $%d", argCount))
		args = append(args, *filters.Status)
		argCount++
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM appointments a `+where.String(), args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count patient appointments: %w", err)
	}

	sql := fmt.Sprintf(`SELECT a.id, a.doctor_id, a.patient_id, a.date, a.day, a.status, a.created_at,
	                           d.id, d.name, d.email, d.specialization, d.photo_url
	                    FROM appointments a
	                    JOIN users d ON d.id = a.doctor_id
	                    %s ORDER BY a.date ASC LIMIT $%d OFFSET $%d`,
		where.String(), argCount, argCount+1)
	args = append(args, p.Limit, p.Offset())

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query patient appointments: %w", err)
	}
	defer rows.Close()

	var appointments []model.Appointment
	for rows.Next() {
		var a model.Appointment
		var d model.UserSummary
		if err := rows.Scan(&a.ID, &a.DoctorID, &a.PatientID, &a.Date, &a.Day, &a.Status, &a.CreatedAt,
			&d.ID, &d.Name, &d.Email, &d.Specialization, &d.PhotoURL); err != nil {
			return nil, 0, fmt.Errorf("failed to scan appointment row: %w", err)
		}
		a.Doctor = &d
		appointments = append(appointments, a)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating appointment rows: %w", err)
	}
	return appointments, total, nil
}

// ListByDoctor retrieves a doctor's appointments joined with the patient
// projection, optionally restricted to one calendar day.
func (r *appointmentRepository) ListByDoctor(ctx context.Context, doctorID string, filters model.AppointmentFilters, p model.Pagination) ([]model.Appointment, int, error) {
	var where strings.Builder
	where.WriteString(`WHERE a.doctor_id = $1`)
	args := []interface{}{doctorID}
	argCount := 2

	if filters.Status != nil && *filters.Status != "" {
		where.WriteString(fmt.Sprintf(" AND a.status = $%d", argCount))
		args = append(args, *filters.Status)
		argCount++
	}
	if filters.Day != nil {
		where.WriteString(fmt.Sprintf(" AND a.day = $%d", argCount))
		args = append(args, *filters.Day)
		argCount++
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM appointments a `+where.String(), args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count doctor appointments: %w", err)
	}

	sql := fmt.Sprintf(`SELECT a.id, a.doctor_id, a.patient_id, a.date, a.day, a.status, a.created_at,
	                           pt.id, pt.name, pt.email, pt.photo_url
	                    FROM appointments a
	                    JOIN users pt ON pt.id = a.patient_id
	                    %s ORDER BY a.date ASC LIMIT $%d OFFSET $%d`,
		where.String(), argCount, argCount+1)
	args = append(args, p.Limit, p.Offset())

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query doctor appointments: %w", err)
	}
	defer rows.Close()

	var appointments []model.Appointment
	for rows.Next() {
		var a model.Appointment
		var pt model.UserSummary
		if err := rows.Scan(&a.ID, &a.DoctorID, &a.PatientID, &a.Date, &a.Day, &a.Status, &a.CreatedAt,
			&pt.ID, &pt.Name, &pt.Email, &pt.PhotoURL); err != nil {
			return nil, 0, fmt.Errorf("failed to scan appointment row: %w", err)
		}
		a.Patient = &pt
		appointments = append(appointments, a)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating appointment rows: %w", err)
	}
	return appointments, total, nil
}
