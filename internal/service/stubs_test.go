package service

import (
	"context"
	"time"

	"appointment_manager/internal/model"
)

// stubUserRepo implements repository.UserRepository with function fields so
// each test wires only what it needs.
type stubUserRepo struct {
	create          func(ctx context.Context, user *model.User) error
	findByEmail     func(ctx context.Context, email string) (*model.User, error)
	findByID        func(ctx context.Context, id string) (*model.User, error)
	findByIDAndRole func(ctx context.Context, id, role string) (*model.User, error)
	listDoctors     func(ctx context.Context, specialization, search *string, p model.Pagination) ([]model.User, int, error)
	listPatients    func(ctx context.Context, p model.Pagination) ([]model.User, int, error)
	count           func(ctx context.Context) (int, error)
}

func (s *stubUserRepo) Create(ctx context.Context, user *model.User) error {
	return s.create(ctx, user)
}

func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.findByEmail(ctx, email)
}

func (s *stubUserRepo) FindByID(ctx context.Context, id string) (*model.User, error) {
	return s.findByID(ctx, id)
}

func (s *stubUserRepo) FindByIDAndRole(ctx context.Context, id, role string) (*model.User, error) {
	return s.findByIDAndRole(ctx, id, role)
}

func (s *stubUserRepo) ListDoctors(ctx context.Context, specialization, search *string, p model.Pagination) ([]model.User, int, error) {
	return s.listDoctors(ctx, specialization, search, p)
}

func (s *stubUserRepo) ListPatients(ctx context.Context, p model.Pagination) ([]model.User, int, error) {
	return s.listPatients(ctx, p)
}

func (s *stubUserRepo) Count(ctx context.Context) (int, error) {
	return s.count(ctx)
}

// stubAppointmentRepo implements repository.AppointmentRepository
type stubAppointmentRepo struct {
	create         func(ctx context.Context, a *model.Appointment) error
	findByID       func(ctx context.Context, id string) (*model.Appointment, error)
	updateStatus   func(ctx context.Context, id, status string) error
	hasActiveOnDay func(ctx context.Context, doctorID string, day time.Time) (bool, error)
	listByPatient  func(ctx context.Context, patientID string, filters model.AppointmentFilters, p model.Pagination) ([]model.Appointment, int, error)
	listByDoctor   func(ctx context.Context, doctorID string, filters model.AppointmentFilters, p model.Pagination) ([]model.Appointment, int, error)
}

func (s *stubAppointmentRepo) Create(ctx context.Context, a *model.Appointment) error {
	return s.create(ctx, a)
}

func (s *stubAppointmentRepo) FindByID(ctx context.Context, id string) (*model.Appointment, error) {
	return s.findByID(ctx, id)
}

func (s *stubAppointmentRepo) UpdateStatus(ctx context.Context, id, status string) error {
	return s.updateStatus(ctx, id, status)
}

func (s *stubAppointmentRepo) HasActiveOnDay(ctx context.Context, doctorID string, day time.Time) (bool, error) {
	return s.hasActiveOnDay(ctx, doctorID, day)
}

func (s *stubAppointmentRepo) ListByPatient(ctx context.Context, patientID string, filters model.AppointmentFilters, p model.Pagination) ([]model.Appointment, int, error) {
	return s.listByPatient(ctx, patientID, filters, p)
}

func (s *stubAppointmentRepo) ListByDoctor(ctx context.Context, doctorID string, filters model.AppointmentFilters, p model.Pagination) ([]model.Appointment, int, error) {
	return s.listByDoctor(ctx, doctorID, filters, p)
}

func doctorUser(id string) *model.User {
	specialization := "Cardiology"
	return &model.User{ID: id, Name: "Dr. Smith", Email: id + "@example.com", Role: model.RoleDoctor, Specialization: &specialization}
}

func patientUser(id string) *model.User {
	return &model.User{ID: id, Name: "Alice", Email: id + "@example.com", Role: model.RolePatient}
}
