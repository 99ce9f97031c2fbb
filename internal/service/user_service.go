package service

import (
	"context"
	"fmt"

	"appointment_manager/internal/model"
	"appointment_manager/internal/repository"
)

// Specializations is the fixed directory of doctor specializations. It is
// static and independent of stored data.
var Specializations = []string{
	"Cardiology",
	"Dermatology",
	"Endocrinology",
	"Gastroenterology",
	"Neurology",
	"Oncology",
	"Orthopedics",
	"Pediatrics",
	"Psychiatry",
	"Radiology",
}

// UserService provides the doctor/patient directory
type UserService interface {
	GetDoctors(ctx context.Context, specialization, search *string, p model.Pagination) ([]model.User, model.Meta, error)
	GetPatients(ctx context.Context, p model.Pagination) ([]model.User, model.Meta, error)
	GetSpecializations() []string
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// GetDoctors lists doctors filtered by exact specialization and/or a
// case-insensitive substring search over name and specialization.
func (s *userService) GetDoctors(ctx context.Context, specialization, search *string, p model.Pagination) ([]model.User, model.Meta, error) {
	doctors, total, err := s.userRepo.ListDoctors(ctx, specialization, search, p)
	if err != nil {
		return nil, model.Meta{}, fmt.Errorf("failed to list doctors: %w", err)
	}
	return doctors, model.NewMeta(p, total), nil
}

// GetPatients lists patients. Role gating happens in the middleware.
func (s *userService) GetPatients(ctx context.Context, p model.Pagination) ([]model.User, model.Meta, error) {
	patients, total, err := s.userRepo.ListPatients(ctx, p)
	if err != nil {
		return nil, model.Meta{}, fmt.Errorf("failed to list patients: %w", err)
	}
	return patients, model.NewMeta(p, total), nil
}

// GetSpecializations returns the fixed list, always in the same order
func (s *userService) GetSpecializations() []string {
	return Specializations
}
