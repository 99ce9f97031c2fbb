package seed

import (
	"context"
	"fmt"
	"time"

	"appointment_manager/internal/model"
	"appointment_manager/internal/repository"
	"appointment_manager/internal/utils"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type sample struct {
	name           string
	email          string
	role           string
	specialization string
	photoURL       string
}

var samples = []sample{
	{"Dr. John Smith", "john.smith@example.com", model.RoleDoctor, "Cardiology", "https://example.com/doctor1.jpg"},
	{"Dr. Sarah Johnson", "sarah.johnson@example.com", model.RoleDoctor, "Dermatology", "https://example.com/doctor2.jpg"},
	{"Dr. Michael Brown", "michael.brown@example.com", model.RoleDoctor, "Neurology", "https://example.com/doctor3.jpg"},
	{"Dr. Emily Davis", "emily.davis@example.com", model.RoleDoctor, "Pediatrics", "https://example.com/doctor4.jpg"},
	{"Dr. Robert Wilson", "robert.wilson@example.com", model.RoleDoctor, "Orthopedics", "https://example.com/doctor5.jpg"},
	{"Alice Walker", "alice.walker@example.com", model.RolePatient, "", "https://example.com/patient1.jpg"},
	{"Tom Harris", "tom.harris@example.com", model.RolePatient, "", ""},
	{"Maria Lopez", "maria.lopez@example.com", model.RolePatient, "", ""},
}

// Run seeds sample doctors and patients. Idempotent: a non-empty users
// table means the database was already seeded.
func Run(ctx context.Context, userRepo repository.UserRepository, log zerolog.Logger) error {
	count, err := userRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to check existing users: %w", err)
	}
	if count > 0 {
		log.Info().Msg("database already seeded")
		return nil
	}

	// All sample accounts share one password
	hashed, err := utils.HashPassword("password123")
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	for _, s := range samples {
		user := &model.User{
			ID:           uuid.New().String(),
			Name:         s.name,
			Email:        s.email,
			PasswordHash: hashed,
			Role:         s.role,
			CreatedAt:    time.Now(),
		}
		if s.specialization != "" {
			specialization := s.specialization
			user.Specialization = &specialization
		}
		if s.photoURL != "" {
			photo := s.photoURL
			user.PhotoURL = &photo
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return fmt.Errorf("failed to seed user %s: %w", s.email, err)
		}
	}

	log.Info().Int("users", len(samples)).Msg("database seeded")
	return nil
}
