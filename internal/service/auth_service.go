package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"appointment_manager/internal/apperror"
	"appointment_manager/internal/model"
	"appointment_manager/internal/repository"
	"appointment_manager/internal/utils"

	"github.com/google/uuid"
)

var (
	ErrUserAlreadyExists = apperror.Conflict("User already exists")
	// One message for unknown email and wrong password, so callers cannot
	// probe which emails are registered.
	ErrInvalidCredentials     = apperror.Unauthorized("Invalid credentials")
	ErrSpecializationRequired = apperror.BadRequest("Specialization is required for doctors")
)

// AuthService provides registration and login
type AuthService interface {
	Register(ctx context.Context, req model.RegisterRequest, role string) (*model.User, error)
	Login(ctx context.Context, email, password string) (*model.LoginResponse, error)
}

type authService struct {
	userRepo repository.UserRepository
	jwtUtil  *utils.JWTUtil
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, jwtUtil *utils.JWTUtil) AuthService {
	return &authService{
		userRepo: userRepo,
		jwtUtil:  jwtUtil,
	}
}

// Register creates a new user account with the given role
func (s *authService) Register(ctx context.Context, req model.RegisterRequest, role string) (*model.User, error) {
	var specialization *string
	if role == model.RoleDoctor {
		if req.Specialization == nil || *req.Specialization == "" {
			return nil, ErrSpecializationRequired
		}
		specialization = req.Specialization
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		ID:             uuid.New().String(),
		Name:           req.Name,
		Email:          req.Email,
		PasswordHash:   hashedPassword,
		Role:           role,
		Specialization: specialization,
		PhotoURL:       req.PhotoURL,
		CreatedAt:      time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user in repository: %w", err)
	}

	return user, nil
}

// Login authenticates a user and returns them with a signed token
func (s *authService) Login(ctx context.Context, email, password string) (*model.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("error finding user by email: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials // User not found
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials // Password mismatch
	}

	token, err := s.jwtUtil.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &model.LoginResponse{User: user, Token: token}, nil
}
