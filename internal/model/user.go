package model

import "time"

const (
	RoleDoctor  = "DOCTOR"
	RolePatient = "PATIENT"
)

// User represents a doctor or patient account
type User struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"` // Do not expose password hash in JSON responses
	Role           string    `json:"role"`
	Specialization *string   `json:"specialization,omitempty"` // Set iff role is DOCTOR
	PhotoURL       *string   `json:"photo_url,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// UserSummary is the projection embedded in appointment responses
type UserSummary struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Specialization *string `json:"specialization,omitempty"`
	PhotoURL       *string `json:"photo_url,omitempty"`
}

// Summary returns the public projection of a user
func (u *User) Summary() *UserSummary {
	return &UserSummary{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Specialization: u.Specialization,
		PhotoURL:       u.PhotoURL,
	}
}

// RegisterRequest is used for patient and doctor registration
type RegisterRequest struct {
	Name           string  `json:"name" binding:"required"`
	Email          string  `json:"email" binding:"required,email"`
	Password       string  `json:"password" binding:"required,min=6"`
	Specialization *string `json:"specialization"`
	PhotoURL       *string `json:"photo_url"`
}

// LoginRequest is used for login
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse bundles the authenticated user with their bearer token
type LoginResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}
