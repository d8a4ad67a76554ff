package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// validate is shared by the auth request types; validator.Validate is safe
// for concurrent use.
var validate = validator.New()

// User is the API-facing user profile. Credential columns live on the db
// package's user type and never leave the server.
type User struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	PasswordSet bool      `json:"password_set"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateUserRequest registers a new account.
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=1"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func (r *CreateUserRequest) Validate() error { return validate.Struct(r) }

// LoginRequest authenticates an existing account.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Validate() error { return validate.Struct(r) }

// UpdatePasswordRequest rotates a user's password. The current password is
// re-verified even though the caller already holds a session token.
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

func (r *UpdatePasswordRequest) Validate() error { return validate.Struct(r) }

// LoginResponse carries the authenticated user and their session token.
type LoginResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}
