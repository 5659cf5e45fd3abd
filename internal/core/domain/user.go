package domain

import (
	"errors"
	"time"
)

var ErrUserNotFound = errors.New("user not found")
var ErrEmailTaken = errors.New("email already registered")
var ErrPasswordRequired = errors.New("password is required")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrTooManyLoginAttempts = errors.New("too many login attempts")

// User models a registered account holder. The password hash never leaves
// the service layer.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
