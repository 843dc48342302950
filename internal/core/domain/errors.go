package domain

import "errors"

var (
	// ErrValidation marks malformed or missing input. Wrap it with context:
	// fmt.Errorf("%w: name is required", domain.ErrValidation).
	ErrValidation = errors.New("validation failed")

	ErrSweetNotFound = errors.New("sweet not found")
	ErrOutOfStock    = errors.New("sweet is out of stock")

	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidRole        = errors.New("invalid role")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTooManyAttempts    = errors.New("too many login attempts")
)
