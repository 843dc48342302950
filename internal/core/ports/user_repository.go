package ports

import (
	"context"

	"github.com/sweetshop/sweetshop-api/internal/core/domain"
)

// UserRepository defines persistence operations for principals.
type UserRepository interface {
	// Create inserts a new user. Returns domain.ErrUserExists when the email
	// is already taken (unique index on email).
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
