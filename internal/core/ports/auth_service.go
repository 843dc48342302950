package ports

import (
	"context"

	"github.com/sweetshop/sweetshop-api/internal/core/domain"
)

// AuthService implements registration, login, and token verification.
type AuthService interface {
	// Register creates a credential record and returns a signed token plus
	// the created user. Role defaults to "user" when empty.
	Register(ctx context.Context, email, password, role string) (string, *domain.User, error)
	// Login verifies credentials. Unknown email and wrong password both
	// surface as domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// VerifyToken validates a signed token and returns the embedded user id.
	VerifyToken(token string) (string, error)
}
