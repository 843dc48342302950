package ports

import (
	"context"

	"github.com/sweetshop/sweetshop-api/internal/core/domain"
)

// SearchSweetsFilter carries the query parameters for the search endpoint.
// Nil price bounds impose no constraint; all present filters compose with AND.
type SearchSweetsFilter struct {
	Name     string   // case-insensitive substring
	Category string   // case-insensitive substring
	MinPrice *float64 // inclusive
	MaxPrice *float64 // inclusive
}

// SweetRepository defines persistence operations for catalog items.
//
// DecrementQuantity and IncrementQuantity must be store-level atomic
// increments (no read-modify-write), so concurrent purchases of the same
// item serialize without application locks.
type SweetRepository interface {
	Create(ctx context.Context, s *domain.Sweet) (*domain.Sweet, error)
	FindByID(ctx context.Context, id string) (*domain.Sweet, error)
	FindAll(ctx context.Context) ([]*domain.Sweet, error)
	Search(ctx context.Context, filter SearchSweetsFilter) ([]*domain.Sweet, error)
	// Update replaces the mutable fields of an existing item and returns the
	// stored result. Returns domain.ErrSweetNotFound for an unknown id.
	Update(ctx context.Context, id string, s *domain.Sweet) (*domain.Sweet, error)
	Delete(ctx context.Context, id string) error
	// DecrementQuantity atomically decrements quantity by one, guarded by
	// quantity > 0. Returns domain.ErrOutOfStock when the item exists with
	// zero stock, domain.ErrSweetNotFound when it does not exist.
	DecrementQuantity(ctx context.Context, id string) (*domain.Sweet, error)
	// IncrementQuantity atomically increments quantity by amount.
	IncrementQuantity(ctx context.Context, id string, amount int) (*domain.Sweet, error)
}
