package ports

import (
	"context"

	"github.com/sweetshop/sweetshop-api/internal/core/domain"
)

// CreateSweetInput carries all data needed to create a catalog item.
type CreateSweetInput struct {
	Name     string
	Category string
	Price    float64
	Quantity int
}

// UpdateSweetInput is a partial update: nil fields are left unchanged.
type UpdateSweetInput struct {
	Name     *string
	Category *string
	Price    *float64
	Quantity *int
}

// SweetService defines the catalog use cases.
type SweetService interface {
	Create(ctx context.Context, input CreateSweetInput) (*domain.Sweet, error)
	List(ctx context.Context) ([]*domain.Sweet, error)
	Search(ctx context.Context, filter SearchSweetsFilter) ([]*domain.Sweet, error)
	Update(ctx context.Context, id string, input UpdateSweetInput) (*domain.Sweet, error)
	Delete(ctx context.Context, id string) error
	Purchase(ctx context.Context, id string) (*domain.Sweet, error)
	Restock(ctx context.Context, id string, amount int) (*domain.Sweet, error)
}
