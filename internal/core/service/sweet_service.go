package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/sweetshop/sweetshop-api/internal/core/domain"
	"github.com/sweetshop/sweetshop-api/internal/core/ports"
)

// SweetService implements the catalog use cases.
type SweetService struct {
	repo ports.SweetRepository
	log  zerolog.Logger
}

func NewSweetService(repo ports.SweetRepository, log zerolog.Logger) *SweetService {
	return &SweetService{repo: repo, log: log}
}

func (s *SweetService) Create(ctx context.Context, input ports.CreateSweetInput) (*domain.Sweet, error) {
	sweet := &domain.Sweet{
		Name:      input.Name,
		Category:  input.Category,
		Price:     input.Price,
		Quantity:  input.Quantity,
		CreatedAt: time.Now().UTC(),
	}
	if err := validateSweet(sweet); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, sweet)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create sweet")
		return nil, err
	}

	s.log.Info().Str("sweet_id", created.ID).Str("name", created.Name).Msg("sweet created")
	return created, nil
}

func (s *SweetService) List(ctx context.Context) ([]*domain.Sweet, error) {
	return s.repo.FindAll(ctx)
}

func (s *SweetService) Search(ctx context.Context, filter ports.SearchSweetsFilter) ([]*domain.Sweet, error) {
	if filter.MinPrice != nil && *filter.MinPrice < 0 {
		return nil, fmt.Errorf("%w: minPrice must not be negative", domain.ErrValidation)
	}
	if filter.MaxPrice != nil && *filter.MaxPrice < 0 {
		return nil, fmt.Errorf("%w: maxPrice must not be negative", domain.ErrValidation)
	}
	return s.repo.Search(ctx, filter)
}

// Update applies the supplied fields on top of the stored item; absent fields
// keep their current value. The merged record is re-validated before writing.
func (s *SweetService) Update(ctx context.Context, id string, input ports.UpdateSweetInput) (*domain.Sweet, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		existing.Name = *input.Name
	}
	if input.Category != nil {
		existing.Category = *input.Category
	}
	if input.Price != nil {
		existing.Price = *input.Price
	}
	if input.Quantity != nil {
		existing.Quantity = *input.Quantity
	}
	if err := validateSweet(existing); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, id, existing)
}

func (s *SweetService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("sweet_id", id).Msg("sweet deleted")
	return nil
}

// Purchase decrements stock by one. The decrement is a store-level atomic
// operation guarded by quantity > 0, so concurrent purchases of the last unit
// yield exactly one success.
func (s *SweetService) Purchase(ctx context.Context, id string) (*domain.Sweet, error) {
	sweet, err := s.repo.DecrementQuantity(ctx, id)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("sweet_id", sweet.ID).Int("quantity", sweet.Quantity).Msg("sweet purchased")
	return sweet, nil
}

func (s *SweetService) Restock(ctx context.Context, id string, amount int) (*domain.Sweet, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be a positive integer", domain.ErrValidation)
	}

	sweet, err := s.repo.IncrementQuantity(ctx, id, amount)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("sweet_id", sweet.ID).Int("amount", amount).Int("quantity", sweet.Quantity).Msg("sweet restocked")
	return sweet, nil
}

func validateSweet(sw *domain.Sweet) error {
	if sw.Name == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if sw.Category == "" {
		return fmt.Errorf("%w: category is required", domain.ErrValidation)
	}
	if sw.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}
	if sw.Quantity < 0 {
		return fmt.Errorf("%w: quantity must not be negative", domain.ErrValidation)
	}
	return nil
}
