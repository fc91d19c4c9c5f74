package service

import (
	"context"
	"errors"
	"fmt"

	"qrorder/internal/domain"
)

type RestaurantService struct {
	catalog CatalogRepository
}

func NewRestaurantService(catalog CatalogRepository) *RestaurantService {
	return &RestaurantService{catalog: catalog}
}

func (s *RestaurantService) Create(ctx context.Context, r *domain.Restaurant) (*domain.Restaurant, error) {
	if r.Name == "" {
		return nil, domain.WrapError(domain.KindValidation, fmt.Errorf("restaurant name is required"))
	}
	if r.OwnerID <= 0 {
		return nil, domain.WrapError(domain.KindValidation, fmt.Errorf("restaurant owner is required"))
	}
	if err := s.catalog.CreateRestaurant(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *RestaurantService) Get(ctx context.Context, id int) (*domain.Restaurant, error) {
	rest, err := s.catalog.GetRestaurant(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrRestaurantNotFound) {
			return nil, domain.WrapError(domain.KindNotFound, err)
		}
		return nil, err
	}
	return rest, nil
}

func (s *RestaurantService) List(ctx context.Context) ([]domain.Restaurant, error) {
	return s.catalog.ListRestaurants(ctx)
}

// Update changes descriptive fields only; identity (id, owner) is immutable
// once created.
func (s *RestaurantService) Update(ctx context.Context, ownerID int, r *domain.Restaurant) (*domain.Restaurant, error) {
	current, err := s.catalog.GetRestaurant(ctx, r.ID)
	if err != nil {
		if errors.Is(err, domain.ErrRestaurantNotFound) {
			return nil, domain.WrapError(domain.KindNotFound, err)
		}
		return nil, err
	}
	if current.OwnerID != ownerID {
		return nil, domain.WrapError(domain.KindConflict,
			fmt.Errorf("%w: restaurant %d", domain.ErrNotOwner, r.ID))
	}
	r.OwnerID = current.OwnerID
	if err := s.catalog.UpdateRestaurant(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

var _ RestaurantServiceInterface = (*RestaurantService)(nil)
