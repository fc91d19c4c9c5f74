package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"qrorder/internal/domain"
)

type MenuService struct {
	catalog CatalogRepository
	ranking SalesRanking
}

func NewMenuService(catalog CatalogRepository, ranking SalesRanking) *MenuService {
	return &MenuService{catalog: catalog, ranking: ranking}
}

func (s *MenuService) CreateMenuItem(ctx context.Context, ownerID int, m *domain.MenuItem) (*domain.MenuItem, error) {
	if err := validateMenuItem(m); err != nil {
		return nil, err
	}
	if err := s.requireOwner(ctx, ownerID, m.RestaurantID); err != nil {
		return nil, err
	}
	if err := s.catalog.CreateMenuItem(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MenuService) GetMenuItem(ctx context.Context, restaurantID, menuID int) (*domain.MenuItem, error) {
	m, err := s.catalog.GetMenuItem(ctx, restaurantID, menuID)
	if err != nil {
		if errors.Is(err, domain.ErrMenuItemNotFound) {
			return nil, domain.WrapError(domain.KindNotFound, err)
		}
		return nil, err
	}
	return m, nil
}

func (s *MenuService) ListMenu(ctx context.Context, restaurantID int) ([]domain.MenuItem, error) {
	return s.catalog.ListMenu(ctx, restaurantID)
}

func (s *MenuService) ListRecommended(ctx context.Context, restaurantID int) ([]domain.MenuItem, error) {
	return s.catalog.ListRecommended(ctx, restaurantID)
}

// ListTopSellers prefers the Redis ranking and falls back to the total_sales
// column when the ranking is empty or unavailable. Postgres stays the source
// of truth; the ranking is a derived view.
func (s *MenuService) ListTopSellers(ctx context.Context, restaurantID, limit int) ([]domain.MenuItem, error) {
	if limit <= 0 {
		limit = 10
	}
	if s.ranking != nil {
		ranked, err := s.ranking.TopSellers(ctx, restaurantID, limit)
		if err != nil {
			log.Printf("[menu-svc] sales ranking unavailable, falling back to store: %v", err)
		} else if len(ranked) > 0 {
			items := make([]domain.MenuItem, 0, len(ranked))
			for _, r := range ranked {
				item, err := s.catalog.GetMenuItem(ctx, restaurantID, r.MenuID)
				if err != nil {
					continue
				}
				items = append(items, *item)
			}
			if len(items) > 0 {
				return items, nil
			}
		}
	}
	return s.catalog.ListTopSellers(ctx, restaurantID, limit)
}

func (s *MenuService) UpdateMenuItem(ctx context.Context, ownerID int, m *domain.MenuItem) (*domain.MenuItem, error) {
	if err := validateMenuItem(m); err != nil {
		return nil, err
	}
	if err := s.requireOwner(ctx, ownerID, m.RestaurantID); err != nil {
		return nil, err
	}
	current, err := s.catalog.GetMenuItem(ctx, m.RestaurantID, m.ID)
	if err != nil {
		if errors.Is(err, domain.ErrMenuItemNotFound) {
			return nil, domain.WrapError(domain.KindNotFound, err)
		}
		return nil, err
	}
	// total_sales belongs to the order engine.
	m.TotalSales = current.TotalSales
	if err := s.catalog.UpdateMenuItem(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MenuService) ListCategories(ctx context.Context) ([]domain.MenuCategory, error) {
	return s.catalog.ListCategories(ctx)
}

func (s *MenuService) requireOwner(ctx context.Context, ownerID, restaurantID int) error {
	rest, err := s.catalog.GetRestaurant(ctx, restaurantID)
	if err != nil {
		if errors.Is(err, domain.ErrRestaurantNotFound) {
			return domain.WrapError(domain.KindNotFound, err)
		}
		return err
	}
	if rest.OwnerID != ownerID {
		return domain.WrapError(domain.KindConflict,
			fmt.Errorf("%w: restaurant %d", domain.ErrNotOwner, restaurantID))
	}
	return nil
}

func validateMenuItem(m *domain.MenuItem) error {
	if m.Name == "" {
		return domain.WrapError(domain.KindValidation, fmt.Errorf("menu name is required"))
	}
	if m.Price < 0 {
		return domain.WrapError(domain.KindValidation, fmt.Errorf("menu price must be >= 0, got %d", m.Price))
	}
	return nil
}

var _ MenuServiceInterface = (*MenuService)(nil)
