package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"math/big"
	"time"

	"qrorder/internal/domain"
)

const orderNumberRetries = 3

type OrderService struct {
	orders    OrderRepository
	catalog   CatalogRepository
	publisher OrderPublisher
}

func NewOrderService(orders OrderRepository, catalog CatalogRepository, publisher OrderPublisher) *OrderService {
	return &OrderService{
		orders:    orders,
		catalog:   catalog,
		publisher: publisher,
	}
}

// CreateOrder validates the requested lines, snapshots prices and persists the
// order atomically. Sales counters are untouched here; a pending order must
// not show up in sales metrics.
func (s *OrderService) CreateOrder(ctx context.Context, userID, restaurantID int, lines []domain.LineRequest) (*domain.Order, error) {
	if len(lines) == 0 {
		return nil, domain.WrapError(domain.KindValidation, domain.ErrEmptyOrder)
	}
	for _, line := range lines {
		if line.Quantity <= 0 {
			return nil, domain.WrapError(domain.KindValidation,
				fmt.Errorf("%w: menu %d quantity %d", domain.ErrInvalidQuantity, line.MenuID, line.Quantity))
		}
	}

	if _, err := s.catalog.GetRestaurant(ctx, restaurantID); err != nil {
		if errors.Is(err, domain.ErrRestaurantNotFound) {
			return nil, domain.WrapError(domain.KindNotFound, err)
		}
		return nil, err
	}

	for attempt := 0; attempt < orderNumberRetries; attempt++ {
		order := &domain.Order{
			UserID:       userID,
			RestaurantID: restaurantID,
			OrderNumber:  newOrderNumber(),
			Status:       domain.OrderPending,
		}
		err := s.orders.CreateOrder(ctx, order, lines)
		if err == nil {
			return order, nil
		}
		if errors.Is(err, domain.ErrOrderNumberTaken) {
			continue
		}
		if errors.Is(err, domain.ErrMenuItemNotFound) {
			return nil, domain.WrapError(domain.KindNotFound, err)
		}
		if errors.Is(err, domain.ErrInvalidMenuItem) {
			return nil, domain.WrapError(domain.KindConflict, err)
		}
		return nil, err
	}
	return nil, domain.WrapError(domain.KindConflict,
		fmt.Errorf("%w after %d attempts", domain.ErrOrderNumberTaken, orderNumberRetries))
}

// TransitionStatus moves a pending order to completed or cancelled. Completing
// an order increments each line's menu total_sales in the same transaction as
// the status write, then publishes an order_completed event best-effort.
func (s *OrderService) TransitionStatus(ctx context.Context, orderID int, status domain.OrderStatus) (*domain.Order, error) {
	if status != domain.OrderCompleted && status != domain.OrderCancelled {
		return nil, domain.WrapError(domain.KindConflict,
			fmt.Errorf("%w: pending -> %s", domain.ErrInvalidTransition, status))
	}

	order, err := s.orders.UpdateStatus(ctx, orderID, status, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrOrderNotFound):
			return nil, domain.WrapError(domain.KindNotFound, err)
		case errors.Is(err, domain.ErrInvalidTransition):
			return nil, domain.WrapError(domain.KindConflict, err)
		}
		return nil, err
	}

	if status == domain.OrderCompleted && s.publisher != nil {
		evt := domain.OrderEvent{
			Type:         domain.EventOrderCompleted,
			OrderID:      order.ID,
			RestaurantID: order.RestaurantID,
			Timestamp:    time.Now(),
		}
		for _, line := range order.Lines {
			evt.Lines = append(evt.Lines, domain.OrderEventLine{MenuID: line.MenuID, Quantity: line.Quantity})
		}
		if err := s.publisher.PublishOrderCompleted(ctx, evt); err != nil {
			log.Printf("[order-svc] failed to publish order_completed for order %d: %v", order.ID, err)
		}
	}

	return order, nil
}

func (s *OrderService) GetOrder(ctx context.Context, orderID int) (*domain.Order, error) {
	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return nil, domain.WrapError(domain.KindNotFound, err)
		}
		return nil, err
	}
	return order, nil
}

func (s *OrderService) ListUserOrders(ctx context.Context, userID int) ([]domain.Order, error) {
	return s.orders.ListUserOrders(ctx, userID)
}

// newOrderNumber builds a 20-char collision-resistant number: a second
// timestamp plus a random six-digit suffix. Uniqueness is still enforced by
// the orders table; callers retry on collision.
func newOrderNumber() string {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	suffix := int64(0)
	if err == nil {
		suffix = n.Int64()
	}
	return fmt.Sprintf("%s%06d", time.Now().Format("20060102150405"), suffix)
}

var _ OrderServiceInterface = (*OrderService)(nil)
