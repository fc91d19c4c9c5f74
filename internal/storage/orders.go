package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"qrorder/internal/domain"

	"github.com/lib/pq"
)

// CreateOrder inserts the order header and all lines in one transaction.
// Requested menu rows are locked with FOR UPDATE so availability cannot change
// between the check and the insert, prices are snapshotted from the locked
// rows and the total is computed here, never taken from the caller.
func (r *PostgresRepository) CreateOrder(ctx context.Context, order *domain.Order, lines []domain.LineRequest) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	menuIDs := make([]int64, 0, len(lines))
	for _, line := range lines {
		menuIDs = append(menuIDs, int64(line.MenuID))
	}

	rows, err := tx.QueryContext(ctx, `
		SELECT id, name, price, is_available
		FROM menus
		WHERE id = ANY($1) AND restaurant_id = $2
		FOR UPDATE`,
		pq.Array(menuIDs), order.RestaurantID)
	if err != nil {
		return err
	}

	type lockedMenu struct {
		name      string
		price     int64
		available bool
	}
	locked := make(map[int]lockedMenu, len(lines))
	for rows.Next() {
		var id int
		var m lockedMenu
		if err := rows.Scan(&id, &m.name, &m.price, &m.available); err != nil {
			rows.Close()
			return err
		}
		locked[id] = m
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	var total int64
	orderLines := make([]domain.OrderLine, 0, len(lines))
	for _, line := range lines {
		menu, ok := locked[line.MenuID]
		if !ok {
			// Not in this restaurant's menu, or no such id at all.
			return fmt.Errorf("%w: id %d", domain.ErrMenuItemNotFound, line.MenuID)
		}
		if !menu.available {
			return fmt.Errorf("%w: id %d", domain.ErrInvalidMenuItem, line.MenuID)
		}
		subtotal := int64(line.Quantity) * menu.price
		total += subtotal
		orderLines = append(orderLines, domain.OrderLine{
			MenuID:   line.MenuID,
			MenuName: menu.name,
			Quantity: line.Quantity,
			Price:    menu.price,
			Subtotal: subtotal,
		})
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (user_id, restaurant_id, order_number, total_amount, status)
		VALUES ($1, $2, $3, $4, 'pending')
		RETURNING id, ordered_at`,
		order.UserID, order.RestaurantID, order.OrderNumber, total).
		Scan(&order.ID, &order.OrderedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", domain.ErrOrderNumberTaken, order.OrderNumber)
		}
		return err
	}

	for i := range orderLines {
		orderLines[i].OrderID = order.ID
		err = tx.QueryRowContext(ctx, `
			INSERT INTO order_details (order_id, menu_id, quantity, price)
			VALUES ($1, $2, $3, $4)
			RETURNING id`,
			order.ID, orderLines[i].MenuID, orderLines[i].Quantity, orderLines[i].Price).
			Scan(&orderLines[i].ID)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	order.TotalAmount = total
	order.Status = domain.OrderPending
	order.Lines = orderLines
	return nil
}

// UpdateStatus performs the pending -> completed|cancelled transition. On
// completion every line's menu total_sales is incremented in place within the
// same transaction; a cancelled order never touches the counters.
func (r *PostgresRepository) UpdateStatus(ctx context.Context, orderID int, status domain.OrderStatus, at time.Time) (*domain.Order, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var order domain.Order
	var current domain.OrderStatus
	err = tx.QueryRowContext(ctx, `
		SELECT id, user_id, restaurant_id, order_number, total_amount, status, ordered_at
		FROM orders
		WHERE id = $1
		FOR UPDATE`, orderID).
		Scan(&order.ID, &order.UserID, &order.RestaurantID, &order.OrderNumber,
			&order.TotalAmount, &current, &order.OrderedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: id %d", domain.ErrOrderNotFound, orderID)
	}
	if err != nil {
		return nil, err
	}

	if current != domain.OrderPending {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, current, status)
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE orders SET status = $1, completed_at = $2 WHERE id = $3`,
		status, at, orderID); err != nil {
		return nil, err
	}

	lines, err := queryOrderLines(ctx, tx, orderID)
	if err != nil {
		return nil, err
	}

	if status == domain.OrderCompleted {
		for _, line := range lines {
			if _, err := tx.ExecContext(ctx, `
				UPDATE menus SET total_sales = total_sales + $1 WHERE id = $2`,
				line.Quantity, line.MenuID); err != nil {
				return nil, err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	order.Status = status
	order.CompletedAt = &at
	order.Lines = lines
	return &order, nil
}

type rowQuerier interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
}

func queryOrderLines(ctx context.Context, q rowQuerier, orderID int) ([]domain.OrderLine, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT od.id, od.order_id, od.menu_id, COALESCE(m.name, ''), od.quantity, od.price
		FROM order_details od
		LEFT JOIN menus m ON od.menu_id = m.id
		WHERE od.order_id = $1
		ORDER BY od.id`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []domain.OrderLine
	for rows.Next() {
		var line domain.OrderLine
		if err := rows.Scan(&line.ID, &line.OrderID, &line.MenuID, &line.MenuName,
			&line.Quantity, &line.Price); err != nil {
			return nil, err
		}
		line.Subtotal = int64(line.Quantity) * line.Price
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

func (r *PostgresRepository) GetOrder(ctx context.Context, orderID int) (*domain.Order, error) {
	var order domain.Order
	var completedAt sql.NullTime
	err := r.DB.QueryRowContext(ctx, `
		SELECT o.id, o.user_id, o.restaurant_id, COALESCE(r.name, ''), o.order_number,
		       o.total_amount, o.status, o.ordered_at, o.completed_at
		FROM orders o
		LEFT JOIN restaurants r ON o.restaurant_id = r.id
		WHERE o.id = $1`, orderID).
		Scan(&order.ID, &order.UserID, &order.RestaurantID, &order.RestaurantName,
			&order.OrderNumber, &order.TotalAmount, &order.Status, &order.OrderedAt, &completedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: id %d", domain.ErrOrderNotFound, orderID)
	}
	if err != nil {
		return nil, err
	}
	if completedAt.Valid {
		order.CompletedAt = &completedAt.Time
	}

	lines, err := queryOrderLines(ctx, r.DB, orderID)
	if err != nil {
		return nil, err
	}
	order.Lines = lines
	return &order, nil
}

func (r *PostgresRepository) ListUserOrders(ctx context.Context, userID int) ([]domain.Order, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT o.id, o.user_id, o.restaurant_id, COALESCE(r.name, ''), o.order_number,
		       o.total_amount, o.status, o.ordered_at, o.completed_at
		FROM orders o
		LEFT JOIN restaurants r ON o.restaurant_id = r.id
		WHERE o.user_id = $1
		ORDER BY o.ordered_at DESC, o.id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		var completedAt sql.NullTime
		if err := rows.Scan(&order.ID, &order.UserID, &order.RestaurantID, &order.RestaurantName,
			&order.OrderNumber, &order.TotalAmount, &order.Status, &order.OrderedAt, &completedAt); err != nil {
			return nil, err
		}
		if completedAt.Valid {
			order.CompletedAt = &completedAt.Time
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}
