package tests

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"qrorder/internal/domain"
	"qrorder/internal/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (*storage.PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &storage.PostgresRepository{DB: db}, mock
}

func TestPostgresRepository_CreateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("snapshots_price_and_commits", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		orderedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT id, name, price, is_available").
			WithArgs(pq.Array([]int64{3}), 10).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "is_available"}).
				AddRow(3, "아메리카노", 9900, true))
		mock.ExpectQuery("INSERT INTO orders").
			WithArgs(7, 10, "20250301120000123456", int64(19800)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "ordered_at"}).AddRow(77, orderedAt))
		mock.ExpectQuery("INSERT INTO order_details").
			WithArgs(77, 3, 2, int64(9900)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(501))
		mock.ExpectCommit()

		order := &domain.Order{UserID: 7, RestaurantID: 10, OrderNumber: "20250301120000123456"}
		err := repo.CreateOrder(ctx, order, []domain.LineRequest{{MenuID: 3, Quantity: 2}})

		require.NoError(t, err)
		assert.Equal(t, 77, order.ID)
		assert.Equal(t, int64(19800), order.TotalAmount)
		assert.Equal(t, domain.OrderPending, order.Status)
		require.Len(t, order.Lines, 1)
		assert.Equal(t, int64(9900), order.Lines[0].Price)
		assert.Equal(t, int64(19800), order.Lines[0].Subtotal)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unavailable_item_aborts_before_insert", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT id, name, price, is_available").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "is_available"}).
				AddRow(3, "아메리카노", 9900, false))
		mock.ExpectRollback()

		order := &domain.Order{UserID: 7, RestaurantID: 10, OrderNumber: "20250301120000123456"}
		err := repo.CreateOrder(ctx, order, []domain.LineRequest{{MenuID: 3, Quantity: 2}})

		assert.ErrorIs(t, err, domain.ErrInvalidMenuItem)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown_item_aborts_before_insert", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT id, name, price, is_available").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "is_available"}))
		mock.ExpectRollback()

		order := &domain.Order{UserID: 7, RestaurantID: 10, OrderNumber: "20250301120000123456"}
		err := repo.CreateOrder(ctx, order, []domain.LineRequest{{MenuID: 99, Quantity: 1}})

		assert.ErrorIs(t, err, domain.ErrMenuItemNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate_order_number_maps_to_sentinel", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT id, name, price, is_available").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "is_available"}).
				AddRow(3, "아메리카노", 9900, true))
		mock.ExpectQuery("INSERT INTO orders").
			WillReturnError(&pq.Error{Code: "23505"})
		mock.ExpectRollback()

		order := &domain.Order{UserID: 7, RestaurantID: 10, OrderNumber: "20250301120000123456"}
		err := repo.CreateOrder(ctx, order, []domain.LineRequest{{MenuID: 3, Quantity: 1}})

		assert.ErrorIs(t, err, domain.ErrOrderNumberTaken)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	orderedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	completedAt := orderedAt.Add(15 * time.Minute)

	pendingRow := func() *sqlmock.Rows {
		return sqlmock.NewRows([]string{
			"id", "user_id", "restaurant_id", "order_number", "total_amount", "status", "ordered_at",
		}).AddRow(77, 7, 10, "20250301120000123456", 19800, "pending", orderedAt)
	}
	lineRows := func() *sqlmock.Rows {
		return sqlmock.NewRows([]string{"id", "order_id", "menu_id", "name", "quantity", "price"}).
			AddRow(501, 77, 3, "아메리카노", 2, 9900)
	}

	t.Run("completion_increments_sales_counters", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT id, user_id, restaurant_id, order_number, total_amount, status, ordered_at").
			WithArgs(77).
			WillReturnRows(pendingRow())
		mock.ExpectExec("UPDATE orders SET status").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery("FROM order_details od").
			WithArgs(77).
			WillReturnRows(lineRows())
		mock.ExpectExec("UPDATE menus SET total_sales").
			WithArgs(2, 3).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		order, err := repo.UpdateStatus(ctx, 77, domain.OrderCompleted, completedAt)

		require.NoError(t, err)
		assert.Equal(t, domain.OrderCompleted, order.Status)
		require.NotNil(t, order.CompletedAt)
		assert.Equal(t, completedAt, *order.CompletedAt)
		require.Len(t, order.Lines, 1)
		assert.Equal(t, int64(19800), order.Lines[0].Subtotal)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("cancellation_leaves_sales_counters_alone", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT id, user_id, restaurant_id, order_number, total_amount, status, ordered_at").
			WithArgs(77).
			WillReturnRows(pendingRow())
		mock.ExpectExec("UPDATE orders SET status").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery("FROM order_details od").
			WithArgs(77).
			WillReturnRows(lineRows())
		mock.ExpectCommit()

		order, err := repo.UpdateStatus(ctx, 77, domain.OrderCancelled, completedAt)

		require.NoError(t, err)
		assert.Equal(t, domain.OrderCancelled, order.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("completed_order_cannot_transition_again", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT id, user_id, restaurant_id, order_number, total_amount, status, ordered_at").
			WithArgs(77).
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "user_id", "restaurant_id", "order_number", "total_amount", "status", "ordered_at",
			}).AddRow(77, 7, 10, "20250301120000123456", 19800, "completed", orderedAt))
		mock.ExpectRollback()

		_, err := repo.UpdateStatus(ctx, 77, domain.OrderCancelled, completedAt)

		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown_order", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT id, user_id, restaurant_id, order_number, total_amount, status, ordered_at").
			WithArgs(404).
			WillReturnError(sql.ErrNoRows)
		mock.ExpectRollback()

		_, err := repo.UpdateStatus(ctx, 404, domain.OrderCompleted, completedAt)

		assert.ErrorIs(t, err, domain.ErrOrderNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresRepository_GetOrder(t *testing.T) {
	ctx := context.Background()
	repo, mock := newMockRepo(t)
	orderedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery("FROM orders o").
		WithArgs(77).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "restaurant_id", "name", "order_number",
			"total_amount", "status", "ordered_at", "completed_at",
		}).AddRow(77, 7, 10, "한강 카페", "20250301120000123456", 19800, "pending", orderedAt, nil))
	mock.ExpectQuery("FROM order_details od").
		WithArgs(77).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "menu_id", "name", "quantity", "price"}).
			AddRow(501, 77, 3, "아메리카노", 2, 9900))

	order, err := repo.GetOrder(ctx, 77)

	require.NoError(t, err)
	assert.Equal(t, "한강 카페", order.RestaurantName)
	assert.Nil(t, order.CompletedAt)
	require.Len(t, order.Lines, 1)
	assert.Equal(t, "아메리카노", order.Lines[0].MenuName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_ListUserOrders(t *testing.T) {
	ctx := context.Background()
	repo, mock := newMockRepo(t)
	noon := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	morning := noon.Add(-3 * time.Hour)

	// Newest first; equal timestamps break ties on id, newest id first.
	mock.ExpectQuery(`ORDER BY o.ordered_at DESC, o.id DESC`).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "restaurant_id", "name", "order_number",
			"total_amount", "status", "ordered_at", "completed_at",
		}).
			AddRow(80, 7, 10, "한강 카페", "20250301120000000080", 4500, "pending", noon, nil).
			AddRow(79, 7, 10, "한강 카페", "20250301120000000079", 9900, "completed", morning, morning.Add(time.Minute)).
			AddRow(42, 7, 11, "강남 분식", "20250301090000000042", 12000, "cancelled", morning, morning.Add(time.Minute)))

	orders, err := repo.ListUserOrders(ctx, 7)

	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, []int{80, 79, 42}, []int{orders[0].ID, orders[1].ID, orders[2].ID})
	assert.Nil(t, orders[0].CompletedAt)
	require.NotNil(t, orders[1].CompletedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_GetTranslation(t *testing.T) {
	ctx := context.Background()

	t.Run("hit", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery("FROM translations t").
			WithArgs("menu.3.name", "en").
			WillReturnRows(sqlmock.NewRows([]string{"id", "key_id", "key", "language_code", "text"}).
				AddRow(1, 5, "menu.3.name", "en", "Americano"))

		tr, err := repo.GetTranslation(ctx, "menu.3.name", "en")
		require.NoError(t, err)
		require.NotNil(t, tr)
		assert.Equal(t, "Americano", tr.Text)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("miss_is_nil_not_error", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery("FROM translations t").
			WithArgs("menu.3.name", "th").
			WillReturnError(sql.ErrNoRows)

		tr, err := repo.GetTranslation(ctx, "menu.3.name", "th")
		assert.NoError(t, err)
		assert.Nil(t, tr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresRepository_UpsertTranslation(t *testing.T) {
	ctx := context.Background()
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO translation_keys").
		WithArgs("menu.3.name").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))
	mock.ExpectQuery("INSERT INTO translations").
		WithArgs(5, "en", "Americano").
		WillReturnRows(sqlmock.NewRows([]string{"id", "key_id", "language_code", "text"}).
			AddRow(1, 5, "en", "Americano"))
	mock.ExpectCommit()

	tr, err := repo.UpsertTranslation(ctx, "menu.3.name", "en", "Americano")

	require.NoError(t, err)
	assert.Equal(t, "menu.3.name", tr.Key)
	assert.Equal(t, "Americano", tr.Text)
	assert.NoError(t, mock.ExpectationsWereMet())
}
