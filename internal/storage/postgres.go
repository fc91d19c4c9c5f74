package storage

import (
	"context"
	"database/sql"
	"fmt"

	"qrorder/internal/domain"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func isUniqueViolation(err error) bool {
	pqErr, ok := err.(*pq.Error)
	return ok && pqErr.Code == "23505"
}

func (r *PostgresRepository) CreateRestaurant(ctx context.Context, rest *domain.Restaurant) error {
	return r.DB.QueryRowContext(ctx, `
		INSERT INTO restaurants (name, owner_id, address, phone, description, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`,
		rest.Name, rest.OwnerID, rest.Address, rest.Phone, rest.Description, rest.Latitude, rest.Longitude,
	).Scan(&rest.ID, &rest.CreatedAt)
}

func (r *PostgresRepository) GetRestaurant(ctx context.Context, id int) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, name, owner_id, COALESCE(address, ''), COALESCE(phone, ''),
		       COALESCE(description, ''), COALESCE(image_url, ''),
		       COALESCE(latitude, 0), COALESCE(longitude, 0), created_at
		FROM restaurants
		WHERE id = $1`, id).
		Scan(&rest.ID, &rest.Name, &rest.OwnerID, &rest.Address, &rest.Phone,
			&rest.Description, &rest.ImageURL, &rest.Latitude, &rest.Longitude, &rest.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: id %d", domain.ErrRestaurantNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *PostgresRepository) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name, owner_id, COALESCE(address, ''), COALESCE(phone, ''),
		       COALESCE(description, ''), COALESCE(image_url, ''),
		       COALESCE(latitude, 0), COALESCE(longitude, 0), created_at
		FROM restaurants
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var restaurants []domain.Restaurant
	for rows.Next() {
		var rest domain.Restaurant
		if err := rows.Scan(&rest.ID, &rest.Name, &rest.OwnerID, &rest.Address, &rest.Phone,
			&rest.Description, &rest.ImageURL, &rest.Latitude, &rest.Longitude, &rest.CreatedAt); err != nil {
			return nil, err
		}
		restaurants = append(restaurants, rest)
	}
	return restaurants, rows.Err()
}

func (r *PostgresRepository) UpdateRestaurant(ctx context.Context, rest *domain.Restaurant) error {
	err := r.DB.QueryRowContext(ctx, `
		UPDATE restaurants
		SET name = $1, address = $2, phone = $3, description = $4,
		    latitude = $5, longitude = $6, updated_at = now()
		WHERE id = $7
		RETURNING id, owner_id, COALESCE(image_url, ''), created_at`,
		rest.Name, rest.Address, rest.Phone, rest.Description,
		rest.Latitude, rest.Longitude, rest.ID).
		Scan(&rest.ID, &rest.OwnerID, &rest.ImageURL, &rest.CreatedAt)
	if err == sql.ErrNoRows {
		return fmt.Errorf("%w: id %d", domain.ErrRestaurantNotFound, rest.ID)
	}
	return err
}

func (r *PostgresRepository) ListCategories(ctx context.Context) ([]domain.MenuCategory, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id, name FROM menu_categories ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.MenuCategory
	for rows.Next() {
		var c domain.MenuCategory
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *PostgresRepository) CreateMenuItem(ctx context.Context, m *domain.MenuItem) error {
	return r.DB.QueryRowContext(ctx, `
		INSERT INTO menus (restaurant_id, category_id, name, description, price, image_url, is_available, is_recommended)
		VALUES ($1, NULLIF($2, 0), $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`,
		m.RestaurantID, m.CategoryID, m.Name, m.Description, m.Price, m.ImageURL, m.IsAvailable, m.IsRecommended,
	).Scan(&m.ID, &m.CreatedAt)
}

const menuColumns = `
	id, restaurant_id, COALESCE(category_id, 0), name, COALESCE(description, ''),
	price, COALESCE(image_url, ''), is_available, is_recommended, total_sales, created_at`

func scanMenuItem(row *sql.Row, m *domain.MenuItem) error {
	return row.Scan(&m.ID, &m.RestaurantID, &m.CategoryID, &m.Name, &m.Description,
		&m.Price, &m.ImageURL, &m.IsAvailable, &m.IsRecommended, &m.TotalSales, &m.CreatedAt)
}

func (r *PostgresRepository) GetMenuItem(ctx context.Context, restaurantID, menuID int) (*domain.MenuItem, error) {
	var m domain.MenuItem
	row := r.DB.QueryRowContext(ctx,
		`SELECT `+menuColumns+` FROM menus WHERE id = $1 AND restaurant_id = $2`,
		menuID, restaurantID)
	err := scanMenuItem(row, &m)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: id %d", domain.ErrMenuItemNotFound, menuID)
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PostgresRepository) listMenu(ctx context.Context, query string, args ...interface{}) ([]domain.MenuItem, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		var m domain.MenuItem
		if err := rows.Scan(&m.ID, &m.RestaurantID, &m.CategoryID, &m.Name, &m.Description,
			&m.Price, &m.ImageURL, &m.IsAvailable, &m.IsRecommended, &m.TotalSales, &m.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) ListMenu(ctx context.Context, restaurantID int) ([]domain.MenuItem, error) {
	return r.listMenu(ctx, `
		SELECT `+menuColumns+`
		FROM menus
		WHERE restaurant_id = $1
		ORDER BY is_available DESC, category_id NULLS LAST, id`, restaurantID)
}

func (r *PostgresRepository) ListRecommended(ctx context.Context, restaurantID int) ([]domain.MenuItem, error) {
	return r.listMenu(ctx, `
		SELECT `+menuColumns+`
		FROM menus
		WHERE restaurant_id = $1 AND is_recommended = true AND is_available = true
		ORDER BY id`, restaurantID)
}

func (r *PostgresRepository) ListTopSellers(ctx context.Context, restaurantID, limit int) ([]domain.MenuItem, error) {
	return r.listMenu(ctx, `
		SELECT `+menuColumns+`
		FROM menus
		WHERE restaurant_id = $1 AND total_sales > 0
		ORDER BY total_sales DESC, id
		LIMIT $2`, restaurantID, limit)
}

// UpdateMenuItem never touches total_sales; only the order engine moves the
// sales counter.
func (r *PostgresRepository) UpdateMenuItem(ctx context.Context, m *domain.MenuItem) error {
	result, err := r.DB.ExecContext(ctx, `
		UPDATE menus
		SET category_id = NULLIF($1, 0), name = $2, description = $3, price = $4,
		    image_url = $5, is_available = $6, is_recommended = $7, updated_at = now()
		WHERE id = $8 AND restaurant_id = $9`,
		m.CategoryID, m.Name, m.Description, m.Price,
		m.ImageURL, m.IsAvailable, m.IsRecommended, m.ID, m.RestaurantID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: id %d", domain.ErrMenuItemNotFound, m.ID)
	}
	return nil
}

func (r *PostgresRepository) GetUser(ctx context.Context, id int) (*domain.User, error) {
	var u domain.User
	err := r.DB.QueryRowContext(ctx, `
		SELECT u.id, u.username, u.email, u.name, u.country_id, u.birth_year,
		       COALESCE(ut.name, ''), COALESCE(c.language_code, '')
		FROM users u
		LEFT JOIN user_types ut ON u.user_type_id = ut.id
		LEFT JOIN countries c ON u.country_id = c.id
		WHERE u.id = $1`, id).
		Scan(&u.ID, &u.Username, &u.Email, &u.Name, &u.CountryID, &u.BirthYear,
			&u.UserType, &u.LanguageCode)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: id %d", domain.ErrUserNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *PostgresRepository) ListCountries(ctx context.Context) ([]domain.Country, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id, name, language_code FROM countries ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var countries []domain.Country
	for rows.Next() {
		var c domain.Country
		if err := rows.Scan(&c.ID, &c.Name, &c.LanguageCode); err != nil {
			return nil, err
		}
		countries = append(countries, c)
	}
	return countries, rows.Err()
}
