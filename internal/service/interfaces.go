package service

import (
	"context"
	"time"

	"qrorder/internal/domain"
)

type CatalogRepository interface {
	CreateRestaurant(ctx context.Context, r *domain.Restaurant) error
	GetRestaurant(ctx context.Context, id int) (*domain.Restaurant, error)
	ListRestaurants(ctx context.Context) ([]domain.Restaurant, error)
	UpdateRestaurant(ctx context.Context, r *domain.Restaurant) error
	ListCategories(ctx context.Context) ([]domain.MenuCategory, error)
	CreateMenuItem(ctx context.Context, m *domain.MenuItem) error
	GetMenuItem(ctx context.Context, restaurantID, menuID int) (*domain.MenuItem, error)
	ListMenu(ctx context.Context, restaurantID int) ([]domain.MenuItem, error)
	ListRecommended(ctx context.Context, restaurantID int) ([]domain.MenuItem, error)
	ListTopSellers(ctx context.Context, restaurantID, limit int) ([]domain.MenuItem, error)
	UpdateMenuItem(ctx context.Context, m *domain.MenuItem) error
}

type OrderRepository interface {
	// CreateOrder persists the order header and all lines in one transaction,
	// snapshotting each menu price under a row lock. It fills order.ID,
	// order.TotalAmount, order.OrderedAt and order.Lines.
	CreateOrder(ctx context.Context, order *domain.Order, lines []domain.LineRequest) error
	GetOrder(ctx context.Context, orderID int) (*domain.Order, error)
	ListUserOrders(ctx context.Context, userID int) ([]domain.Order, error)
	// UpdateStatus moves a pending order to completed or cancelled. The status
	// write and, for completed orders, the total_sales increments share one
	// transaction.
	UpdateStatus(ctx context.Context, orderID int, status domain.OrderStatus, at time.Time) (*domain.Order, error)
}

type IdentityRepository interface {
	GetUser(ctx context.Context, id int) (*domain.User, error)
	ListCountries(ctx context.Context) ([]domain.Country, error)
}

type TranslationRepository interface {
	// GetTranslation returns (nil, nil) when no row exists for (key, lang).
	GetTranslation(ctx context.Context, key, lang string) (*domain.Translation, error)
	UpsertTranslation(ctx context.Context, key, lang, text string) (*domain.Translation, error)
	ListKeyTranslations(ctx context.Context, key string) ([]domain.Translation, error)
}

type TranslationCache interface {
	Get(ctx context.Context, key, lang string) (string, bool, error)
	Set(ctx context.Context, key, lang, text string) error
}

type SalesRanking interface {
	IncrementSales(ctx context.Context, restaurantID, menuID, quantity int) error
	TopSellers(ctx context.Context, restaurantID, limit int) ([]domain.MenuSales, error)
}

type OrderPublisher interface {
	PublishOrderCompleted(ctx context.Context, evt domain.OrderEvent) error
}

// TranslationProvider is the external best-effort translation collaborator.
type TranslationProvider interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}

type OrderServiceInterface interface {
	CreateOrder(ctx context.Context, userID, restaurantID int, lines []domain.LineRequest) (*domain.Order, error)
	TransitionStatus(ctx context.Context, orderID int, status domain.OrderStatus) (*domain.Order, error)
	GetOrder(ctx context.Context, orderID int) (*domain.Order, error)
	ListUserOrders(ctx context.Context, userID int) ([]domain.Order, error)
}

type MenuServiceInterface interface {
	CreateMenuItem(ctx context.Context, ownerID int, m *domain.MenuItem) (*domain.MenuItem, error)
	GetMenuItem(ctx context.Context, restaurantID, menuID int) (*domain.MenuItem, error)
	ListMenu(ctx context.Context, restaurantID int) ([]domain.MenuItem, error)
	ListRecommended(ctx context.Context, restaurantID int) ([]domain.MenuItem, error)
	ListTopSellers(ctx context.Context, restaurantID, limit int) ([]domain.MenuItem, error)
	UpdateMenuItem(ctx context.Context, ownerID int, m *domain.MenuItem) (*domain.MenuItem, error)
	ListCategories(ctx context.Context) ([]domain.MenuCategory, error)
}

type RestaurantServiceInterface interface {
	Create(ctx context.Context, r *domain.Restaurant) (*domain.Restaurant, error)
	Get(ctx context.Context, id int) (*domain.Restaurant, error)
	List(ctx context.Context) ([]domain.Restaurant, error)
	Update(ctx context.Context, ownerID int, r *domain.Restaurant) (*domain.Restaurant, error)
}

type UserServiceInterface interface {
	Get(ctx context.Context, id int) (*domain.User, error)
	PreferredLanguage(ctx context.Context, id int) (string, error)
	ListCountries(ctx context.Context) ([]domain.Country, error)
}

type TranslationServiceInterface interface {
	Resolve(ctx context.Context, key, lang string) (string, bool, error)
	TranslateText(ctx context.Context, text, targetLang string) string
	TranslateBatch(ctx context.Context, items []domain.BatchItem, sourceLang, targetLang string) ([]domain.BatchTranslation, error)
	Upsert(ctx context.Context, key, lang, text string) (*domain.Translation, error)
	ListKeyTranslations(ctx context.Context, key string) ([]domain.Translation, error)
}
