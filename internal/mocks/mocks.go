package mocks

import (
	"context"
	"time"

	"qrorder/internal/domain"

	"github.com/stretchr/testify/mock"
)

type CatalogRepository struct {
	mock.Mock
}

func (m *CatalogRepository) CreateRestaurant(ctx context.Context, r *domain.Restaurant) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *CatalogRepository) GetRestaurant(ctx context.Context, id int) (*domain.Restaurant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Restaurant), args.Error(1)
}

func (m *CatalogRepository) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Restaurant), args.Error(1)
}

func (m *CatalogRepository) UpdateRestaurant(ctx context.Context, r *domain.Restaurant) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *CatalogRepository) ListCategories(ctx context.Context) ([]domain.MenuCategory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MenuCategory), args.Error(1)
}

func (m *CatalogRepository) CreateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *CatalogRepository) GetMenuItem(ctx context.Context, restaurantID, menuID int) (*domain.MenuItem, error) {
	args := m.Called(ctx, restaurantID, menuID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MenuItem), args.Error(1)
}

func (m *CatalogRepository) ListMenu(ctx context.Context, restaurantID int) ([]domain.MenuItem, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MenuItem), args.Error(1)
}

func (m *CatalogRepository) ListRecommended(ctx context.Context, restaurantID int) ([]domain.MenuItem, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MenuItem), args.Error(1)
}

func (m *CatalogRepository) ListTopSellers(ctx context.Context, restaurantID, limit int) ([]domain.MenuItem, error) {
	args := m.Called(ctx, restaurantID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MenuItem), args.Error(1)
}

func (m *CatalogRepository) UpdateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

type OrderRepository struct {
	mock.Mock
}

func (m *OrderRepository) CreateOrder(ctx context.Context, order *domain.Order, lines []domain.LineRequest) error {
	args := m.Called(ctx, order, lines)
	return args.Error(0)
}

func (m *OrderRepository) GetOrder(ctx context.Context, orderID int) (*domain.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *OrderRepository) ListUserOrders(ctx context.Context, userID int) ([]domain.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *OrderRepository) UpdateStatus(ctx context.Context, orderID int, status domain.OrderStatus, at time.Time) (*domain.Order, error) {
	args := m.Called(ctx, orderID, status, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

type IdentityRepository struct {
	mock.Mock
}

func (m *IdentityRepository) GetUser(ctx context.Context, id int) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *IdentityRepository) ListCountries(ctx context.Context) ([]domain.Country, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Country), args.Error(1)
}

type TranslationRepository struct {
	mock.Mock
}

func (m *TranslationRepository) GetTranslation(ctx context.Context, key, lang string) (*domain.Translation, error) {
	args := m.Called(ctx, key, lang)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Translation), args.Error(1)
}

func (m *TranslationRepository) UpsertTranslation(ctx context.Context, key, lang, text string) (*domain.Translation, error) {
	args := m.Called(ctx, key, lang, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Translation), args.Error(1)
}

func (m *TranslationRepository) ListKeyTranslations(ctx context.Context, key string) ([]domain.Translation, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Translation), args.Error(1)
}

type TranslationCache struct {
	mock.Mock
}

func (m *TranslationCache) Get(ctx context.Context, key, lang string) (string, bool, error) {
	args := m.Called(ctx, key, lang)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *TranslationCache) Set(ctx context.Context, key, lang, text string) error {
	args := m.Called(ctx, key, lang, text)
	return args.Error(0)
}

type SalesRanking struct {
	mock.Mock
}

func (m *SalesRanking) IncrementSales(ctx context.Context, restaurantID, menuID, quantity int) error {
	args := m.Called(ctx, restaurantID, menuID, quantity)
	return args.Error(0)
}

func (m *SalesRanking) TopSellers(ctx context.Context, restaurantID, limit int) ([]domain.MenuSales, error) {
	args := m.Called(ctx, restaurantID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MenuSales), args.Error(1)
}

type OrderPublisher struct {
	mock.Mock
}

func (m *OrderPublisher) PublishOrderCompleted(ctx context.Context, evt domain.OrderEvent) error {
	args := m.Called(ctx, evt)
	return args.Error(0)
}

type TranslationProvider struct {
	mock.Mock
}

func (m *TranslationProvider) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	args := m.Called(ctx, text, sourceLang, targetLang)
	return args.String(0), args.Error(1)
}

type OrderService struct {
	mock.Mock
}

func (m *OrderService) CreateOrder(ctx context.Context, userID, restaurantID int, lines []domain.LineRequest) (*domain.Order, error) {
	args := m.Called(ctx, userID, restaurantID, lines)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *OrderService) TransitionStatus(ctx context.Context, orderID int, status domain.OrderStatus) (*domain.Order, error) {
	args := m.Called(ctx, orderID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *OrderService) GetOrder(ctx context.Context, orderID int) (*domain.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *OrderService) ListUserOrders(ctx context.Context, userID int) ([]domain.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

type TranslationService struct {
	mock.Mock
}

func (m *TranslationService) Resolve(ctx context.Context, key, lang string) (string, bool, error) {
	args := m.Called(ctx, key, lang)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *TranslationService) TranslateText(ctx context.Context, text, targetLang string) string {
	args := m.Called(ctx, text, targetLang)
	return args.String(0)
}

func (m *TranslationService) TranslateBatch(ctx context.Context, items []domain.BatchItem, sourceLang, targetLang string) ([]domain.BatchTranslation, error) {
	args := m.Called(ctx, items, sourceLang, targetLang)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BatchTranslation), args.Error(1)
}

func (m *TranslationService) Upsert(ctx context.Context, key, lang, text string) (*domain.Translation, error) {
	args := m.Called(ctx, key, lang, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Translation), args.Error(1)
}

func (m *TranslationService) ListKeyTranslations(ctx context.Context, key string) ([]domain.Translation, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Translation), args.Error(1)
}

type MenuService struct {
	mock.Mock
}

func (m *MenuService) CreateMenuItem(ctx context.Context, ownerID int, item *domain.MenuItem) (*domain.MenuItem, error) {
	args := m.Called(ctx, ownerID, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MenuItem), args.Error(1)
}

func (m *MenuService) GetMenuItem(ctx context.Context, restaurantID, menuID int) (*domain.MenuItem, error) {
	args := m.Called(ctx, restaurantID, menuID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MenuItem), args.Error(1)
}

func (m *MenuService) ListMenu(ctx context.Context, restaurantID int) ([]domain.MenuItem, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MenuItem), args.Error(1)
}

func (m *MenuService) ListRecommended(ctx context.Context, restaurantID int) ([]domain.MenuItem, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MenuItem), args.Error(1)
}

func (m *MenuService) ListTopSellers(ctx context.Context, restaurantID, limit int) ([]domain.MenuItem, error) {
	args := m.Called(ctx, restaurantID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MenuItem), args.Error(1)
}

func (m *MenuService) UpdateMenuItem(ctx context.Context, ownerID int, item *domain.MenuItem) (*domain.MenuItem, error) {
	args := m.Called(ctx, ownerID, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MenuItem), args.Error(1)
}

func (m *MenuService) ListCategories(ctx context.Context) ([]domain.MenuCategory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MenuCategory), args.Error(1)
}

type RestaurantService struct {
	mock.Mock
}

func (m *RestaurantService) Create(ctx context.Context, r *domain.Restaurant) (*domain.Restaurant, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Restaurant), args.Error(1)
}

func (m *RestaurantService) Get(ctx context.Context, id int) (*domain.Restaurant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Restaurant), args.Error(1)
}

func (m *RestaurantService) List(ctx context.Context) ([]domain.Restaurant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Restaurant), args.Error(1)
}

func (m *RestaurantService) Update(ctx context.Context, ownerID int, r *domain.Restaurant) (*domain.Restaurant, error) {
	args := m.Called(ctx, ownerID, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Restaurant), args.Error(1)
}

type UserService struct {
	mock.Mock
}

func (m *UserService) Get(ctx context.Context, id int) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *UserService) PreferredLanguage(ctx context.Context, id int) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *UserService) ListCountries(ctx context.Context) ([]domain.Country, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Country), args.Error(1)
}
