package domain

import "time"

type Restaurant struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	OwnerID     int       `json:"owner_id"`
	Address     string    `json:"address"`
	Phone       string    `json:"phone"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	CreatedAt   time.Time `json:"created_at"`
}

type MenuCategory struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// MenuItem price is in minor currency units (e.g. won). TotalSales is
// cumulative completed-order quantity and is only written by the order engine.
type MenuItem struct {
	ID            int       `json:"id"`
	RestaurantID  int       `json:"restaurant_id"`
	CategoryID    int       `json:"category_id,omitempty"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Price         int64     `json:"price"`
	ImageURL      string    `json:"image_url"`
	IsAvailable   bool      `json:"is_available"`
	IsRecommended bool      `json:"is_recommended"`
	TotalSales    int       `json:"total_sales"`
	CreatedAt     time.Time `json:"created_at"`
}

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

type Order struct {
	ID             int         `json:"id"`
	UserID         int         `json:"user_id"`
	RestaurantID   int         `json:"restaurant_id"`
	RestaurantName string      `json:"restaurant_name,omitempty"`
	OrderNumber    string      `json:"order_number"`
	TotalAmount    int64       `json:"total_amount"`
	Status         OrderStatus `json:"status"`
	OrderedAt      time.Time   `json:"ordered_at"`
	CompletedAt    *time.Time  `json:"completed_at,omitempty"`
	Lines          []OrderLine `json:"lines"`
}

// OrderLine.Price is the menu price captured when the order was created;
// later menu price changes never touch historical lines.
type OrderLine struct {
	ID       int    `json:"id"`
	OrderID  int    `json:"order_id"`
	MenuID   int    `json:"menu_id"`
	MenuName string `json:"menu_name,omitempty"`
	Quantity int    `json:"quantity"`
	Price    int64  `json:"price"`
	Subtotal int64  `json:"subtotal"`
}

type LineRequest struct {
	MenuID   int `json:"menu_id"`
	Quantity int `json:"quantity"`
}

type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	CountryID    int    `json:"country_id"`
	BirthYear    int    `json:"birth_year"`
	UserType     string `json:"user_type"`
	LanguageCode string `json:"language_code"`
}

type Country struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	LanguageCode string `json:"language_code"`
}

type TranslationKey struct {
	ID          int    `json:"id"`
	Key         string `json:"key"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

type Translation struct {
	ID           int    `json:"id"`
	KeyID        int    `json:"key_id"`
	Key          string `json:"key,omitempty"`
	LanguageCode string `json:"language_code"`
	Text         string `json:"text"`
}

type BatchItem struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
}

type BatchTranslation struct {
	ID         int    `json:"id"`
	Original   string `json:"original"`
	Translated string `json:"translated"`
}

type OrderEvent struct {
	Type         string           `json:"type"`
	OrderID      int              `json:"order_id"`
	RestaurantID int              `json:"restaurant_id"`
	Lines        []OrderEventLine `json:"lines"`
	Timestamp    time.Time        `json:"timestamp"`
}

type OrderEventLine struct {
	MenuID   int `json:"menu_id"`
	Quantity int `json:"quantity"`
}

const EventOrderCompleted = "order_completed"

type MenuSales struct {
	MenuID int   `json:"menu_id"`
	Sales  int64 `json:"sales"`
}
