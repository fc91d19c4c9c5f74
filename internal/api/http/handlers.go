package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"qrorder/internal/domain"
	"qrorder/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Restaurants  service.RestaurantServiceInterface
	Menus        service.MenuServiceInterface
	Orders       service.OrderServiceInterface
	Users        service.UserServiceInterface
	Translations service.TranslationServiceInterface
}

func NewHandler(
	restSvc service.RestaurantServiceInterface,
	menuSvc service.MenuServiceInterface,
	orderSvc service.OrderServiceInterface,
	userSvc service.UserServiceInterface,
	translationSvc service.TranslationServiceInterface,
) *Handler {
	return &Handler{
		Restaurants:  restSvc,
		Menus:        menuSvc,
		Orders:       orderSvc,
		Users:        userSvc,
		Translations: translationSvc,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/restaurants", h.createRestaurant).Methods("POST")
	r.HandleFunc("/api/restaurants", h.getRestaurants).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}", h.getRestaurant).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}", h.updateRestaurant).Methods("PUT")

	r.HandleFunc("/api/categories", h.getCategories).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/menu", h.createMenuItem).Methods("POST")
	r.HandleFunc("/api/restaurants/{restaurantId}/menu", h.getMenu).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/menu/recommended", h.getRecommended).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/menu/top-sellers", h.getTopSellers).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/menu/{menuId}", h.getMenuItem).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/menu/{menuId}", h.updateMenuItem).Methods("PUT")

	r.HandleFunc("/api/orders", h.createOrder).Methods("POST")
	r.HandleFunc("/api/orders", h.getUserOrders).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/status", h.updateOrderStatus).Methods("PUT")

	r.HandleFunc("/api/users/me", h.getCurrentUser).Methods("GET")
	r.HandleFunc("/api/countries", h.getCountries).Methods("GET")

	r.HandleFunc("/api/translate", h.translate).Methods("POST")
	r.HandleFunc("/api/translate/batch", h.translateBatch).Methods("POST")
	r.HandleFunc("/api/translations/{key}", h.resolveTranslation).Methods("GET")
	r.HandleFunc("/api/translations/{key}", h.upsertTranslation).Methods("PUT")
	r.HandleFunc("/api/translations/{key}/all", h.listKeyTranslations).Methods("GET")
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch domain.KindOf(err) {
	case domain.KindValidation:
		status = http.StatusBadRequest
	case domain.KindNotFound:
		status = http.StatusNotFound
	case domain.KindConflict:
		status = http.StatusConflict
	case domain.KindUpstream:
		status = http.StatusBadGateway
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// currentUserID trusts the already-authenticated user id supplied by the
// identity layer in front of this service.
func currentUserID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.Header.Get("X-User-ID"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "qrorder",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) createRestaurant(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		http.Error(w, "missing user", http.StatusUnauthorized)
		return
	}
	var rest domain.Restaurant
	if err := json.NewDecoder(r.Body).Decode(&rest); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	rest.OwnerID = userID
	created, err := h.Restaurants.Create(r.Context(), &rest)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) getRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.Restaurants.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, restaurants)
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	rest, err := h.Restaurants.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

func (h *Handler) updateRestaurant(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		http.Error(w, "missing user", http.StatusUnauthorized)
		return
	}
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var rest domain.Restaurant
	if err := json.NewDecoder(r.Body).Decode(&rest); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	rest.ID = id
	updated, err := h.Restaurants.Update(r.Context(), userID, &rest)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) getCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Menus.ListCategories(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

func (h *Handler) createMenuItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		http.Error(w, "missing user", http.StatusUnauthorized)
		return
	}
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])
	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	item.RestaurantID = restaurantID
	created, err := h.Menus.CreateMenuItem(r.Context(), userID, &item)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// getMenu serves the restaurant menu, optionally resolving each item's name
// and description through the translation resolver when lang is given.
func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])
	items, err := h.Menus.ListMenu(r.Context(), restaurantID)
	if err != nil {
		writeError(w, err)
		return
	}

	lang := r.URL.Query().Get("lang")
	if lang != "" {
		for i := range items {
			key := "menu." + strconv.Itoa(items[i].ID) + ".name"
			if text, ok, err := h.Translations.Resolve(r.Context(), key, lang); err == nil && ok {
				items[i].Name = text
			}
			key = "menu." + strconv.Itoa(items[i].ID) + ".description"
			if text, ok, err := h.Translations.Resolve(r.Context(), key, lang); err == nil && ok {
				items[i].Description = text
			}
		}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) getRecommended(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])
	items, err := h.Menus.ListRecommended(r.Context(), restaurantID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) getTopSellers(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	items, err := h.Menus.ListTopSellers(r.Context(), restaurantID, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) getMenuItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	restaurantID, _ := strconv.Atoi(vars["restaurantId"])
	menuID, _ := strconv.Atoi(vars["menuId"])
	item, err := h.Menus.GetMenuItem(r.Context(), restaurantID, menuID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		http.Error(w, "missing user", http.StatusUnauthorized)
		return
	}
	vars := mux.Vars(r)
	restaurantID, _ := strconv.Atoi(vars["restaurantId"])
	menuID, _ := strconv.Atoi(vars["menuId"])
	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	item.ID = menuID
	item.RestaurantID = restaurantID
	updated, err := h.Menus.UpdateMenuItem(r.Context(), userID, &item)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

type createOrderRequest struct {
	RestaurantID int                  `json:"restaurant_id"`
	Lines        []domain.LineRequest `json:"lines"`
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		http.Error(w, "missing user", http.StatusUnauthorized)
		return
	}
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	order, err := h.Orders.CreateOrder(r.Context(), userID, req.RestaurantID, req.Lines)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) getUserOrders(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		http.Error(w, "missing user", http.StatusUnauthorized)
		return
	}
	orders, err := h.Orders.ListUserOrders(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		http.Error(w, "missing user", http.StatusUnauthorized)
		return
	}
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	order, err := h.Orders.GetOrder(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	// Another user's order is indistinguishable from a missing one.
	if order.UserID != userID {
		writeError(w, domain.WrapError(domain.KindNotFound,
			fmt.Errorf("%w: id %d", domain.ErrOrderNotFound, id)))
		return
	}
	writeJSON(w, http.StatusOK, order)
}

type statusRequest struct {
	Status domain.OrderStatus `json:"status"`
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	order, err := h.Orders.TransitionStatus(r.Context(), id, req.Status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) getCurrentUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		http.Error(w, "missing user", http.StatusUnauthorized)
		return
	}
	user, err := h.Users.Get(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) getCountries(w http.ResponseWriter, r *http.Request) {
	countries, err := h.Users.ListCountries(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, countries)
}

type translateTextRequest struct {
	Text           string `json:"text"`
	TargetLanguage string `json:"target_language"`
}

func (h *Handler) translate(w http.ResponseWriter, r *http.Request) {
	var req translateTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Text == "" || req.TargetLanguage == "" {
		http.Error(w, "Missing required parameters", http.StatusBadRequest)
		return
	}
	translated := h.Translations.TranslateText(r.Context(), req.Text, req.TargetLanguage)
	writeJSON(w, http.StatusOK, map[string]string{"translated_text": translated})
}

type translateBatchRequest struct {
	Items      []domain.BatchItem `json:"items"`
	SourceLang string             `json:"source_lang"`
	TargetLang string             `json:"target_lang"`
}

func (h *Handler) translateBatch(w http.ResponseWriter, r *http.Request) {
	var req translateBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if len(req.Items) == 0 {
		http.Error(w, "Invalid items format", http.StatusBadRequest)
		return
	}
	results, err := h.Translations.TranslateBatch(r.Context(), req.Items, req.SourceLang, req.TargetLang)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"translations": results})
}

func (h *Handler) resolveTranslation(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]
	lang := r.URL.Query().Get("lang")
	if lang == "" {
		http.Error(w, "lang is required", http.StatusBadRequest)
		return
	}
	text, found, err := h.Translations.Resolve(r.Context(), key, lang)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"key":           key,
		"language_code": lang,
		"text":          text,
		"found":         found,
	})
}

type upsertTranslationRequest struct {
	LanguageCode string `json:"language_code"`
	Text         string `json:"text"`
}

func (h *Handler) upsertTranslation(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]
	var req upsertTranslationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	tr, err := h.Translations.Upsert(r.Context(), key, req.LanguageCode, req.Text)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tr)
}

func (h *Handler) listKeyTranslations(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]
	translations, err := h.Translations.ListKeyTranslations(r.Context(), key)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, translations)
}
