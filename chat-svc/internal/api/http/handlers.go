package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"overcooked-chatbot/chat-svc/internal/domain"
	"overcooked-chatbot/chat-svc/internal/service"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

const detailNotLinked = "This user is not linked to any restaurant."

type Handler struct {
	Chat   service.ChatbotInterface
	Menu   service.MenuServiceInterface
	Orders service.OrderServiceInterface
}

func NewHandler(chat service.ChatbotInterface, menu service.MenuServiceInterface, orders service.OrderServiceInterface) *Handler {
	return &Handler{
		Chat:   chat,
		Menu:   menu,
		Orders: orders,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/chatbot/simple/", h.chat).Methods("POST")
	r.HandleFunc("/api/chatbot/categories/", h.categories).Methods("GET")
	r.HandleFunc("/api/chatbot/popular-items/", h.popularItems).Methods("GET")

	r.HandleFunc("/api/restaurants/{restaurantId}/menu", h.restaurantMenu).Methods("GET")

	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")
}

type chatRequest struct {
	RestaurantID int                 `json:"restaurant_id"`
	SessionID    string              `json:"session_id"`
	Intent       domain.IntentRecord `json:"intent"`
}

type orderView struct {
	*domain.Cart
	QRCodeURL string `json:"qr_code_url,omitempty"`
}

type popularView struct {
	domain.MenuSuggestion
	Sold int `json:"sold"`
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "chat-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	restaurant, ok := h.restaurant(w, r, req.RestaurantID)
	if !ok {
		return
	}

	sessionID := strings.TrimSpace(req.SessionID)
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	resp, err := h.Chat.ApplyIntent(r.Context(), restaurant, sessionID, req.Intent)
	if err != nil {
		log.Printf("apply intent %s error: session=%s: %v", req.Intent.Kind, sessionID, err)
		http.Error(w, "Could not process your message, please try again.", http.StatusInternalServerError)
		return
	}

	body := map[string]interface{}{
		"reply":      resp.Reply,
		"session_id": sessionID,
		"order":      resp.Cart,
	}
	for key, value := range resp.Payload {
		body[key] = value
	}
	writeJSON(w, http.StatusOK, body)
}

func (h *Handler) categories(w http.ResponseWriter, r *http.Request) {
	restaurant, ok := h.restaurant(w, r, queryInt(r, "restaurant_id"))
	if !ok {
		return
	}

	categories, err := h.Menu.Categories(r.Context(), restaurant.ID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"categories": categories})
}

func (h *Handler) popularItems(w http.ResponseWriter, r *http.Request) {
	restaurant, ok := h.restaurant(w, r, queryInt(r, "restaurant_id"))
	if !ok {
		return
	}

	popular, err := h.Menu.Popular(r.Context(), restaurant.ID, queryInt(r, "limit"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	items := make([]popularView, 0, len(popular))
	for _, p := range popular {
		items = append(items, popularView{MenuSuggestion: service.Suggestion(p.MenuItem), Sold: p.Sold})
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"items": items})
}

func (h *Handler) restaurantMenu(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])
	restaurant, err := h.Chat.Restaurant(r.Context(), id)
	if errors.Is(err, domain.ErrNotLinkedToRestaurant) {
		http.Error(w, "Restaurant not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	items, err := h.Menu.Available(r.Context(), restaurant.ID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	menu := make([]domain.MenuSuggestion, 0, len(items))
	for _, item := range items {
		menu = append(menu, service.Suggestion(item))
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"restaurant": restaurant,
		"items":      menu,
	})
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	cart, err := h.Orders.Get(r.Context(), id)
	if errors.Is(err, domain.ErrCartNotFound) {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	view := orderView{Cart: cart}
	if cart.Status == domain.CartStatusConfirmed {
		view.QRCodeURL = h.Orders.QRLink(cart.ID)
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	png, err := h.Orders.QRCode(r.Context(), id)
	switch {
	case errors.Is(err, domain.ErrCartNotFound):
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	case errors.Is(err, domain.ErrOrderNotConfirmed):
		http.Error(w, "Order is not confirmed yet", http.StatusConflict)
		return
	case err != nil:
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

// restaurant writes the 400 itself when the id does not name a restaurant.
func (h *Handler) restaurant(w http.ResponseWriter, r *http.Request, id int) (*domain.Restaurant, bool) {
	restaurant, err := h.Chat.Restaurant(r.Context(), id)
	if errors.Is(err, domain.ErrNotLinkedToRestaurant) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": detailNotLinked})
		return nil, false
	}
	if err != nil {
		log.Printf("restaurant lookup error: id=%d: %v", id, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return nil, false
	}
	return restaurant, true
}

func queryInt(r *http.Request, key string) int {
	n, _ := strconv.Atoi(r.URL.Query().Get(key))
	return n
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
