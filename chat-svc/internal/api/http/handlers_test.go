package httpapi_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "overcooked-chatbot/chat-svc/internal/api/http"
	"overcooked-chatbot/chat-svc/internal/domain"
	"overcooked-chatbot/chat-svc/internal/mocks"
	"overcooked-chatbot/chat-svc/internal/service"
	"overcooked-chatbot/chat-svc/internal/storage"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type handlerMocks struct {
	chat   *mocks.ChatbotInterface
	menu   *mocks.MenuServiceInterface
	orders *mocks.OrderServiceInterface
}

func serve(t *testing.T, setup func(m handlerMocks), req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	m := handlerMocks{
		chat:   mocks.NewChatbotInterface(t),
		menu:   mocks.NewMenuServiceInterface(t),
		orders: mocks.NewOrderServiceInterface(t),
	}
	setup(m)

	handler := httpapi.NewHandler(m.chat, m.menu, m.orders)
	r := mux.NewRouter()
	handler.RegisterRoutes(r)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	return body
}

func TestChatHandler(t *testing.T) {
	rest := &domain.Restaurant{ID: 1, Name: "Spice Route"}
	cart := &domain.Cart{ID: 5, RestaurantID: 1, Status: domain.CartStatusPending, Items: []domain.LineItem{}}

	tests := []struct {
		name      string
		body      string
		setupMock func(m handlerMocks)
		wantCode  int
		check     func(t *testing.T, body map[string]interface{})
	}{
		{
			name: "applies intent",
			body: `{"restaurant_id":1,"session_id":"sess-1","intent":{"intent":"ADD_ITEM","item_name":"Butter Naan","quantity":2,"confidence":0.9}}`,
			setupMock: func(m handlerMocks) {
				m.chat.On("Restaurant", mock.Anything, 1).Return(rest, nil).Once()
				m.chat.On("ApplyIntent", mock.Anything, rest, "sess-1", mock.MatchedBy(func(intent domain.IntentRecord) bool {
					return intent.Kind == domain.IntentAddItem && intent.ItemName == "Butter Naan" && intent.Quantity == json.Number("2")
				})).Return(&domain.ChatResponse{Reply: "done", Cart: cart, Payload: map[string]interface{}{}}, nil).Once()
			},
			wantCode: http.StatusOK,
			check: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "done", body["reply"])
				assert.Equal(t, "sess-1", body["session_id"])
				assert.NotNil(t, body["order"])
				assert.NotContains(t, body, domain.PayloadMenuItems)
			},
		},
		{
			name: "mints a session id",
			body: `{"restaurant_id":1,"intent":{"intent":"SHOW_MENU"}}`,
			setupMock: func(m handlerMocks) {
				m.chat.On("Restaurant", mock.Anything, 1).Return(rest, nil).Once()
				m.chat.On("ApplyIntent", mock.Anything, rest, mock.MatchedBy(func(s string) bool {
					_, err := uuid.Parse(s)
					return err == nil
				}), mock.Anything).Return(&domain.ChatResponse{
					Reply:   "menu",
					Cart:    cart,
					Payload: map[string]interface{}{domain.PayloadMenuItems: []domain.MenuSuggestion{{ID: 4, Name: "Butter Naan", Price: "45.00"}}},
				}, nil).Once()
			},
			wantCode: http.StatusOK,
			check: func(t *testing.T, body map[string]interface{}) {
				assert.NotEmpty(t, body["session_id"])
				assert.Len(t, body[domain.PayloadMenuItems], 1)
			},
		},
		{
			name: "forwards engine suggestions as sent",
			body: `{"restaurant_id":1,"session_id":"sess-1","intent":{"intent":"SEARCH_ITEM","reply":"Found these:","suggestions":[{"id":1,"name":"Naan","price":45.0}]}}`,
			setupMock: func(m handlerMocks) {
				m.chat.On("Restaurant", mock.Anything, 1).Return(rest, nil).Once()
				m.chat.On("ApplyIntent", mock.Anything, rest, "sess-1", mock.MatchedBy(func(intent domain.IntentRecord) bool {
					return len(intent.Suggestions) == 1 && intent.Suggestions[0]["price"] == json.Number("45.0")
				})).Return(func(_ context.Context, _ *domain.Restaurant, _ string, intent domain.IntentRecord) (*domain.ChatResponse, error) {
					return &domain.ChatResponse{
						Reply:   intent.Reply,
						Cart:    cart,
						Payload: map[string]interface{}{domain.PayloadMenuItems: intent.Suggestions},
					}, nil
				}).Once()
			},
			wantCode: http.StatusOK,
			check: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "Found these:", body["reply"])
				items := body[domain.PayloadMenuItems].([]interface{})
				require.Len(t, items, 1)
				assert.Equal(t, float64(45), items[0].(map[string]interface{})["price"])
			},
		},
		{
			name: "not linked to a restaurant",
			body: `{"restaurant_id":99,"session_id":"sess-1","intent":{"intent":"SHOW_CART"}}`,
			setupMock: func(m handlerMocks) {
				m.chat.On("Restaurant", mock.Anything, 99).Return(nil, domain.ErrNotLinkedToRestaurant).Once()
			},
			wantCode: http.StatusBadRequest,
			check: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "This user is not linked to any restaurant.", body["detail"])
			},
		},
		{
			name:      "invalid JSON",
			body:      `{invalid}`,
			setupMock: func(m handlerMocks) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "storage failure",
			body: `{"restaurant_id":1,"session_id":"sess-1","intent":{"intent":"SHOW_CART"}}`,
			setupMock: func(m handlerMocks) {
				m.chat.On("Restaurant", mock.Anything, 1).Return(rest, nil).Once()
				m.chat.On("ApplyIntent", mock.Anything, rest, "sess-1", mock.Anything).Return(nil, domain.ErrCartContention).Once()
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/chatbot/simple/", bytes.NewBufferString(testCase.body))
			req.Header.Set("Content-Type", "application/json")

			w := serve(t, testCase.setupMock, req)

			assert.Equal(t, testCase.wantCode, w.Code)
			if testCase.check != nil {
				testCase.check(t, decodeBody(t, w))
			}
		})
	}
}

func TestCategoriesHandler(t *testing.T) {
	rest := &domain.Restaurant{ID: 1}
	req := httptest.NewRequest("GET", "/api/chatbot/categories/?restaurant_id=1", nil)

	w := serve(t, func(m handlerMocks) {
		m.chat.On("Restaurant", mock.Anything, 1).Return(rest, nil).Once()
		m.menu.On("Categories", mock.Anything, 1).Return([]string{"Breads", "Curries"}, nil).Once()
	}, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []interface{}{"Breads", "Curries"}, decodeBody(t, w)["categories"])
}

func TestPopularItemsHandler(t *testing.T) {
	rest := &domain.Restaurant{ID: 1}
	naan := domain.MenuItem{ID: 4, RestaurantID: 1, Name: "Butter Naan", Price: decimal.RequireFromString("45"), Category: "Breads", Available: true}
	req := httptest.NewRequest("GET", "/api/chatbot/popular-items/?restaurant_id=1&limit=3", nil)

	w := serve(t, func(m handlerMocks) {
		m.chat.On("Restaurant", mock.Anything, 1).Return(rest, nil).Once()
		m.menu.On("Popular", mock.Anything, 1, 3).Return([]domain.PopularItem{{MenuItem: naan, Sold: 12}}, nil).Once()
	}, req)

	assert.Equal(t, http.StatusOK, w.Code)
	items := decodeBody(t, w)["items"].([]interface{})
	require.Len(t, items, 1)
	item := items[0].(map[string]interface{})
	assert.Equal(t, "Butter Naan", item["name"])
	assert.Equal(t, "45.00", item["price"])
	assert.Equal(t, float64(12), item["sold"])
}

func TestOrderHandlers(t *testing.T) {
	confirmed := &domain.Cart{ID: 7, Status: domain.CartStatusConfirmed, Total: decimal.RequireFromString("90")}

	tests := []struct {
		name      string
		path      string
		setupMock func(m handlerMocks)
		wantCode  int
		wantType  string
	}{
		{
			name: "confirmed order",
			path: "/api/orders/7",
			setupMock: func(m handlerMocks) {
				m.orders.On("Get", mock.Anything, 7).Return(confirmed, nil).Once()
				m.orders.On("QRLink", 7).Return("/api/orders/7/qrcode").Once()
			},
			wantCode: http.StatusOK,
			wantType: "application/json",
		},
		{
			name: "missing order",
			path: "/api/orders/8",
			setupMock: func(m handlerMocks) {
				m.orders.On("Get", mock.Anything, 8).Return(nil, domain.ErrCartNotFound).Once()
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "qr code",
			path: "/api/orders/7/qrcode",
			setupMock: func(m handlerMocks) {
				m.orders.On("QRCode", mock.Anything, 7).Return([]byte("png"), nil).Once()
			},
			wantCode: http.StatusOK,
			wantType: "image/png",
		},
		{
			name: "qr code for pending order",
			path: "/api/orders/7/qrcode",
			setupMock: func(m handlerMocks) {
				m.orders.On("QRCode", mock.Anything, 7).Return(nil, domain.ErrOrderNotConfirmed).Once()
			},
			wantCode: http.StatusConflict,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			w := serve(t, testCase.setupMock, httptest.NewRequest("GET", testCase.path, nil))

			assert.Equal(t, testCase.wantCode, w.Code)
			if testCase.wantType != "" {
				assert.Equal(t, testCase.wantType, w.Header().Get("Content-Type"))
			}
		})
	}
}

func TestHealthCheck(t *testing.T) {
	w := serve(t, func(m handlerMocks) {}, httptest.NewRequest("GET", "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "chat-svc", decodeBody(t, w)["service"])
}

// A full conversation through the router, services and the memory store.
func TestChatFlowWithMemoryStore(t *testing.T) {
	store := storage.NewMemoryStore()
	rest := store.AddRestaurant("Spice Route")
	store.PutMenuItem(domain.MenuItem{RestaurantID: rest.ID, Name: "Butter Naan", Price: decimal.RequireFromString("45"), Category: "Breads", Available: true})

	menu := service.NewMenuService(store, store, nil, nil)
	chat := service.NewChatbot(store, store, menu, nil)
	orders := service.NewOrderService(store, service.DefaultQRGenerator{BaseURL: "http://localhost:8083"})
	router := httpapi.NewRouter(httpapi.NewHandler(chat, menu, orders))

	send := func(intent string) map[string]interface{} {
		body := `{"restaurant_id":1,"session_id":"sess-1","intent":` + intent + `}`
		req := httptest.NewRequest("POST", "/api/chatbot/simple/", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		return decodeBody(t, w)
	}

	body := send(`{"intent":"ADD_ITEM","item_name":"butter naan","quantity":"2","confidence":0.95}`)
	assert.Equal(t, "✅ Added 2 × Butter Naan to your cart.\nCurrent total: ₹90.00", body["reply"])

	body = send(`{"intent":"REMOVE_ITEM","item_name":"Butter Naan","quantity":0.5}`)
	assert.Equal(t, "Removed 1 × Butter Naan from your cart. Current total: ₹45.00", body["reply"])

	body = send(`{"intent":"CONFIRM_ORDER"}`)
	assert.Equal(t, "✅ Order #1 confirmed! Total: ₹45.00\n\nThank you for your order!", body["reply"])

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/orders/1/qrcode", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Body.Bytes())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/restaurants/1/menu", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody(t, w)["items"], 1)
}
