package clients

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"

	"github.com/aquago/aquago/internal/app/config"
	appErrors "github.com/aquago/aquago/internal/app/errors"
	"github.com/aquago/aquago/internal/app/models"
)

func newGatewayClientForURL(serviceURL string) *GatewayClientImpl {
	cfg := config.AppConfig{GatewayAddr: serviceURL, ContextTimeoutSec: 5}
	return NewGatewayClient(cfg)
}

func testSession() *models.Session {
	return &models.Session{
		UserUID:   uuid.New(),
		Email:     "ramesh@example.com",
		Token:     "test-token",
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func TestGatewayClient_Login(t *testing.T) {
	router := chi.NewRouter()
	router.Post("/auth/v1/login", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req["email"] == "ramesh@example.com" && req["password"] == "secret" {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"access_token":"issued-token"}`))
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Invalid email or password","code":401}`))
	})
	server := httptest.NewServer(router)
	defer server.Close()
	client := newGatewayClientForURL(server.URL)

	t.Run("valid credentials", func(t *testing.T) {
		token, err := client.Login(context.Background(), "ramesh@example.com", "secret")
		assert.NoError(t, err)
		assert.Equal(t, "issued-token", token)
	})

	t.Run("invalid credentials map the error envelope", func(t *testing.T) {
		_, err := client.Login(context.Background(), "ramesh@example.com", "wrong")
		assert.Error(t, err)
		appErr := appErrors.ResponseCodeError{}
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusUnauthorized, appErr.Code())
		assert.Equal(t, "Invalid email or password", appErr.Msg())
	})
}

func TestGatewayClient_Suppliers(t *testing.T) {
	supplierID := uuid.New()
	session := testSession()

	router := chi.NewRouter()
	router.Get("/rest/v1/water_containers", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{
			"id": "` + supplierID.String() + `",
			"name": "Whitefield Aqua",
			"location": "(77.7500,12.9698)",
			"address": "Whitefield Main Road",
			"capacity": 10000,
			"available_volume": 6000,
			"is_online": true,
			"rates": [{"volume":1000,"price":400},{"volume":2000,"price":750}],
			"contact_number": "9876543210"
		}]`))
	})
	server := httptest.NewServer(router)
	defer server.Close()
	client := newGatewayClientForURL(server.URL)

	suppliers, err := client.Suppliers(context.Background(), session)
	assert.NoError(t, err)
	assert.Len(t, *suppliers, 1)

	supplier := (*suppliers)[0]
	assert.Equal(t, supplierID, supplier.ID)
	assert.Equal(t, orb.Point{77.75, 12.9698}, supplier.Location)
	assert.True(t, supplier.Online)
	assert.Equal(t, []models.RateTier{{Volume: 1000, Price: 400}, {Volume: 2000, Price: 750}}, supplier.Rates)
}

func TestGatewayClient_Suppliers_MalformedLocation(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/rest/v1/water_containers", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":"` + uuid.NewString() + `","name":"Broken","location":"not-a-point","is_online":true,"rates":[]}]`))
	})
	server := httptest.NewServer(router)
	defer server.Close()
	client := newGatewayClientForURL(server.URL)

	_, err := client.Suppliers(context.Background(), testSession())
	assert.Error(t, err)
}

func TestGatewayClient_AddAddress(t *testing.T) {
	session := testSession()
	var got map[string]interface{}

	router := chi.NewRouter()
	router.Post("/rpc/add_user_address", func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	})
	server := httptest.NewServer(router)
	defer server.Close()
	client := newGatewayClientForURL(server.URL)

	err := client.AddAddress(context.Background(), session, "Home", "12 MG Road", orb.Point{77.6096, 12.9756}, true)
	assert.NoError(t, err)
	assert.Equal(t, session.UserUID.String(), got["p_user_id"])
	assert.Equal(t, "Home", got["p_title"])
	assert.Equal(t, "12 MG Road", got["p_address"])
	assert.Equal(t, 12.9756, got["p_latitude"])
	assert.Equal(t, 77.6096, got["p_longitude"])
	assert.Equal(t, true, got["p_is_default"])
}

func TestGatewayClient_CreateDelivery(t *testing.T) {
	session := testSession()
	supplierID := uuid.New()
	orderID := uuid.New()
	var got map[string]interface{}

	router := chi.NewRouter()
	router.Post("/rpc/create_water_delivery", func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"order_id":"` + orderID.String() + `"}`))
	})
	server := httptest.NewServer(router)
	defer server.Close()
	client := newGatewayClientForURL(server.URL)

	order := &models.Order{
		UserUID:       session.UserUID,
		SupplierID:    supplierID,
		Volume:        2000,
		Amount:        750,
		Address:       "12 MG Road",
		Location:      orb.Point{77.6096, 12.9756},
		PaymentMethod: models.PaymentMethodWallet,
	}
	gotID, err := client.CreateDelivery(context.Background(), session, order)
	assert.NoError(t, err)
	assert.Equal(t, orderID, gotID)
	assert.Equal(t, supplierID.String(), got["p_container_id"])
	assert.Equal(t, float64(2000), got["p_volume"])
	assert.Equal(t, 750.0, got["p_amount"])
	assert.Equal(t, "(77.6096,12.9756)", got["p_location"])
	assert.Equal(t, "wallet", got["p_payment_method"])
}

func TestGatewayClient_CancelDelivery(t *testing.T) {
	session := testSession()
	orderID := uuid.New()

	t.Run("successful cancel", func(t *testing.T) {
		router := chi.NewRouter()
		router.Post("/rpc/cancel_water_delivery", func(w http.ResponseWriter, r *http.Request) {
			var got map[string]string
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			assert.Equal(t, orderID.String(), got["p_order_id"])
			w.WriteHeader(http.StatusNoContent)
		})
		server := httptest.NewServer(router)
		defer server.Close()

		err := newGatewayClientForURL(server.URL).CancelDelivery(context.Background(), session, orderID)
		assert.NoError(t, err)
	})

	t.Run("backend rejection carries the envelope message", func(t *testing.T) {
		router := chi.NewRouter()
		router.Post("/rpc/cancel_water_delivery", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			w.Write([]byte(`{"message":"Order already cancelled","code":409}`))
		})
		server := httptest.NewServer(router)
		defer server.Close()

		err := newGatewayClientForURL(server.URL).CancelDelivery(context.Background(), session, orderID)
		assert.Error(t, err)
		appErr := appErrors.ResponseCodeError{}
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, "Order already cancelled", appErr.Msg())
		assert.Equal(t, http.StatusConflict, appErr.Code())
	})
}

func TestGatewayClient_WalletRoundTrip(t *testing.T) {
	session := testSession()

	router := chi.NewRouter()
	router.Get("/rest/v1/user_wallets/balance", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"balance":1000.5}`))
	})
	router.Post("/rpc/add_money_to_wallet", func(w http.ResponseWriter, r *http.Request) {
		var got map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, 500.0, got["p_amount"])
		w.WriteHeader(http.StatusNoContent)
	})
	server := httptest.NewServer(router)
	defer server.Close()
	client := newGatewayClientForURL(server.URL)

	balance, err := client.WalletBalance(context.Background(), session)
	assert.NoError(t, err)
	assert.Equal(t, 1000.5, balance)

	assert.NoError(t, client.TopUpWallet(context.Background(), session, 500))
}

func TestGatewayClient_ChatMessages(t *testing.T) {
	session := testSession()
	deliveryID := uuid.New()
	messageID := uuid.New()

	router := chi.NewRouter()
	router.Post("/rpc/get_chat_messages", func(w http.ResponseWriter, r *http.Request) {
		var got map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, deliveryID.String(), got["p_delivery_id"])
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{
			"id": "` + messageID.String() + `",
			"delivery_id": "` + deliveryID.String() + `",
			"is_supplier": true,
			"message": "10 minutes away",
			"created_at": "2024-03-01T12:00:00Z"
		}]`))
	})
	router.Post("/rpc/send_chat_message", func(w http.ResponseWriter, r *http.Request) {
		var got map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, "On my way", got["p_message"])
		w.WriteHeader(http.StatusNoContent)
	})
	server := httptest.NewServer(router)
	defer server.Close()
	client := newGatewayClientForURL(server.URL)

	messages, err := client.ChatMessages(context.Background(), session, deliveryID)
	assert.NoError(t, err)
	assert.Len(t, *messages, 1)
	assert.Equal(t, messageID, (*messages)[0].ID)
	assert.True(t, (*messages)[0].Supplier)
	assert.Equal(t, "10 minutes away", (*messages)[0].Text)

	assert.NoError(t, client.SendChatMessage(context.Background(), session, deliveryID, "On my way"))
}

func TestGatewayClient_UnreadableErrorEnvelope(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/rest/v1/profile", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	})
	server := httptest.NewServer(router)
	defer server.Close()

	_, err := newGatewayClientForURL(server.URL).CurrentUser(context.Background(), testSession())
	assert.Error(t, err)
	appErr := appErrors.ResponseCodeError{}
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadGateway, appErr.Code())
}
