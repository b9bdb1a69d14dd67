package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/services"
	"storefront/store"
)

func newCheckoutRouter(t *testing.T, backend http.Handler) (*gin.Engine, *store.Sessions) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	server := httptest.NewServer(backend)
	t.Cleanup(server.Close)

	api := services.NewAPIClient(server.URL, 5*time.Second, nil, 0)
	sessions := store.NewSessions(store.FileFactory(t.TempDir()))
	ctrl := &CheckoutController{API: api, Sessions: sessions, Catalog: services.NewCatalog(api)}

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("session_id", "test-session")
		c.Set("api_token", "tok123")
		c.Next()
	})
	router.POST("/checkout", ctrl.CreateOrder)
	return router, sessions
}

func TestCheckoutRequiresPaymentMethod(t *testing.T) {
	router, _ := newCheckoutRouter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("backend should not be called")
	}))

	w := doJSON(router, http.MethodPost, "/checkout", `{"address_id": "a1"}`)

	assert.Equal(t, 400, w.Code)
}

func TestCheckoutRejectsEmptyCart(t *testing.T) {
	router, _ := newCheckoutRouter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("backend should not be called")
	}))

	w := doJSON(router, http.MethodPost, "/checkout", `{"payment_method_id": "pm_abc"}`)

	assert.Equal(t, 400, w.Code)
}

func TestCheckoutPlacesOrderAndClearsCart(t *testing.T) {
	var gotAuth string
	var gotBody map[string]interface{}
	router, sessions := newCheckoutRouter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/orders/", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": 41, "status": "pending", "total_amount": "54.50"}`))
	}))

	cart := sessions.Cart("test-session")
	require.NoError(t, cart.Add("p1", 5))
	require.NoError(t, cart.Add("p2", 1))

	w := doJSON(router, http.MethodPost, "/checkout", `{"payment_method_id": "pm_abc"}`)

	require.Equal(t, 201, w.Code)
	assert.Equal(t, "Bearer tok123", gotAuth)
	assert.Equal(t, "pm_abc", gotBody["payment_method_id"])
	assert.Len(t, gotBody["items"], 2)
	assert.Equal(t, 0, cart.Len())
}

func TestCheckoutKeepsCartOnBackendFailure(t *testing.T) {
	router, sessions := newCheckoutRouter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"detail": "Card declined"}`))
	}))

	cart := sessions.Cart("test-session")
	require.NoError(t, cart.Add("p1", 2))

	w := doJSON(router, http.MethodPost, "/checkout", `{"payment_method_id": "pm_abc"}`)

	assert.Equal(t, http.StatusPaymentRequired, w.Code)
	assert.Contains(t, w.Body.String(), "Card declined")
	assert.Equal(t, 2, cart.Quantity("p1"))
}
