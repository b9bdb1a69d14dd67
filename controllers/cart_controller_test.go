package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/models"
	"storefront/services"
	"storefront/store"
)

type stubFetcher struct {
	products map[string]models.Product
}

func (f *stubFetcher) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, &services.APIError{StatusCode: 404, Message: "Not found."}
	}
	return &p, nil
}

func price(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func newCartRouter(t *testing.T, fetcher services.ProductFetcher) (*gin.Engine, *store.Sessions) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sessions := store.NewSessions(store.FileFactory(t.TempDir()))
	ctrl := &CartController{Sessions: sessions, Catalog: services.NewCatalog(fetcher)}

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("session_id", "test-session")
		c.Next()
	})
	router.GET("/cart", ctrl.GetCart)
	router.POST("/cart/items", ctrl.AddItem)
	router.PATCH("/cart/items/:productId", ctrl.UpdateItem)
	router.DELETE("/cart/items/:productId", ctrl.RemoveItem)
	router.DELETE("/cart", ctrl.ClearCart)
	return router, sessions
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAddItemDefaultsToQuantityOne(t *testing.T) {
	router, sessions := newCartRouter(t, &stubFetcher{})

	w := doJSON(router, http.MethodPost, "/cart/items", `{"product_id": "p1"}`)

	assert.Equal(t, 200, w.Code)
	assert.Equal(t, 1, sessions.Cart("test-session").Quantity("p1"))
}

func TestAddItemRejectsNegativeQuantity(t *testing.T) {
	router, sessions := newCartRouter(t, &stubFetcher{})

	w := doJSON(router, http.MethodPost, "/cart/items", `{"product_id": "p1", "quantity": -2}`)

	assert.Equal(t, 400, w.Code)
	assert.Equal(t, 0, sessions.Cart("test-session").Len())
}

func TestAddItemAccumulates(t *testing.T) {
	router, sessions := newCartRouter(t, &stubFetcher{})

	doJSON(router, http.MethodPost, "/cart/items", `{"product_id": "p1", "quantity": 2}`)
	doJSON(router, http.MethodPost, "/cart/items", `{"product_id": "p2", "quantity": 1}`)
	doJSON(router, http.MethodPost, "/cart/items", `{"product_id": "p1", "quantity": 3}`)

	assert.Equal(t, []models.CartEntry{
		{ProductID: "p1", Quantity: 5},
		{ProductID: "p2", Quantity: 1},
	}, sessions.Cart("test-session").Entries())
}

func TestUpdateItemToZeroRemoves(t *testing.T) {
	router, sessions := newCartRouter(t, &stubFetcher{})
	doJSON(router, http.MethodPost, "/cart/items", `{"product_id": "p1", "quantity": 5}`)

	w := doJSON(router, http.MethodPatch, "/cart/items/p1", `{"quantity": 0}`)

	assert.Equal(t, 200, w.Code)
	assert.Equal(t, 0, sessions.Cart("test-session").Len())
}

func TestUpdateItemRequiresQuantityField(t *testing.T) {
	router, _ := newCartRouter(t, &stubFetcher{})

	w := doJSON(router, http.MethodPatch, "/cart/items/p1", `{}`)

	assert.Equal(t, 400, w.Code)
}

func TestGetCartReturnsPricedView(t *testing.T) {
	fetcher := &stubFetcher{products: map[string]models.Product{
		"p1": {ID: "p1", Name: "Mug", Price: price(t, "10.00")},
		"p2": {ID: "p2", Name: "Beans", Price: price(t, "4.50")},
	}}
	router, _ := newCartRouter(t, fetcher)
	doJSON(router, http.MethodPost, "/cart/items", `{"product_id": "p1", "quantity": 5}`)
	doJSON(router, http.MethodPost, "/cart/items", `{"product_id": "p2", "quantity": 1}`)

	w := doJSON(router, http.MethodGet, "/cart", "")
	require.Equal(t, 200, w.Code)

	var resp struct {
		Data models.CartView `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data.Items, 2)
	assert.True(t, resp.Data.Total.Equal(price(t, "54.50")))
}

func TestGetCartSkipsUnresolvedProducts(t *testing.T) {
	fetcher := &stubFetcher{products: map[string]models.Product{
		"p1": {ID: "p1", Price: price(t, "10.00")},
	}}
	router, _ := newCartRouter(t, fetcher)
	doJSON(router, http.MethodPost, "/cart/items", `{"product_id": "p1", "quantity": 2}`)
	doJSON(router, http.MethodPost, "/cart/items", `{"product_id": "ghost", "quantity": 1}`)

	w := doJSON(router, http.MethodGet, "/cart", "")
	require.Equal(t, 200, w.Code)

	var resp struct {
		Data models.CartView `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Data.Total.Equal(price(t, "20.00")))
	assert.Equal(t, []string{"ghost"}, resp.Data.Unresolved)
}

func TestRemoveAndClear(t *testing.T) {
	router, sessions := newCartRouter(t, &stubFetcher{})
	doJSON(router, http.MethodPost, "/cart/items", `{"product_id": "p1", "quantity": 2}`)
	doJSON(router, http.MethodPost, "/cart/items", `{"product_id": "p2", "quantity": 1}`)

	assert.Equal(t, 200, doJSON(router, http.MethodDelete, "/cart/items/p1", "").Code)
	assert.Equal(t, 1, sessions.Cart("test-session").Len())

	// Removing an absent product stays a 200 no-op.
	assert.Equal(t, 200, doJSON(router, http.MethodDelete, "/cart/items/p1", "").Code)

	assert.Equal(t, 200, doJSON(router, http.MethodDelete, "/cart", "").Code)
	assert.Equal(t, 0, sessions.Cart("test-session").Len())
}
