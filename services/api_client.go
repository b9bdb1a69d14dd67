package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"storefront/models"
)

const productsCacheKey = "products_list"

// APIClient is the single gateway to the commerce API. Every call funnels
// through one http.Client whose transport attaches the bearer token carried
// in the request context.
type APIClient struct {
	baseURL  string
	http     *http.Client
	cache    *redis.Client
	cacheTTL time.Duration
}

func NewAPIClient(baseURL string, timeout time.Duration, cache *redis.Client, cacheTTL time.Duration) *APIClient {
	return &APIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   timeout,
			Transport: &bearerTransport{},
		},
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

type tokenContextKey struct{}

// WithToken marks a context so the gateway attaches the given bearer token to
// the outgoing request.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenContextKey{}, token)
}

type bearerTransport struct {
	base http.RoundTripper
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if token, ok := req.Context().Value(tokenContextKey{}).(string); ok && token != "" {
		req = req.Clone(req.Context())
		req.Header.Set("Authorization", "Bearer "+token)
	}
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(req)
}

// APIError is a non-2xx reply from the commerce API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("commerce api: %d %s", e.StatusCode, e.Message)
}

func (c *APIClient) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Message: apiMessage(data)}
	}

	if out != nil && len(data) > 0 {
		return json.Unmarshal(data, out)
	}
	return nil
}

// apiMessage digs a human-readable message out of an error body. The API is
// not consistent about the field name either.
func apiMessage(data []byte) string {
	var body struct {
		Message string `json:"message"`
		Detail  string `json:"detail"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &body); err == nil {
		for _, msg := range []string{body.Message, body.Detail, body.Error} {
			if msg != "" {
				return msg
			}
		}
	}
	return "Request failed"
}

// ListProducts returns the catalogue, served from the Redis cache when one is
// configured.
func (c *APIClient) ListProducts(ctx context.Context) ([]models.Product, error) {
	if c.cache != nil {
		cached, err := c.cache.Get(ctx, productsCacheKey).Bytes()
		if err == nil {
			var products []models.Product
			if err := json.Unmarshal(cached, &products); err == nil {
				return products, nil
			}
		}
	}

	var wire []wireProduct
	if err := c.do(ctx, http.MethodGet, "/products/", nil, &wire); err != nil {
		return nil, err
	}

	products := make([]models.Product, 0, len(wire))
	for _, w := range wire {
		products = append(products, w.normalize())
	}

	if c.cache != nil {
		if data, err := json.Marshal(products); err == nil {
			if err := c.cache.Set(ctx, productsCacheKey, data, c.cacheTTL).Err(); err != nil {
				log.Println("products cache write failed:", err)
			}
		}
	}
	return products, nil
}

func (c *APIClient) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	var wire wireProduct
	if err := c.do(ctx, http.MethodGet, "/products/"+id+"/", nil, &wire); err != nil {
		return nil, err
	}
	product := wire.normalize()
	return &product, nil
}

type createOrderRequest struct {
	PaymentMethodID string             `json:"payment_method_id"`
	AddressID       string             `json:"address_id,omitempty"`
	Notes           string             `json:"notes,omitempty"`
	Items           []models.CartEntry `json:"items"`
}

func (c *APIClient) CreateOrder(ctx context.Context, req models.CheckoutRequest, items []models.CartEntry) (*models.Order, error) {
	body := createOrderRequest{
		PaymentMethodID: req.PaymentMethodID,
		AddressID:       req.AddressID,
		Notes:           req.Notes,
		Items:           items,
	}
	var wire wireOrder
	if err := c.do(ctx, http.MethodPost, "/orders/", body, &wire); err != nil {
		return nil, err
	}
	order := wire.normalize()
	return &order, nil
}

func (c *APIClient) ListOrders(ctx context.Context) ([]models.Order, error) {
	var wire []wireOrder
	if err := c.do(ctx, http.MethodGet, "/orders/", nil, &wire); err != nil {
		return nil, err
	}
	orders := make([]models.Order, 0, len(wire))
	for _, w := range wire {
		orders = append(orders, w.normalize())
	}
	return orders, nil
}

func (c *APIClient) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	var wire wireOrder
	if err := c.do(ctx, http.MethodGet, "/orders/"+id+"/", nil, &wire); err != nil {
		return nil, err
	}
	order := wire.normalize()
	return &order, nil
}

type wireLogin struct {
	Token       string   `json:"token"`
	AccessToken string   `json:"access_token"`
	User        wireUser `json:"user"`
}

func (w wireLogin) token() string {
	if w.Token != "" {
		return w.Token
	}
	return w.AccessToken
}

func (c *APIClient) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	var wire wireLogin
	if err := c.do(ctx, http.MethodPost, "/auth/login/", req, &wire); err != nil {
		return nil, err
	}
	return &models.LoginResponse{Token: wire.token(), User: wire.User.normalize()}, nil
}

func (c *APIClient) Register(ctx context.Context, req models.RegisterRequest) (*models.LoginResponse, error) {
	var wire wireLogin
	if err := c.do(ctx, http.MethodPost, "/authentication/register/", req, &wire); err != nil {
		return nil, err
	}
	return &models.LoginResponse{Token: wire.token(), User: wire.User.normalize()}, nil
}

func (c *APIClient) ListAddresses(ctx context.Context) ([]models.Address, error) {
	var wire []wireAddress
	if err := c.do(ctx, http.MethodGet, "/addresses/", nil, &wire); err != nil {
		return nil, err
	}
	addresses := make([]models.Address, 0, len(wire))
	for _, w := range wire {
		addresses = append(addresses, w.normalize())
	}
	return addresses, nil
}

func (c *APIClient) CreateAddress(ctx context.Context, req models.AddressRequest) (*models.Address, error) {
	var wire wireAddress
	if err := c.do(ctx, http.MethodPost, "/addresses/", req, &wire); err != nil {
		return nil, err
	}
	address := wire.normalize()
	return &address, nil
}

func (c *APIClient) UpdateAddress(ctx context.Context, id string, req models.AddressRequest) (*models.Address, error) {
	var wire wireAddress
	if err := c.do(ctx, http.MethodPut, "/addresses/"+id+"/", req, &wire); err != nil {
		return nil, err
	}
	address := wire.normalize()
	return &address, nil
}

func (c *APIClient) DeleteAddress(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/addresses/"+id+"/", nil, nil)
}

func (c *APIClient) GetProfile(ctx context.Context) (*models.Profile, error) {
	var profile models.Profile
	if err := c.do(ctx, http.MethodGet, "/users/profile/", nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *APIClient) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (*models.Profile, error) {
	var profile models.Profile
	if err := c.do(ctx, http.MethodPut, "/users/profile/", req, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}
