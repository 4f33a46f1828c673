package apiclient

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticTokens struct {
	token string
	ok    bool
}

func (s staticTokens) Current() (string, bool) { return s.token, s.ok }

// fakeAPI is a storefront backend stand-in that records what the client
// actually sent.
type fakeAPI struct {
	mu            sync.Mutex
	lastAuth      string
	lastRequestID string
	lastBody      []byte
}

func (f *fakeAPI) capture(c echo.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastAuth = c.Request().Header.Get("Authorization")
	f.lastRequestID = c.Request().Header.Get("X-Request-ID")
	if c.Request().Body != nil {
		f.lastBody, _ = io.ReadAll(c.Request().Body)
	}
}

func newTestServer(t *testing.T) (*fakeAPI, *httptest.Server) {
	t.Helper()
	f := &fakeAPI{}

	e := echo.New()
	e.GET("/products", func(c echo.Context) error {
		f.capture(c)
		return c.JSON(http.StatusOK, []map[string]any{
			{"id": 1, "name": "Widget", "price": 9.99},
			{"id": 2, "name": "Gadget", "description": "shiny", "price": 1.5, "stock": 4},
		})
	})
	e.GET("/orders", func(c echo.Context) error {
		f.capture(c)
		return c.JSON(http.StatusOK, []map[string]any{
			{"id": 7, "status": "NEW", "items": []map[string]any{{"productId": 1, "quantity": 2}}},
		})
	})
	e.POST("/orders", func(c echo.Context) error {
		f.capture(c)
		return c.JSON(http.StatusCreated, map[string]any{
			"id": 8, "status": "NEW",
			"items": []map[string]any{{"productId": 1, "quantity": 3}},
		})
	})
	e.POST("/products", func(c echo.Context) error {
		f.capture(c)
		return c.JSON(http.StatusCreated, map[string]any{"id": 3, "name": "Sample", "price": 9.99})
	})
	e.POST("/auth/login", func(c echo.Context) error {
		f.capture(c)
		return c.String(http.StatusOK, "tok-123")
	})
	e.POST("/auth/register", func(c echo.Context) error {
		f.capture(c)
		return c.JSON(http.StatusOK, map[string]any{"id": 1})
	})
	e.GET("/broken", func(c echo.Context) error {
		f.capture(c)
		return c.JSON(http.StatusInternalServerError, map[string]any{"message": "boom"})
	})

	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return f, srv
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestClient_AttachesBearerWhenTokenPresent(t *testing.T) {
	t.Parallel()

	f, srv := newTestServer(t)
	c := NewClient(srv.URL, 0, staticTokens{token: "abc", ok: true}, testLogger())

	_, err := c.ListProducts(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Bearer abc", f.lastAuth)
	assert.NotEmpty(t, f.lastRequestID)
}

func TestClient_NoAuthHeaderWithoutToken(t *testing.T) {
	t.Parallel()

	f, srv := newTestServer(t)
	c := NewClient(srv.URL, 0, staticTokens{}, testLogger())

	_, err := c.ListProducts(context.Background())
	require.NoError(t, err)

	assert.Empty(t, f.lastAuth)
}

func TestClient_ListProducts(t *testing.T) {
	t.Parallel()

	_, srv := newTestServer(t)
	c := NewClient(srv.URL, 0, staticTokens{}, testLogger())

	products, err := c.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, 1, products[0].ID)
	assert.Equal(t, "Widget", products[0].Name)
	assert.Equal(t, "9.99", products[0].Price.StringFixed(2))
	require.NotNil(t, products[1].Stock)
	assert.Equal(t, 4, *products[1].Stock)
}

func TestClient_CreateOrder_BodyShape(t *testing.T) {
	t.Parallel()

	f, srv := newTestServer(t)
	c := NewClient(srv.URL, 0, staticTokens{}, testLogger())

	order, err := c.CreateOrder(context.Background(), []OrderItemInput{{ProductID: 1, Quantity: 3}})
	require.NoError(t, err)
	assert.Equal(t, 8, order.ID)

	assert.JSONEq(t, `{"orderItems":[{"productId":1,"quantity":3}]}`, string(f.lastBody))
}

func TestClient_Login_ReturnsRawToken(t *testing.T) {
	t.Parallel()

	f, srv := newTestServer(t)
	c := NewClient(srv.URL, 0, staticTokens{}, testLogger())

	token, err := c.Login(context.Background(), "user@example.com", "password")
	require.NoError(t, err)
	assert.Equal(t, "tok-123", token)
	assert.JSONEq(t, `{"email":"user@example.com","password":"password"}`, string(f.lastBody))
}

func TestClient_Register_SendsRole(t *testing.T) {
	t.Parallel()

	f, srv := newTestServer(t)
	c := NewClient(srv.URL, 0, staticTokens{}, testLogger())

	err := c.Register(context.Background(), RegisterInput{
		Name: "Test User", Email: "user@example.com", Password: "password", Role: RoleUser,
	})
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"name":"Test User","email":"user@example.com","password":"password","role":"USER"}`,
		string(f.lastBody))
}

func TestClient_CreateProduct_BodyShape(t *testing.T) {
	t.Parallel()

	f, srv := newTestServer(t)
	c := NewClient(srv.URL, 0, staticTokens{}, testLogger())

	_, err := c.CreateProduct(context.Background(), ProductInput{
		Name:          "Sample",
		Description:   "Test product",
		Price:         decimal.NewFromFloat(9.99),
		StockQuantity: 100,
		Category:      "GENERAL",
		Rating:        RatingGood,
	})
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"name":"Sample","description":"Test product","price":9.99,"stockQuantity":100,"category":"GENERAL","imageUrl":"","rating":"GOOD"}`,
		string(f.lastBody))
}

func TestClient_ServerErrorPayload(t *testing.T) {
	t.Parallel()

	_, srv := newTestServer(t)
	c := NewClient(srv.URL, 0, staticTokens{}, testLogger())

	var out []Product
	err := c.doJSON(context.Background(), http.MethodGet, "/broken", nil, &out)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Equal(t, "boom", apiErr.Message)
}

func TestClient_TransportError(t *testing.T) {
	t.Parallel()

	// Nothing listens here.
	c := NewClient("http://127.0.0.1:1", 0, staticTokens{}, testLogger())

	_, err := c.ListProducts(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr), "transport failures are not APIErrors")
}
