package storefront

import (
	"bytes"
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cartcraft/backend/internal/cart"
	"github.com/cartcraft/backend/internal/domain"
	"github.com/cartcraft/backend/pkg/e"
)

type nopLogger struct{}

func (nopLogger) Infof(string, ...any)         {}
func (nopLogger) Warnf(string, ...any)         {}
func (nopLogger) Errorf(error, string, ...any) {}

// memStore — корзина в памяти для тестов.
type memStore struct {
	items []cart.Item
}

func (s *memStore) Load() []cart.Item      { return s.items }
func (s *memStore) Save(items []cart.Item) { s.items = items }
func (s *memStore) Clear()                 { s.items = nil }

// deadServerURL возвращает адрес, на котором гарантированно никто не слушает.
func deadServerURL(t *testing.T) string {
	t.Helper()

	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	return url
}

func newOfflineClient(t *testing.T) *Client {
	t.Helper()

	return NewClient(deadServerURL(t), time.Second, nopLogger{})
}

func TestGetPaginatedProducts_BackendResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products", r.URL.Path)
		assert.Equal(t, "3", r.URL.Query().Get("limit"))
		assert.Equal(t, "0", r.URL.Query().Get("skip"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": 200,
			"message": "Products fetched successfully",
			"data": [{"id": 42, "name": "Backend Product", "price": 5.5}],
			"success": true
		}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, nopLogger{})

	products, err := client.GetPaginatedProducts(context.Background(), 3, 0)
	require.NoError(t, err)

	require.Len(t, products, 1)
	assert.Equal(t, int64(42), products[0].ID)
	assert.Equal(t, "Backend Product", products[0].Name)
}

func TestGetPaginatedProducts_FallsBackToMock(t *testing.T) {
	client := newOfflineClient(t)

	products, err := client.GetPaginatedProducts(context.Background(), 2, 11)
	require.NoError(t, err)

	require.Len(t, products, 1)
	assert.Equal(t, "Coffee Maker Deluxe", products[0].Name)
}

func TestGetPaginatedProducts_MockHugeLimit(t *testing.T) {
	client := newOfflineClient(t)

	products, err := client.GetPaginatedProducts(context.Background(), math.MaxInt64, 1)
	require.NoError(t, err)

	require.Len(t, products, 11)
	assert.Equal(t, int64(2), products[0].ID)
}

func TestGetProductByID_FallsBackToMock(t *testing.T) {
	client := newOfflineClient(t)

	product, err := client.GetProductByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Smartphone X1", product.Name)

	_, err = client.GetProductByID(context.Background(), 999)
	assert.ErrorIs(t, err, e.ErrProductNotFound)
}

func TestCreateOrder_NetworkFailureSynthesizesMockOrder(t *testing.T) {
	client := newOfflineClient(t)

	order, err := client.CreateOrder(context.Background(), []int64{1, 1, 2, 999})
	require.NoError(t, err)

	assert.True(t, order.Mock)
	assert.Equal(t, string(domain.OrderStatusPending), order.Status)
	require.Len(t, order.Products, 2)
	assert.Equal(t, int64(2), order.Products[0].Quantity)
	assert.Equal(t, []int64{1, 1, 2}, order.ProductIDs)
	assert.Equal(t, 1549.97, order.TotalAmount)
}

func TestCreateOrder_RejectionSurfaced(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{
			"status": 404,
			"success": false,
			"error": "Not Found",
			"message": "no valid products found for the given IDs"
		}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, nopLogger{})

	_, err := client.CreateOrder(context.Background(), []int64{777})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "order rejected")
	assert.Contains(t, err.Error(), "no valid products found")
}

func TestMockOrder_AllUnknown(t *testing.T) {
	_, err := buildMockOrder([]int64{777, 888})
	assert.ErrorIs(t, err, e.ErrNoValidProducts)
}

func TestCheckout_SuccessClearsCart(t *testing.T) {
	store := &memStore{items: []cart.Item{
		{Product: domain.Product{ID: 1, Name: "Smartphone X1", Price: 699.99}, Quantity: 2},
	}}

	var out bytes.Buffer
	app := NewApp(newOfflineClient(t), store, nopLogger{}, &out)

	err := app.Run(context.Background(), []string{"checkout"})
	require.NoError(t, err)

	assert.Empty(t, store.Load())
	assert.Contains(t, out.String(), "Smartphone X1 (x2)")
	assert.Contains(t, out.String(), "order synthesized locally")
}

func TestCheckout_RejectionKeepsCart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"status": 400, "success": false, "error": "Bad Request", "message": "productIds must be a non-empty array"}`))
	}))
	defer srv.Close()

	store := &memStore{items: []cart.Item{
		{Product: domain.Product{ID: 1, Name: "Smartphone X1", Price: 699.99}, Quantity: 1},
	}}

	var out bytes.Buffer
	app := NewApp(NewClient(srv.URL, time.Second, nopLogger{}), store, nopLogger{}, &out)

	err := app.Run(context.Background(), []string{"checkout"})
	require.Error(t, err)

	require.Len(t, store.Load(), 1)
	assert.Contains(t, out.String(), "Order failed")
}

func TestCheckout_EmptyCart(t *testing.T) {
	store := &memStore{}

	var out bytes.Buffer
	app := NewApp(newOfflineClient(t), store, nopLogger{}, &out)

	err := app.Run(context.Background(), []string{"checkout"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "nothing to checkout")
}

func TestCartCommands(t *testing.T) {
	store := &memStore{}

	var out bytes.Buffer
	app := NewApp(newOfflineClient(t), store, nopLogger{}, &out)

	// add дважды один товар: количество растёт, позиция одна
	require.NoError(t, app.Run(context.Background(), []string{"cart", "add", "1"}))
	require.NoError(t, app.Run(context.Background(), []string{"cart", "add", "1"}))
	require.Len(t, store.Load(), 1)
	assert.Equal(t, int64(2), store.Load()[0].Quantity)

	require.NoError(t, app.Run(context.Background(), []string{"cart", "set", "1", "5"}))
	assert.Equal(t, int64(5), store.Load()[0].Quantity)

	require.NoError(t, app.Run(context.Background(), []string{"cart", "rm", "1"}))
	assert.Empty(t, store.Load())
}

func TestRun_UnknownCommand(t *testing.T) {
	app := NewApp(newOfflineClient(t), &memStore{}, nopLogger{}, &bytes.Buffer{})

	err := app.Run(context.Background(), []string{"frobnicate"})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "unknown command"))
}
