package cartControllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sr-Das-Ofertas/probotsv2/cart"
	"github.com/Sr-Das-Ofertas/probotsv2/models"
)

type memKV struct {
	data map[string]string
}

func (m *memKV) Get(_ context.Context, key string) (string, error) {
	v, ok := m.data[key]
	if !ok {
		return "", cart.ErrNotFound
	}
	return v, nil
}

func (m *memKV) Set(_ context.Context, key, value string, _ time.Duration) error {
	m.data[key] = value
	return nil
}


func cartRouter(store *cart.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("cart_id", "cart_test")
	})
	r.GET("/cart", GetCart(store))
	r.PUT("/cart/items", UpdateCartItem(store))
	r.DELETE("/cart/items/:product_id", DeleteCartItem(store))
	r.DELETE("/cart", ClearCart(store))
	return r
}

func seedStore(t *testing.T) *cart.Store {
	t.Helper()
	store := cart.NewStore(&memKV{data: map[string]string{}}, time.Hour)
	_, err := store.AddItem(context.Background(), "cart_test",
		models.Product{ID: "p1", Name: "Chuteira X", Price: 9990}, 2, "42")
	require.NoError(t, err)
	return store
}

func decodeCart(t *testing.T, w *httptest.ResponseRecorder) models.Cart {
	t.Helper()
	var c models.Cart
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &c))
	return c
}

func TestGetCart(t *testing.T) {
	r := cartRouter(seedStore(t))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cart", nil))

	require.Equal(t, http.StatusOK, w.Code)
	c := decodeCart(t, w)
	require.Len(t, c.Items, 1)
	assert.Equal(t, int64(19980), c.Total)
	assert.Equal(t, 2, c.ItemCount)
}

func TestUpdateCartItemQuantity(t *testing.T) {
	r := cartRouter(seedStore(t))

	body, _ := json.Marshal(UpdateItemInput{ProductID: "p1", Quantity: 5, Size: "42"})
	req := httptest.NewRequest(http.MethodPut, "/cart/items", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	c := decodeCart(t, w)
	require.Len(t, c.Items, 1)
	assert.Equal(t, 5, c.Items[0].Quantity)
	assert.Equal(t, int64(5*9990), c.Total)
}

func TestUpdateCartItemZeroRemovesLine(t *testing.T) {
	r := cartRouter(seedStore(t))

	body, _ := json.Marshal(UpdateItemInput{ProductID: "p1", Quantity: 0, Size: "42"})
	req := httptest.NewRequest(http.MethodPut, "/cart/items", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	c := decodeCart(t, w)
	assert.Empty(t, c.Items)
	assert.Zero(t, c.Total)
}

func TestDeleteCartItemRespectsSize(t *testing.T) {
	store := seedStore(t)
	_, err := store.AddItem(context.Background(), "cart_test",
		models.Product{ID: "p1", Name: "Chuteira X", Price: 9990}, 1, "43")
	require.NoError(t, err)
	r := cartRouter(store)

	// deleting size 43 keeps the size 42 line
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/cart/items/p1?size=43", nil))

	require.Equal(t, http.StatusOK, w.Code)
	c := decodeCart(t, w)
	require.Len(t, c.Items, 1)
	assert.Equal(t, "42", c.Items[0].Size)
}

func TestClearCart(t *testing.T) {
	r := cartRouter(seedStore(t))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/cart", nil))

	require.Equal(t, http.StatusOK, w.Code)
	c := decodeCart(t, w)
	assert.Empty(t, c.Items)
	assert.Zero(t, c.ItemCount)
}

func TestCartHandlersRequireSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := cart.NewStore(&memKV{data: map[string]string{}}, time.Hour)
	r := gin.New()
	r.GET("/cart", GetCart(store)) // no session middleware, no cart_id

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cart", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
