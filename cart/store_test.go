package cart

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sr-Das-Ofertas/probotsv2/models"
)

type fakeKV struct {
	data map[string]string
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: map[string]string{}}
}

func (f *fakeKV) Get(_ context.Context, key string) (string, error) {
	v, ok := f.data[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (f *fakeKV) Set(_ context.Context, key, value string, _ time.Duration) error {
	f.data[key] = value
	return nil
}


func testProduct() models.Product {
	return models.Product{ID: "p1", Name: "Chuteira X", Price: 9990}
}

func TestStoreLoadMissingSlotIsEmptyCart(t *testing.T) {
	s := NewStore(newFakeKV(), time.Hour)
	c := s.Load(context.Background(), "fresh")
	assert.Empty(t, c.Items)
	assert.Zero(t, c.Total)
	assert.Zero(t, c.ItemCount)
}

func TestStoreLoadCorruptSlotIsEmptyCart(t *testing.T) {
	kv := newFakeKV()
	kv.data["cart:s1"] = `{"items": [not json`

	s := NewStore(kv, time.Hour)
	c := s.Load(context.Background(), "s1")

	assert.Empty(t, c.Items, "corrupt state must reset, not error")
	assert.Zero(t, c.Total)
}

func TestStorePersistsAfterEveryMutation(t *testing.T) {
	kv := newFakeKV()
	s := NewStore(kv, time.Hour)
	ctx := context.Background()

	_, err := s.AddItem(ctx, "s1", testProduct(), 2, "42")
	require.NoError(t, err)

	var persisted models.Cart
	require.NoError(t, json.Unmarshal([]byte(kv.data["cart:s1"]), &persisted))
	assert.Equal(t, int64(2*9990), persisted.Total)
	assert.Equal(t, 2, persisted.ItemCount)

	_, err = s.UpdateQuantity(ctx, "s1", "p1", 5, "42")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(kv.data["cart:s1"]), &persisted))
	assert.Equal(t, 5, persisted.ItemCount)

	_, err = s.RemoveItem(ctx, "s1", "p1", "42")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(kv.data["cart:s1"]), &persisted))
	assert.Empty(t, persisted.Items)
}

func TestStoreSessionsAreIsolated(t *testing.T) {
	s := NewStore(newFakeKV(), time.Hour)
	ctx := context.Background()

	_, err := s.AddItem(ctx, "alice", testProduct(), 1, "")
	require.NoError(t, err)

	bob := s.Load(ctx, "bob")
	assert.Empty(t, bob.Items)

	alice := s.Load(ctx, "alice")
	assert.Len(t, alice.Items, 1)
}

func TestStoreClear(t *testing.T) {
	s := NewStore(newFakeKV(), time.Hour)
	ctx := context.Background()

	_, err := s.AddItem(ctx, "s1", testProduct(), 3, "42")
	require.NoError(t, err)

	c, err := s.Clear(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, c.Items)

	reloaded := s.Load(ctx, "s1")
	assert.Empty(t, reloaded.Items)
	assert.Zero(t, reloaded.Total)
}

func TestStoreMergeSurvivesReload(t *testing.T) {
	s := NewStore(newFakeKV(), time.Hour)
	ctx := context.Background()

	_, err := s.AddItem(ctx, "s1", testProduct(), 1, "42")
	require.NoError(t, err)
	c, err := s.AddItem(ctx, "s1", testProduct(), 2, "42")
	require.NoError(t, err)

	assert.Len(t, c.Items, 1)
	assert.Equal(t, 3, c.Items[0].Quantity)
}
