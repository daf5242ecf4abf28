// Package cart persists one shopping cart per storefront session. The cart
// state machine itself lives on models.Cart; the store wraps it with the
// load-mutate-save cycle against a key-value slot, mirroring the single
// localStorage slot the web client used to own.
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Sr-Das-Ofertas/probotsv2/models"
)

const keyPrefix = "cart:"

// Store loads and saves carts keyed by session id. Every mutating method
// persists the recalculated cart before returning it.
type Store struct {
	kv  KV
	ttl time.Duration
}

func NewStore(kv KV, ttl time.Duration) *Store {
	return &Store{kv: kv, ttl: ttl}
}

// Load reads the persisted cart for a session. A missing slot or a blob
// that no longer parses both come back as an empty cart; corruption is
// logged and silently discarded, never surfaced to the customer.
func (s *Store) Load(ctx context.Context, sessionID string) models.Cart {
	raw, err := s.kv.Get(ctx, keyPrefix+sessionID)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Error().Err(err).Str("session", sessionID).Msg("failed to load cart")
		}
		return models.Cart{}
	}

	var c models.Cart
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		log.Error().Err(err).Str("session", sessionID).Msg("discarding corrupt cart state")
		return models.Cart{}
	}
	return c
}

func (s *Store) save(ctx context.Context, sessionID string, c models.Cart) error {
	raw, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, keyPrefix+sessionID, string(raw), s.ttl)
}

// AddItem merges the product into the session cart and persists the result.
func (s *Store) AddItem(ctx context.Context, sessionID string, product models.Product, quantity int, size string) (models.Cart, error) {
	c := s.Load(ctx, sessionID)
	c.AddItem(product, quantity, size)
	if err := s.save(ctx, sessionID, c); err != nil {
		return models.Cart{}, err
	}
	return c, nil
}

// RemoveItem drops the matching line and persists the result.
func (s *Store) RemoveItem(ctx context.Context, sessionID, productID, size string) (models.Cart, error) {
	c := s.Load(ctx, sessionID)
	c.RemoveItem(productID, size)
	if err := s.save(ctx, sessionID, c); err != nil {
		return models.Cart{}, err
	}
	return c, nil
}

// UpdateQuantity sets the matching line's quantity (zero removes it) and
// persists the result.
func (s *Store) UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int, size string) (models.Cart, error) {
	c := s.Load(ctx, sessionID)
	c.UpdateQuantity(productID, quantity, size)
	if err := s.save(ctx, sessionID, c); err != nil {
		return models.Cart{}, err
	}
	return c, nil
}

// Clear resets the session cart to empty and persists it.
func (s *Store) Clear(ctx context.Context, sessionID string) (models.Cart, error) {
	c := models.Cart{}
	if err := s.save(ctx, sessionID, c); err != nil {
		return models.Cart{}, err
	}
	return c, nil
}
