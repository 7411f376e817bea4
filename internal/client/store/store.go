// Package store wraps the gateway with an in-memory cache so the CLI
// stays usable on repeated reads and degrades gracefully when the
// gateway is briefly unreachable. Mutations invalidate exactly the
// cache entries they can affect.
package store

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/avarenkov/stockpos/internal/client/gateway"
	"github.com/avarenkov/stockpos/internal/models"
)

const (
	keyProducts    = "products"
	keyLowStock    = "lowStockProducts"
	keySettings    = "settings"
	keySalesPrefix = "sales:"
	salesKeyFormat = "sales:%d:%d"
)

type Store struct {
	gw gateway.Gateway

	mu    sync.Mutex
	cache map[string]any
}

func New(gw gateway.Gateway) *Store {
	return &Store{gw: gw, cache: make(map[string]any)}
}

func (s *Store) get(key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.cache[key]
	return v, ok
}

func (s *Store) put(key string, v any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache[key] = v
}

func (s *Store) invalidate(keys ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range keys {
		delete(s.cache, k)
	}
}

// invalidateSales drops every cached date-range query. Ranges overlap in
// arbitrary ways, so a new sale invalidates them all.
func (s *Store) invalidateSales() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k := range s.cache {
		if strings.HasPrefix(k, keySalesPrefix) {
			delete(s.cache, k)
		}
	}
}

func (s *Store) GetAllProducts(ctx context.Context) ([]*models.Product, error) {
	result, err := s.gw.GetAllProducts(ctx)
	if err != nil {
		if cached, ok := s.get(keyProducts); ok {
			return cached.([]*models.Product), nil
		}
		return nil, err
	}
	s.put(keyProducts, result)
	return result, nil
}

func (s *Store) GetLowStockProducts(ctx context.Context) ([]*models.Product, error) {
	result, err := s.gw.GetLowStockProducts(ctx)
	if err != nil {
		if cached, ok := s.get(keyLowStock); ok {
			return cached.([]*models.Product), nil
		}
		return nil, err
	}
	s.put(keyLowStock, result)
	return result, nil
}

func (s *Store) AddProduct(ctx context.Context, in models.ProductInput) (int64, error) {
	id, err := s.gw.AddProduct(ctx, in)
	if err != nil {
		return 0, err
	}
	s.invalidate(keyProducts, keyLowStock)
	return id, nil
}

func (s *Store) UpdateProduct(ctx context.Context, id int64, in models.ProductInput) error {
	if err := s.gw.UpdateProduct(ctx, id, in); err != nil {
		return err
	}
	s.invalidate(keyProducts, keyLowStock)
	return nil
}

func (s *Store) DeleteProduct(ctx context.Context, id int64) error {
	if err := s.gw.DeleteProduct(ctx, id); err != nil {
		return err
	}
	s.invalidate(keyProducts, keyLowStock)
	return nil
}

func (s *Store) RecordSale(ctx context.Context, productID, quantity int64) (int64, error) {
	id, err := s.gw.RecordSale(ctx, productID, quantity)
	if err != nil {
		return 0, err
	}
	s.invalidate(keyProducts, keyLowStock)
	s.invalidateSales()
	return id, nil
}

func (s *Store) GetSalesByDateRange(ctx context.Context, start, end int64) ([]*models.Sale, error) {
	key := fmt.Sprintf(salesKeyFormat, start, end)
	result, err := s.gw.GetSalesByDateRange(ctx, start, end)
	if err != nil {
		if cached, ok := s.get(key); ok {
			return cached.([]*models.Sale), nil
		}
		return nil, err
	}
	s.put(key, result)
	return result, nil
}

func (s *Store) GetSettings(ctx context.Context) (*models.Settings, error) {
	result, err := s.gw.GetSettings(ctx)
	if err != nil {
		if cached, ok := s.get(keySettings); ok {
			return cached.(*models.Settings), nil
		}
		return nil, err
	}
	s.put(keySettings, result)
	return result, nil
}

func (s *Store) UpdatePin(ctx context.Context, newPin string) error {
	if err := s.gw.UpdatePin(ctx, newPin); err != nil {
		return err
	}
	s.invalidate(keySettings)
	return nil
}

func (s *Store) ToggleLock(ctx context.Context) error {
	if err := s.gw.ToggleLock(ctx); err != nil {
		return err
	}
	s.invalidate(keySettings)
	return nil
}

func (s *Store) RestoreBackup(ctx context.Context, b *models.Backup) error {
	if err := s.gw.RestoreBackup(ctx, b); err != nil {
		return err
	}
	s.mu.Lock()
	s.cache = make(map[string]any)
	s.mu.Unlock()
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.gw.Ping(ctx)
}

func (s *Store) Close() error {
	return s.gw.Close()
}
