package usecase

import (
	"context"
	"sync"
	"time"

	"rfq_console/internal/domain/entities"
	"rfq_console/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// IRawMaterialCatalog is the read-only raw material lookup.
type IRawMaterialCatalog interface {
	List(ctx context.Context) ([]entities.RawMaterial, error)
	Names(ctx context.Context) (map[int64]string, error)
	Name(ctx context.Context, id int64) (string, error)
}

// RawMaterialCatalog caches the backend catalog in process for ttl.
type RawMaterialCatalog struct {
	backend interfaces.IProductBackend
	ttl     time.Duration
	now     func() time.Time

	mu       sync.RWMutex
	items    []entities.RawMaterial
	names    map[int64]string
	loadedAt time.Time
}

var _ IRawMaterialCatalog = (*RawMaterialCatalog)(nil)

func NewRawMaterialCatalog(backend interfaces.IProductBackend, ttl time.Duration) *RawMaterialCatalog {
	return &RawMaterialCatalog{backend: backend, ttl: ttl, now: time.Now}
}

func (c *RawMaterialCatalog) List(ctx context.Context) ([]entities.RawMaterial, error) {
	if err := c.ensure(ctx); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]entities.RawMaterial, len(c.items))
	copy(out, c.items)
	return out, nil
}

func (c *RawMaterialCatalog) Names(ctx context.Context) (map[int64]string, error) {
	if err := c.ensure(ctx); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[int64]string, len(c.names))
	for k, v := range c.names {
		out[k] = v
	}
	return out, nil
}

func (c *RawMaterialCatalog) Name(ctx context.Context, id int64) (string, error) {
	if err := c.ensure(ctx); err != nil {
		return "", err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	name, ok := c.names[id]
	if !ok {
		return "", ErrRawMaterialMissing
	}
	return name, nil
}

func (c *RawMaterialCatalog) ensure(ctx context.Context) error {
	c.mu.RLock()
	fresh := c.names != nil && (c.ttl <= 0 || c.now().Sub(c.loadedAt) < c.ttl)
	c.mu.RUnlock()
	if fresh {
		return nil
	}

	items, err := c.backend.ListRawMaterials(ctx)
	if err != nil {
		zap.L().Warn("[catalog][usecase] raw material load failed", zap.Error(err))
		return err
	}
	names := make(map[int64]string, len(items))
	for _, it := range items {
		names[it.ID] = it.Name
	}

	c.mu.Lock()
	c.items = items
	c.names = names
	c.loadedAt = c.now()
	c.mu.Unlock()
	zap.L().Debug("[catalog][usecase] raw materials loaded", zap.Int("count", len(items)))
	return nil
}
