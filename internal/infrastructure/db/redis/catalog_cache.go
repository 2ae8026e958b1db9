package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/controlempleados/employee-records/internal/api/metrics"
	"github.com/controlempleados/employee-records/internal/core/domain"
)

const catalogTTL = time.Hour

const (
	genderKey        = "catalog:genders"
	maritalStatusKey = "catalog:marital_statuses"
)

// CatalogCache is a Redis-backed read-through cache for the read-mostly
// Gender and MaritalStatus lookup catalogs.
type CatalogCache struct {
	client *redis.Client
}

// NewCatalogCache creates a CatalogCache wrapping the given Redis client.
func NewCatalogCache(client *redis.Client) *CatalogCache {
	return &CatalogCache{client: client}
}

// GetGenders returns the cached gender catalog, or (nil, nil) on a miss.
func (c *CatalogCache) GetGenders(ctx context.Context) ([]*domain.Gender, error) {
	var genders []*domain.Gender
	if ok, err := c.get(ctx, genderKey, &genders); !ok {
		return nil, err
	}
	return genders, nil
}

// SetGenders stores the gender catalog with the catalog TTL.
func (c *CatalogCache) SetGenders(ctx context.Context, genders []*domain.Gender) error {
	return c.set(ctx, genderKey, genders)
}

// GetMaritalStatuses returns the cached catalog, or (nil, nil) on a miss.
func (c *CatalogCache) GetMaritalStatuses(ctx context.Context) ([]*domain.MaritalStatus, error) {
	var statuses []*domain.MaritalStatus
	if ok, err := c.get(ctx, maritalStatusKey, &statuses); !ok {
		return nil, err
	}
	return statuses, nil
}

// SetMaritalStatuses stores the catalog with the catalog TTL.
func (c *CatalogCache) SetMaritalStatuses(ctx context.Context, statuses []*domain.MaritalStatus) error {
	return c.set(ctx, maritalStatusKey, statuses)
}

func (c *CatalogCache) get(ctx context.Context, key string, dest any) (bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.CatalogCacheTotal.WithLabelValues("miss").Inc()
			return false, nil
		}
		return false, fmt.Errorf("catalog cache get %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("catalog cache decode %s: %w", key, err)
	}
	metrics.CatalogCacheTotal.WithLabelValues("hit").Inc()
	return true, nil
}

func (c *CatalogCache) set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("catalog cache encode %s: %w", key, err)
	}
	return c.client.Set(ctx, key, raw, catalogTTL).Err()
}
