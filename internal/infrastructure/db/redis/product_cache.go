package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/storefront/orders-api/internal/core/domain"
	"github.com/storefront/orders-api/internal/core/ports"
)

// ProductCache decorates a ProductRepository with a Redis read-through cache.
// Order assembly issues one catalog lookup per product reference, so cached
// hits shave the bulk of the round trips on hot products. Misses of any kind
// (key absent, cache outage, decode failure) fall through to the source; a
// not-found product is never cached.
// Key format: product:<id>
type ProductCache struct {
	client *redis.Client
	source ports.ProductRepository
	ttl    time.Duration
	log    zerolog.Logger
}

func NewProductCache(client *redis.Client, source ports.ProductRepository, ttl time.Duration, log zerolog.Logger) *ProductCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &ProductCache{client: client, source: source, ttl: ttl, log: log}
}

func (c *ProductCache) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	key := "product:" + id

	raw, err := c.client.Get(ctx, key).Bytes()
	if err == nil {
		var product domain.Product
		if json.Unmarshal(raw, &product) == nil {
			return &product, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		c.log.Warn().Err(err).Str("product_id", id).Msg("product cache read failed, falling back to store")
	}

	product, err := c.source.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(product); err == nil {
		if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
			c.log.Warn().Err(err).Str("product_id", id).Msg("product cache write failed")
		}
	}
	return product, nil
}
