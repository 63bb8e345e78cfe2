package repo

import (
	"context"
	"fmt"

	"github.com/rogerio-castellano/stock-keeper/internal/cache"
	"github.com/rogerio-castellano/stock-keeper/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	productsCacheKey = "stock-keeper:products"
	productsGenKey   = productsCacheKey + ":gen"
)

// listingKey names the cached listing for one generation. Every write bumps
// the generation, so a snapshot loaded before a write lands under a key no
// later read looks at.
func listingKey(gen int64) string {
	return fmt.Sprintf("%s:%d", productsCacheKey, gen)
}

// CachedProductRepository serves GetAll from Redis and moves to a fresh
// listing generation after every write that reached the store.
type CachedProductRepository struct {
	next  ProductRepository
	cache *cache.Cache
	log   logrus.FieldLogger
}

func NewCachedProductRepository(next ProductRepository, c *cache.Cache, log logrus.FieldLogger) *CachedProductRepository {
	return &CachedProductRepository{next: next, cache: c, log: log}
}

func (r *CachedProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	gen, err := r.cache.Counter(ctx, productsGenKey)
	if err != nil {
		r.log.WithError(err).Warn("product cache generation read failed")
		return r.next.GetAll(ctx)
	}
	key := listingKey(gen)

	var products []models.Product
	hit, err := r.cache.Get(ctx, key, &products)
	if err != nil {
		r.log.WithError(err).Warn("product cache read failed")
	}
	if hit && products != nil {
		return products, nil
	}

	products, err = r.next.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if err := r.cache.Set(ctx, key, products); err != nil {
		r.log.WithError(err).Warn("product cache write failed")
	}
	return products, nil
}

func (r *CachedProductRepository) Create(ctx context.Context, p models.Product) (int, error) {
	id, err := r.next.Create(ctx, p)
	if err == nil {
		r.invalidate(ctx)
	}
	return id, err
}

func (r *CachedProductRepository) Update(ctx context.Context, p models.Product) (UpdateResult, error) {
	res, err := r.next.Update(ctx, p)
	if err == nil && res.Changes > 0 {
		r.invalidate(ctx)
	}
	return res, err
}

func (r *CachedProductRepository) InsertIfAbsent(ctx context.Context, p models.Product) (bool, error) {
	inserted, err := r.next.InsertIfAbsent(ctx, p)
	if err == nil && inserted {
		r.invalidate(ctx)
	}
	return inserted, err
}

// DeleteAll invalidates even on error, since the transaction outcome is
// unknown when the commit itself fails.
func (r *CachedProductRepository) DeleteAll(ctx context.Context) (int64, error) {
	removed, err := r.next.DeleteAll(ctx)
	r.invalidate(ctx)
	return removed, err
}

// invalidate must run after the store write has committed.
func (r *CachedProductRepository) invalidate(ctx context.Context) {
	ctx = context.WithoutCancel(ctx)
	gen, err := r.cache.Incr(ctx, productsGenKey)
	if err != nil {
		r.log.WithError(err).Warn("product cache invalidation failed")
		return
	}
	if err := r.cache.Delete(ctx, listingKey(gen-1)); err != nil {
		r.log.WithError(err).Debug("stale product listing not removed")
	}
}
