package repo

import (
	"context"
	"sync"

	"github.com/rogerio-castellano/stock-keeper/internal/models"
)

// InMemoryProductRepository is an in-memory implementation of ProductRepository
// that enforces the same constraints as the products table.
type InMemoryProductRepository struct {
	mu       sync.RWMutex
	products []models.Product
	nextID   int
	history  *InMemoryHistoryRepository
}

// NewInMemoryProductRepository creates a new instance of InMemoryProductRepository.
// history may be nil; when set, DeleteAll also clears it.
func NewInMemoryProductRepository(history *InMemoryHistoryRepository) *InMemoryProductRepository {
	return &InMemoryProductRepository{
		products: []models.Product{},
		nextID:   1,
		history:  history,
	}
}

func checkRequired(p models.Product) error {
	if p.Name == nil {
		return notNullError("name")
	}
	if p.Stock == nil {
		return notNullError("stock")
	}
	return nil
}

// indexByName must be called with mu held.
func (r *InMemoryProductRepository) indexByName(name string, skipID int) int {
	for i, p := range r.products {
		if p.ID != skipID && p.Name != nil && *p.Name == name {
			return i
		}
	}
	return -1
}

// insert must be called with mu held.
func (r *InMemoryProductRepository) insert(p models.Product) models.Product {
	p.ID = r.nextID
	r.nextID++
	r.products = append(r.products, p)
	return p
}

// GetAll retrieves a copy of all products in insertion order.
func (r *InMemoryProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

// Create adds a new product to the repository.
func (r *InMemoryProductRepository) Create(ctx context.Context, p models.Product) (int, error) {
	if err := checkRequired(p); err != nil {
		return 0, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexByName(*p.Name, 0) >= 0 {
		return 0, ErrDuplicateName
	}
	return r.insert(p).ID, nil
}

// Update replaces the editable fields of an existing product. The image is
// not editable and is kept.
// A missing id matches nothing and is not checked for required fields.
func (r *InMemoryProductRepository) Update(ctx context.Context, p models.Product) (UpdateResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.products {
		if existing.ID != p.ID {
			continue
		}
		if err := checkRequired(p); err != nil {
			return UpdateResult{}, err
		}
		if r.indexByName(*p.Name, p.ID) >= 0 {
			return UpdateResult{}, ErrDuplicateName
		}
		old := existing.Stock
		p.Image = existing.Image
		r.products[i] = p
		return UpdateResult{Changes: 1, OldStock: old, NewStock: p.Stock}, nil
	}
	return UpdateResult{}, nil
}

// InsertIfAbsent adds p unless its name is already taken.
func (r *InMemoryProductRepository) InsertIfAbsent(ctx context.Context, p models.Product) (bool, error) {
	if err := checkRequired(p); err != nil {
		return false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexByName(*p.Name, 0) >= 0 {
		return false, nil
	}
	r.insert(p)
	return true, nil
}

// DeleteAll removes every product and the linked history.
func (r *InMemoryProductRepository) DeleteAll(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := int64(len(r.products))
	if r.history != nil {
		ids := make(map[int]struct{}, len(r.products))
		for _, p := range r.products {
			ids[p.ID] = struct{}{}
		}
		r.history.removeProducts(ids)
	}
	r.products = []models.Product{}
	return removed, nil
}
