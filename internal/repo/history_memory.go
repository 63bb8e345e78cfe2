package repo

import (
	"context"
	"sync"

	"github.com/rogerio-castellano/stock-keeper/internal/models"
)

type InMemoryHistoryRepository struct {
	mu      sync.RWMutex
	entries []models.HistoryEntry
	nextID  int
}

func NewInMemoryHistoryRepository() *InMemoryHistoryRepository {
	return &InMemoryHistoryRepository{
		entries: []models.HistoryEntry{},
		nextID:  1,
	}
}

// Log appends a history entry
func (r *InMemoryHistoryRepository) Log(ctx context.Context, e models.HistoryEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e.ID = r.nextID
	r.nextID++
	r.entries = append(r.entries, e)
	return nil
}

// GetByProductID returns the entries for productID in insertion order
func (r *InMemoryHistoryRepository) GetByProductID(ctx context.Context, productID int) ([]models.HistoryEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	history := []models.HistoryEntry{}
	for _, e := range r.entries {
		if e.ProductID != nil && *e.ProductID == productID {
			history = append(history, e)
		}
	}
	return history, nil
}

func (r *InMemoryHistoryRepository) removeProducts(ids map[int]struct{}) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.entries[:0]
	for _, e := range r.entries {
		if e.ProductID != nil {
			if _, gone := ids[*e.ProductID]; gone {
				continue
			}
		}
		kept = append(kept, e)
	}
	r.entries = kept
}
