package repo

import (
	"context"

	"github.com/rogerio-castellano/stock-keeper/internal/models"
)

// ProductRepository defines the interface for product data operations.
type ProductRepository interface {
	// GetAll returns every product in storage order.
	GetAll(ctx context.Context) ([]models.Product, error)
	// Create inserts p and returns the generated id. A duplicate name is an error.
	Create(ctx context.Context, p models.Product) (int, error)
	// Update replaces the editable fields of the product with p.ID. A missing
	// id is not an error; the result reports zero changes.
	Update(ctx context.Context, p models.Product) (UpdateResult, error)
	// InsertIfAbsent inserts p unless a product with the same name exists.
	// It reports whether a row was inserted.
	InsertIfAbsent(ctx context.Context, p models.Product) (bool, error)
	// DeleteAll removes every product, along with the history rows that
	// reference them, and returns the number of products removed.
	DeleteAll(ctx context.Context) (int64, error)
}

// UpdateResult describes the effect of an Update.
type UpdateResult struct {
	Changes  int64
	OldStock *int
	NewStock *int
}

// StockChanged reports whether the update touched a row and moved its stock.
func (u UpdateResult) StockChanged() bool {
	if u.Changes == 0 || u.OldStock == nil || u.NewStock == nil {
		return false
	}
	return *u.OldStock != *u.NewStock
}
