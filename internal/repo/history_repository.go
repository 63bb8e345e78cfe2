package repo

import (
	"context"

	"github.com/rogerio-castellano/stock-keeper/internal/models"
)

type HistoryRepository interface {
	Log(ctx context.Context, entry models.HistoryEntry) error
	GetByProductID(ctx context.Context, productID int) ([]models.HistoryEntry, error)
}
