package repo

import (
	"context"
	"database/sql"
	"time"

	"github.com/rogerio-castellano/stock-keeper/internal/models"
)

type PostgresHistoryRepository struct {
	db      *sql.DB
	timeout time.Duration
}

func NewPostgresHistoryRepository(db *sql.DB, timeout time.Duration) *PostgresHistoryRepository {
	if timeout <= 0 {
		timeout = defaultQueryTimeout
	}
	return &PostgresHistoryRepository{db: db, timeout: timeout}
}

// Log inserts a new inventory history entry
func (r *PostgresHistoryRepository) Log(ctx context.Context, e models.HistoryEntry) error {
	query := `INSERT INTO inventory_history (product_id, old_quantity, new_quantity, change_date, user_info) VALUES ($1, $2, $3, $4, $5)`
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	_, err := r.db.ExecContext(ctx, query, e.ProductID, e.OldQuantity, e.NewQuantity, e.ChangeDate, e.UserInfo)
	return err
}

// GetByProductID returns the history of a product in storage order
func (r *PostgresHistoryRepository) GetByProductID(ctx context.Context, productID int) ([]models.HistoryEntry, error) {
	query := `SELECT id, product_id, old_quantity, new_quantity, change_date, user_info FROM inventory_history WHERE product_id = $1`
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := []models.HistoryEntry{}
	for rows.Next() {
		var e models.HistoryEntry
		if err := rows.Scan(&e.ID, &e.ProductID, &e.OldQuantity, &e.NewQuantity, &e.ChangeDate, &e.UserInfo); err != nil {
			return nil, err
		}
		history = append(history, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}
