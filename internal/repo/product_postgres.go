package repo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rogerio-castellano/stock-keeper/internal/models"
)

const defaultQueryTimeout = 3 * time.Second

type PostgresProductRepository struct {
	db      *sql.DB
	timeout time.Duration
}

// NewPostgresProductRepository returns a repository over db. A non-positive
// timeout falls back to three seconds per statement.
func NewPostgresProductRepository(db *sql.DB, timeout time.Duration) *PostgresProductRepository {
	if timeout <= 0 {
		timeout = defaultQueryTimeout
	}
	return &PostgresProductRepository{db: db, timeout: timeout}
}

func (r *PostgresProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	query := `SELECT id, name, unit, category, brand, stock, status, image FROM products`
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Unit, &p.Category, &p.Brand, &p.Stock, &p.Status, &p.Image); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *PostgresProductRepository) Create(ctx context.Context, p models.Product) (int, error) {
	query := `INSERT INTO products (name, unit, category, brand, stock, status, image) VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var id int
	err := r.db.QueryRowContext(ctx, query, p.Name, p.Unit, p.Category, p.Brand, p.Stock, p.Status, p.Image).Scan(&id)
	if err != nil {
		return 0, classify(err)
	}
	return id, nil
}

// Update locks the target row inside the statement so the returned old stock
// is the value the update replaced.
func (r *PostgresProductRepository) Update(ctx context.Context, p models.Product) (UpdateResult, error) {
	query := `
		UPDATE products AS p
		SET name = $1, unit = $2, category = $3, brand = $4, stock = $5, status = $6
		FROM (SELECT id, stock FROM products WHERE id = $7 FOR UPDATE) AS old
		WHERE p.id = old.id
		RETURNING old.stock, p.stock
	`
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, p.Name, p.Unit, p.Category, p.Brand, p.Stock, p.Status, p.ID)
	if err != nil {
		return UpdateResult{}, classify(err)
	}
	defer rows.Close()

	var res UpdateResult
	for rows.Next() {
		if err := rows.Scan(&res.OldStock, &res.NewStock); err != nil {
			return UpdateResult{}, err
		}
		res.Changes++
	}
	if err := rows.Err(); err != nil {
		return UpdateResult{}, classify(err)
	}
	return res, nil
}

func (r *PostgresProductRepository) InsertIfAbsent(ctx context.Context, p models.Product) (bool, error) {
	query := `
		INSERT INTO products (name, unit, category, brand, stock, status, image)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (name) DO NOTHING
	`
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, p.Name, p.Unit, p.Category, p.Brand, p.Stock, p.Status, p.Image)
	if err != nil {
		return false, classify(err)
	}
	inserted, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return inserted > 0, nil
}

// DeleteAll clears history rows for existing products and then the products
// themselves in one transaction.
func (r *PostgresProductRepository) DeleteAll(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM inventory_history WHERE product_id IN (SELECT id FROM products)`); err != nil {
		return 0, err
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM products`)
	if err != nil {
		return 0, err
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return removed, nil
}
