package db

import (
	"context"
	"database/sql"
	"fmt"
)

const createProducts = `
CREATE TABLE IF NOT EXISTS products (
	id SERIAL PRIMARY KEY,
	name TEXT UNIQUE NOT NULL,
	unit TEXT,
	category TEXT,
	brand TEXT,
	stock INTEGER NOT NULL,
	status TEXT,
	image TEXT
)`

const createInventoryHistory = `
CREATE TABLE IF NOT EXISTS inventory_history (
	id SERIAL PRIMARY KEY,
	product_id INTEGER REFERENCES products(id),
	old_quantity INTEGER,
	new_quantity INTEGER,
	change_date TEXT,
	user_info TEXT
)`

// EnsureSchema creates the products and inventory_history tables if they do
// not exist yet. products must come first because history references it.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range []string{createProducts, createInventoryHistory} {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create tables: %w", err)
		}
	}
	return nil
}
