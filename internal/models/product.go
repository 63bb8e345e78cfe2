package models

// Product represents a row of the products table.
// Optional columns are pointers so that SQL NULL round-trips as JSON null.
type Product struct {
	ID       int     `json:"id"`
	Name     *string `json:"name"`
	Unit     *string `json:"unit"`
	Category *string `json:"category"`
	Brand    *string `json:"brand"`
	Stock    *int    `json:"stock"`
	Status   *string `json:"status"`
	Image    *string `json:"image"`
}
