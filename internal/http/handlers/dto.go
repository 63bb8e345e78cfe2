package handlers

import "github.com/rogerio-castellano/stock-keeper/internal/models"

// ProductRequest is the body of create and of each import record.
// Absent or null fields are stored as NULL.
type ProductRequest struct {
	Name     *string `json:"name"`
	Unit     *string `json:"unit"`
	Category *string `json:"category"`
	Brand    *string `json:"brand"`
	Stock    *int    `json:"stock"`
	Status   *string `json:"status"`
	Image    *string `json:"image"`
}

// UpdateProductRequest carries the six editable fields; all are replaced.
type UpdateProductRequest struct {
	Name     *string `json:"name"`
	Unit     *string `json:"unit"`
	Category *string `json:"category"`
	Brand    *string `json:"brand"`
	Stock    *int    `json:"stock"`
	Status   *string `json:"status"`
}

type ImportProductsRequest struct {
	Products []ProductRequest `json:"products"`
}

type CreateProductResult struct {
	Message   string `json:"message"`
	ProductID int    `json:"productId"`
}

type UpdateProductResult struct {
	Message   string `json:"message"`
	UpdatedID int    `json:"updatedId"`
	Changes   int64  `json:"changes"`
}

type ImportProductsResult struct {
	Message  string `json:"message"`
	Inserted int    `json:"inserted"`
	Skipped  int    `json:"skipped"`
}

type ExportProductsResult struct {
	Products []models.Product `json:"products"`
}

type HistoryResult struct {
	History []models.HistoryEntry `json:"history"`
}

type DeleteAllResult struct {
	Message string `json:"message"`
	Changes int64  `json:"changes"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func (req ProductRequest) toModel() models.Product {
	return models.Product{
		Name:     req.Name,
		Unit:     req.Unit,
		Category: req.Category,
		Brand:    req.Brand,
		Stock:    req.Stock,
		Status:   req.Status,
		Image:    req.Image,
	}
}

func (req UpdateProductRequest) toModel(id int) models.Product {
	return models.Product{
		ID:       id,
		Name:     req.Name,
		Unit:     req.Unit,
		Category: req.Category,
		Brand:    req.Brand,
		Stock:    req.Stock,
		Status:   req.Status,
	}
}
