package handlers

import (
	"net/http"
	"time"

	"github.com/rogerio-castellano/stock-keeper/internal/models"
)

// UserInfoHeader names the caller recorded in history entries.
const UserInfoHeader = "X-User-Info"

// GetProductsHandler godoc
// @Summary List all products
// @Tags products
// @Produce json
// @Success 200 {array} models.Product
// @Failure 500 {object} ErrorResponse
// @Router /api/products [get]
func (s *Server) GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	products, err := s.products.GetAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	respond(w, products)
}

// CreateProductHandler godoc
// @Summary Create a new product
// @Description Adds a product; a duplicate name is reported as an error
// @Tags products
// @Accept json
// @Produce json
// @Param product body ProductRequest true "Product to add"
// @Success 200 {object} CreateProductResult
// @Failure 500 {object} ErrorResponse
// @Router /api/product/new [post]
func (s *Server) CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	id, err := s.products.Create(r.Context(), req.toModel())
	if err != nil {
		writeError(w, err)
		return
	}

	respond(w, CreateProductResult{Message: "Product added successfully", ProductID: id})
}

// UpdateProductHandler godoc
// @Summary Update a product
// @Description Replaces name, unit, category, brand, stock and status. A stock change is recorded in the product history.
// @Tags products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param product body UpdateProductRequest true "Replacement fields"
// @Param X-User-Info header string false "Who made the change"
// @Success 200 {object} UpdateProductResult
// @Failure 500 {object} ErrorResponse
// @Router /api/product/{id} [put]
func (s *Server) UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req UpdateProductRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.products.Update(r.Context(), req.toModel(id))
	if err != nil {
		writeError(w, err)
		return
	}

	if res.StockChanged() {
		s.recordStockChange(r, id, res.OldStock, res.NewStock)
	}

	respond(w, UpdateProductResult{Message: "Product updated successfully", UpdatedID: id, Changes: res.Changes})
}

// recordStockChange appends a history entry; a failure only gets logged.
func (s *Server) recordStockChange(r *http.Request, id int, oldStock, newStock *int) {
	changeDate := s.now().UTC().Format(time.RFC3339)
	entry := models.HistoryEntry{
		ProductID:   &id,
		OldQuantity: oldStock,
		NewQuantity: newStock,
		ChangeDate:  &changeDate,
	}
	if user := r.Header.Get(UserInfoHeader); user != "" {
		entry.UserInfo = &user
	}

	if err := s.history.Log(r.Context(), entry); err != nil {
		s.log.WithError(err).WithField("product_id", id).Warn("could not record stock change")
	}
}

// DeleteAllProductsHandler godoc
// @Summary Delete every product
// @Description Removes all products together with their history
// @Tags products
// @Produce json
// @Success 200 {object} DeleteAllResult
// @Failure 500 {object} ErrorResponse
// @Router /api/products/all [delete]
func (s *Server) DeleteAllProductsHandler(w http.ResponseWriter, r *http.Request) {
	removed, err := s.products.DeleteAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	respond(w, DeleteAllResult{Message: "All products deleted", Changes: removed})
}
