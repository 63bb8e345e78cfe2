package handlers

import (
	"net/http"
)

// GetHistoryHandler godoc
// @Summary Get product stock history
// @Description Returns history entries in storage order. An unknown product yields an empty list.
// @Tags history
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} HistoryResult
// @Failure 500 {object} ErrorResponse
// @Router /api/products/{id}/history [get]
func (s *Server) GetHistoryHandler(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	history, err := s.history.GetByProductID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	respond(w, HistoryResult{History: history})
}
