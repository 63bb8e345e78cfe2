package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/rogerio-castellano/stock-keeper/internal/repo"
	"github.com/sirupsen/logrus"
)

var errMissingProducts = errors.New("products must be an array")

// failureKind labels a store error for the logs.
func failureKind(err error) string {
	switch {
	case errors.Is(err, repo.ErrMissingField):
		return "missing_field"
	case errors.Is(err, repo.ErrDuplicateName):
		return "duplicate_name"
	default:
		return "store"
	}
}

// ImportProductsHandler godoc
// @Summary Import products
// @Description Inserts each record whose name is not taken yet, one at a time. The first failing record aborts the import; records before it stay inserted.
// @Tags import
// @Accept json
// @Produce json
// @Param products body ImportProductsRequest true "Products to import"
// @Success 200 {object} ImportProductsResult
// @Failure 500 {object} ErrorResponse
// @Router /api/products/import [post]
func (s *Server) ImportProductsHandler(w http.ResponseWriter, r *http.Request) {
	var req ImportProductsRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.Products == nil {
		writeError(w, errMissingProducts)
		return
	}

	log := s.log.WithFields(logrus.Fields{
		"import_id": uuid.NewString(),
		"records":   len(req.Products),
	})

	var inserted, skipped int
	for i, rec := range req.Products {
		ok, err := s.products.InsertIfAbsent(r.Context(), rec.toModel())
		if err != nil {
			log.WithError(err).WithFields(logrus.Fields{
				"record":   i,
				"kind":     failureKind(err),
				"inserted": inserted,
				"skipped":  skipped,
			}).Warn("import aborted")
			writeError(w, err)
			return
		}
		if ok {
			inserted++
		} else {
			skipped++
		}
	}

	log.WithFields(logrus.Fields{"inserted": inserted, "skipped": skipped}).Info("import finished")

	respond(w, ImportProductsResult{
		Message:  "Products imported successfully",
		Inserted: inserted,
		Skipped:  skipped,
	})
}
