package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"

	"github.com/rogerio-castellano/stock-keeper/internal/models"
	"github.com/xuri/excelize/v2"
)

const (
	exportSheet = "Products"
	xlsxMIME    = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var exportHeader = []string{"id", "name", "unit", "category", "brand", "stock", "status", "image"}

// ExportProductsHandler godoc
// @Summary Export all products
// @Description Default format is the JSON envelope accepted back by the import route
// @Tags import
// @Produce json,text/csv,application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param format query string false "Export format (json, csv or xlsx)"
// @Success 200 {object} ExportProductsResult
// @Failure 500 {object} ErrorResponse
// @Router /api/products/export [get]
func (s *Server) ExportProductsHandler(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format != "" && format != "json" && format != "csv" && format != "xlsx" {
		writeError(w, fmt.Errorf("format must be 'json', 'csv' or 'xlsx'"))
		return
	}

	products, err := s.products.GetAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	switch format {
	case "csv":
		s.writeCSV(w, products)
	case "xlsx":
		s.writeXLSX(w, products)
	default:
		respond(w, ExportProductsResult{Products: products})
	}
}

func exportRow(p models.Product) []string {
	str := func(v *string) string {
		if v == nil {
			return ""
		}
		return *v
	}
	stock := ""
	if p.Stock != nil {
		stock = strconv.Itoa(*p.Stock)
	}
	return []string{
		strconv.Itoa(p.ID),
		str(p.Name),
		str(p.Unit),
		str(p.Category),
		str(p.Brand),
		stock,
		str(p.Status),
		str(p.Image),
	}
}

func (s *Server) writeCSV(w http.ResponseWriter, products []models.Product) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="products.csv"`)

	csvWriter := csv.NewWriter(w)
	_ = csvWriter.Write(exportHeader)
	for _, p := range products {
		_ = csvWriter.Write(exportRow(p))
	}
	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		s.log.WithError(err).Warn("failed to write CSV export")
	}
}

func (s *Server) writeXLSX(w http.ResponseWriter, products []models.Product) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		writeError(w, err)
		return
	}

	header := make([]any, len(exportHeader))
	for i, h := range exportHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(exportSheet, "A1", &header); err != nil {
		writeError(w, err)
		return
	}

	for i, p := range products {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			writeError(w, err)
			return
		}
		row := xlsxRow(p)
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			writeError(w, err)
			return
		}
	}

	w.Header().Set("Content-Type", xlsxMIME)
	w.Header().Set("Content-Disposition", `attachment; filename="products.xlsx"`)
	if err := f.Write(w); err != nil {
		s.log.WithError(err).Warn("failed to write XLSX export")
	}
}

// xlsxRow keeps id and stock numeric so spreadsheets can sum them.
func xlsxRow(p models.Product) []any {
	cells := exportRow(p)
	row := make([]any, len(cells))
	for i, c := range cells {
		row[i] = c
	}
	row[0] = p.ID
	if p.Stock != nil {
		row[5] = *p.Stock
	}
	return row
}
