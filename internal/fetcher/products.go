// Package fetcher parses product catalog files (CSV, XLSX) for import into
// the live catalog store.
package fetcher

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/havenlink/advisor/internal/model"
)

// Expected header names, matched case-insensitively after trimming.
// id, brand, and description are optional; everything else is required.
var requiredColumns = []string{"name", "category", "base_price"}

// ReadProductsCSV parses a product CSV with a header row.
func ReadProductsCSV(r io.Reader) ([]model.Product, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, eris.Wrap(err, "fetcher: read csv")
	}
	return rowsToProducts(rows)
}

// ReadProductsXLSX parses the first sheet of a product XLSX workbook with a
// header row.
func ReadProductsXLSX(path string) ([]model.Product, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "fetcher: open xlsx")
	}
	if len(f.Sheets) == 0 {
		return nil, eris.New("fetcher: xlsx has no sheets")
	}

	var rows [][]string
	for _, row := range f.Sheets[0].Rows {
		cells := make([]string, len(row.Cells))
		for i, cell := range row.Cells {
			cells[i] = cell.String()
		}
		rows = append(rows, cells)
	}
	return rowsToProducts(rows)
}

// rowsToProducts maps header-indexed rows onto products. Blank rows are
// skipped; a bad price aborts the import so a typo can't poison pricing.
func rowsToProducts(rows [][]string) ([]model.Product, error) {
	if len(rows) == 0 {
		return nil, eris.New("fetcher: no rows")
	}

	cols := make(map[string]int)
	for i, name := range rows[0] {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range requiredColumns {
		if _, ok := cols[required]; !ok {
			return nil, eris.Errorf("fetcher: missing required column %q", required)
		}
	}

	cell := func(row []string, name string) string {
		idx, ok := cols[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	var products []model.Product
	for n, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}

		basePrice, err := parsePrice(cell(row, "base_price"))
		if err != nil {
			return nil, eris.Wrapf(err, "fetcher: row %d base_price", n+2)
		}
		goodPrice, err := parsePrice(cell(row, "good_price"))
		if err != nil {
			return nil, eris.Wrapf(err, "fetcher: row %d good_price", n+2)
		}
		betterPrice, err := parsePrice(cell(row, "better_price"))
		if err != nil {
			return nil, eris.Wrapf(err, "fetcher: row %d better_price", n+2)
		}
		bestPrice, err := parsePrice(cell(row, "best_price"))
		if err != nil {
			return nil, eris.Wrapf(err, "fetcher: row %d best_price", n+2)
		}

		products = append(products, model.Product{
			ID:          cell(row, "id"),
			Name:        cell(row, "name"),
			Description: cell(row, "description"),
			Category:    model.ParseCategory(cell(row, "category")),
			Brand:       cell(row, "brand"),
			BasePrice:   basePrice,
			GoodPrice:   goodPrice,
			BetterPrice: betterPrice,
			BestPrice:   bestPrice,
			Active:      true,
		})
	}
	return products, nil
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// parsePrice accepts "1299", "1,299.50", and "$1299". Empty means 0.
func parsePrice(s string) (float64, error) {
	s = strings.TrimSpace(strings.TrimPrefix(s, "$"))
	if s == "" {
		return 0, nil
	}
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, eris.Wrapf(err, "parse price %q", s)
	}
	return v, nil
}
