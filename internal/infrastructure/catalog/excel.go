// Package catalog parses room catalog spreadsheets into import entries.
package catalog

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/aurora-hotel/inventory-system/internal/core/ports"
)

// Expected column headers. Matching is case-insensitive.
const (
	headerNumber   = "number"
	headerFloor    = "floor"
	headerCategory = "category"
)

// ParseXLSX reads the first sheet of an xlsx workbook and returns one catalog
// entry per data row. The header row must contain Number, Floor and Category
// columns in any order; blank rows are skipped.
func ParseXLSX(r io.Reader) ([]ports.CatalogEntry, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) < 2 {
		return nil, nil
	}

	cols := make(map[string]int)
	for i, h := range rows[0] {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{headerNumber, headerFloor, headerCategory} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("missing column %q", required)
		}
	}

	entries := make([]ports.CatalogEntry, 0, len(rows)-1)
	for i, row := range rows[1:] {
		number := cell(row, cols[headerNumber])
		if number == "" {
			continue
		}

		floorStr := cell(row, cols[headerFloor])
		floor, err := strconv.Atoi(floorStr)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid floor %q", i+2, floorStr)
		}

		entries = append(entries, ports.CatalogEntry{
			Number:   number,
			Floor:    floor,
			Category: strings.ToLower(cell(row, cols[headerCategory])),
		})
	}
	return entries, nil
}

func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
