package seed

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/vietanh2810/cafe-pulse-api/internal/domain"
)

const (
	colID        = "id"
	colName      = "name"
	colCategory  = "category"
	colStock     = "stock"
	colMaxStock  = "max_stock"
	colAvailable = "available"
	colPrice     = "price"
)

var requiredColumns = []string{colName, colCategory, colStock, colMaxStock, colAvailable, colPrice}

// ParseXLSX reads items from the first sheet. The first row must name the columns;
// order and case do not matter and the id column is optional. Blank rows are skipped.
func ParseXLSX(r io.Reader) ([]domain.Item, error) {
	book, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	defer book.Close()

	sheets := book.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrMalformed)
	}

	rows, err := book.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: sheet %q is empty", ErrMalformed, sheets[0])
	}

	columns := make(map[string]int, len(rows[0]))
	for i, header := range rows[0] {
		key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(header)), " ", "_")
		columns[key] = i
	}
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", ErrMalformed, name)
		}
	}

	items := make([]domain.Item, 0, len(rows)-1)
	for n, row := range rows[1:] {
		cell := func(name string) string {
			i, ok := columns[name]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		if strings.Join(row, "") == "" {
			continue
		}

		item, err := parseRow(cell)
		if err != nil {
			// n is zero based and skips the header, spreadsheets count from 1.
			return nil, fmt.Errorf("%w: row %d: %v", ErrMalformed, n+2, err)
		}
		items = append(items, item)
	}

	return items, nil
}

func parseRow(cell func(string) string) (domain.Item, error) {
	stock, err := strconv.Atoi(cell(colStock))
	if err != nil {
		return domain.Item{}, fmt.Errorf("stock: %w", err)
	}

	maxStock, err := strconv.Atoi(cell(colMaxStock))
	if err != nil {
		return domain.Item{}, fmt.Errorf("max_stock: %w", err)
	}

	available, err := parseAvailable(cell(colAvailable))
	if err != nil {
		return domain.Item{}, fmt.Errorf("available: %w", err)
	}

	price := decimal.Zero
	if raw := cell(colPrice); raw != "" {
		if price, err = decimal.NewFromString(raw); err != nil {
			return domain.Item{}, fmt.Errorf("price: %w", err)
		}
	}

	return domain.Item{
		ID:        cell(colID),
		Name:      cell(colName),
		Category:  domain.Category(strings.ToLower(cell(colCategory))),
		Stock:     stock,
		MaxStock:  maxStock,
		Available: available,
		Price:     price,
	}, nil
}

func parseAvailable(raw string) (bool, error) {
	switch strings.ToLower(raw) {
	case "", "yes", "y":
		return true, nil
	case "no", "n":
		return false, nil
	}

	return strconv.ParseBool(raw)
}
