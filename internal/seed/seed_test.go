package seed

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/vietanh2810/cafe-pulse-api/internal/domain"
	"github.com/vietanh2810/cafe-pulse-api/internal/repository"
	"github.com/vietanh2810/cafe-pulse-api/internal/repository/dao/memory"
)

const catalogJSON = `{
  "venues": [
    {
      "id": "rise",
      "name": "Rise Campus Café",
      "subtitle": "Ground floor",
      "items": [
        {"name": "Espresso", "category": "drink", "stock": 50, "max_stock": 70, "price": "2.20"},
        {"id": "bagel", "name": "Sesame Bagel", "category": "snack", "stock": 10, "max_stock": 40, "available": false, "price": "3.00"}
      ]
    },
    {
      "id": "embers",
      "name": "Embers",
      "items": [
        {"name": "Scone", "category": "pastry", "stock": 12, "max_stock": 40, "price": "2.80"}
      ]
    }
  ]
}`

func TestParseJSON(t *testing.T) {
	f, err := ParseJSON(strings.NewReader(catalogJSON))
	require.NoError(t, err)
	require.Len(t, f.Venues, 2)

	venue, items := f.Venues[0].Domain()
	assert.Equal(t, domain.Venue{ID: "rise", Name: "Rise Campus Café", Subtitle: "Ground floor"}, venue)
	require.Len(t, items, 2)
	assert.True(t, items[0].Available)
	assert.False(t, items[1].Available)
	assert.True(t, decimal.RequireFromString("2.2").Equal(items[0].Price))

	_, err = ParseJSON(strings.NewReader(`{"venues": [{"id": "rise", "colour": "red"}]}`))
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = ParseJSON(strings.NewReader(`{"venues": [`))
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestLoad(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	catalog := repository.NewCatalogRepository(store)

	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(path, []byte(catalogJSON), 0o600))
	require.NoError(t, LoadFile(ctx, catalog, path))

	venues, err := catalog.GetVenues(ctx)
	require.NoError(t, err)
	require.Len(t, venues, 2)
	assert.Equal(t, "embers", venues[0].ID)

	items, err := catalog.GetItems(ctx, "rise")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "espresso", items[0].ID)
	assert.Equal(t, "bagel", items[1].ID)
}

func TestLoadStopsAtRejectedVenue(t *testing.T) {
	ctx := context.Background()
	catalog := repository.NewCatalogRepository(memory.NewStore())

	f := File{Venues: []Venue{
		{ID: "rise", Name: "Rise", Items: []Item{{Name: "Espresso", Category: "drink", Stock: 1, MaxStock: 2}}},
		{ID: "embers", Name: "Embers", Items: []Item{{Name: "Scone", Category: "pastry", Stock: 5, MaxStock: 2}}},
	}}

	err := Load(ctx, catalog, f)
	assert.ErrorIs(t, err, repository.ErrInvalidInput)

	venues, err := catalog.GetVenues(ctx)
	require.NoError(t, err)
	require.Len(t, venues, 1)
	assert.Equal(t, "rise", venues[0].ID)
}

func TestLoadFileMissing(t *testing.T) {
	err := LoadFile(context.Background(), repository.NewCatalogRepository(memory.NewStore()), filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func workbook(t *testing.T, rows ...[]interface{}) *bytes.Buffer {
	t.Helper()

	book := excelize.NewFile()
	defer book.Close()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, book.SetSheetRow("Sheet1", cell, &row))
	}

	buf, err := book.WriteToBuffer()
	require.NoError(t, err)

	return buf
}

func TestParseXLSX(t *testing.T) {
	buf := workbook(t,
		[]interface{}{"Name", "Category", "Stock", "Max Stock", "Available", "Price", "ID"},
		[]interface{}{"Espresso", "Drink", 50, 70, "yes", "2.20", ""},
		[]interface{}{},
		[]interface{}{"Sesame Bagel", "snack", 10, 40, "no", "3", "bagel"},
		[]interface{}{"Tap Water", "drink", 5, 5, "", "", ""},
	)

	items, err := ParseXLSX(buf)
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, "Espresso", items[0].Name)
	assert.Equal(t, domain.CategoryDrink, items[0].Category)
	assert.Equal(t, 50, items[0].Stock)
	assert.Equal(t, 70, items[0].MaxStock)
	assert.True(t, items[0].Available)
	assert.Empty(t, items[0].ID)

	assert.Equal(t, "bagel", items[1].ID)
	assert.False(t, items[1].Available)
	assert.True(t, decimal.NewFromInt(3).Equal(items[1].Price))

	assert.True(t, items[2].Available)
	assert.True(t, items[2].Price.IsZero())
}

func TestParseXLSXErrors(t *testing.T) {
	tests := []struct {
		name    string
		rows    [][]interface{}
		wantMsg string
	}{
		{
			name:    "missing column",
			rows:    [][]interface{}{{"name", "category", "stock", "available", "price"}},
			wantMsg: `missing column "max_stock"`,
		},
		{
			name: "bad stock",
			rows: [][]interface{}{
				{"name", "category", "stock", "max_stock", "available", "price"},
				{"Espresso", "drink", "lots", 70, "yes", "2.20"},
			},
			wantMsg: "row 2: stock",
		},
		{
			name: "bad availability",
			rows: [][]interface{}{
				{"name", "category", "stock", "max_stock", "available", "price"},
				{"Espresso", "drink", 1, 70, "yes", "2.20"},
				{"Latte", "drink", 1, 70, "maybe", "2.20"},
			},
			wantMsg: "row 3: available",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseXLSX(workbook(t, tt.rows...))
			require.ErrorIs(t, err, ErrMalformed)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}

	_, err := ParseXLSX(strings.NewReader("not a workbook"))
	assert.ErrorIs(t, err, ErrMalformed)
}
