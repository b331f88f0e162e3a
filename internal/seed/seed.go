// Package seed loads venue catalogs from JSON documents and XLSX sheets.
package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/vietanh2810/cafe-pulse-api/internal/domain"
)

var ErrMalformed = errors.New("malformed catalog")

type Catalog interface {
	Seed(ctx context.Context, venue domain.Venue, items []domain.Item) error
}

type File struct {
	Venues []Venue `json:"venues"`
}

type Venue struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Subtitle string `json:"subtitle"`
	Items    []Item `json:"items"`
}

// Item is a catalog row as written by hand. Available defaults to true and ID to a slug of Name.
type Item struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Stock     int             `json:"stock"`
	MaxStock  int             `json:"max_stock"`
	Available *bool           `json:"available"`
	Price     decimal.Decimal `json:"price"`
}

func (v Venue) Domain() (domain.Venue, []domain.Item) {
	items := make([]domain.Item, len(v.Items))
	for i, item := range v.Items {
		items[i] = item.Domain()
	}

	return domain.Venue{ID: v.ID, Name: v.Name, Subtitle: v.Subtitle}, items
}

func (i Item) Domain() domain.Item {
	available := true
	if i.Available != nil {
		available = *i.Available
	}

	return domain.Item{
		ID:        i.ID,
		Name:      i.Name,
		Category:  domain.Category(i.Category),
		Stock:     i.Stock,
		MaxStock:  i.MaxStock,
		Available: available,
		Price:     i.Price,
	}
}

func ParseJSON(r io.Reader) (File, error) {
	var f File

	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return File{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	return f, nil
}

// Load seeds every venue of f. Venues are applied in order and loading stops at the first rejection.
func Load(ctx context.Context, catalog Catalog, f File) error {
	for _, v := range f.Venues {
		venue, items := v.Domain()
		if err := catalog.Seed(ctx, venue, items); err != nil {
			return fmt.Errorf("catalog.Seed(%s) -> %w", v.ID, err)
		}

		zap.L().Info("catalog seeded", zap.String("venue_id", v.ID), zap.Int("items", len(items)))
	}

	return nil
}

func LoadFile(ctx context.Context, catalog Catalog, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("os.Open -> %w", err)
	}
	defer file.Close()

	f, err := ParseJSON(file)
	if err != nil {
		return fmt.Errorf("ParseJSON(%s) -> %w", path, err)
	}

	return Load(ctx, catalog, f)
}
