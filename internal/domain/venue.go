package domain

import (
	"errors"
	"regexp"
	"strings"
	"unicode"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/shopspring/decimal"
)

var identifierExp = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

type Venue struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Subtitle string `json:"subtitle"`
}

func (v *Venue) Validate() error {
	return validation.ValidateStruct(
		v,
		validation.Field(&v.ID, validation.Required, validation.Length(1, 64), validation.Match(identifierExp)),
		validation.Field(&v.Name, validation.Required, validation.RuneLength(1, 100)),
		validation.Field(&v.Subtitle, validation.RuneLength(0, 200)),
	)
}

type Category string

const (
	CategoryDrink   Category = "drink"
	CategorySnack   Category = "snack"
	CategoryMeal    Category = "meal"
	CategoryDessert Category = "dessert"
	CategoryPastry  Category = "pastry"
)

var Categories = []Category{CategoryDrink, CategorySnack, CategoryMeal, CategoryDessert, CategoryPastry}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// CategoryRule accepts only the known menu categories.
func CategoryRule() validation.Rule {
	values := make([]interface{}, len(Categories))
	for i, c := range Categories {
		values[i] = c
	}
	return validation.In(values...)
}

// Item is a catalog entry. Stock is managed outside this service; sales never decrement it.
type Item struct {
	ID        string          `json:"id"`
	VenueID   string          `json:"venue_id"`
	Name      string          `json:"name"`
	Category  Category        `json:"category"`
	Stock     int             `json:"stock"`
	MaxStock  int             `json:"max_stock"`
	Available bool            `json:"available"`
	Price     decimal.Decimal `json:"price"`
}

func (i *Item) Validate() error {
	return validation.ValidateStruct(
		i,
		validation.Field(&i.ID, validation.Required, validation.Length(1, 64), validation.Match(identifierExp)),
		validation.Field(&i.VenueID, validation.Required),
		validation.Field(&i.Name, validation.Required, validation.RuneLength(1, 100)),
		validation.Field(&i.Category, validation.Required, CategoryRule()),
		validation.Field(&i.MaxStock, validation.Required, validation.Min(1)),
		validation.Field(&i.Stock, validation.Min(0), validation.Max(i.MaxStock)),
		validation.Field(&i.Price, validation.By(nonNegativeDecimal)),
	)
}

// Slug derives an item identifier from a display name: "Caramel Latte" -> "caramel-latte".
func Slug(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			b.WriteRune(r)
			dash = false
		case b.Len() > 0 && !dash:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

func nonNegativeDecimal(value interface{}) error {
	d, ok := value.(decimal.Decimal)
	if !ok {
		return errors.New("must be a decimal amount")
	}
	if d.IsNegative() {
		return errors.New("must not be negative")
	}
	return nil
}

func positiveDecimal(value interface{}) error {
	d, ok := value.(decimal.Decimal)
	if !ok {
		return errors.New("must be a decimal amount")
	}
	if !d.IsPositive() {
		return errors.New("must be greater than 0")
	}
	return nil
}
