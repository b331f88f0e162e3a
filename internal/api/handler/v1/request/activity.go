package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/shopspring/decimal"

	"github.com/vietanh2810/cafe-pulse-api/internal/domain"
)

type SubmitRatingRequest struct {
	ItemID  string `json:"item_id"`
	Score   int    `json:"score"`
	Comment string `json:"comment"`
}

func (req *SubmitRatingRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ItemID, validation.Required, is.PrintableASCII),
		validation.Field(&req.Score, validation.Required, validation.Min(1), validation.Max(5)),
		validation.Field(&req.Comment, validation.RuneLength(0, 500)),
	)
}

func (req *SubmitRatingRequest) Domain(venueID string) domain.Rating {
	return domain.Rating{
		VenueID: venueID,
		ItemID:  req.ItemID,
		Score:   req.Score,
		Comment: req.Comment,
	}
}

type SubmitSuggestionRequest struct {
	Name          string           `json:"name"`
	Category      string           `json:"category"`
	Description   string           `json:"description"`
	ExpectedPrice *decimal.Decimal `json:"expected_price"`
	DietaryTags   []string         `json:"dietary_tags"`
}

func (req *SubmitSuggestionRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.RuneLength(1, 80)),
		validation.Field(&req.Category, validation.Required),
		validation.Field(&req.Description, validation.Required, validation.RuneLength(1, 1000)),
	)
}

func (req *SubmitSuggestionRequest) Domain(venueID string) domain.Suggestion {
	return domain.Suggestion{
		VenueID:       venueID,
		Name:          req.Name,
		Category:      domain.Category(req.Category),
		Description:   req.Description,
		ExpectedPrice: req.ExpectedPrice,
		DietaryTags:   req.DietaryTags,
	}
}

type RecordSaleRequest struct {
	ItemID   string          `json:"item_id"`
	Date     string          `json:"date"`
	Quantity int             `json:"quantity"`
	Revenue  decimal.Decimal `json:"revenue"`
}

func (req *RecordSaleRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ItemID, validation.Required, is.PrintableASCII),
		validation.Field(&req.Date, validation.Date(domain.DayLayout)),
		validation.Field(&req.Quantity, validation.Required, validation.Min(1)),
	)
}

// Domain assumes Validate succeeded; an empty date is left zero for the service to fill in.
func (req *RecordSaleRequest) Domain(venueID string) domain.SaleEvent {
	sale := domain.SaleEvent{
		VenueID:  venueID,
		ItemID:   req.ItemID,
		Quantity: req.Quantity,
		Revenue:  req.Revenue,
	}
	if req.Date != "" {
		sale.Date, _ = domain.ParseDay(req.Date)
	}

	return sale
}
