package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/vietanh2810/cafe-pulse-api/internal/seed"
)

// ImportCatalogRequest is the JSON form of a catalog import; the venue id comes from the path.
type ImportCatalogRequest struct {
	Name     string      `json:"name"`
	Subtitle string      `json:"subtitle"`
	Items    []seed.Item `json:"items"`
}

func (req *ImportCatalogRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.RuneLength(1, 100)),
		validation.Field(&req.Subtitle, validation.RuneLength(0, 200)),
		validation.Field(&req.Items, validation.NotNil),
	)
}

func (req *ImportCatalogRequest) Seed(venueID string) seed.Venue {
	return seed.Venue{
		ID:       venueID,
		Name:     req.Name,
		Subtitle: req.Subtitle,
		Items:    req.Items,
	}
}
