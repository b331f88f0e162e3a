package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/cafe-pulse-api/internal/domain"
)

func TestMutationService_SubmitRating(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 3, 14, 0, 0, 0, time.FixedZone("CEST", 2*60*60))
	f := newFixture(t, item("espresso", 10, 40, true), item("bagel", 5, 20, false))
	f.mutations.now = func() time.Time { return now }

	tests := []struct {
		name    string
		role    domain.Role
		rating  domain.Rating
		wantErr error
	}{
		{
			name:   "user rates an available item",
			role:   domain.RoleUser,
			rating: domain.Rating{VenueID: venueID, ItemID: "espresso", Score: 5, Comment: "great"},
		},
		{
			name:    "user rates an unavailable item",
			role:    domain.RoleUser,
			rating:  domain.Rating{VenueID: venueID, ItemID: "bagel", Score: 4},
			wantErr: ErrItemUnavailable,
		},
		{
			name:   "admin rates an unavailable item",
			role:   domain.RoleAdmin,
			rating: domain.Rating{VenueID: venueID, ItemID: "bagel", Score: 2},
		},
		{
			name:    "score out of range",
			role:    domain.RoleUser,
			rating:  domain.Rating{VenueID: venueID, ItemID: "espresso", Score: 6},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "unknown item",
			role:    domain.RoleUser,
			rating:  domain.Rating{VenueID: venueID, ItemID: "scone", Score: 3},
			wantErr: ErrUnknownItem,
		},
		{
			name:    "unknown venue",
			role:    domain.RoleUser,
			rating:  domain.Rating{VenueID: "embers", ItemID: "espresso", Score: 3},
			wantErr: ErrNotFound,
		},
		{
			name:    "unknown role",
			role:    domain.Role("guest"),
			rating:  domain.Rating{VenueID: venueID, ItemID: "espresso", Score: 3},
			wantErr: ErrForbidden,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before, err := f.activity.QueryRatings(ctx, venueID, "")
			require.NoError(t, err)

			created, err := f.mutations.SubmitRating(ctx, tt.role, tt.rating)

			after, qErr := f.activity.QueryRatings(ctx, venueID, "")
			require.NoError(t, qErr)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Len(t, after, len(before))
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, created.ID)
			assert.True(t, now.Equal(created.CreatedAt))
			assert.Equal(t, tt.rating.Score, created.Score)
			assert.Len(t, after, len(before)+1)
		})
	}
}

func TestMutationService_SubmitRatingIgnoresClientFields(t *testing.T) {
	f := newFixture(t, item("espresso", 10, 40, true))
	now := time.Date(2024, 5, 3, 12, 0, 0, 0, time.UTC)
	f.mutations.now = func() time.Time { return now }

	created, err := f.mutations.SubmitRating(context.Background(), domain.RoleUser, domain.Rating{
		ID:        "client-chosen",
		VenueID:   venueID,
		ItemID:    "espresso",
		Score:     4,
		CreatedAt: time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.NotEqual(t, "client-chosen", created.ID)
	assert.Equal(t, now, created.CreatedAt)
}

func TestMutationService_SubmitSuggestion(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, item("espresso", 10, 40, true))

	created, err := f.mutations.SubmitSuggestion(ctx, domain.RoleUser, domain.Suggestion{
		VenueID:     venueID,
		Name:        "Chai Latte",
		Category:    domain.CategoryDrink,
		Description: "Spiced, not too sweet",
		DietaryTags: []string{"Vegetarian"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"vegetarian"}, created.DietaryTags)

	_, err = f.mutations.SubmitSuggestion(ctx, domain.RoleUser, domain.Suggestion{
		VenueID:  venueID,
		Name:     "Chai Latte",
		Category: domain.CategoryDrink,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.mutations.SubmitSuggestion(ctx, domain.RoleUser, domain.Suggestion{
		VenueID:     venueID,
		Name:        "Chai Latte",
		Category:    "soup",
		Description: "Spiced",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	suggestions, err := f.activity.QuerySuggestions(ctx, venueID)
	require.NoError(t, err)
	assert.Len(t, suggestions, 1)
}

func TestMutationService_RecordSale(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 3, 22, 15, 0, 0, time.UTC)
	f := newFixture(t, item("espresso", 10, 40, true))
	f.mutations.now = func() time.Time { return now }

	sale := domain.SaleEvent{
		VenueID:  venueID,
		ItemID:   "espresso",
		Quantity: 2,
		Revenue:  decimal.RequireFromString("5.00"),
	}

	_, err := f.mutations.RecordSale(ctx, domain.RoleUser, sale)
	assert.ErrorIs(t, err, ErrForbidden)

	created, err := f.mutations.RecordSale(ctx, domain.RoleAdmin, sale)
	require.NoError(t, err)
	assert.Equal(t, date(3), created.Date)

	sale.Date = date(1)
	created, err = f.mutations.RecordSale(ctx, domain.RoleAdmin, sale)
	require.NoError(t, err)
	assert.Equal(t, date(1), created.Date)

	sale.Revenue = decimal.Zero
	_, err = f.mutations.RecordSale(ctx, domain.RoleAdmin, sale)
	assert.ErrorIs(t, err, ErrInvalidInput)

	sales, err := f.activity.QuerySales(ctx, venueID, domain.SaleFilter{})
	require.NoError(t, err)
	assert.Len(t, sales, 2)
}
