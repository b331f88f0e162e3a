package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/cafe-pulse-api/internal/domain"
	"github.com/vietanh2810/cafe-pulse-api/internal/repository"
	"github.com/vietanh2810/cafe-pulse-api/internal/repository/dao/memory"
)

const venueID = "rise"

type fixture struct {
	store     *memory.Store
	catalog   *repository.CatalogRepository
	activity  *repository.ActivityRepository
	metrics   *MetricsService
	views     *ViewComposer
	mutations *MutationService
}

func newFixture(t *testing.T, items ...domain.Item) *fixture {
	t.Helper()

	store := memory.NewStore()
	f := &fixture{
		store:    store,
		catalog:  repository.NewCatalogRepository(store),
		activity: repository.NewActivityRepository(store, store),
	}
	f.metrics = NewMetricsService(f.catalog, f.activity, nil)
	f.views = NewViewComposer(f.catalog, f.activity, f.metrics, nil)
	f.mutations = NewMutationService(f.activity, f.catalog, f.views)

	err := f.catalog.Seed(context.Background(), domain.Venue{ID: venueID, Name: "Rise Campus Café"}, items)
	require.NoError(t, err)

	return f
}

func item(id string, stock, maxStock int, available bool) domain.Item {
	return domain.Item{
		ID:        id,
		Name:      id,
		Category:  domain.CategoryDrink,
		Stock:     stock,
		MaxStock:  maxStock,
		Available: available,
		Price:     decimal.RequireFromString("2.50"),
	}
}

func date(d int) time.Time {
	return time.Date(2024, 5, d, 0, 0, 0, 0, time.UTC)
}

func (f *fixture) sale(t *testing.T, itemID string, d, quantity int, revenue string) {
	t.Helper()

	_, err := f.activity.AppendSale(context.Background(), domain.SaleEvent{
		VenueID:  venueID,
		ItemID:   itemID,
		Date:     date(d),
		Quantity: quantity,
		Revenue:  decimal.RequireFromString(revenue),
	})
	require.NoError(t, err)
}

func (f *fixture) rate(t *testing.T, itemID string, at time.Time, scores ...int) {
	t.Helper()

	for _, score := range scores {
		_, err := f.activity.AppendRating(context.Background(), domain.Rating{
			VenueID:   venueID,
			ItemID:    itemID,
			Score:     score,
			CreatedAt: at,
		})
		require.NoError(t, err)
	}
}
