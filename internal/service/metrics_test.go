package service

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/cafe-pulse-api/internal/config"
	"github.com/vietanh2810/cafe-pulse-api/internal/domain"
	"github.com/vietanh2810/cafe-pulse-api/internal/repository/dao"
)

func TestMetricsService_StockStatus(t *testing.T) {
	f := newFixture(t,
		item("full", 40, 40, true),
		item("half", 20, 40, true),
		item("quarter", 10, 40, true),
		item("fifth", 8, 40, true),
		item("third", 1, 3, true),
		item("empty", 0, 40, false),
	)

	levels, err := f.metrics.StockStatus(context.Background(), venueID)
	require.NoError(t, err)
	require.Len(t, levels, 6)

	want := []struct {
		id      string
		percent float64
		tier    domain.StockTier
	}{
		{id: "full", percent: 100, tier: domain.StockTierHigh},
		{id: "half", percent: 50, tier: domain.StockTierMedium},
		{id: "quarter", percent: 25, tier: domain.StockTierMedium},
		{id: "fifth", percent: 20, tier: domain.StockTierLow},
		{id: "third", percent: 33.3, tier: domain.StockTierMedium},
		{id: "empty", percent: 0, tier: domain.StockTierLow},
	}
	for i, w := range want {
		assert.Equal(t, w.id, levels[i].Item.ID)
		assert.Equal(t, w.percent, levels[i].StockPercent, w.id)
		assert.Equal(t, w.tier, levels[i].Tier, w.id)
	}
}

func TestMetricsService_StockStatusCustomThresholds(t *testing.T) {
	f := newFixture(t, item("quarter", 10, 40, true))
	conf := config.DefaultMetricsConfig()
	conf.HighStockThreshold = 20
	conf.LowStockThreshold = 10
	metrics := NewMetricsService(f.catalog, f.activity, conf)

	levels, err := metrics.StockStatus(context.Background(), venueID)
	require.NoError(t, err)
	assert.Equal(t, domain.StockTierHigh, levels[0].Tier)
}

func TestMetricsService_StockStatusInvalidState(t *testing.T) {
	f := newFixture(t, item("espresso", 10, 40, true))
	f.store.PutItem(venueID, dao.Item{ID: "broken", Name: "Broken", Category: "drink", Stock: 0, MaxStock: 0})

	_, err := f.metrics.StockStatus(context.Background(), venueID)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestMetricsService_StockStatusUnknownVenue(t *testing.T) {
	f := newFixture(t)

	_, err := f.metrics.StockStatus(context.Background(), "embers")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMetricsService_TopSellers(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, item("a", 1, 2, true), item("b", 1, 2, true), item("c", 1, 2, true), item("d", 1, 2, true))
	f.sale(t, "b", 1, 4, "8")
	f.sale(t, "a", 2, 4, "8")
	f.sale(t, "c", 3, 1, "2")
	f.sale(t, "d", 4, 6, "12")

	top, err := f.metrics.TopSellers(ctx, venueID, 3, nil)
	require.NoError(t, err)
	require.Len(t, top, 3)
	assert.Equal(t, "d", top[0].ItemID)
	// Equal quantities fall back to item id.
	assert.Equal(t, "a", top[1].ItemID)
	assert.Equal(t, "b", top[2].ItemID)
	assert.Equal(t, "a", top[1].Name)
	assert.True(t, decimal.NewFromInt(8).Equal(top[1].Revenue))

	window := domain.NewDateRange(date(2), date(3))
	top, err = f.metrics.TopSellers(ctx, venueID, 10, &window)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "a", top[0].ItemID)
	assert.Equal(t, "c", top[1].ItemID)

	_, err = f.metrics.TopSellers(ctx, venueID, 0, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	reversed := domain.NewDateRange(date(3), date(2))
	_, err = f.metrics.TopSellers(ctx, venueID, 3, &reversed)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestMetricsService_TopSellersIgnoresAppendOrder(t *testing.T) {
	ctx := context.Background()
	type sale struct {
		item     string
		day, qty int
	}
	sales := []sale{{"a", 1, 2}, {"b", 1, 5}, {"c", 2, 3}, {"a", 3, 3}, {"c", 3, 2}, {"d", 1, 1}}

	var results [][]domain.TopSeller
	for _, order := range [][]int{{0, 1, 2, 3, 4, 5}, {5, 4, 3, 2, 1, 0}, {2, 0, 5, 1, 4, 3}} {
		f := newFixture(t, item("a", 1, 2, true), item("b", 1, 2, true), item("c", 1, 2, true), item("d", 1, 2, true))
		for _, i := range order {
			f.sale(t, sales[i].item, sales[i].day, sales[i].qty, "1")
		}

		top, err := f.metrics.TopSellers(ctx, venueID, 4, nil)
		require.NoError(t, err)
		results = append(results, top)
	}

	require.Len(t, results[0], 4)
	assert.Equal(t, []string{"a", "b", "c", "d"}, []string{results[0][0].ItemID, results[0][1].ItemID, results[0][2].ItemID, results[0][3].ItemID})
	for _, r := range results[1:] {
		assert.Equal(t, results[0], r)
	}
}

func TestMetricsService_TopSellersNoSales(t *testing.T) {
	f := newFixture(t, item("a", 1, 2, true))

	top, err := f.metrics.TopSellers(context.Background(), venueID, 5, nil)
	require.NoError(t, err)
	assert.Empty(t, top)
}

func TestMetricsService_AverageRating(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	f := newFixture(t, item("a", 1, 2, true), item("b", 1, 2, true), item("c", 1, 2, true))
	f.rate(t, "a", at, 5, 4, 5, 4)
	f.rate(t, "b", at, 5, 5, 4)

	tests := []struct {
		name      string
		itemID    string
		wantCount int
		wantScore *float64
	}{
		{name: "even split", itemID: "a", wantCount: 4, wantScore: ptr(4.5)},
		{name: "rounded", itemID: "b", wantCount: 3, wantScore: ptr(4.7)},
		{name: "no ratings yet", itemID: "c", wantCount: 0, wantScore: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			avg, err := f.metrics.AverageRating(ctx, venueID, tt.itemID)
			require.NoError(t, err)
			assert.Equal(t, tt.itemID, avg.ItemID)
			assert.Equal(t, tt.wantCount, avg.Count)
			assert.Equal(t, tt.wantScore, avg.Score)
		})
	}

	_, err := f.metrics.AverageRating(ctx, venueID, "zzz")
	assert.ErrorIs(t, err, ErrNotFound)

	overview, err := f.metrics.RatingsOverview(ctx, venueID)
	require.NoError(t, err)
	assert.Equal(t, 7, overview.Count)
	assert.Equal(t, ptr(4.6), overview.Score)
}

func TestMetricsService_RatingTrend(t *testing.T) {
	f := newFixture(t, item("a", 1, 2, true), item("b", 1, 2, true))
	f.rate(t, "a", time.Date(2024, 5, 2, 23, 30, 0, 0, time.UTC), 5, 4)
	f.rate(t, "a", time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC), 3)
	f.rate(t, "b", time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC), 1)

	trend, err := f.metrics.RatingTrend(context.Background(), venueID, "a")
	require.NoError(t, err)
	assert.Equal(t, []domain.TrendPoint{
		{Date: "2024-05-01", MeanScore: 3, Count: 1},
		{Date: "2024-05-02", MeanScore: 4.5, Count: 2},
	}, trend)

	trend, err = f.metrics.RatingTrend(context.Background(), venueID, "")
	require.NoError(t, err)
	require.Len(t, trend, 2)
	assert.Equal(t, domain.TrendPoint{Date: "2024-05-02", MeanScore: 3.3, Count: 3}, trend[1])
}

func TestMetricsService_RevenueByDay(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, item("a", 1, 2, true), item("b", 1, 2, true))
	f.sale(t, "a", 1, 1, "2.50")
	f.sale(t, "b", 1, 2, "4.10")
	f.sale(t, "a", 3, 1, "2.50")
	f.sale(t, "a", 9, 1, "2.50")

	days, err := f.metrics.RevenueByDay(ctx, venueID, domain.NewDateRange(date(1), date(4)))
	require.NoError(t, err)
	require.Len(t, days, 4)

	want := map[string]string{
		"2024-05-01": "6.60",
		"2024-05-02": "0",
		"2024-05-03": "2.50",
		"2024-05-04": "0",
	}
	for _, d := range days {
		assert.True(t, decimal.RequireFromString(want[d.Date]).Equal(d.Revenue), d.Date)
	}
	assert.Equal(t, "2024-05-01", days[0].Date)
	assert.Equal(t, "2024-05-04", days[3].Date)

	_, err = f.metrics.RevenueByDay(ctx, venueID, domain.NewDateRange(date(4), date(1)))
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.metrics.RevenueByDay(ctx, venueID, domain.NewDateRange(date(1), date(1).AddDate(2, 0, 0)))
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.metrics.RevenueByDay(ctx, "embers", domain.NewDateRange(date(1), date(4)))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMetricsService_RevenueShare(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, item("a", 1, 2, true), item("b", 1, 2, true), item("c", 1, 2, true))

	shares, err := f.metrics.RevenueShare(ctx, venueID)
	require.NoError(t, err)
	require.Len(t, shares, 3)
	for _, s := range shares {
		assert.Zero(t, s.Share)
	}

	f.sale(t, "a", 1, 1, "1")
	f.sale(t, "b", 1, 1, "1")
	f.sale(t, "c", 1, 1, "1")
	f.sale(t, "b", 2, 1, "3")

	shares, err = f.metrics.RevenueShare(ctx, venueID)
	require.NoError(t, err)
	require.Len(t, shares, 3)
	assert.Equal(t, "b", shares[0].ItemID)
	assert.Equal(t, "a", shares[1].ItemID)
	assert.Equal(t, "c", shares[2].ItemID)
	assert.InDelta(t, 4.0/6, shares[0].Share, 1e-9)

	sum := 0.0
	for _, s := range shares {
		sum += s.Share
	}
	assert.True(t, math.Abs(sum-1) < 1e-6, "shares sum to %v", sum)
}

func TestMetricsService_RevenueShareKeepsDelistedItems(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, item("a", 1, 2, true), item("b", 1, 2, true))
	f.sale(t, "a", 1, 1, "3")
	f.sale(t, "b", 1, 1, "1")

	err := f.catalog.Seed(ctx, domain.Venue{ID: venueID, Name: "Rise Campus Café"}, []domain.Item{item("a", 1, 2, true)})
	require.NoError(t, err)

	shares, err := f.metrics.RevenueShare(ctx, venueID)
	require.NoError(t, err)
	require.Len(t, shares, 2)
	assert.Equal(t, "b", shares[1].ItemID)
	assert.Empty(t, shares[1].Name)
	assert.InDelta(t, 0.25, shares[1].Share, 1e-9)
}

func TestMetrics_EndToEnd(t *testing.T) {
	ctx := context.Background()
	a := item("a", 10, 40, true)
	a.Name = "Espresso"
	f := newFixture(t, a, item("b", 35, 40, true))

	f.rate(t, "a", time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), 5, 5, 4)
	avg, err := f.metrics.AverageRating(ctx, venueID, "a")
	require.NoError(t, err)
	assert.Equal(t, ptr(4.7), avg.Score)

	levels, err := f.metrics.StockStatus(ctx, venueID)
	require.NoError(t, err)
	assert.Equal(t, 25.0, levels[0].StockPercent)
	assert.Equal(t, domain.StockTierMedium, levels[0].Tier)

	f.sale(t, "a", 1, 3, "7.50")
	f.sale(t, "a", 1, 7, "17.50")
	f.sale(t, "b", 1, 4, "10")

	top, err := f.metrics.TopSellers(ctx, venueID, 1, nil)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "a", top[0].ItemID)
	assert.Equal(t, "Espresso", top[0].Name)
	assert.Equal(t, 10, top[0].Quantity)
	assert.True(t, decimal.RequireFromString("25").Equal(top[0].Revenue))

	// Sales never move stock.
	levels, err = f.metrics.StockStatus(ctx, venueID)
	require.NoError(t, err)
	assert.Equal(t, 25.0, levels[0].StockPercent)
}

func ptr(f float64) *float64 {
	return &f
}
