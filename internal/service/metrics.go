package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/vietanh2810/cafe-pulse-api/internal/config"
	"github.com/vietanh2810/cafe-pulse-api/internal/domain"
)

// MetricsService derives read-only figures from the catalog and the activity log.
// Nothing is cached; every call recomputes from the stores.
type MetricsService struct {
	catalog  CatalogRepository
	activity ActivityRepository
	conf     *config.MetricsConfig
}

func NewMetricsService(catalog CatalogRepository, activity ActivityRepository, conf *config.MetricsConfig) *MetricsService {
	if conf == nil {
		conf = config.DefaultMetricsConfig()
	}

	return &MetricsService{
		catalog:  catalog,
		activity: activity,
		conf:     conf,
	}
}

// StockStatus reports every catalog item's fill level in catalog order.
func (s *MetricsService) StockStatus(ctx context.Context, venueID string) ([]domain.StockLevel, error) {
	items, err := s.catalog.GetItems(ctx, venueID)
	if err != nil {
		return nil, fmt.Errorf("s.catalog.GetItems -> %w", err)
	}

	levels := make([]domain.StockLevel, 0, len(items))
	for _, item := range items {
		if item.MaxStock <= 0 {
			zap.L().Error("catalog item without stock capacity",
				zap.String("venue_id", venueID),
				zap.String("item_id", item.ID),
				zap.Int("max_stock", item.MaxStock),
			)
			return nil, fmt.Errorf("%w: item %q has max stock %d", ErrInvalidState, item.ID, item.MaxStock)
		}

		percent := domain.Round1(100 * float64(item.Stock) / float64(item.MaxStock))
		levels = append(levels, domain.StockLevel{
			Item:         item,
			StockPercent: percent,
			Tier:         s.tier(percent),
		})
	}

	return levels, nil
}

func (s *MetricsService) tier(percent float64) domain.StockTier {
	switch {
	case percent > s.conf.HighStockThreshold:
		return domain.StockTierHigh
	case percent > s.conf.LowStockThreshold:
		return domain.StockTierMedium
	default:
		return domain.StockTierLow
	}
}

// TopSellers ranks items by quantity sold, ties broken by item id. A nil window covers all sales.
func (s *MetricsService) TopSellers(ctx context.Context, venueID string, limit int, window *domain.DateRange) ([]domain.TopSeller, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive, got %d", ErrInvalidInput, limit)
	}
	if window != nil {
		if err := window.Validate(s.conf.MaxRangeDays); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	names, err := s.itemNames(ctx, venueID)
	if err != nil {
		return nil, err
	}

	sales, err := s.activity.QuerySales(ctx, venueID, domain.SaleFilter{Window: window})
	if err != nil {
		return nil, fmt.Errorf("s.activity.QuerySales -> %w", err)
	}

	totals := make(map[string]*domain.TopSeller)
	for _, sale := range sales {
		t, ok := totals[sale.ItemID]
		if !ok {
			t = &domain.TopSeller{ItemID: sale.ItemID, Name: names[sale.ItemID], Revenue: decimal.Zero}
			totals[sale.ItemID] = t
		}
		t.Quantity += sale.Quantity
		t.Revenue = t.Revenue.Add(sale.Revenue)
	}

	sellers := make([]domain.TopSeller, 0, len(totals))
	for _, t := range totals {
		sellers = append(sellers, *t)
	}
	sort.Slice(sellers, func(i, j int) bool {
		if sellers[i].Quantity != sellers[j].Quantity {
			return sellers[i].Quantity > sellers[j].Quantity
		}
		return sellers[i].ItemID < sellers[j].ItemID
	})

	if len(sellers) > limit {
		sellers = sellers[:limit]
	}

	return sellers, nil
}

// AverageRating returns a nil Score when the item exists but has not been rated.
func (s *MetricsService) AverageRating(ctx context.Context, venueID, itemID string) (domain.AverageRating, error) {
	ratings, err := s.activity.QueryRatings(ctx, venueID, itemID)
	if err != nil {
		return domain.AverageRating{}, fmt.Errorf("s.activity.QueryRatings -> %w", err)
	}

	if len(ratings) == 0 {
		if _, err := s.catalog.GetItem(ctx, venueID, itemID); err != nil {
			return domain.AverageRating{}, fmt.Errorf("s.catalog.GetItem -> %w", err)
		}
	}

	count, score := meanScore(ratings)

	return domain.AverageRating{
		ItemID: itemID,
		Count:  count,
		Score:  score,
	}, nil
}

// RatingsOverview averages every rating of the venue.
func (s *MetricsService) RatingsOverview(ctx context.Context, venueID string) (domain.RatingsOverview, error) {
	ratings, err := s.activity.QueryRatings(ctx, venueID, "")
	if err != nil {
		return domain.RatingsOverview{}, fmt.Errorf("s.activity.QueryRatings -> %w", err)
	}

	count, score := meanScore(ratings)

	return domain.RatingsOverview{
		Count: count,
		Score: score,
	}, nil
}

// RatingTrend groups ratings by the UTC day they were submitted. An empty itemID covers the venue.
func (s *MetricsService) RatingTrend(ctx context.Context, venueID, itemID string) ([]domain.TrendPoint, error) {
	ratings, err := s.activity.QueryRatings(ctx, venueID, itemID)
	if err != nil {
		return nil, fmt.Errorf("s.activity.QueryRatings -> %w", err)
	}

	type bucket struct {
		sum   int
		count int
	}
	buckets := make(map[string]*bucket)
	for _, r := range ratings {
		day := domain.DayOf(r.CreatedAt).Format(domain.DayLayout)
		b, ok := buckets[day]
		if !ok {
			b = &bucket{}
			buckets[day] = b
		}
		b.sum += r.Score
		b.count++
	}

	points := make([]domain.TrendPoint, 0, len(buckets))
	for day, b := range buckets {
		points = append(points, domain.TrendPoint{
			Date:      day,
			MeanScore: domain.Round1(float64(b.sum) / float64(b.count)),
			Count:     b.count,
		})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })

	return points, nil
}

// RevenueByDay sums revenue per calendar day of r, including days without sales.
func (s *MetricsService) RevenueByDay(ctx context.Context, venueID string, r domain.DateRange) ([]domain.DailyRevenue, error) {
	r = domain.NewDateRange(r.From, r.To)
	if err := r.Validate(s.conf.MaxRangeDays); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	sales, err := s.activity.QuerySales(ctx, venueID, domain.SaleFilter{Window: &r})
	if err != nil {
		return nil, fmt.Errorf("s.activity.QuerySales -> %w", err)
	}

	perDay := make(map[string]decimal.Decimal)
	for _, sale := range sales {
		day := sale.Date.Format(domain.DayLayout)
		perDay[day] = perDay[day].Add(sale.Revenue)
	}

	days := make([]domain.DailyRevenue, 0, r.Days())
	for d := r.From; !d.After(r.To); d = d.AddDate(0, 0, 1) {
		day := d.Format(domain.DayLayout)
		revenue, ok := perDay[day]
		if !ok {
			revenue = decimal.Zero
		}
		days = append(days, domain.DailyRevenue{Date: day, Revenue: revenue})
	}

	return days, nil
}

// RevenueShare splits total revenue across catalog items and any delisted item that still has sales.
func (s *MetricsService) RevenueShare(ctx context.Context, venueID string) ([]domain.RevenueShare, error) {
	items, err := s.catalog.GetItems(ctx, venueID)
	if err != nil {
		return nil, fmt.Errorf("s.catalog.GetItems -> %w", err)
	}

	sales, err := s.activity.QuerySales(ctx, venueID, domain.SaleFilter{})
	if err != nil {
		return nil, fmt.Errorf("s.activity.QuerySales -> %w", err)
	}

	revenue := make(map[string]decimal.Decimal)
	total := decimal.Zero
	for _, sale := range sales {
		revenue[sale.ItemID] = revenue[sale.ItemID].Add(sale.Revenue)
		total = total.Add(sale.Revenue)
	}

	shares := make([]domain.RevenueShare, 0, len(items))
	listed := make(map[string]struct{}, len(items))
	for _, item := range items {
		listed[item.ID] = struct{}{}
		shares = append(shares, domain.RevenueShare{ItemID: item.ID, Name: item.Name, Revenue: decimal.Zero})
	}
	for itemID := range revenue {
		if _, ok := listed[itemID]; !ok {
			shares = append(shares, domain.RevenueShare{ItemID: itemID, Revenue: decimal.Zero})
		}
	}

	for i := range shares {
		if r, ok := revenue[shares[i].ItemID]; ok {
			shares[i].Revenue = r
		}
		if total.IsPositive() {
			shares[i].Share = shares[i].Revenue.Div(total).InexactFloat64()
		}
	}

	sort.Slice(shares, func(i, j int) bool {
		if c := shares[i].Revenue.Cmp(shares[j].Revenue); c != 0 {
			return c > 0
		}
		return shares[i].ItemID < shares[j].ItemID
	})

	return shares, nil
}

func (s *MetricsService) itemNames(ctx context.Context, venueID string) (map[string]string, error) {
	items, err := s.catalog.GetItems(ctx, venueID)
	if err != nil {
		return nil, fmt.Errorf("s.catalog.GetItems -> %w", err)
	}

	names := make(map[string]string, len(items))
	for _, item := range items {
		names[item.ID] = item.Name
	}

	return names, nil
}

func meanScore(ratings []domain.Rating) (int, *float64) {
	if len(ratings) == 0 {
		return 0, nil
	}

	sum := 0
	for _, r := range ratings {
		sum += r.Score
	}
	mean := domain.Round1(float64(sum) / float64(len(ratings)))

	return len(ratings), &mean
}

