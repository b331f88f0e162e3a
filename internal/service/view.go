package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vietanh2810/cafe-pulse-api/internal/config"
	"github.com/vietanh2810/cafe-pulse-api/internal/domain"
)

var capabilities = map[domain.Role][]domain.Capability{
	domain.RoleAdmin: {
		domain.CapabilityViewStock,
		domain.CapabilityViewSalesAnalytics,
		domain.CapabilityViewRatingsPanel,
		domain.CapabilityViewSuggestionsInbox,
	},
	domain.RoleUser: {
		domain.CapabilityViewMenu,
		domain.CapabilitySubmitRating,
		domain.CapabilitySubmitSuggestion,
		domain.CapabilityViewTopItems,
	},
}

var permissions = map[domain.Role]map[domain.Action]bool{
	domain.RoleAdmin: {domain.ActionRate: true, domain.ActionSuggest: true, domain.ActionSell: true, domain.ActionImport: true},
	domain.RoleUser:  {domain.ActionRate: true, domain.ActionSuggest: true},
}

// End users may only rate what is currently on the menu.
var availableItemsOnly = map[domain.Role]bool{
	domain.RoleUser: true,
}

type Metrics interface {
	StockStatus(ctx context.Context, venueID string) ([]domain.StockLevel, error)
	TopSellers(ctx context.Context, venueID string, limit int, window *domain.DateRange) ([]domain.TopSeller, error)
	RatingsOverview(ctx context.Context, venueID string) (domain.RatingsOverview, error)
	RatingTrend(ctx context.Context, venueID, itemID string) ([]domain.TrendPoint, error)
	RevenueByDay(ctx context.Context, venueID string, r domain.DateRange) ([]domain.DailyRevenue, error)
	RevenueShare(ctx context.Context, venueID string) ([]domain.RevenueShare, error)
}

// ViewComposer owns every role decision: what each role sees and which mutations it may perform.
type ViewComposer struct {
	catalog  CatalogRepository
	activity ActivityRepository
	metrics  Metrics
	conf     *config.MetricsConfig
	now      func() time.Time
}

func NewViewComposer(catalog CatalogRepository, activity ActivityRepository, metrics Metrics, conf *config.MetricsConfig) *ViewComposer {
	if conf == nil {
		conf = config.DefaultMetricsConfig()
	}

	return &ViewComposer{
		catalog:  catalog,
		activity: activity,
		metrics:  metrics,
		conf:     conf,
		now:      time.Now,
	}
}

func (c *ViewComposer) Capabilities(ctx context.Context, role domain.Role, venueID string) ([]domain.Capability, error) {
	caps, err := roleCapabilities(role)
	if err != nil {
		return nil, err
	}

	if _, err = c.catalog.GetVenue(ctx, venueID); err != nil {
		return nil, fmt.Errorf("c.catalog.GetVenue -> %w", err)
	}

	return caps, nil
}

// HasCapability reports whether role is granted capability. Unknown roles have none.
func (c *ViewComposer) HasCapability(role domain.Role, capability domain.Capability) bool {
	for _, granted := range capabilities[role] {
		if granted == capability {
			return true
		}
	}
	return false
}

func (c *ViewComposer) Permits(role domain.Role, action domain.Action) bool {
	return permissions[role][action]
}

func (c *ViewComposer) RequiresAvailableItem(role domain.Role) bool {
	return availableItemsOnly[role]
}

// Dashboard gathers the data behind each of the role's capabilities. Sections load
// concurrently and the first failure cancels the others.
func (c *ViewComposer) Dashboard(ctx context.Context, role domain.Role, venueID string) (domain.Dashboard, error) {
	caps, err := roleCapabilities(role)
	if err != nil {
		return domain.Dashboard{}, err
	}

	venue, err := c.catalog.GetVenue(ctx, venueID)
	if err != nil {
		return domain.Dashboard{}, fmt.Errorf("c.catalog.GetVenue -> %w", err)
	}

	d := domain.Dashboard{
		Venue:        venue,
		Role:         role,
		Capabilities: caps,
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, capability := range caps {
		switch capability {
		case domain.CapabilityViewStock:
			g.Go(func() error {
				levels, err := c.metrics.StockStatus(gctx, venueID)
				if err != nil {
					return fmt.Errorf("c.metrics.StockStatus -> %w", err)
				}
				d.Stock = levels
				return nil
			})
		case domain.CapabilityViewSalesAnalytics:
			g.Go(func() error {
				sales, err := c.salesAnalytics(gctx, venueID)
				if err != nil {
					return err
				}
				d.Sales = &sales
				return nil
			})
		case domain.CapabilityViewRatingsPanel:
			g.Go(func() error {
				panel, err := c.ratingsPanel(gctx, venueID)
				if err != nil {
					return err
				}
				d.Ratings = &panel
				return nil
			})
		case domain.CapabilityViewSuggestionsInbox:
			g.Go(func() error {
				suggestions, err := c.activity.QuerySuggestions(gctx, venueID)
				if err != nil {
					return fmt.Errorf("c.activity.QuerySuggestions -> %w", err)
				}
				d.Suggestions = suggestions
				return nil
			})
		case domain.CapabilityViewMenu:
			g.Go(func() error {
				items, err := c.catalog.GetItems(gctx, venueID)
				if err != nil {
					return fmt.Errorf("c.catalog.GetItems -> %w", err)
				}
				d.Menu = items
				return nil
			})
		case domain.CapabilityViewTopItems:
			g.Go(func() error {
				top, err := c.metrics.TopSellers(gctx, venueID, c.conf.TopSellersDefaultLimit, nil)
				if err != nil {
					return fmt.Errorf("c.metrics.TopSellers -> %w", err)
				}
				d.TopItems = top
				return nil
			})
		case domain.CapabilitySubmitRating:
			g.Go(func() error {
				recent, err := c.activity.RecentRatings(gctx, venueID, c.conf.RecentRatingsLimit)
				if err != nil {
					return fmt.Errorf("c.activity.RecentRatings -> %w", err)
				}
				d.RecentRatings = recent
				return nil
			})
		}
	}

	if err = g.Wait(); err != nil {
		return domain.Dashboard{}, err
	}

	return d, nil
}

func (c *ViewComposer) salesAnalytics(ctx context.Context, venueID string) (domain.SalesAnalytics, error) {
	top, err := c.metrics.TopSellers(ctx, venueID, c.conf.TopSellersDefaultLimit, nil)
	if err != nil {
		return domain.SalesAnalytics{}, fmt.Errorf("c.metrics.TopSellers -> %w", err)
	}

	today := domain.DayOf(c.now())
	window := domain.NewDateRange(today.AddDate(0, 0, 1-c.conf.DashboardRevenueDays), today)
	daily, err := c.metrics.RevenueByDay(ctx, venueID, window)
	if err != nil {
		return domain.SalesAnalytics{}, fmt.Errorf("c.metrics.RevenueByDay -> %w", err)
	}

	share, err := c.metrics.RevenueShare(ctx, venueID)
	if err != nil {
		return domain.SalesAnalytics{}, fmt.Errorf("c.metrics.RevenueShare -> %w", err)
	}

	return domain.SalesAnalytics{
		TopSellers:   top,
		DailyRevenue: daily,
		RevenueShare: share,
	}, nil
}

func (c *ViewComposer) ratingsPanel(ctx context.Context, venueID string) (domain.RatingsPanel, error) {
	overview, err := c.metrics.RatingsOverview(ctx, venueID)
	if err != nil {
		return domain.RatingsPanel{}, fmt.Errorf("c.metrics.RatingsOverview -> %w", err)
	}

	trend, err := c.metrics.RatingTrend(ctx, venueID, "")
	if err != nil {
		return domain.RatingsPanel{}, fmt.Errorf("c.metrics.RatingTrend -> %w", err)
	}

	recent, err := c.activity.RecentRatings(ctx, venueID, c.conf.RecentRatingsLimit)
	if err != nil {
		return domain.RatingsPanel{}, fmt.Errorf("c.activity.RecentRatings -> %w", err)
	}

	return domain.RatingsPanel{
		Overview: overview,
		Trend:    trend,
		Recent:   recent,
	}, nil
}

func roleCapabilities(role domain.Role) ([]domain.Capability, error) {
	caps, ok := capabilities[role]
	if !ok {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, role)
	}

	return append([]domain.Capability(nil), caps...), nil
}
