package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/cafe-pulse-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/cafe-pulse-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/cafe-pulse-api/internal/domain"
)

type MetricsService interface {
	StockStatus(ctx context.Context, venueID string) ([]domain.StockLevel, error)
	TopSellers(ctx context.Context, venueID string, limit int, window *domain.DateRange) ([]domain.TopSeller, error)
	AverageRating(ctx context.Context, venueID, itemID string) (domain.AverageRating, error)
	RatingsOverview(ctx context.Context, venueID string) (domain.RatingsOverview, error)
	RatingTrend(ctx context.Context, venueID, itemID string) ([]domain.TrendPoint, error)
	RevenueByDay(ctx context.Context, venueID string, r domain.DateRange) ([]domain.DailyRevenue, error)
	RevenueShare(ctx context.Context, venueID string) ([]domain.RevenueShare, error)
}

type MetricsHandler struct {
	svc          MetricsService
	views        Views
	defaultLimit int
}

func NewMetricsHandler(svc MetricsService, views Views, defaultLimit int) *MetricsHandler {
	return &MetricsHandler{
		svc:          svc,
		views:        views,
		defaultLimit: defaultLimit,
	}
}

// HandleStockStatus godoc
// @Summary      Stock level of every item
// @Tags         metrics
// @Produce      json
// @Param        venueID  path      string  true  "Venue ID"
// @Success      200      {array}   domain.StockLevel
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /venues/{venueID}/metrics/stock [get]
// @Security BearerAuth
func (h *MetricsHandler) HandleStockStatus(ctx *gin.Context) {
	if !requireAny(ctx, h.views, domain.CapabilityViewStock) {
		return
	}

	levels, err := h.svc.StockStatus(ctx.Request.Context(), ctx.Param("venueID"))
	if err != nil {
		renderServiceErr(ctx, "HandleStockStatus -> h.svc.StockStatus", err)
		return
	}

	ctx.JSON(http.StatusOK, levels)
}

// HandleTopSellers godoc
// @Summary      Best selling items by quantity
// @Tags         metrics
// @Produce      json
// @Param        venueID  path      string  true   "Venue ID"
// @Param        limit    query     int     false  "Number of items"
// @Param        from     query     string  false  "First day, 2006-01-02"
// @Param        to       query     string  false  "Last day, 2006-01-02"
// @Success      200      {array}   domain.TopSeller
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /venues/{venueID}/metrics/top-sellers [get]
// @Security BearerAuth
func (h *MetricsHandler) HandleTopSellers(ctx *gin.Context) {
	if !requireAny(ctx, h.views, domain.CapabilityViewSalesAnalytics, domain.CapabilityViewTopItems) {
		return
	}

	var q request.TopSellersQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := q.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if q.Limit == 0 {
		q.Limit = h.defaultLimit
	}

	sellers, err := h.svc.TopSellers(ctx.Request.Context(), ctx.Param("venueID"), q.Limit, q.Window())
	if err != nil {
		renderServiceErr(ctx, "HandleTopSellers -> h.svc.TopSellers", err)
		return
	}

	ctx.JSON(http.StatusOK, sellers)
}

// HandleAverageRating godoc
// @Summary      Average rating of one item
// @Description  score is null while the item has no ratings.
// @Tags         metrics
// @Produce      json
// @Param        venueID  path      string  true  "Venue ID"
// @Param        itemID   path      string  true  "Item ID"
// @Success      200      {object}  domain.AverageRating
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /venues/{venueID}/metrics/items/{itemID}/rating [get]
// @Security BearerAuth
func (h *MetricsHandler) HandleAverageRating(ctx *gin.Context) {
	avg, err := h.svc.AverageRating(ctx.Request.Context(), ctx.Param("venueID"), ctx.Param("itemID"))
	if err != nil {
		renderServiceErr(ctx, "HandleAverageRating -> h.svc.AverageRating", err)
		return
	}

	ctx.JSON(http.StatusOK, avg)
}

// HandleRatingsOverview godoc
// @Summary      Average rating and feedback count of the venue
// @Tags         metrics
// @Produce      json
// @Param        venueID  path      string  true  "Venue ID"
// @Success      200      {object}  domain.RatingsOverview
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /venues/{venueID}/metrics/ratings [get]
// @Security BearerAuth
func (h *MetricsHandler) HandleRatingsOverview(ctx *gin.Context) {
	if !requireAny(ctx, h.views, domain.CapabilityViewRatingsPanel) {
		return
	}

	overview, err := h.svc.RatingsOverview(ctx.Request.Context(), ctx.Param("venueID"))
	if err != nil {
		renderServiceErr(ctx, "HandleRatingsOverview -> h.svc.RatingsOverview", err)
		return
	}

	ctx.JSON(http.StatusOK, overview)
}

// HandleRatingTrend godoc
// @Summary      Daily mean rating
// @Tags         metrics
// @Produce      json
// @Param        venueID  path      string  true   "Venue ID"
// @Param        item_id  query     string  false  "Restrict to one item"
// @Success      200      {array}   domain.TrendPoint
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /venues/{venueID}/metrics/rating-trend [get]
// @Security BearerAuth
func (h *MetricsHandler) HandleRatingTrend(ctx *gin.Context) {
	if !requireAny(ctx, h.views, domain.CapabilityViewRatingsPanel) {
		return
	}

	trend, err := h.svc.RatingTrend(ctx.Request.Context(), ctx.Param("venueID"), ctx.Query("item_id"))
	if err != nil {
		renderServiceErr(ctx, "HandleRatingTrend -> h.svc.RatingTrend", err)
		return
	}

	ctx.JSON(http.StatusOK, trend)
}

// HandleRevenueByDay godoc
// @Summary      Revenue per day, days without sales included
// @Tags         metrics
// @Produce      json
// @Param        venueID  path      string  true  "Venue ID"
// @Param        from     query     string  true  "First day, 2006-01-02"
// @Param        to       query     string  true  "Last day, 2006-01-02"
// @Success      200      {array}   domain.DailyRevenue
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /venues/{venueID}/metrics/revenue/daily [get]
// @Security BearerAuth
func (h *MetricsHandler) HandleRevenueByDay(ctx *gin.Context) {
	if !requireAny(ctx, h.views, domain.CapabilityViewSalesAnalytics) {
		return
	}

	var q request.RevenueQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := q.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	days, err := h.svc.RevenueByDay(ctx.Request.Context(), ctx.Param("venueID"), q.Range())
	if err != nil {
		renderServiceErr(ctx, "HandleRevenueByDay -> h.svc.RevenueByDay", err)
		return
	}

	ctx.JSON(http.StatusOK, days)
}

// HandleRevenueShare godoc
// @Summary      Share of total revenue per item
// @Tags         metrics
// @Produce      json
// @Param        venueID  path      string  true  "Venue ID"
// @Success      200      {array}   domain.RevenueShare
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /venues/{venueID}/metrics/revenue/share [get]
// @Security BearerAuth
func (h *MetricsHandler) HandleRevenueShare(ctx *gin.Context) {
	if !requireAny(ctx, h.views, domain.CapabilityViewSalesAnalytics) {
		return
	}

	shares, err := h.svc.RevenueShare(ctx.Request.Context(), ctx.Param("venueID"))
	if err != nil {
		renderServiceErr(ctx, "HandleRevenueShare -> h.svc.RevenueShare", err)
		return
	}

	ctx.JSON(http.StatusOK, shares)
}
