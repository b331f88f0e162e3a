package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/cafe-pulse-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/cafe-pulse-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/cafe-pulse-api/internal/api/middleware"
	"github.com/vietanh2810/cafe-pulse-api/internal/domain"
)

type ActivityService interface {
	QuerySales(ctx context.Context, venueID string, filter domain.SaleFilter) ([]domain.SaleEvent, error)
	QueryRatings(ctx context.Context, venueID, itemID string) ([]domain.Rating, error)
	RecentRatings(ctx context.Context, venueID string, limit int) ([]domain.Rating, error)
	QuerySuggestions(ctx context.Context, venueID string) ([]domain.Suggestion, error)
}

type MutationService interface {
	SubmitRating(ctx context.Context, role domain.Role, rating domain.Rating) (domain.Rating, error)
	SubmitSuggestion(ctx context.Context, role domain.Role, suggestion domain.Suggestion) (domain.Suggestion, error)
	RecordSale(ctx context.Context, role domain.Role, sale domain.SaleEvent) (domain.SaleEvent, error)
}

type ActivityHandler struct {
	svc         ActivityService
	mutations   MutationService
	views       Views
	recentLimit int
}

func NewActivityHandler(svc ActivityService, mutations MutationService, views Views, recentLimit int) *ActivityHandler {
	return &ActivityHandler{
		svc:         svc,
		mutations:   mutations,
		views:       views,
		recentLimit: recentLimit,
	}
}

// HandleGetRatings godoc
// @Summary      Ratings in submission order
// @Tags         ratings
// @Produce      json
// @Param        venueID  path      string  true   "Venue ID"
// @Param        item_id  query     string  false  "Restrict to one item"
// @Success      200      {array}   domain.Rating
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /venues/{venueID}/ratings [get]
// @Security BearerAuth
func (h *ActivityHandler) HandleGetRatings(ctx *gin.Context) {
	if !requireAny(ctx, h.views, domain.CapabilityViewRatingsPanel) {
		return
	}

	ratings, err := h.svc.QueryRatings(ctx.Request.Context(), ctx.Param("venueID"), ctx.Query("item_id"))
	if err != nil {
		renderServiceErr(ctx, "HandleGetRatings -> h.svc.QueryRatings", err)
		return
	}

	ctx.JSON(http.StatusOK, ratings)
}

// HandleGetRecentRatings godoc
// @Summary      Latest ratings, newest first
// @Tags         ratings
// @Produce      json
// @Param        venueID  path      string  true   "Venue ID"
// @Param        limit    query     int     false  "Number of ratings"
// @Success      200      {array}   domain.Rating
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /venues/{venueID}/ratings/recent [get]
// @Security BearerAuth
func (h *ActivityHandler) HandleGetRecentRatings(ctx *gin.Context) {
	var q request.LimitQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := q.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if q.Limit == 0 {
		q.Limit = h.recentLimit
	}

	ratings, err := h.svc.RecentRatings(ctx.Request.Context(), ctx.Param("venueID"), q.Limit)
	if err != nil {
		renderServiceErr(ctx, "HandleGetRecentRatings -> h.svc.RecentRatings", err)
		return
	}

	ctx.JSON(http.StatusOK, ratings)
}

// HandleSubmitRating godoc
// @Summary      Rate a menu item
// @Description  End users can only rate items that are currently available.
// @Tags         ratings
// @Accept       json
// @Produce      json
// @Param        venueID  path      string                       true  "Venue ID"
// @Param        input    body      request.SubmitRatingRequest  true  "Rating"
// @Success      201      {object}  domain.Rating
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /venues/{venueID}/ratings [post]
// @Security BearerAuth
func (h *ActivityHandler) HandleSubmitRating(ctx *gin.Context) {
	var input request.SubmitRatingRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.mutations.SubmitRating(ctx.Request.Context(), middleware.RoleFrom(ctx), input.Domain(ctx.Param("venueID")))
	if err != nil {
		renderServiceErr(ctx, "HandleSubmitRating -> h.mutations.SubmitRating", err)
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleGetSuggestions godoc
// @Summary      Suggestion inbox, newest first
// @Tags         suggestions
// @Produce      json
// @Param        venueID  path      string  true  "Venue ID"
// @Success      200      {array}   domain.Suggestion
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /venues/{venueID}/suggestions [get]
// @Security BearerAuth
func (h *ActivityHandler) HandleGetSuggestions(ctx *gin.Context) {
	if !requireAny(ctx, h.views, domain.CapabilityViewSuggestionsInbox) {
		return
	}

	suggestions, err := h.svc.QuerySuggestions(ctx.Request.Context(), ctx.Param("venueID"))
	if err != nil {
		renderServiceErr(ctx, "HandleGetSuggestions -> h.svc.QuerySuggestions", err)
		return
	}

	ctx.JSON(http.StatusOK, suggestions)
}

// HandleSubmitSuggestion godoc
// @Summary      Suggest a new menu item
// @Tags         suggestions
// @Accept       json
// @Produce      json
// @Param        venueID  path      string                           true  "Venue ID"
// @Param        input    body      request.SubmitSuggestionRequest  true  "Suggestion"
// @Success      201      {object}  domain.Suggestion
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /venues/{venueID}/suggestions [post]
// @Security BearerAuth
func (h *ActivityHandler) HandleSubmitSuggestion(ctx *gin.Context) {
	var input request.SubmitSuggestionRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.mutations.SubmitSuggestion(ctx.Request.Context(), middleware.RoleFrom(ctx), input.Domain(ctx.Param("venueID")))
	if err != nil {
		renderServiceErr(ctx, "HandleSubmitSuggestion -> h.mutations.SubmitSuggestion", err)
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleGetSales godoc
// @Summary      Sales ordered by day
// @Tags         sales
// @Produce      json
// @Param        venueID  path      string  true   "Venue ID"
// @Param        item_id  query     string  false  "Restrict to one item"
// @Param        from     query     string  false  "First day, 2006-01-02"
// @Param        to       query     string  false  "Last day, 2006-01-02"
// @Success      200      {array}   domain.SaleEvent
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /venues/{venueID}/sales [get]
// @Security BearerAuth
func (h *ActivityHandler) HandleGetSales(ctx *gin.Context) {
	if !requireAny(ctx, h.views, domain.CapabilityViewSalesAnalytics) {
		return
	}

	var q request.SalesQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := q.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	sales, err := h.svc.QuerySales(ctx.Request.Context(), ctx.Param("venueID"), domain.SaleFilter{
		ItemID: q.ItemID,
		Window: q.Window(),
	})
	if err != nil {
		renderServiceErr(ctx, "HandleGetSales -> h.svc.QuerySales", err)
		return
	}

	ctx.JSON(http.StatusOK, sales)
}

// HandleRecordSale godoc
// @Summary      Record a sale
// @Description  date defaults to today. Sales do not change stock.
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        venueID  path      string                     true  "Venue ID"
// @Param        input    body      request.RecordSaleRequest  true  "Sale"
// @Success      201      {object}  domain.SaleEvent
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /venues/{venueID}/sales [post]
// @Security BearerAuth
func (h *ActivityHandler) HandleRecordSale(ctx *gin.Context) {
	var input request.RecordSaleRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.mutations.RecordSale(ctx.Request.Context(), middleware.RoleFrom(ctx), input.Domain(ctx.Param("venueID")))
	if err != nil {
		renderServiceErr(ctx, "HandleRecordSale -> h.mutations.RecordSale", err)
		return
	}

	ctx.JSON(http.StatusCreated, created)
}
