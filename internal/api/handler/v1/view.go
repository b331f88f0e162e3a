package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/cafe-pulse-api/internal/api/middleware"
	"github.com/vietanh2810/cafe-pulse-api/internal/domain"
)

type ViewService interface {
	Capabilities(ctx context.Context, role domain.Role, venueID string) ([]domain.Capability, error)
	Dashboard(ctx context.Context, role domain.Role, venueID string) (domain.Dashboard, error)
}

type ViewHandler struct {
	svc ViewService
}

func NewViewHandler(svc ViewService) *ViewHandler {
	return &ViewHandler{
		svc: svc,
	}
}

// HandleGetCapabilities godoc
// @Summary      What the caller's role may see and do at a venue
// @Tags         views
// @Produce      json
// @Param        venueID  path      string  true  "Venue ID"
// @Success      200      {array}   string
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /venues/{venueID}/capabilities [get]
// @Security BearerAuth
func (h *ViewHandler) HandleGetCapabilities(ctx *gin.Context) {
	caps, err := h.svc.Capabilities(ctx.Request.Context(), middleware.RoleFrom(ctx), ctx.Param("venueID"))
	if err != nil {
		renderServiceErr(ctx, "HandleGetCapabilities -> h.svc.Capabilities", err)
		return
	}

	ctx.JSON(http.StatusOK, caps)
}

// HandleGetDashboard godoc
// @Summary      Every section the caller's role can see, in one payload
// @Tags         views
// @Produce      json
// @Param        venueID  path      string  true  "Venue ID"
// @Success      200      {object}  domain.Dashboard
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /venues/{venueID}/dashboard [get]
// @Security BearerAuth
func (h *ViewHandler) HandleGetDashboard(ctx *gin.Context) {
	dashboard, err := h.svc.Dashboard(ctx.Request.Context(), middleware.RoleFrom(ctx), ctx.Param("venueID"))
	if err != nil {
		renderServiceErr(ctx, "HandleGetDashboard -> h.svc.Dashboard", err)
		return
	}

	ctx.JSON(http.StatusOK, dashboard)
}
