package v1

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/cafe-pulse-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/cafe-pulse-api/internal/api/middleware"
	"github.com/vietanh2810/cafe-pulse-api/internal/domain"
	"github.com/vietanh2810/cafe-pulse-api/internal/seed"
	"github.com/vietanh2810/cafe-pulse-api/internal/service"
)

var errCapabilityMissing = errors.New("your role cannot access this resource")

// Views is the part of the view composer handlers consult before serving role-specific data.
type Views interface {
	HasCapability(role domain.Role, capability domain.Capability) bool
	Permits(role domain.Role, action domain.Action) bool
}

// renderServiceErr translates service errors; op names the failed call in the server log.
func renderServiceErr(ctx *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput), errors.Is(err, seed.ErrMalformed):
		response.RenderErr(ctx, response.ErrBadRequest(err))
	case errors.Is(err, service.ErrNotFound), errors.Is(err, service.ErrUnknownItem):
		response.RenderErr(ctx, response.ErrRecordNotFound(err))
	case errors.Is(err, service.ErrItemUnavailable):
		response.RenderErr(ctx, response.ErrConflict(err))
	case errors.Is(err, service.ErrForbidden):
		response.RenderErr(ctx, response.ErrPermissionDenied(err))
	default:
		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("%s -> %w", op, err)))
	}
}

// requireAny aborts with 403 unless the caller's role holds one of caps.
func requireAny(ctx *gin.Context, views Views, caps ...domain.Capability) bool {
	role := middleware.RoleFrom(ctx)
	for _, c := range caps {
		if views.HasCapability(role, c) {
			return true
		}
	}

	response.RenderErr(ctx, response.ErrPermissionDenied(errCapabilityMissing))
	return false
}
