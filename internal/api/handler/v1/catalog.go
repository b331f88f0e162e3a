package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/cafe-pulse-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/cafe-pulse-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/cafe-pulse-api/internal/api/middleware"
	"github.com/vietanh2810/cafe-pulse-api/internal/domain"
	"github.com/vietanh2810/cafe-pulse-api/internal/seed"
	"github.com/vietanh2810/cafe-pulse-api/internal/service"
)

var (
	errImportNotAllowed = errors.New("only administrators can import catalogs")
	errNotXLSX          = errors.New("only .xlsx files can be imported")
	errVenueNameMissing = errors.New("name is required for a new venue")
)

type CatalogService interface {
	GetVenues(ctx context.Context) ([]domain.Venue, error)
	GetVenue(ctx context.Context, venueID string) (domain.Venue, error)
	GetItems(ctx context.Context, venueID string) ([]domain.Item, error)
	GetItem(ctx context.Context, venueID, itemID string) (domain.Item, error)
	Seed(ctx context.Context, venue domain.Venue, items []domain.Item) error
}

type CatalogHandler struct {
	svc   CatalogService
	views Views
}

func NewCatalogHandler(svc CatalogService, views Views) *CatalogHandler {
	return &CatalogHandler{
		svc:   svc,
		views: views,
	}
}

// HandleGetVenues godoc
// @Summary      List venues
// @Tags         venues
// @Produce      json
// @Success      200  {array}   domain.Venue
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /venues [get]
// @Security BearerAuth
func (h *CatalogHandler) HandleGetVenues(ctx *gin.Context) {
	venues, err := h.svc.GetVenues(ctx.Request.Context())
	if err != nil {
		renderServiceErr(ctx, "HandleGetVenues -> h.svc.GetVenues", err)
		return
	}

	ctx.JSON(http.StatusOK, venues)
}

// HandleGetVenue godoc
// @Summary      Get a venue
// @Tags         venues
// @Produce      json
// @Param        venueID  path      string  true  "Venue ID"
// @Success      200      {object}  domain.Venue
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /venues/{venueID} [get]
// @Security BearerAuth
func (h *CatalogHandler) HandleGetVenue(ctx *gin.Context) {
	venueID := ctx.Param("venueID")

	venue, err := h.svc.GetVenue(ctx.Request.Context(), venueID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("venue", "venueID", venueID))
			return
		}

		renderServiceErr(ctx, "HandleGetVenue -> h.svc.GetVenue", err)
		return
	}

	ctx.JSON(http.StatusOK, venue)
}

// HandleGetItems godoc
// @Summary      List a venue's menu items in catalog order
// @Tags         catalog
// @Produce      json
// @Param        venueID  path      string  true  "Venue ID"
// @Success      200      {array}   domain.Item
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /venues/{venueID}/items [get]
// @Security BearerAuth
func (h *CatalogHandler) HandleGetItems(ctx *gin.Context) {
	venueID := ctx.Param("venueID")

	items, err := h.svc.GetItems(ctx.Request.Context(), venueID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("venue", "venueID", venueID))
			return
		}

		renderServiceErr(ctx, "HandleGetItems -> h.svc.GetItems", err)
		return
	}

	ctx.JSON(http.StatusOK, items)
}

// HandleGetItem godoc
// @Summary      Get a menu item
// @Tags         catalog
// @Produce      json
// @Param        venueID  path      string  true  "Venue ID"
// @Param        itemID   path      string  true  "Item ID"
// @Success      200      {object}  domain.Item
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /venues/{venueID}/items/{itemID} [get]
// @Security BearerAuth
func (h *CatalogHandler) HandleGetItem(ctx *gin.Context) {
	venueID, itemID := ctx.Param("venueID"), ctx.Param("itemID")

	item, err := h.svc.GetItem(ctx.Request.Context(), venueID, itemID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("item", "itemID", itemID))
			return
		}

		renderServiceErr(ctx, "HandleGetItem -> h.svc.GetItem", err)
		return
	}

	ctx.JSON(http.StatusOK, item)
}

// HandleImportCatalog godoc
// @Summary      Replace a venue's catalog
// @Description  Accepts either a JSON body or a multipart upload with an .xlsx "file" field.
// @Description  The import is all-or-nothing: one bad row leaves the current catalog untouched.
// @Tags         catalog
// @Accept       json,mpfd
// @Produce      json
// @Param        venueID  path      string                        true   "Venue ID"
// @Param        input    body      request.ImportCatalogRequest  false  "Catalog as JSON"
// @Param        file     formData  file                          false  "Catalog as XLSX"
// @Param        name     formData  string                        false  "Venue name, required for a new venue"
// @Success      200      {object}  response.ImportCatalogResponse
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /venues/{venueID}/catalog/import [post]
// @Security BearerAuth
func (h *CatalogHandler) HandleImportCatalog(ctx *gin.Context) {
	if !h.views.Permits(middleware.RoleFrom(ctx), domain.ActionImport) {
		response.RenderErr(ctx, response.ErrPermissionDenied(errImportNotAllowed))
		return
	}

	venueID := ctx.Param("venueID")

	var (
		venue domain.Venue
		items []domain.Item
		err   error
	)
	if strings.HasPrefix(ctx.ContentType(), "multipart/") {
		venue, items, err = h.readXLSXImport(ctx, venueID)
	} else {
		venue, items, err = readJSONImport(ctx, venueID)
	}
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = h.svc.Seed(ctx.Request.Context(), venue, items); err != nil {
		renderServiceErr(ctx, "HandleImportCatalog -> h.svc.Seed", err)
		return
	}

	ctx.JSON(http.StatusOK, response.ImportCatalogResponse{
		VenueID: venue.ID,
		Items:   len(items),
	})
}

func readJSONImport(ctx *gin.Context, venueID string) (domain.Venue, []domain.Item, error) {
	var input request.ImportCatalogRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		return domain.Venue{}, nil, err
	}

	if err := input.Validate(); err != nil {
		return domain.Venue{}, nil, err
	}

	venue, items := input.Seed(venueID).Domain()

	return venue, items, nil
}

// readXLSXImport keeps the existing venue's name and subtitle unless the form overrides them.
func (h *CatalogHandler) readXLSXImport(ctx *gin.Context, venueID string) (domain.Venue, []domain.Item, error) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return domain.Venue{}, nil, err
	}
	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".xlsx") {
		return domain.Venue{}, nil, errNotXLSX
	}

	file, err := fileHeader.Open()
	if err != nil {
		return domain.Venue{}, nil, fmt.Errorf("fileHeader.Open -> %w", err)
	}
	defer file.Close()

	items, err := seed.ParseXLSX(file)
	if err != nil {
		return domain.Venue{}, nil, err
	}

	venue, err := h.svc.GetVenue(ctx.Request.Context(), venueID)
	if err != nil && !errors.Is(err, service.ErrNotFound) {
		return domain.Venue{}, nil, err
	}
	venue.ID = venueID
	if name := ctx.PostForm("name"); name != "" {
		venue.Name = name
	}
	if subtitle, ok := ctx.GetPostForm("subtitle"); ok {
		venue.Subtitle = subtitle
	}
	if venue.Name == "" {
		return domain.Venue{}, nil, errVenueNameMissing
	}

	return venue, items, nil
}
