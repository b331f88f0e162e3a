package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/vietanh2810/cafe-pulse-api/docs"
	v1 "github.com/vietanh2810/cafe-pulse-api/internal/api/handler/v1"
	"github.com/vietanh2810/cafe-pulse-api/internal/api/middleware"
	"github.com/vietanh2810/cafe-pulse-api/internal/config"
	"github.com/vietanh2810/cafe-pulse-api/internal/repository"
	"github.com/vietanh2810/cafe-pulse-api/internal/service"
)

// Stores are the persistence backends the server is built on.
type Stores struct {
	Catalog  repository.CatalogDAO
	Activity repository.ActivityDAO
}

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine

	catalogRepo  *repository.CatalogRepository
	activityRepo *repository.ActivityRepository
	metrics      *service.MetricsService
	views        *service.ViewComposer
}

func NewServer(conf *config.AppConfig, stores Stores) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.catalogRepo = repository.NewCatalogRepository(stores.Catalog)
	s.activityRepo = repository.NewActivityRepository(stores.Activity, stores.Catalog)
	s.metrics = service.NewMetricsService(s.catalogRepo, s.activityRepo, conf.Metrics)
	s.views = service.NewViewComposer(s.catalogRepo, s.activityRepo, s.metrics, conf.Metrics)

	s.MountMiddlewares()

	catalogHandler := s.initCatalogHandler()
	metricsHandler := s.initMetricsHandler()
	activityHandler := s.initActivityHandler()
	viewHandler := s.initViewHandler()
	s.MountHandlers(catalogHandler, metricsHandler, activityHandler, viewHandler)

	return s
}

// CatalogService is exposed for start-up seeding.
func (s *Server) CatalogService() *service.CatalogService {
	return service.NewCatalogService(s.catalogRepo)
}

func (s *Server) initCatalogHandler() *v1.CatalogHandler {
	svc := service.NewCatalogService(s.catalogRepo)
	handler := v1.NewCatalogHandler(svc, s.views)

	return handler
}

func (s *Server) initMetricsHandler() *v1.MetricsHandler {
	handler := v1.NewMetricsHandler(s.metrics, s.views, s.Config.Metrics.TopSellersDefaultLimit)

	return handler
}

func (s *Server) initActivityHandler() *v1.ActivityHandler {
	svc := service.NewActivityService(s.activityRepo)
	mutations := service.NewMutationService(s.activityRepo, s.catalogRepo, s.views)
	handler := v1.NewActivityHandler(svc, mutations, s.views, s.Config.Metrics.RecentRatingsLimit)

	return handler
}

func (s *Server) initViewHandler() *v1.ViewHandler {
	return v1.NewViewHandler(s.views)
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	catalogHandler *v1.CatalogHandler,
	metricsHandler *v1.MetricsHandler,
	activityHandler *v1.ActivityHandler,
	viewHandler *v1.ViewHandler,
) {
	const basePath = "/api/v1"

	venues := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		venues.GET("/venues", catalogHandler.HandleGetVenues)
		venues.GET("/venues/:venueID", catalogHandler.HandleGetVenue)
		venues.GET("/venues/:venueID/items", catalogHandler.HandleGetItems)
		venues.GET("/venues/:venueID/items/:itemID", catalogHandler.HandleGetItem)
		venues.POST("/venues/:venueID/catalog/import", catalogHandler.HandleImportCatalog)

		venues.GET("/venues/:venueID/capabilities", viewHandler.HandleGetCapabilities)
		venues.GET("/venues/:venueID/dashboard", viewHandler.HandleGetDashboard)

		venues.GET("/venues/:venueID/metrics/stock", metricsHandler.HandleStockStatus)
		venues.GET("/venues/:venueID/metrics/top-sellers", metricsHandler.HandleTopSellers)
		venues.GET("/venues/:venueID/metrics/items/:itemID/rating", metricsHandler.HandleAverageRating)
		venues.GET("/venues/:venueID/metrics/ratings", metricsHandler.HandleRatingsOverview)
		venues.GET("/venues/:venueID/metrics/rating-trend", metricsHandler.HandleRatingTrend)
		venues.GET("/venues/:venueID/metrics/revenue/daily", metricsHandler.HandleRevenueByDay)
		venues.GET("/venues/:venueID/metrics/revenue/share", metricsHandler.HandleRevenueShare)

		venues.GET("/venues/:venueID/ratings", activityHandler.HandleGetRatings)
		venues.GET("/venues/:venueID/ratings/recent", activityHandler.HandleGetRecentRatings)
		venues.POST("/venues/:venueID/ratings", activityHandler.HandleSubmitRating)
		venues.GET("/venues/:venueID/suggestions", activityHandler.HandleGetSuggestions)
		venues.POST("/venues/:venueID/suggestions", activityHandler.HandleSubmitSuggestion)
		venues.GET("/venues/:venueID/sales", activityHandler.HandleGetSales)
		venues.POST("/venues/:venueID/sales", activityHandler.HandleRecordSale)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Café Pulse API"
	docs.SwaggerInfo.Description = "Stock, sales and rating metrics for café venues."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
