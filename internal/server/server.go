package server

import (
	"context"
	"fmt"
	"log/slog"

	"transfers-api/internal/config"
	"transfers-api/internal/handlers"
	"transfers-api/internal/middleware"
	"transfers-api/internal/repositories"
	"transfers-api/internal/services"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// Server assembles the HTTP API: routing, middleware, handlers and their
// service dependencies.
type Server struct {
	echo   *echo.Echo
	config *config.Config
	db     *gorm.DB
}

// New builds a fully wired server from configuration and an open database
// handle.
func New(cfg *config.Config, db *gorm.DB) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{echo.GET, echo.POST, echo.PATCH, echo.DELETE, echo.OPTIONS},
	}))

	s := &Server{
		echo:   e,
		config: cfg,
		db:     db,
	}

	s.registerRoutes()

	return s
}

func (s *Server) registerRoutes() {
	logger := slog.Default()
	metrics := services.NewPrometheusMetrics()

	companyRepo := repositories.NewCompanyRepository(s.db)
	transferRepo := repositories.NewTransferRepository(s.db)

	companyService := services.NewCompanyService(s.db, companyRepo, metrics, logger)
	transferService := services.NewTransferService(s.db, transferRepo, companyRepo, metrics, logger)

	companyHandler := handlers.NewCompanyHandler(companyService)
	transferHandler := handlers.NewTransferHandler(transferService)
	healthHandler := handlers.NewHealthCheckHandler(s.db)

	s.echo.GET("/health", healthHandler.HealthCheck)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	companies := s.echo.Group("/companies")
	companies.POST("", companyHandler.CreateCompany)
	companies.GET("", companyHandler.GetCompanies)
	companies.GET("/adhering/last-month", companyHandler.GetCompaniesAdheringLastMonth)
	companies.GET("/:id", companyHandler.GetCompany)
	companies.DELETE("/:id", companyHandler.DeleteCompany)

	transfers := s.echo.Group("/transfers")
	transfers.POST("", transferHandler.CreateTransfer)
	transfers.GET("", transferHandler.GetTransfers)
	transfers.GET("/companies/last-month", transferHandler.GetCompaniesWithTransfersLastMonth)
	transfers.GET("/company/:companyId", transferHandler.GetTransfersByCompany)
	transfers.GET("/:id", transferHandler.GetTransfer)
	transfers.PATCH("/:id/status", transferHandler.UpdateTransferStatus)
}

// Echo exposes the underlying echo instance, mainly for tests
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

// Start begins serving on the configured host and port, blocking until the
// server stops.
func (s *Server) Start() error {
	s.echo.Server.ReadTimeout = s.config.Server.ReadTimeout
	s.echo.Server.WriteTimeout = s.config.Server.WriteTimeout

	addr := fmt.Sprintf("%s:%s", s.config.Server.Host, s.config.Server.Port)
	slog.Info("Starting HTTP server", "addr", addr, "environment", s.config.Server.Environment)

	return s.echo.Start(addr)
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
