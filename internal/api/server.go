package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"storefront/internal/api/handlers"
	"storefront/internal/api/middleware"
	"storefront/internal/api/views"
	"storefront/internal/config"
	"storefront/internal/events"
	"storefront/internal/logger"

	"github.com/gin-gonic/gin"
)

// Dependencies are the storefront components the routes call into
type Dependencies struct {
	Pipeline handlers.Generator
	Products handlers.ProductSource
	Checkout handlers.SessionStarter
	Events   events.Publisher
}

type Server struct {
	config *config.Config
	logger *logger.Logger
	events events.Publisher
	router *gin.Engine
	server *http.Server
}

func New(cfg *config.Config, logger *logger.Logger, deps Dependencies) *Server {
	// Set Gin mode
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	// prompts arrive as a single path segment and may contain encoded slashes
	router.UseRawPath = true
	router.SetHTMLTemplate(views.Templates())

	// Middleware
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.CORS(cfg.CORSOrigins))

	// Initialize handlers
	generateHandler := handlers.NewGenerateHandler(deps.Pipeline, logger)
	productHandler := handlers.NewProductHandler(deps.Products, logger)
	checkoutHandler := handlers.NewCheckoutHandler(deps.Checkout, cfg.PublicBaseURL, logger)

	// Routes
	router.GET("/", handlers.Health)
	router.POST("/api/generateImage", generateHandler.Generate)
	router.GET("/image/:prompt", generateHandler.Page)
	router.GET("/product/:id", productHandler.Page)
	router.POST("/checkout", checkoutHandler.Create)
	router.GET("/payment/success", checkoutHandler.Success)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/products/:id", productHandler.Get)
	}

	if deps.Events == nil {
		deps.Events = events.NopPublisher{}
	}

	return &Server{
		config: cfg,
		logger: logger,
		events: deps.Events,
		router: router,
	}
}

func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%s", s.config.APIHost, s.config.APIPort)

	s.server = &http.Server{
		Addr:        addr,
		Handler:     s.router,
		ReadTimeout: 15 * time.Second,
		// generation alone can take most of the image client's two minutes
		WriteTimeout: 150 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info("Starting server on " + addr)
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop drains in-flight requests, then flushes the event publisher
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Shutting down server...")
	var err error
	if s.server != nil {
		err = s.server.Shutdown(ctx)
	}
	if cerr := s.events.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

// GetRouter returns the Gin router for Vercel
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}
