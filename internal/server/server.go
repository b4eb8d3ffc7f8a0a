package server

import (
	"fmt"
	"net/http"
	"time"

	"farmacia-api/internal/config"
	"farmacia-api/internal/database"
	custommiddleware "farmacia-api/internal/middleware"
	"farmacia-api/internal/repository"
	"farmacia-api/internal/service"
	"farmacia-api/internal/transport"

	_ "farmacia-api/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

type Server struct {
	*http.Server
	config    *config.Config
	logger    *zap.Logger
	dbService *database.Service
	redis     *redis.Client
}

func NewServer(cfg *config.Config, logger *zap.Logger, dbService *database.Service, redisClient *redis.Client) *Server {
	router := chi.NewRouter()
	db := dbService.DB()

	// Add basic middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(custommiddleware.CORSMiddleware(cfg.CORS.AllowedOrigins, cfg.IsDevelopment()))
	router.Use(custommiddleware.LoggingMiddleware(logger))
	router.Use(custommiddleware.ErrorHandlingMiddleware(logger, cfg.IsDevelopment()))

	if redisClient != nil {
		router.Use(custommiddleware.RateLimitMiddleware(redisClient, custommiddleware.RateLimitConfig{
			RequestsPerWindow: cfg.RateLimit.RequestsPerMinute,
			Window:            time.Minute,
			KeyPrefix:         "ratelimit:farmacia",
		}, logger))
	}

	// Health check endpoint
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		health := dbService.Health(r.Context())
		status := http.StatusOK
		if health["status"] != "up" {
			status = http.StatusServiceUnavailable
		}
		custommiddleware.RespondWithJSON(w, status, health)
	})

	// Swagger UI
	router.Get("/api-docs/*", httpSwagger.WrapHandler)

	// Initialize repositories
	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	purchaseRepo := repository.NewPurchaseRepository(db)
	userRepo := repository.NewUserRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)

	// Initialize services
	productService := service.NewProductService(productRepo, categoryRepo)
	purchaseService := service.NewPurchaseService(purchaseRepo)
	userService := service.NewUserService(userRepo, refreshTokenRepo, cfg.JWT.Secret)

	// Initialize handlers
	productHandler := transport.NewProductHandler(productService, logger)
	purchaseHandler := transport.NewPurchaseHandler(purchaseService, logger)
	authHandler := transport.NewAuthHandler(userService, logger)

	// Create auth middleware
	authMiddleware := custommiddleware.AuthMiddleware(cfg.JWT.Secret, logger)

	// Register routes
	productHandler.RegisterRoutes(router)
	purchaseHandler.RegisterRoutes(router)
	authHandler.RegisterRoutes(router, authMiddleware)

	// Unmatched routes render the uniform error envelope
	router.NotFound(custommiddleware.NotFoundHandler())
	router.MethodNotAllowed(custommiddleware.NotFoundHandler())

	server := &Server{
		Server: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:      router,
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		config:    cfg,
		logger:    logger,
		dbService: dbService,
		redis:     redisClient,
	}

	return server
}

func (s *Server) Close() error {
	s.logger.Info("Closing server resources")

	if s.dbService != nil {
		if err := s.dbService.Close(); err != nil {
			s.logger.Error("Failed to close database connection", zap.Error(err))
		}
	}

	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			s.logger.Error("Failed to close redis connection", zap.Error(err))
		}
	}

	s.logger.Sync()
	return nil
}
