package server

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/safebite/backend/config"
	"github.com/safebite/backend/internal/api"
	"github.com/safebite/backend/internal/database"
	"github.com/safebite/backend/internal/middleware"
	"github.com/safebite/backend/internal/service"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
	cfg    *config.Config
}

// New wires the services and routes into a server instance.
func New(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, s3Config *config.S3Config) *Server {
	router := gin.Default()
	router.Use(middleware.CORS())

	router.GET("/health", func(c *gin.Context) {
		if err := database.HealthCheck(c.Request.Context(), db); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	profileService := service.NewProfileService(service.NewRedisStore(redisClient))
	svcs := &api.Services{
		Auth:     service.NewAuthService(db, profileService, cfg.JWTSecret),
		Profile:  profileService,
		Matcher:  service.NewMatcherServiceWithDelays(cfg.AnalyzeDelay, cfg.BarcodeDelay),
		DietPlan: service.NewDietPlanService(),
		History:  service.NewHistoryService(db),
		Chat:     service.NewChatService(service.NewIntentClassifier(), cfg.ComposeDelay),
		Images:   service.NewBarcodeImageService(s3Config),
	}
	api.SetupAPI(router, svcs)

	return &Server{
		router: router,
		cfg:    cfg,
	}
}

// Start starts the server and blocks until it stops.
func (s *Server) Start() error {
	s.http = &http.Server{
		Addr:    s.cfg.ServerHost + ":" + s.cfg.ServerPort,
		Handler: s.router,
	}

	log.Printf("Listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http != nil {
		return s.http.Shutdown(ctx)
	}
	return nil
}
