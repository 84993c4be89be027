package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Zygu0805/betashift/internal/config"
	"github.com/Zygu0805/betashift/internal/database"
	"github.com/Zygu0805/betashift/internal/handlers"
	"github.com/Zygu0805/betashift/internal/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var (
	version   = "0.1.0"
	buildTime = "unknown"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	logger.Info("Starting BetaShift carousel assignment backend")
	logger.Infof("Version: %s, Build Time: %s", version, buildTime)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	// Set log level
	logLevel, err := logrus.ParseLevel(cfg.Server.LogLevel)
	if err != nil {
		logger.Warn("Invalid log level, using INFO")
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Set Gin mode
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	// Initialize database connection
	logger.Info("Connecting to database...")
	db, err := database.NewConnection(cfg.Database)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	logger.Info("Database connection established")

	// Create tables if they do not exist yet
	if err := database.EnsureSchema(db); err != nil {
		logger.Fatalf("Failed to ensure database schema: %v", err)
	}
	logger.Info("Database schema ensured")

	// Initialize repositories
	airlineRepo := database.NewAirlineRepository(db)
	carouselRepo := database.NewCarouselRepository(db)
	flightRepo := database.NewFlightRepository(db)
	assignmentRepo := database.NewAssignmentRepository(db)

	// Initialize handlers
	airlineHandler := handlers.NewAirlineHandler(airlineRepo)
	carouselHandler := handlers.NewCarouselHandler(carouselRepo)
	flightHandler := handlers.NewFlightHandler(flightRepo, airlineRepo)
	assignmentHandler := handlers.NewAssignmentHandler(assignmentRepo, flightRepo, carouselRepo)

	// Initialize Gin router
	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(requestLogger(logger))

	// CORS configuration
	corsConfig := cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     cfg.CORS.AllowedMethods,
		AllowHeaders:     cfg.CORS.AllowedHeaders,
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	router.Use(cors.New(corsConfig))

	// Liveness endpoints
	router.GET("/", rootHandler())
	router.GET("/health", healthCheckHandler(db))

	// Airline routes
	airlines := router.Group("/airlines")
	{
		airlines.GET("", airlineHandler.GetAllAirlines)
		airlines.GET("/:code", airlineHandler.GetAirlineByCode)
		airlines.POST("", airlineHandler.CreateAirline)
		airlines.POST("/init", airlineHandler.InitAirlines)
	}

	// Carousel routes
	carousels := router.Group("/carousels")
	{
		carousels.GET("", carouselHandler.GetAllCarousels)
		carousels.GET("/:id", carouselHandler.GetCarouselByID)
		carousels.POST("", carouselHandler.CreateCarousel)
		carousels.PATCH("/:id", carouselHandler.UpdateCarousel)
		carousels.POST("/init", carouselHandler.InitCarousels)
	}

	// Flight routes
	flights := router.Group("/flights")
	{
		flights.GET("", flightHandler.GetFlights)
		flights.GET("/:id", flightHandler.GetFlightByID)
		flights.POST("", flightHandler.CreateFlight)
		flights.POST("/upload", flightHandler.UploadFlights)
		flights.DELETE("/:id", flightHandler.DeleteFlight)
	}

	// Assignment routes
	assignments := router.Group("/assignments")
	{
		assignments.GET("", assignmentHandler.GetAssignments)
		assignments.GET("/:id", assignmentHandler.GetAssignmentByID)
		assignments.POST("", assignmentHandler.CreateAssignment)
		assignments.PUT("/:id", assignmentHandler.UpdateAssignment)
		assignments.DELETE("/:id", assignmentHandler.DeleteAssignment)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Infof("Server starting on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server exited successfully")
}

// requestLogger middleware for logging HTTP requests
func requestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)

		fields := logrus.Fields{
			"status":     c.Writer.Status(),
			"method":     c.Request.Method,
			"path":       path,
			"query":      query,
			"ip":         c.ClientIP(),
			"latency_ms": latency.Milliseconds(),
			"request_id": middleware.GetRequestID(c),
		}

		entry := logger.WithFields(fields)

		status := c.Writer.Status()
		switch {
		case status >= 500:
			entry.Error("Request completed with server error")
		case status >= 400:
			entry.Warn("Request completed with client error")
		default:
			entry.Info("Request completed successfully")
		}
	}
}

// rootHandler reports basic service information
func rootHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "BetaShift",
			"status":  "running",
			"version": version,
		})
	}
}

// healthCheckHandler returns a health check endpoint
func healthCheckHandler(db database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"database": "unhealthy",
				"error":    err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"database":  "healthy",
			"version":   version,
			"timestamp": time.Now().Unix(),
		})
	}
}
