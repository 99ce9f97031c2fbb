package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"appointment_manager/internal/config"
	"appointment_manager/internal/handler"
	"appointment_manager/internal/logger"
	"appointment_manager/internal/middleware"
	"appointment_manager/internal/model"
	"appointment_manager/internal/repository"
	"appointment_manager/internal/response"
	"appointment_manager/internal/seed"
	"appointment_manager/internal/service"
	"appointment_manager/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

const version = "1.0.0"

const maxBodyBytes = 10 << 20 // 10MB

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading, relying on environment variables")
	}

	appEnv := os.Getenv("APP_ENV")
	if appEnv == "" {
		appEnv = "development"
	}
	appLog := logger.New(appEnv)

	// --- Configuration ---
	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		appLog.Fatal().Err(err).Msg("failed to load DB config")
	}

	jwtSecret := os.Getenv("JWT_SECRET_KEY")
	if jwtSecret == "" {
		appLog.Fatal().Msg("JWT_SECRET_KEY not set in environment")
	}
	jwtExpHours, err := strconv.ParseInt(os.Getenv("JWT_EXPIRATION_HOURS"), 10, 64)
	if err != nil {
		jwtExpHours = 168 // 7 days
	}

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080"
	}

	// --- Database Connection ---
	dbPool, err := config.ConnectDB(dbCfg)
	if err != nil {
		appLog.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer dbPool.Close()

	// --- Auto Migration ---
	if err := config.AutoMigrate(dbPool); err != nil {
		appLog.Fatal().Err(err).Msg("failed to auto-migrate database")
	}

	// --- Initialize Utilities ---
	jwtUtil := utils.NewJWTUtil(jwtSecret, jwtExpHours)

	// --- Initialize Repositories ---
	userRepo := repository.NewUserRepository(dbPool)
	appointmentRepo := repository.NewAppointmentRepository(dbPool)

	if os.Getenv("SEED_DB") == "true" {
		if err := seed.Run(context.Background(), userRepo, appLog); err != nil {
			appLog.Fatal().Err(err).Msg("failed to seed database")
		}
	}

	// --- Initialize Services ---
	authService := service.NewAuthService(userRepo, jwtUtil)
	userService := service.NewUserService(userRepo)
	appointmentService := service.NewAppointmentService(appointmentRepo, userRepo)

	// --- Initialize Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	appointmentHandler := handler.NewAppointmentHandler(appointmentService)
	healthHandler := handler.NewHealthHandler(dbPool, appEnv, version)

	// --- Setup Gin Router ---
	if appEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(appLog))
	router.Use(middleware.SecurityHeaders())

	// Simple CORS middleware (allow all)
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, PATCH, DELETE")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Cap request body size
	router.Use(func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)
		c.Next()
	})

	// Global rate limit, with a separate looser allowance for appointment routes
	globalLimiter := middleware.NewFixedWindowStore(15 * time.Minute)
	router.Use(middleware.RateLimit(globalLimiter, 100))
	appointmentLimiter := middleware.NewFixedWindowStore(15 * time.Minute)

	// --- Initialize Middlewares ---
	jwtAuthMW := middleware.JWTAuthMiddleware(jwtUtil)
	doctorMW := middleware.RequireDoctor()
	patientMW := middleware.RequirePatient()
	doctorOrPatientMW := middleware.Authorize(model.RoleDoctor, model.RolePatient)

	// --- Register Routes ---
	apiGroup := router.Group("/api/v1")
	authHandler.RegisterAuthRoutes(apiGroup)
	userHandler.RegisterUserRoutes(apiGroup, jwtAuthMW, doctorMW)
	appointmentHandler.RegisterAppointmentRoutes(apiGroup,
		middleware.RateLimit(appointmentLimiter, 500), jwtAuthMW, doctorMW, patientMW, doctorOrPatientMW)

	router.GET("/health", healthHandler.GetHealth)
	router.NoRoute(response.NotFoundHandler)

	// --- Start Server ---
	srv := &http.Server{
		Addr:    ":" + serverPort,
		Handler: router,
	}

	go func() {
		appLog.Info().Str("port", serverPort).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.Fatal().Err(err).Msg("listen")
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLog.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLog.Fatal().Err(err).Msg("server forced to shutdown")
	}

	appLog.Info().Msg("server exiting")
}
