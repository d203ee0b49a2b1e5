package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MudassirAli1/Hackathon2-Fullstacktodo-phase2/internal/auth"
	"github.com/MudassirAli1/Hackathon2-Fullstacktodo-phase2/internal/config"
	"github.com/MudassirAli1/Hackathon2-Fullstacktodo-phase2/internal/database"
	apierrors "github.com/MudassirAli1/Hackathon2-Fullstacktodo-phase2/internal/errors"
	"github.com/MudassirAli1/Hackathon2-Fullstacktodo-phase2/internal/handlers"
	"github.com/MudassirAli1/Hackathon2-Fullstacktodo-phase2/internal/logging"
	"github.com/MudassirAli1/Hackathon2-Fullstacktodo-phase2/internal/middleware"
	"github.com/MudassirAli1/Hackathon2-Fullstacktodo-phase2/internal/repository"
	"github.com/MudassirAli1/Hackathon2-Fullstacktodo-phase2/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database and run migrations
	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	// Token codec for issuing and verifying bearer tokens
	codec, err := auth.NewTokenCodec(cfg.JWTSecret, cfg.JWTAlgorithm)
	if err != nil {
		logger.Fatal("failed to build token codec", zap.Error(err))
	}

	// Repositories and services
	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	authService := services.NewAuthService(userRepo, codec, cfg.TokenTTL)
	taskService := services.NewTaskService(taskRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, logger)
	taskHandler := handlers.NewTaskHandler(taskService, logger)

	r := gin.New()
	r.Use(middleware.RequestLogger(logger))
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("panic recovered", zap.Any("panic", recovered))
		apierrors.InternalError(c, "")
	}))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Task Management API is running",
		})
	})

	// Auth routes (public; logout accepts but does not require a token)
	authRoutes := r.Group("/auth")
	{
		authRoutes.POST("/signup", authHandler.Signup)
		authRoutes.POST("/signin", authHandler.Signin)
		authRoutes.POST("/logout", authHandler.Logout)
	}

	// Task routes (bearer auth + path-owner check)
	users := r.Group("/users/:uid")
	users.Use(middleware.RequireAuth(codec, logger), middleware.RequireOwner())
	{
		users.GET("/tasks", taskHandler.ListTasks)
		users.POST("/tasks", taskHandler.CreateTask)
		users.GET("/tasks/:tid", taskHandler.GetTask)
		users.PUT("/tasks/:tid", taskHandler.UpdateTask)
		users.DELETE("/tasks/:tid", taskHandler.DeleteTask)
		users.PATCH("/tasks/:tid/complete", taskHandler.ToggleCompletion)
	}

	srv := &http.Server{
		Addr:    cfg.AppPort,
		Handler: r,
	}

	go func() {
		logger.Info("server starting", zap.String("addr", cfg.AppPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
	logger.Info("server stopped")
}
