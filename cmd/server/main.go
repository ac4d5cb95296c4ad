package main

import (
	"log"

	"advertapp/internal/config"
	"advertapp/internal/database"
	"advertapp/internal/handlers"
	"advertapp/internal/middleware"
	"advertapp/internal/repository"
	"advertapp/internal/services"
	"advertapp/internal/validation"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Register custom validation rules
	validation.RegisterCustomValidators()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	adRepo := repository.NewAdvertisementRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	userService := services.NewUserService(userRepo)
	advertService := services.NewAdvertisementService(adRepo)

	// Initialize handlers
	userHandler := handlers.NewUserHandler(userService)
	advertHandler := handlers.NewAdvertisementHandler(advertService)

	// Initialize Gin router
	r := gin.Default()

	// Health check endpoints
	r.GET("/", handlers.Check)
	r.GET("/check/", handlers.Check)

	// User routes
	users := r.Group("/user")
	{
		users.GET("/", userHandler.ListUsers)
		users.GET("/:id", userHandler.GetUser)
		users.POST("/", userHandler.CreateUser)
	}

	// Advertisement routes; mutations require authentication and ownership
	adverts := r.Group("/advertisement")
	{
		adverts.GET("/", advertHandler.ListAdvertisements)
		adverts.GET("/:id", advertHandler.GetAdvertisement)
		adverts.POST("/", middleware.RequireAuth(authService), advertHandler.CreateAdvertisement)
		adverts.PATCH("/:id", middleware.RequireAuth(authService), middleware.RequireAdvertisementOwner(advertService), advertHandler.UpdateAdvertisement)
		adverts.DELETE("/:id", middleware.RequireAuth(authService), middleware.RequireAdvertisementOwner(advertService), advertHandler.DeleteAdvertisement)
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
