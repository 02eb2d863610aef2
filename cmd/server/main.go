package main

import (
	"log"

	"github.com/BayerTobias/join-backend-pythonanywhere/internal/config"
	"github.com/BayerTobias/join-backend-pythonanywhere/internal/database"
	"github.com/BayerTobias/join-backend-pythonanywhere/internal/handlers"
	"github.com/BayerTobias/join-backend-pythonanywhere/internal/repository"
	"github.com/BayerTobias/join-backend-pythonanywhere/internal/services"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	db := database.GetDB()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	tokenRepo := repository.NewTokenRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	contactRepo := repository.NewContactRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, tokenRepo, contactRepo)
	taskService := services.NewTaskService(taskRepo, categoryRepo, userRepo)
	categoryService := services.NewCategoryService(categoryRepo)
	contactService := services.NewContactService(contactRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	taskHandler := handlers.NewTaskHandler(taskService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	contactHandler := handlers.NewContactHandler(contactService)

	// Initialize Gin router
	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Join backend is running",
		})
	})

	handlers.RegisterRoutes(r, authHandler, taskHandler, categoryHandler, contactHandler)

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
