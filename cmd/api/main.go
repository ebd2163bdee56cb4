package main

import (
	"fmt"
	"net/http"
	"os"

	"finbuddy/internal/config"
	"finbuddy/internal/database"
	"finbuddy/internal/handlers"
	"finbuddy/internal/identity"
	"finbuddy/internal/logger"
	"finbuddy/internal/middleware"
	"finbuddy/internal/services"
	"finbuddy/internal/validator"

	"github.com/gin-gonic/gin"
)

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// The pool connects lazily on first use, so a database that is still
	// coming up does not keep the server from starting. Migrations are
	// attempted once here and retried out of band via cmd/migrate if needed.
	pool := database.NewPool(dbConfig)
	if err := pool.Migrate(); err != nil {
		log.Warnf("Database migrations not applied: %v", err)
	}

	// Register custom binding validators
	validator.Register()

	// Initialize services
	userService := services.NewUserService(pool)
	transactionService := services.NewTransactionService(pool)

	// Initialize handlers
	transactionHandler := handlers.NewTransactionHandler(userService, transactionService)
	summaryHandler := handlers.NewSummaryHandler(userService, transactionService)

	// Identity provider token verification
	resolver := identity.NewJWTResolver(appConfig.AuthJWTSecret)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Dashboard page
	router.GET("/", summaryHandler.Index)

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group, all routes require a resolvable identity
	v1 := router.Group("/api/v1")
	v1.Use(middleware.Authenticate(resolver))

	transactions := v1.Group("/transactions")
	transactions.GET("", transactionHandler.ListTransactions)
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	v1.GET("/summary", summaryHandler.GetSummary)

	log.Infof("Starting Finance Buddy server on port %s", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
