package main

import (
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"saas-platform-backend/internal/config"
	"saas-platform-backend/internal/database"
	"saas-platform-backend/internal/handlers"
	"saas-platform-backend/internal/logger"
	"saas-platform-backend/internal/middleware"
	"saas-platform-backend/internal/store"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zapLogger, err := logger.New(cfg.LogLevel, cfg.Environment == "development")
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Open database and run migrations
	if dir := filepath.Dir(cfg.DatabasePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			zapLogger.Fatal("failed to create database directory", zap.Error(err))
		}
	}

	db, err := database.Open(cfg.DatabasePath)
	if err != nil {
		zapLogger.Fatal("failed to open database", zap.Error(err))
	}
	defer db.Close()

	migrator := database.NewMigrator(db, zapLogger)
	if err := migrator.Run(); err != nil {
		zapLogger.Fatal("migration failed", zap.Error(err))
	}
	zapLogger.Info("migrations completed")

	// Initialize store and handlers
	st := store.New(db)

	authHandler := handlers.NewAuthHandler(st, cfg)
	customersHandler := handlers.NewCustomersHandler(st)
	projectsHandler := handlers.NewProjectsHandler(st)
	deploymentsHandler := handlers.NewDeploymentsHandler(st)
	transactionsHandler := handlers.NewTransactionsHandler(st)
	quotesHandler := handlers.NewQuotesHandler(st)
	chatHandler := handlers.NewChatHandler(st)
	commandsHandler := handlers.NewCommandsHandler(st, zapLogger)
	datasetsHandler := handlers.NewDatasetsHandler(st)
	feedbackHandler := handlers.NewFeedbackHandler(st)
	blogHandler := handlers.NewBlogHandler(st)

	// Setup router
	router := gin.New()
	router.Use(middleware.RequestLogger(zapLogger))
	router.Use(gin.Recovery())

	// Health check (no auth)
	router.GET("/health", handlers.HealthHandler)

	// Public routes
	router.GET("/api/blog", blogHandler.ListPosts)
	router.POST("/api/chat/session-feedback", feedbackHandler.SessionFeedback)
	router.POST("/api/v1/auth/register", authHandler.Register)
	router.POST("/api/v1/auth/login", authHandler.Login)

	// API routes
	api := router.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(cfg))

	// Customer routes
	api.POST("/customers", customersHandler.CreateCustomer)
	api.GET("/customers", customersHandler.ListCustomers)
	api.GET("/customers/:customer_id", customersHandler.GetCustomer)
	api.PUT("/customers/:customer_id", customersHandler.UpdateCustomer)
	api.DELETE("/customers/:customer_id", customersHandler.DeleteCustomer)

	// Project routes
	api.POST("/projects", projectsHandler.CreateProject)
	api.GET("/projects", projectsHandler.ListProjects)
	api.GET("/projects/:project_id", projectsHandler.GetProject)
	api.PATCH("/projects/:project_id/status", projectsHandler.UpdateProjectStatus)
	api.DELETE("/projects/:project_id", projectsHandler.DeleteProject)

	// Deployment routes
	api.POST("/deployments", deploymentsHandler.CreateDeployment)
	api.GET("/deployments", deploymentsHandler.ListDeployments)
	api.GET("/deployments/:deployment_id", deploymentsHandler.GetDeployment)
	api.PATCH("/deployments/:deployment_id/status", deploymentsHandler.UpdateDeploymentStatus)

	// Transaction routes
	api.POST("/transactions", transactionsHandler.CreateTransaction)
	api.GET("/transactions", transactionsHandler.ListTransactions)

	// Quote routes
	api.POST("/quotes", quotesHandler.CreateQuote)
	api.GET("/quotes", quotesHandler.ListQuotes)
	api.GET("/quotes/:quote_id", quotesHandler.GetQuote)
	api.PATCH("/quotes/:quote_id/status", quotesHandler.UpdateQuoteStatus)
	api.DELETE("/quotes/:quote_id", quotesHandler.DeleteQuote)

	// Chat routes
	api.POST("/chat/sessions", chatHandler.CreateSession)
	api.GET("/chat/sessions", chatHandler.ListSessions)
	api.GET("/chat/sessions/:session_id", chatHandler.GetSession)
	api.POST("/chat/sessions/:session_id/messages", chatHandler.PostMessage)

	// Dataset and knowledge-base routes
	api.POST("/datasets/upload", datasetsHandler.UploadDataset)
	api.GET("/datasets", datasetsHandler.ListDatasets)
	api.GET("/search", datasetsHandler.Search)

	// Command routes
	api.POST("/commands", commandsHandler.CreateCommand)
	api.GET("/commands", commandsHandler.ListCommands)
	api.GET("/commands/:command_id", commandsHandler.GetCommand)

	// Blog authoring
	api.POST("/blog", blogHandler.CreatePost)

	// Feedback stats
	api.GET("/feedback/stats", feedbackHandler.Stats)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	zapLogger.Info("server starting", zap.String("port", port))
	if err := http.ListenAndServe(":"+port, router); err != nil {
		zapLogger.Fatal("failed to start server", zap.Error(err))
	}
}
