package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"sharecase/internal/assets"
	"sharecase/internal/auth"
	"sharecase/internal/database"
	"sharecase/internal/handlers"
	"sharecase/internal/realtime"
	"sharecase/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load database configuration
	dbConfig := database.LoadConfig()

	// Connect to database
	if err := database.Connect(dbConfig); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer database.Close()

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Initialize and start background workers
	workerService := worker.NewService(database.DB)
	if err := workerService.Start(); err != nil {
		log.Fatal("Failed to start background workers:", err)
	}

	// Setup graceful shutdown
	setupGracefulShutdown(workerService)

	// Setup HTTP server
	setupServer(workerService)
}

func setupGracefulShutdown(workerService *worker.Service) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Received shutdown signal, gracefully shutting down...")

		workerService.Stop()
		database.Close()

		log.Println("Shutdown complete")
		os.Exit(0)
	}()
}

func setupServer(workerService *worker.Service) {
	// Set Gin mode based on environment
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Shared collaborators
	sessions := auth.NewSessionManager()
	hub := realtime.NewHub()
	fetcher := assets.NewFetcher()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(database.DB, sessions)
	socialHandler := handlers.NewSocialHandler(database.DB, hub)
	projectHandler := handlers.NewProjectHandler(database.DB, hub)
	portfolioHandler := handlers.NewPortfolioHandler(database.DB, fetcher)
	adminHandler := handlers.NewAdminHandler(database.DB)
	statusHandler := handlers.NewStatusHandler(workerService)
	docsHandler := handlers.NewDocsHandler()

	// Health check
	r.GET("/health", statusHandler.HealthCheck)

	// Serve markdown documentation as HTML
	r.GET("/doc/:doc", docsHandler.ServeMarkdownAsHTML)

	// Realtime activity stream
	r.GET("/ws/activity", hub.ServeWS)

	// Session issuance (identity is verified upstream)
	r.POST("/api/auth/login", authHandler.Login)

	// API routes (session protected)
	api := r.Group("/api", sessions.RequireSession())
	{
		api.GET("/portfolio/export", portfolioHandler.ExportPortfolio)

		users := api.Group("/users")
		{
			users.GET("/:id", socialHandler.GetProfile)
			users.POST("/:id/follow", socialHandler.FollowUser)
			users.DELETE("/:id/follow", socialHandler.UnfollowUser)
			users.POST("/:id/points", socialHandler.AwardPoints)
		}

		projects := api.Group("/projects")
		{
			projects.GET("", projectHandler.ListMyProjects)
			projects.POST("/:id/publish", projectHandler.PublishProject)
			projects.POST("/:id/like", projectHandler.LikeProject)
			projects.POST("/:id/comments", projectHandler.CommentProject)
			projects.POST("/:id/view", projectHandler.ViewProject)
		}

		api.GET("/worker/status", statusHandler.WorkerStatus)
	}

	// Admin routes (password protected)
	admin := r.Group("/admin", adminHandler.AdminAuth())
	{
		admin.GET("/analytics", adminHandler.GetAnalytics)
		admin.POST("/refresh-engagement", adminHandler.RefreshEngagement)
	}

	// Get port from environment or default to 8080
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
