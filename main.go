package main

import (
	"net/http"
	"os"

	"newsroom-api/config"
	"newsroom-api/handlers"
	"newsroom-api/middleware"
	"newsroom-api/models"
	"newsroom-api/repositories"
	"newsroom-api/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		config.GetLogger().Info("No .env file found")
	}

	config.LoadJWT()
	logger := config.GetLogger()
	defer logger.Sync()

	// Initialize database
	db := config.InitDB()

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	publisherRepo := repositories.NewPublisherRepository(db)
	articleRepo := repositories.NewArticleRepository(db)
	newsletterRepo := repositories.NewNewsletterRepository(db)
	subscriptionRepo := repositories.NewSubscriptionRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	userService := services.NewUserService(userRepo)
	notifier := services.NewNotificationService(subscriptionRepo, logger)
	articleService := services.NewArticleService(articleRepo, publisherRepo, subscriptionRepo, notifier)
	newsletterService := services.NewNewsletterService(newsletterRepo, publisherRepo, subscriptionRepo, notifier)
	publisherService := services.NewPublisherService(publisherRepo, userRepo)
	subscriptionService := services.NewSubscriptionService(subscriptionRepo, publisherRepo, userRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	articleHandler := handlers.NewArticleHandler(articleService)
	newsletterHandler := handlers.NewNewsletterHandler(newsletterService)
	publisherHandler := handlers.NewPublisherHandler(publisherService, subscriptionService)
	userHandler := handlers.NewUserHandler(userService, subscriptionService)

	// Setup router
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
	}))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Protected routes
		protected := v1.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			// Profile
			protected.GET("/profile", authHandler.GetProfile)

			// Articles
			articles := protected.Group("/articles")
			{
				articles.POST("", articleHandler.CreateArticle)
				articles.GET("", articleHandler.GetArticles)
				articles.GET("/my_subscriptions", articleHandler.GetMySubscriptions)
				articles.GET("/:id", articleHandler.GetArticle)
				articles.PUT("/:id/approve", articleHandler.ApproveArticle)
				articles.PUT("/:id/reject", articleHandler.RejectArticle)
			}

			// Newsletters
			newsletters := protected.Group("/newsletters")
			{
				newsletters.POST("", newsletterHandler.CreateNewsletter)
				newsletters.GET("", newsletterHandler.GetNewsletters)
				newsletters.GET("/my_subscriptions", newsletterHandler.GetMySubscriptions)
				newsletters.GET("/:id", newsletterHandler.GetNewsletter)
				newsletters.PUT("/:id/approve", newsletterHandler.ApproveNewsletter)
				newsletters.PUT("/:id/reject", newsletterHandler.RejectNewsletter)
			}

			// Publishers
			publishers := protected.Group("/publishers")
			{
				publishers.POST("", middleware.RequireRole(models.RoleEditor), publisherHandler.CreatePublisher)
				publishers.GET("", publisherHandler.GetPublishers)
				publishers.GET("/:id", publisherHandler.GetPublisher)
				publishers.POST("/:id/subscribe", publisherHandler.Subscribe)
				publishers.POST("/:id/unsubscribe", publisherHandler.Unsubscribe)
			}

			// Users (journalist directory for subscriptions)
			users := protected.Group("/users")
			{
				users.GET("", userHandler.GetJournalists)
				users.POST("/:id/subscribe", userHandler.Subscribe)
				users.POST("/:id/unsubscribe", userHandler.Unsubscribe)
			}
		}
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logger.Info("Server starting", zap.String("port", port))
	if err := http.ListenAndServe(":"+port, router); err != nil {
		logger.Fatal("Server stopped", zap.Error(err))
	}
}
