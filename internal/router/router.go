package router

import (
	"log"

	"github.com/Musabek03/Instagram-clone/internal/handlers"
	"github.com/Musabek03/Instagram-clone/internal/middleware"
	"github.com/Musabek03/Instagram-clone/internal/models"
	"github.com/Musabek03/Instagram-clone/internal/notify"
	"github.com/Musabek03/Instagram-clone/internal/repositories"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *gorm.DB) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.PostLike{},
		&models.Follow{},
		&models.Notification{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(db)
	postRepo := repositories.NewPostgresPostRepository(db)
	commentRepo := repositories.NewPostgresCommentRepository(db)
	likeRepo := repositories.NewPostgresLikeRepository(db)
	followRepo := repositories.NewPostgresFollowRepository(db)
	notificationRepo := repositories.NewPostgresNotificationRepository(db)

	// Fan-out component shared by the mutating handlers
	notifier := notify.New(notificationRepo)

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(userRepo)
	authHandler.RegisterAuthRoutes(authGroup)

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware())

	authHandler.RegisterProtectedAuthRoutes(api)

	// User profile routes
	userHandler := handlers.NewUserHandler(userRepo, postRepo, followRepo)
	userHandler.RegisterProfileRoutes(api)

	// Post routes
	postHandler := handlers.NewPostHandler(postRepo, userRepo, likeRepo, commentRepo)
	postHandler.RegisterPostRoutes(api)

	// Feed routes
	feedHandler := handlers.NewFeedHandler(postHandler, postRepo, followRepo)
	feedHandler.RegisterFeedRoutes(api)

	// Follow routes
	followHandler := handlers.NewFollowHandler(followRepo, userRepo, notifier)
	followHandler.RegisterFollowRoutes(api)

	// Comment routes
	commentHandler := handlers.NewCommentHandler(commentRepo, postRepo, notifier)
	commentHandler.RegisterCommentRoutes(api)

	// Like routes
	likeHandler := handlers.NewLikeHandler(likeRepo, postRepo, notifier)
	likeHandler.RegisterLikeRoutes(api)

	// Notification routes
	notificationHandler := handlers.NewNotificationHandler(notificationRepo, userRepo)
	notificationHandler.RegisterNotificationRoutes(api)

	log.Println("All routes configured.")
}
