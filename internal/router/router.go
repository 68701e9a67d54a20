package router

import (
	"github.com/dmtrv/blogfeed/internal/cache"
	"github.com/dmtrv/blogfeed/internal/feed"
	"github.com/dmtrv/blogfeed/internal/handlers"
	"github.com/dmtrv/blogfeed/internal/middleware"
	"github.com/dmtrv/blogfeed/internal/models"
	"github.com/dmtrv/blogfeed/internal/repositories"
	"github.com/dmtrv/blogfeed/pkg/config"
	"github.com/dmtrv/blogfeed/pkg/storage"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Info().Msg("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *gorm.DB, cfg *config.Config) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Group{},
		&models.Post{},
		&models.Comment{},
		&models.Follow{},
	)
	if err != nil {
		return err
	}
	log.Info().Msg("Auto-migrations completed for all models.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize repositories ---
	userRepo := repositories.NewPostgresUserRepository(db)
	groupRepo := repositories.NewPostgresGroupRepository(db)
	postRepo := repositories.NewPostgresPostRepository(db)
	commentRepo := repositories.NewPostgresCommentRepository(db)
	followRepo := repositories.NewPostgresFollowRepository(db)

	// --- Collaborators ---
	composer := feed.NewComposer(postRepo, userRepo, groupRepo, followRepo)
	timeline := cache.NewTimelineCache(cfg.CacheTTL)
	images, err := storage.NewLocalImageStore(cfg.UploadDir)
	if err != nil {
		return err
	}

	// Public routes resolve identity when a token is present but never
	// require one; protected routes reject anonymous requests with the
	// intended destination attached.
	public := e.Group("/api/v1")
	public.Use(middleware.OptionalJWTAuth(cfg.JWTSecret))
	protected := e.Group("/api/v1")
	protected.Use(middleware.JWTAuth(cfg.JWTSecret))

	feedHandler := handlers.NewFeedHandler(composer, timeline)
	feedHandler.RegisterPublicRoutes(public)
	feedHandler.RegisterProtectedRoutes(protected)
	log.Info().Msg("Feed routes configured.")

	postHandler := handlers.NewPostHandler(postRepo, groupRepo, commentRepo)
	postHandler.RegisterPublicRoutes(public)
	postHandler.RegisterProtectedRoutes(protected)
	log.Info().Msg("Post routes configured.")

	commentHandler := handlers.NewCommentHandler(commentRepo, postRepo)
	commentHandler.RegisterPublicRoutes(public)
	commentHandler.RegisterProtectedRoutes(protected)
	log.Info().Msg("Comment routes configured.")

	groupHandler := handlers.NewGroupHandler(groupRepo, composer)
	groupHandler.RegisterPublicRoutes(public)
	groupHandler.RegisterProtectedRoutes(protected)
	log.Info().Msg("Group routes configured.")

	followHandler := handlers.NewFollowHandler(followRepo, userRepo)
	followHandler.RegisterProtectedRoutes(protected)
	log.Info().Msg("Follow routes configured.")

	userHandler := handlers.NewUserHandler(userRepo, postRepo, followRepo, composer)
	userHandler.RegisterPublicRoutes(public)
	userHandler.RegisterProtectedRoutes(protected)
	log.Info().Msg("User routes configured.")

	uploadHandler := handlers.NewUploadHandler(images)
	uploadHandler.RegisterPublicRoutes(public)
	uploadHandler.RegisterProtectedRoutes(protected)
	log.Info().Msg("Upload routes configured.")

	log.Info().Msg("All routes configured.")
	return nil
}
