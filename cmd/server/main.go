package main

import (
	"os"

	"github.com/dmtrv/blogfeed/internal/router"
	"github.com/dmtrv/blogfeed/pkg/config"
	"github.com/dmtrv/blogfeed/validators"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
}

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database connection
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database.")
	}
	defer config.CloseDB(db)

	if cfg.JWTSecret == "" {
		log.Warn().Msg("JWT_SECRET is not set; authenticated routes will reject every token.")
	}

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true

	// Validator
	e.Validator = validators.NewValidator()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	if err := router.SetupRoutes(e, db, cfg); err != nil {
		log.Fatal().Err(err).Msg("Failed to set up routes.")
	}

	// Start server
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("Server stopped.")
	}
}
