package main

import (
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"stagebook/internal/config"
	"stagebook/internal/database"
	"stagebook/internal/datefmt"
	"stagebook/internal/handlers"
	"stagebook/internal/repository"
	"stagebook/internal/routes"
	"stagebook/internal/services"
	"stagebook/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load environment variables
	loadEnvFile()

	// Load configuration
	cfg := config.Load()

	// Setup logger
	log := setupLogger()

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Warnf("Configuration validation warning: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Errorf("Error closing database connection: %v", err)
		}
	}()

	venueRepo := repository.NewVenueRepository(db)
	artistRepo := repository.NewArtistRepository(db)
	showRepo := repository.NewShowRepository(db)

	venueService := services.NewVenueService(venueRepo, showRepo, log)
	artistService := services.NewArtistService(artistRepo, showRepo, log)
	showService := services.NewShowService(showRepo, log)

	mediaService, err := services.NewMediaService(&cfg.MinIO, log)
	if err != nil {
		log.Fatalf("Failed to initialize media service: %v", err)
	}

	if vs, ok := venueService.(interface{ SetMediaService(*services.MediaService) }); ok {
		vs.SetMediaService(mediaService)
	}
	if as, ok := artistService.(interface{ SetMediaService(*services.MediaService) }); ok {
		as.SetMediaService(mediaService)
	}

	flash := utils.NewFlashStore(log)

	homeHandler := handlers.NewHomeHandler(venueService, artistService, flash, log)
	venueHandler := handlers.NewVenueHandler(venueService, flash, log)
	artistHandler := handlers.NewArtistHandler(artistService, flash, log)
	showHandler := handlers.NewShowHandler(showService, flash, log)
	uploadHandler := handlers.NewUploadHandler(mediaService, log)

	engine := html.New("./views", ".html")
	engine.AddFunc("datetime", datefmt.Format)

	app := fiber.New(fiber.Config{
		AppName:               "Stagebook",
		Views:                 engine,
		ReadTimeout:           cfg.Server.ReadTimeout,
		WriteTimeout:          cfg.Server.WriteTimeout,
		IdleTimeout:           120 * time.Second,
		DisableStartupMessage: false,
		ErrorHandler:          customErrorHandler(log),
	})

	setupMiddleware(app)

	app.Get("/health", healthCheckHandler(db))

	routes.Setup(app, homeHandler, venueHandler, artistHandler, showHandler, uploadHandler)

	// Graceful shutdown
	go gracefulShutdown(app, log)

	addr := cfg.Server.Host + ":" + cfg.Server.Port
	log.Infof("Stagebook starting on %s", addr)
	if err := app.Listen(addr); err != nil {
		log.Fatalf("Failed to start HTTP server: %v", err)
	}
}

func setupLogger() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
	})
	log.SetOutput(os.Stdout)
	log.SetLevel(logrus.InfoLevel)

	if os.Getenv("GO_ENV") == "dev" || os.Getenv("GO_ENV") == "development" {
		log.SetLevel(logrus.DebugLevel)
	}

	return log
}

func setupMiddleware(app *fiber.App) {
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))

	// Logger middleware
	app.Use(logger.New(logger.Config{
		Format:     "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path} | ${error}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))
}

func healthCheckHandler(db *database.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbStatus := "healthy"
		if err := db.HealthCheck(); err != nil {
			dbStatus = "unhealthy"
		}

		return c.JSON(fiber.Map{
			"status":    "ok",
			"service":   "stagebook",
			"version":   "1.0.0",
			"database":  dbStatus,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}

// customErrorHandler renders the dedicated 404 and 500 pages. Anything
// that is not an explicit client error is reported as a 500 with no
// detail exposed; the raw error goes to the log.
func customErrorHandler(log *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		log.WithError(err).WithFields(logrus.Fields{
			"method": c.Method(),
			"path":   c.Path(),
			"status": code,
		}).Error("Request error")

		page := "errors/500"
		if code == fiber.StatusNotFound {
			page = "errors/404"
		}

		if renderErr := c.Status(code).Render(page, fiber.Map{}); renderErr != nil {
			log.WithError(renderErr).Error("Failed to render error page")
			return c.Status(code).SendString(fiber.ErrInternalServerError.Message)
		}
		return nil
	}
}

func gracefulShutdown(app *fiber.App, log *logrus.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if err := app.ShutdownWithTimeout(30 * time.Second); err != nil {
		log.Errorf("Error during shutdown: %v", err)
	}

	log.Info("Server shutdown complete")
}

func loadEnvFile() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{})
	log.SetOutput(os.Stdout)

	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "dev"
	}

	execDir, err := os.Getwd()
	if err != nil {
		log.Warnf("Could not get working directory: %v", err)
		return
	}

	envFile := filepath.Join(execDir, "envs", ".env."+env)
	if err := godotenv.Load(envFile); err != nil {
		log.Warnf("Could not load environment file %s: %v", envFile, err)

		defaultEnvFile := filepath.Join(execDir, "envs", ".env")
		if err := godotenv.Load(defaultEnvFile); err != nil {
			log.Warnf("Could not load default environment file: %v", err)
		} else {
			log.Infof("Environment loaded from default file %s", defaultEnvFile)
		}
	} else {
		log.Infof("Environment loaded from file %s", envFile)
	}
}
