package main

import (
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	_ "edu-turkish-backend/docs"
	"edu-turkish-backend/internal/cache"
	"edu-turkish-backend/internal/catalog"
	"edu-turkish-backend/internal/config"
	"edu-turkish-backend/internal/database"
	"edu-turkish-backend/internal/handlers"
	"edu-turkish-backend/internal/mapper"
	"edu-turkish-backend/internal/repository"
	"edu-turkish-backend/internal/routes"
	"edu-turkish-backend/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	fiberSwagger "github.com/swaggo/fiber-swagger"
)

const version = "1.0.0"

// @title Edu Turkish API
// @version 1.0
// @description University catalog for students applying to Turkish universities: search, filters, university pages, directions, FAQ, reviews, blog and application requests. Content is served in ru, en, kk and tr.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@example.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8010
// @BasePath /api/v1
// @schemes http https

func main() {
	// Load environment variables
	loadEnvFile()

	// Load configuration
	cfg := config.Load()

	// Setup logger
	log := setupLogger()

	// Validate configuration
	warnings, err := cfg.Validate()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	for _, w := range warnings {
		log.Warnf("Configuration validation warning: %s", w)
	}

	// Connect to database
	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer closeAndLog(db, "database", log)

	facetCache := setupCache(cfg.Redis, log)
	if closer, ok := facetCache.(io.Closer); ok {
		defer closeAndLog(closer, "Redis", log)
	}

	media := setupMedia(cfg, log)

	fallbacks := mapper.NewFallbackLogger(log)
	m := mapper.New(media, fallbacks)

	universityRepo := repository.NewUniversityRepository(db, m, catalog.NewLabelTables(), repository.UniversityRepositoryOptions{
		Cache:     facetCache,
		FacetsTTL: cfg.Redis.FacetsTTL,
		Logger:    log,
	})
	faqRepo := repository.NewFAQRepository(db, m)
	reviewRepo := repository.NewReviewRepository(db, m)
	blogRepo := repository.NewBlogRepository(db, m)
	applicationRepo := repository.NewApplicationRepository(db)

	catalogService := services.NewCatalogService(universityRepo, faqRepo, reviewRepo, blogRepo, &cfg.Catalog, log)
	applicationService := services.NewApplicationService(applicationRepo, log)

	app := fiber.New(fiber.Config{
		AppName:               "Edu Turkish API",
		ReadTimeout:           cfg.Server.ReadTimeout,
		WriteTimeout:          cfg.Server.WriteTimeout,
		IdleTimeout:           120 * time.Second,
		DisableStartupMessage: false,
		ErrorHandler:          customErrorHandler(log),
	})

	setupMiddleware(app, cfg.Server.CORSOrigins)

	app.Get("/health", handlers.NewHealthHandler(db, fallbacks, version).Health)

	// Swagger documentation
	app.Get("/swagger/*", fiberSwagger.WrapHandler)

	// Setup API routes
	routes.Setup(app, routes.Handlers{
		University:  handlers.NewUniversityHandler(catalogService, log),
		Content:     handlers.NewContentHandler(catalogService, log),
		Application: handlers.NewApplicationHandler(applicationService, log),
		Upload:      handlers.NewUploadHandler(media, log),
	})

	// Graceful shutdown
	go gracefulShutdown(app, log)

	log.Infof("Edu Turkish API starting on port %s", cfg.Server.Port)
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
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

// setupCache returns nil when redis is disabled or unreachable; facets are then
// computed on every request.
func setupCache(cfg config.RedisConfig, log *logrus.Logger) cache.Cache {
	if !cfg.Enabled || cfg.URL == "" {
		log.Info("Redis facet cache disabled")
		return nil
	}

	rc, err := cache.NewRedisCache(cfg.URL)
	if err != nil {
		log.WithError(err).Warn("Failed to connect to Redis, facet cache disabled")
		return nil
	}

	log.WithField("ttl", cfg.FacetsTTL).Info("Redis facet cache enabled")
	return rc
}

func setupMedia(cfg *config.Config, log *logrus.Logger) *services.MediaService {
	if !cfg.MinIOEnabled() {
		return services.NewStaticMediaService(&cfg.MinIO, log)
	}

	media, err := services.NewMediaService(&cfg.MinIO, log)
	if err != nil {
		log.WithError(err).Warn("Failed to initialize MinIO service, uploads disabled")
		return services.NewStaticMediaService(&cfg.MinIO, log)
	}
	return media
}

func closeAndLog(c io.Closer, name string, log logrus.FieldLogger) {
	if err := c.Close(); err != nil {
		log.Errorf("Error closing %s connection: %v", name, err)
	}
}

func setupMiddleware(app *fiber.App, origins string) {
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))

	// Logger middleware
	app.Use(logger.New(logger.Config{
		Format:     "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path} | ${error}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))

	if strings.TrimSpace(origins) == "" {
		origins = "*"
	}

	// CORS middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Accept-Language, Authorization, X-Request-ID",
		AllowMethods:     "GET, POST, DELETE, OPTIONS",
		AllowCredentials: false,
		MaxAge:           86400, // 24 hours
	}))
}

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

		status := "error"
		if code >= 500 {
			status = "fail"
		}

		return c.Status(code).JSON(fiber.Map{
			"status":  status,
			"code":    code,
			"message": err.Error(),
		})
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
