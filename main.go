package main

import (
	"fmt"
	"os"

	"github.com/jonesrussell/gigfeed/internal/api"
	"github.com/jonesrussell/gigfeed/internal/config"
	"github.com/jonesrussell/gigfeed/internal/logger"
	"github.com/jonesrussell/gigfeed/internal/scraper"
	"github.com/jonesrussell/gigfeed/internal/service"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Load configuration
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		return 1
	}

	// Initialize logger
	log, err := createLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		return 1
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting gigfeed service",
		logger.String("name", cfg.Service.Name),
		logger.String("version", cfg.Service.Version),
		logger.Int("port", cfg.Service.Port),
		logger.Bool("debug", cfg.Service.Debug),
	)

	return runServer(cfg, log)
}

// loadConfig loads configuration from config file.
func loadConfig() (*config.Config, error) {
	configPath := config.GetConfigPath("config.yml")
	return config.Load(configPath)
}

// createLogger creates a logger instance from configuration.
func createLogger(cfg *config.Config) (logger.Logger, error) {
	log, err := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		Development: cfg.Service.Debug,
	})
	if err != nil {
		return nil, err
	}
	return log.With(logger.String("service", "gigfeed")), nil
}

// runServer wires the scraper client, search service, handler, and HTTP
// server, then runs with graceful shutdown.
func runServer(cfg *config.Config, log logger.Logger) int {
	scraperClient := scraper.NewClient(&cfg.Scraper)
	log.Info("Scraper client configured",
		logger.String("url", cfg.Scraper.URL),
		logger.Duration("timeout", cfg.Scraper.Timeout),
	)

	searchService := service.NewSearchService(scraperClient, cfg, log)
	log.Info("Search service initialized")

	handler := api.NewHandler(searchService, scraperClient, cfg, log)
	server := api.NewServer(handler, cfg, log)

	if runErr := server.Run(); runErr != nil {
		log.Error("Server error", logger.Error(runErr))
		return 1
	}

	log.Info("Gigfeed service exited cleanly")
	return 0
}
