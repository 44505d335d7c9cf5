package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"elpais-opinion-parser/internal/app"
	"elpais-opinion-parser/internal/browser"
	"elpais-opinion-parser/internal/config"
	"elpais-opinion-parser/internal/observability"
	"elpais-opinion-parser/internal/storage"
	"elpais-opinion-parser/internal/storage/mssql"
	"elpais-opinion-parser/internal/translate"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := "configs/config.yaml"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	// .env подхватываем, если он есть
	_ = godotenv.Load()

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		return 1
	}

	logger := observability.NewLogger(
		cfg.Observability.LogPath,
		cfg.Observability.LogLevel,
		cfg.Observability.MaxSizeMB,
		cfg.Observability.MaxBackups,
		cfg.Observability.MaxAgeDays,
	)

	selectors, err := cfg.LoadSelectorsFromConfig()
	if err != nil {
		logger.Error("Failed to load selectors", "error", err.Error())
		return 1
	}

	// Ключ перевода проверяем до любых действий с браузером
	apiKey := os.Getenv(cfg.Translate.APIKeyEnv)
	if apiKey == "" {
		logger.Error("Translation API key is not set", "env", cfg.Translate.APIKeyEnv)
		return 1
	}

	ctx, cancel := app.GracefulShutdown(logger)
	defer cancel()

	sess, err := browser.Launch(cfg, logger)
	if err != nil {
		logger.Error("Failed to launch browser session", "error", err.Error())
		return 1
	}
	// Сессию закрываем безусловно, независимо от исхода
	defer sess.Close()

	var repo storage.Repository
	if cfg.Storage.Enabled {
		mssqlRepo, err := mssql.NewRepository(cfg.Storage.DSN, cfg.Storage.CommandTimeoutMS, logger)
		if err != nil {
			logger.Error("Failed to connect to storage, continuing without persistence", "error", err.Error())
		} else {
			repo = mssqlRepo
			defer func() {
				if err := repo.Close(); err != nil {
					logger.Error("Failed to close storage", "error", err.Error())
				}
			}()
		}
	}

	translator := translate.NewClient(cfg, apiKey, logger)
	runner := app.NewRunner(cfg, selectors, logger, sess, translator, repo)

	if err := runner.Run(ctx); err != nil {
		logger.Error("Run failed", "error", err.Error())
		return 1
	}

	logger.Info("Run completed")
	return 0
}
