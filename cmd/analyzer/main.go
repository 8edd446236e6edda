package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/finova-network/content-analyzer/internal/application"
	"github.com/finova-network/content-analyzer/internal/config"
	"github.com/finova-network/content-analyzer/internal/logging"
)

var osExit = os.Exit

func main() {
	kingpinApp := kingpin.New("content-analyzer", "Finova Content Analyzer - validates deployment configuration and reports issues")
	envName := kingpinApp.Flag("env", "Environment tier (development, staging, production); defaults to FINOVA_ENV").String()
	configFile := kingpinApp.Flag("config", "Path to YAML configuration file").String()
	envFiles := kingpinApp.Flag("env-file", "Env file to load before reading the environment (repeatable)").Strings()
	strict := kingpinApp.Flag("strict", "Exit non-zero when validation finds issues, regardless of tier").Bool()

	kingpin.MustParse(kingpinApp.Parse(os.Args[1:]))

	if err := loadEnvFiles(*envFiles); err != nil {
		panic(fmt.Sprintf("failed to load env files: %v", err))
	}

	cfg, err := config.Load(config.Options{
		Environment: *envName,
		ConfigFile:  *configFile,
	})
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}

	logger, err := logging.New(cfg.LogLevel, cfg.Debug)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	app := application.New(cfg, logger)

	issues := app.ValidateConfig()
	fmt.Print(app.CheckReport(issues))

	if len(issues) == 0 {
		logger.Debug("configuration valid",
			zap.String("environment", string(cfg.Environment)),
			zap.Int("models", len(cfg.Models)),
		)
		return
	}

	logger.Warn("configuration issues found", zap.Int("count", len(issues)))
	if cfg.Environment == config.Production || *strict {
		_ = logger.Sync()
		osExit(1)
	}
}

// loadEnvFiles overlays env files onto the process environment before the
// configuration store reads it. With no explicit files, .env and .env.dev
// are probed and skipped silently when absent; an explicitly named file must
// exist.
func loadEnvFiles(files []string) error {
	if len(files) == 0 {
		for _, file := range []string{".env", ".env.dev"} {
			if _, err := os.Stat(file); err != nil {
				continue
			}
			if err := godotenv.Overload(file); err != nil {
				return fmt.Errorf("load %s: %w", file, err)
			}
		}
		return nil
	}

	for _, file := range files {
		if err := godotenv.Overload(file); err != nil {
			return fmt.Errorf("load %s: %w", file, err)
		}
	}
	return nil
}
