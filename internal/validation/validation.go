// Package validation checks an assembled configuration against deployment
// rules and reports violations as human-readable issue strings. The host
// decides whether a non-empty issue list is fatal; in development it is
// typically warn-only.
package validation

import (
	"fmt"
	"os"
	"strings"

	"github.com/finova-network/content-analyzer/internal/config"
)

// PathExistsFunc reports whether a model artifact exists at the given path.
// It is injected so tests never touch the real filesystem.
type PathExistsFunc func(path string) bool

// FileExists is the production PathExistsFunc.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Validate runs every rule against the configuration and returns one issue
// string per violation, in stable order. Rules are independent: all are
// checked even when earlier ones fail. An empty result means the
// configuration is fully valid. Validate never mutates cfg.
func Validate(cfg *config.Config, pathExists PathExistsFunc) []string {
	var issues []string

	for _, name := range cfg.ModelNames() {
		model := cfg.Models[name]
		if !pathExists(model.Path) {
			issues = append(issues, fmt.Sprintf("Model file not found: %s", model.Path))
		}
	}

	if cfg.Environment == config.Production && len(cfg.APIKeys) == 0 {
		issues = append(issues, "API keys not configured for production")
	}

	sum := cfg.Weights.Sum()
	if diff := sum - 1.0; diff > 0.01 || diff < -0.01 {
		issues = append(issues, fmt.Sprintf("Quality weights sum to %v, should be 1.0", sum))
	}

	if !strings.HasPrefix(cfg.DatabaseURL, "postgresql://") && !strings.HasPrefix(cfg.DatabaseURL, "sqlite://") {
		issues = append(issues, "Invalid database URL format")
	}

	return issues
}
