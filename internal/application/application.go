package application

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/finova-network/content-analyzer/internal/config"
	"github.com/finova-network/content-analyzer/internal/quality"
	"github.com/finova-network/content-analyzer/internal/ratelimit"
	"github.com/finova-network/content-analyzer/internal/validation"
)

// App encapsulates the application dependencies built from one validated
// configuration store.
type App struct {
	cfg    *config.Config
	logger *zap.Logger
	scorer quality.Scorer

	minuteLimiter ratelimit.Limiter
	hourLimiter   ratelimit.Limiter

	pathExists validation.PathExistsFunc
}

// Option configures App construction.
type Option func(*App)

// WithPathExists overrides the model artifact probe, primarily for tests.
func WithPathExists(fn validation.PathExistsFunc) Option {
	return func(a *App) {
		a.pathExists = fn
	}
}

// WithScorer overrides the quality scorer implementation.
func WithScorer(scorer quality.Scorer) Option {
	return func(a *App) {
		a.scorer = scorer
	}
}

// New initializes the application with all dependencies from the provided
// configuration.
func New(cfg *config.Config, logger *zap.Logger, opts ...Option) *App {
	minute, hour := ratelimit.FromConfig(cfg)
	app := &App{
		cfg:           cfg,
		logger:        logger,
		scorer:        quality.New(),
		minuteLimiter: minute,
		hourLimiter:   hour,
		pathExists:    validation.FileExists,
	}
	for _, opt := range opts {
		opt(app)
	}
	return app
}

// Config returns the immutable configuration store.
func (a *App) Config() *config.Config {
	return a.cfg
}

// ValidateConfig runs every deployment rule against the store and returns
// the issues found, empty when the configuration is fully valid.
func (a *App) ValidateConfig() []string {
	return validation.Validate(a.cfg, a.pathExists)
}

// QualityMultiplier computes the bounded content quality multiplier for the
// given per-factor scores using the configured weights.
func (a *App) QualityMultiplier(scores map[string]float64) float64 {
	return a.scorer.Multiplier(scores, a.cfg.Weights)
}

// AllowRequest consults both rate limiters. A request is admitted only when
// the per-minute and per-hour budgets both have capacity.
func (a *App) AllowRequest() bool {
	minuteOK := a.minuteLimiter.Allow()
	hourOK := a.hourLimiter.Allow()
	return minuteOK && hourOK
}

// CheckReport renders the validation outcome in the operator-facing text
// format: a bulleted issue list, or a success summary with the environment
// name, model count, and enabled feature flag count.
func (a *App) CheckReport(issues []string) string {
	var b strings.Builder
	if len(issues) > 0 {
		b.WriteString("Configuration issues found:\n")
		for _, issue := range issues {
			fmt.Fprintf(&b, "  - %s\n", issue)
		}
		return b.String()
	}

	b.WriteString("Configuration validated successfully!\n")
	fmt.Fprintf(&b, "Environment: %s\n", a.cfg.Environment)
	fmt.Fprintf(&b, "Models loaded: %d\n", len(a.cfg.Models))
	fmt.Fprintf(&b, "Feature flags: %d enabled\n", a.cfg.EnabledFeatureCount())
	return b.String()
}
