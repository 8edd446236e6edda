package application

import (
	"math"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/finova-network/content-analyzer/internal/config"
	"github.com/finova-network/content-analyzer/internal/quality"
)

func loadConfig(t *testing.T, tier config.Environment, env map[string]string) *config.Config {
	t.Helper()
	cfg, err := config.Load(config.Options{
		Environment: string(tier),
		Lookup: func(key string) (string, bool) {
			value, ok := env[key]
			return value, ok
		},
	})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	return cfg
}

func TestValidateConfigWithInjectedProbe(t *testing.T) {
	t.Parallel()

	cfg := loadConfig(t, config.Development, nil)
	app := New(cfg, zap.NewNop(), WithPathExists(func(string) bool { return true }))

	if issues := app.ValidateConfig(); len(issues) != 0 {
		t.Fatalf("expected no issues, got %v", issues)
	}
}

func TestQualityMultiplier(t *testing.T) {
	t.Parallel()

	cfg := loadConfig(t, config.Development, nil)
	app := New(cfg, zap.NewNop())

	if got := app.QualityMultiplier(nil); got != 1.0 {
		t.Fatalf("expected neutral multiplier for empty scores, got %v", got)
	}

	got := app.QualityMultiplier(map[string]float64{
		quality.FactorOriginality:         0.5,
		quality.FactorEngagementPotential: 0.5,
		quality.FactorPlatformRelevance:   0.5,
		quality.FactorBrandSafety:         0.5,
		quality.FactorHumanGenerated:      0.5,
	})
	if math.Abs(got-0.5) > 1e-9 {
		t.Fatalf("expected 0.5 for all-average scores, got %v", got)
	}
}

func TestAllowRequest(t *testing.T) {
	t.Parallel()

	cfg := loadConfig(t, config.Development, nil)
	app := New(cfg, zap.NewNop())

	if !app.AllowRequest() {
		t.Fatalf("fresh limiters must admit the first request")
	}
}

func TestCheckReportSuccess(t *testing.T) {
	t.Parallel()

	cfg := loadConfig(t, config.Development, nil)
	app := New(cfg, zap.NewNop())

	want := strings.Join([]string{
		"Configuration validated successfully!",
		"Environment: development",
		"Models loaded: 5",
		"Feature flags: 5 enabled",
		"",
	}, "\n")
	if got := app.CheckReport(nil); got != want {
		t.Fatalf("unexpected report:\n%q\nwant:\n%q", got, want)
	}
}

func TestCheckReportIssues(t *testing.T) {
	t.Parallel()

	cfg := loadConfig(t, config.Development, nil)
	app := New(cfg, zap.NewNop())

	issues := []string{
		"Model file not found: ./models/quality_v1_2.onnx",
		"Invalid database URL format",
	}
	want := strings.Join([]string{
		"Configuration issues found:",
		"  - Model file not found: ./models/quality_v1_2.onnx",
		"  - Invalid database URL format",
		"",
	}, "\n")
	if got := app.CheckReport(issues); got != want {
		t.Fatalf("unexpected report:\n%q\nwant:\n%q", got, want)
	}
}
