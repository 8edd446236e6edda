package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig represents the optional YAML configuration file. The file only
// replaces built-in defaults; environment variables still win over it.
type fileConfig struct {
	API struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
	} `yaml:"api"`
	DatabaseURL    string          `yaml:"database_url"`
	RedisURL       string          `yaml:"redis_url"`
	LogLevel       string          `yaml:"log_level"`
	QualityWeights *fileWeights    `yaml:"quality_weights"`
	RateLimits     *fileRateLimits `yaml:"rate_limits"`
	FeatureFlags   map[string]bool `yaml:"feature_flags"`
}

// fileWeights uses pointers so a weight of 0 is distinguishable from an
// omitted field.
type fileWeights struct {
	Originality         *float64 `yaml:"originality"`
	EngagementPotential *float64 `yaml:"engagement_potential"`
	PlatformRelevance   *float64 `yaml:"platform_relevance"`
	BrandSafety         *float64 `yaml:"brand_safety"`
	HumanGenerated      *float64 `yaml:"human_generated"`
}

type fileRateLimits struct {
	PerMinute int `yaml:"per_minute"`
	PerHour   int `yaml:"per_hour"`
}

// loadFromFile loads configuration from a YAML file.
func loadFromFile(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var fileCfg fileConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	return &fileCfg, nil
}

// applyFileConfig applies the YAML file values to the Config struct.
func applyFileConfig(cfg *Config, fileCfg *fileConfig) {
	if fileCfg.API.Host != "" {
		cfg.APIHost = fileCfg.API.Host
	}
	if fileCfg.API.Port > 0 {
		cfg.APIPort = fileCfg.API.Port
	}
	if fileCfg.DatabaseURL != "" {
		cfg.DatabaseURL = fileCfg.DatabaseURL
	}
	if fileCfg.RedisURL != "" {
		cfg.RedisURL = fileCfg.RedisURL
	}
	if fileCfg.LogLevel != "" {
		cfg.LogLevel = fileCfg.LogLevel
	}

	if w := fileCfg.QualityWeights; w != nil {
		if w.Originality != nil {
			cfg.Weights.Originality = *w.Originality
		}
		if w.EngagementPotential != nil {
			cfg.Weights.EngagementPotential = *w.EngagementPotential
		}
		if w.PlatformRelevance != nil {
			cfg.Weights.PlatformRelevance = *w.PlatformRelevance
		}
		if w.BrandSafety != nil {
			cfg.Weights.BrandSafety = *w.BrandSafety
		}
		if w.HumanGenerated != nil {
			cfg.Weights.HumanGenerated = *w.HumanGenerated
		}
	}

	if rl := fileCfg.RateLimits; rl != nil {
		if rl.PerMinute > 0 {
			cfg.RateLimitPerMinute = rl.PerMinute
		}
		if rl.PerHour > 0 {
			cfg.RateLimitPerHour = rl.PerHour
		}
	}

	for flag, enabled := range fileCfg.FeatureFlags {
		if _, known := cfg.FeatureFlags[flag]; known {
			cfg.FeatureFlags[flag] = enabled
		}
	}
}
