package config

// Snapshot converts the configuration to its serialized dictionary form,
// consumed by the observability collaborator and the health-check surface.
// Key names and nesting are part of the contract. The map is built fresh on
// every call so callers cannot alias the store's internals.
func (c *Config) Snapshot() map[string]any {
	models := make(map[string]any, len(c.Models))
	for name, model := range c.Models {
		models[name] = map[string]any{
			"name":      model.Name,
			"version":   model.Version,
			"threshold": model.Threshold,
			"enabled":   model.Enabled,
		}
	}

	flags := make(map[string]bool, len(c.FeatureFlags))
	for flag, enabled := range c.FeatureFlags {
		flags[flag] = enabled
	}

	return map[string]any{
		"app_name":    c.AppName,
		"version":     c.Version,
		"environment": string(c.Environment),
		"debug":       c.Debug,
		"api": map[string]any{
			"host":   c.APIHost,
			"port":   c.APIPort,
			"prefix": c.APIPrefix,
		},
		"models": models,
		"quality_weights": map[string]any{
			"originality":          c.Weights.Originality,
			"engagement_potential": c.Weights.EngagementPotential,
			"platform_relevance":   c.Weights.PlatformRelevance,
			"brand_safety":         c.Weights.BrandSafety,
			"human_generated":      c.Weights.HumanGenerated,
		},
		"feature_flags": flags,
		"rate_limits": map[string]any{
			"per_minute": c.RateLimitPerMinute,
			"per_hour":   c.RateLimitPerHour,
		},
	}
}
