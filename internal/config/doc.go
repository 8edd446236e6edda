// Package config assembles the typed runtime configuration for the content
// analyzer from multiple sources (built-in defaults, an optional YAML file,
// environment variables) and applies environment-tier overrides exactly once.
// The resulting Config is treated as immutable: accessors hand out copies and
// nothing mutates it after Load returns, so it is safe to share across
// goroutines without synchronisation.
package config
