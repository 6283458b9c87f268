// Package config loads the library's optional runtime settings from a TOML
// file, grounded in how spatialmodel-inmap configures a whole run from one
// TOML document rather than a pile of flags.
//
// The library itself never reads a config file on its own initiative;
// loading one is a CLI-front-end concern. Callers that want programmatic
// control can construct a Config directly or via functional options
// instead.
package config

import (
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Config holds the five runtime settings the library exposes for tuning
// cache behavior and profile sampling density.
type Config struct {
	CacheDirectory                string  `toml:"cache_directory"`
	CacheMaxAgeDays                int     `toml:"cache_max_age_days"`
	CacheMaxBytes                  int64   `toml:"cache_max_bytes"`
	LayerIdleExpirySeconds         int     `toml:"layer_idle_expiry_seconds"`
	ProfileSamplingNauticalMiles   float64 `toml:"profile_sampling_nautical_miles"`
}

// Default returns the library's built-in defaults, matching the defaults
// layer.NewRegistry sets.
func Default() Config {
	return Config{
		CacheDirectory:               "",
		CacheMaxAgeDays:              14,
		CacheMaxBytes:                1 << 30,
		LayerIdleExpirySeconds:       60,
		ProfileSamplingNauticalMiles: 5,
	}
}

// Load reads a TOML config file at path, starting from Default and
// overriding only the keys present in the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "loading config from %s", path)
	}
	return cfg, nil
}

// Option mutates a Config being built programmatically.
type Option func(*Config)

// WithCacheDirectory sets the on-disk decoded-value cache directory.
func WithCacheDirectory(dir string) Option {
	return func(c *Config) { c.CacheDirectory = dir }
}

// WithCacheMaxAge sets the cache sweep's age threshold.
func WithCacheMaxAge(days int) Option {
	return func(c *Config) { c.CacheMaxAgeDays = days }
}

// WithCacheMaxBytes sets the cache sweep's size threshold.
func WithCacheMaxBytes(bytes int64) Option {
	return func(c *Config) { c.CacheMaxBytes = bytes }
}

// WithLayerIdleExpiry sets how long an unused decoded layer stays resident.
func WithLayerIdleExpiry(seconds int) Option {
	return func(c *Config) { c.LayerIdleExpirySeconds = seconds }
}

// WithProfileSampling sets the route-densification spacing used by the
// profile builder.
func WithProfileSampling(nauticalMiles float64) Option {
	return func(c *Config) { c.ProfileSamplingNauticalMiles = nauticalMiles }
}

// New builds a Config from Default plus the given options.
func New(opts ...Option) Config {
	cfg := Default()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// LayerIdleExpiry returns the idle expiry as a time.Duration.
func (c Config) LayerIdleExpiry() time.Duration {
	return time.Duration(c.LayerIdleExpirySeconds) * time.Second
}

// CacheMaxAge returns the cache age threshold as a time.Duration.
func (c Config) CacheMaxAge() time.Duration {
	return time.Duration(c.CacheMaxAgeDays) * 24 * time.Hour
}
