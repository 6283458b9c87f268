package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultValues(t *testing.T) {
	cfg := Default()
	require.Equal(t, 14, cfg.CacheMaxAgeDays)
	require.Equal(t, int64(1<<30), cfg.CacheMaxBytes)
	require.Equal(t, 60, cfg.LayerIdleExpirySeconds)
	require.Equal(t, 5.0, cfg.ProfileSamplingNauticalMiles)
}

func TestLoadOverridesOnlyPresentKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gribwx.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
cache_directory = "/var/cache/gribwx"
cache_max_age_days = 30
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "/var/cache/gribwx", cfg.CacheDirectory)
	require.Equal(t, 30, cfg.CacheMaxAgeDays)
	require.Equal(t, int64(1<<30), cfg.CacheMaxBytes) // untouched default
}

func TestNewWithOptions(t *testing.T) {
	cfg := New(WithCacheDirectory("/tmp/x"), WithProfileSampling(10))
	require.Equal(t, "/tmp/x", cfg.CacheDirectory)
	require.Equal(t, 10.0, cfg.ProfileSamplingNauticalMiles)
}

func TestLoadMissingFileErrors(t *testing.T) {
	_, err := Load("/nonexistent/gribwx.toml")
	require.Error(t, err)
}
