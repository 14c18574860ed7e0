package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, cfg.APIBaseURL)
	assert.Equal(t, DefaultTimeout, cfg.APITimeout)
	assert.Equal(t, DefaultLogMode, cfg.LogMode)
	assert.Equal(t, filepath.Join(home, ".config", "bizassist"), cfg.Home)
}

func TestLoadReadsConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "bizassist")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`
[api]
base_url = "https://biz.example.com"
timeout = "5s"

[log]
mode = "dev"
`), 0o600))

	cfg, err := Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "https://biz.example.com", cfg.APIBaseURL)
	assert.Equal(t, 5*time.Second, cfg.APITimeout)
	assert.Equal(t, "dev", cfg.LogMode)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("BA_API_BASE_URL", "http://127.0.0.1:9999")
	t.Setenv("BA_API_TIMEOUT", "250ms")

	cfg, err := Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:9999", cfg.APIBaseURL)
	assert.Equal(t, 250*time.Millisecond, cfg.APITimeout)
}

func TestLoadRejectsNonPositiveTimeout(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("BA_API_TIMEOUT", "0s")

	_, err := Load(viper.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api timeout must be positive")
}

func TestLoadHomeOverrideDrivesDerivedPaths(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	custom := filepath.Join(t.TempDir(), "ba")
	t.Setenv("BA_HOME", custom)

	cfg, err := Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, custom, cfg.Home)
	assert.Equal(t, filepath.Join(custom, "profile.toml"), cfg.ProfilePath())
	assert.Equal(t, filepath.Join(custom, "credentials"), cfg.CredentialsDir())
	assert.Equal(t, DefaultEntry, cfg.PassEntry)
}

func TestLoadCredentialBackend(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, BackendAuto, cfg.CredentialBackend)

	t.Setenv("BA_CREDENTIALS_BACKEND", "FILE")
	cfg, err = Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, BackendFile, cfg.CredentialBackend)

	t.Setenv("BA_CREDENTIALS_BACKEND", "keychain")
	_, err = Load(viper.New())
	assert.ErrorContains(t, err, "unknown credentials backend")
}
