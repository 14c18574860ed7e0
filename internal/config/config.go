package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = "bizassist"
	envPrefix  = "BA"

	keyAPIBaseURL = "api.base_url"
	keyAPITimeout = "api.timeout"
	keyLogMode    = "log.mode"
	keyHome       = "home"
	keyPassEntry  = "credentials.pass_entry"
	keyBackend    = "credentials.backend"

	DefaultBaseURL = "http://localhost:8000"
	DefaultTimeout = 30 * time.Second
	DefaultLogMode = "quiet"
	DefaultEntry   = "bizassist/access_token"

	BackendAuto = "auto"
	BackendFile = "file"

	profileFile    = "profile.toml"
	credentialsDir = "credentials"
)

type Config struct {
	APIBaseURL string
	APITimeout time.Duration
	LogMode    string
	// Home holds the profile file and the file credential fallback.
	Home string
	// PassEntry is the pass(1) entry holding the access token.
	PassEntry string
	// CredentialBackend is "auto" (pass, then file) or "file".
	CredentialBackend string
}

// Load reads ~/.config/bizassist/config.toml when present, then applies BA_*
// environment overrides (BA_API_BASE_URL, BA_API_TIMEOUT, BA_LOG_MODE, BA_HOME,
// BA_CREDENTIALS_BACKEND, BA_CREDENTIALS_PASS_ENTRY).
func Load(cfg *viper.Viper) (Config, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}
	defaultHome := filepath.Join(homeDir, ".config", configDir)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(defaultHome)
	cfg.SetDefault(keyAPIBaseURL, DefaultBaseURL)
	cfg.SetDefault(keyAPITimeout, DefaultTimeout)
	cfg.SetDefault(keyLogMode, DefaultLogMode)
	cfg.SetDefault(keyHome, defaultHome)
	cfg.SetDefault(keyPassEntry, DefaultEntry)
	cfg.SetDefault(keyBackend, BackendAuto)
	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	loaded := Config{
		APIBaseURL: strings.TrimSpace(cfg.GetString(keyAPIBaseURL)),
		APITimeout: cfg.GetDuration(keyAPITimeout),
		LogMode:    cfg.GetString(keyLogMode),
		Home:       strings.TrimSpace(cfg.GetString(keyHome)),
		PassEntry:  strings.TrimSpace(cfg.GetString(keyPassEntry)),

		CredentialBackend: strings.ToLower(strings.TrimSpace(cfg.GetString(keyBackend))),
	}
	if err := loaded.Validate(); err != nil {
		return Config{}, err
	}

	return loaded, nil
}

func (c Config) Validate() error {
	if c.APIBaseURL == "" {
		return errors.New("api base url is empty")
	}
	if c.APITimeout <= 0 {
		return fmt.Errorf("api timeout must be positive, got %s", c.APITimeout)
	}
	if c.Home == "" {
		return errors.New("home directory is empty")
	}
	switch c.CredentialBackend {
	case BackendAuto, BackendFile:
	default:
		return fmt.Errorf("unknown credentials backend %q (want %s or %s)", c.CredentialBackend, BackendAuto, BackendFile)
	}

	return nil
}

func (c Config) ProfilePath() string {
	return filepath.Join(c.Home, profileFile)
}

func (c Config) CredentialsDir() string {
	return filepath.Join(c.Home, credentialsDir)
}
