package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the runtime settings for the storefront service.
type Config struct {
	// Addr is the listen address of the HTTP server.
	Addr string `mapstructure:"addr"`
	// BackendURL is the base URL of the external catalog backend.
	BackendURL string `mapstructure:"backend_url"`
	// RedisAddr enables the redis session store when non-empty; otherwise
	// the session flag lives in process memory only.
	RedisAddr string `mapstructure:"redis_addr"`
	// JWTSecret signs the admin session cookie.
	JWTSecret string `mapstructure:"jwt_secret"`
	// SessionKey is the durable key the authenticated flag is stored under.
	SessionKey string `mapstructure:"session_key"`
}

// Load reads ballbuddies.yaml from the working directory (if present) and
// BALLBUDDIES_* environment variables, applying defaults for anything unset.
func Load() (Config, error) {
	v := viper.New()
	v.SetDefault("addr", ":8080")
	v.SetDefault("backend_url", "http://localhost:4000")
	v.SetDefault("redis_addr", "")
	v.SetDefault("jwt_secret", "dev-only-secret")
	v.SetDefault("session_key", "adminAuth")

	v.SetConfigName("ballbuddies")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("BALLBUDDIES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	return cfg, nil
}
