package config

import (
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"ccdata/internal/endpoint"
	"ccdata/internal/fetcher"
)

// Config holds everything a client needs that is not code.
type Config struct {
	APIKey string `mapstructure:"api_key"`

	// Base URLs for API families (configurable for testing)
	MinAPIBaseURL  string `mapstructure:"min_api_base_url"`
	DataAPIBaseURL string `mapstructure:"data_api_base_url"`

	Timeout time.Duration `mapstructure:"timeout"`
}

// BaseURLs returns the configured hosts.
func (c *Config) BaseURLs() endpoint.BaseURLs {
	return endpoint.BaseURLs{MinAPI: c.MinAPIBaseURL, DataAPI: c.DataAPIBaseURL}
}

// Load reads configuration from a .env file, environment variables and an
// optional config file. Environment variables take precedence over config
// file values; variables already set in the process are never overwritten
// by the .env file. A missing .env file is not an error.
//
// envFiles defaults to ".env".
//
// Expected environment variables:
//   - CCDATA_API_KEY
//   - CCDATA_MIN_API_BASE_URL (optional, defaults to production)
//   - CCDATA_DATA_API_BASE_URL (optional, defaults to production)
//   - CCDATA_TIMEOUT (optional, e.g. "10s", defaults to 30s)
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrap(err, "failed to load .env")
	}

	v := viper.New()

	v.SetEnvPrefix("ccdata")
	v.AutomaticEnv()

	v.SetDefault("min_api_base_url", endpoint.DefaultMinAPIBaseURL)
	v.SetDefault("data_api_base_url", endpoint.DefaultDataAPIBaseURL)
	v.SetDefault("timeout", fetcher.DefaultTimeout)

	// Optionally read from config file if it exists
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.ccdata")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "failed to read config file")
		}
	}

	v.BindEnv("api_key", "CCDATA_API_KEY")
	v.BindEnv("min_api_base_url", "CCDATA_MIN_API_BASE_URL")
	v.BindEnv("data_api_base_url", "CCDATA_DATA_API_BASE_URL")
	v.BindEnv("timeout", "CCDATA_TIMEOUT")

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	config.APIKey = strings.TrimSpace(config.APIKey)
	if config.APIKey == "" {
		return nil, errors.New("missing required configuration: CCDATA_API_KEY")
	}
	if config.Timeout <= 0 {
		return nil, errors.Errorf("invalid CCDATA_TIMEOUT %s: must be positive", config.Timeout)
	}

	return config, nil
}
