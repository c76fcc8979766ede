package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Catalogue
	Storefront StorefrontConfig
	Filter     FilterConfig
	Session    SessionConfig
	Cache      CacheConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	PerMin     int
	MaxClients int
	ClientTTL  time.Duration
}

// StorefrontConfig points at the upstream storefront REST API.
type StorefrontConfig struct {
	BaseURL     string
	AccessToken string
	Timeout     time.Duration
	RatePerSec  float64
	Burst       int
	OAuth       OAuthConfig
}

// OAuthConfig enables client-credentials auth when ClientID is set.
type OAuthConfig struct {
	ClientID     string
	ClientSecret string
	TokenURL     string
	Scopes       []string
}

type FilterConfig struct {
	Debounce        time.Duration
	DisableDebounce bool
	DefaultLimit    int
	MaxLimit        int
	Timezone        string
}

type SessionConfig struct {
	TTL          time.Duration
	MaxSessions  int
	NoticeBuffer int
}

type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = viper.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")
	cfg.RateLimit.MaxClients = viper.GetInt("rate_limit.max_clients")
	cfg.RateLimit.ClientTTL = viper.GetDuration("rate_limit.client_ttl")

	// Storefront upstream
	cfg.Storefront.BaseURL = viper.GetString("storefront.base_url")
	cfg.Storefront.AccessToken = viper.GetString("storefront.access_token")
	cfg.Storefront.Timeout = viper.GetDuration("storefront.timeout")
	cfg.Storefront.RatePerSec = viper.GetFloat64("storefront.rate_per_sec")
	cfg.Storefront.Burst = viper.GetInt("storefront.burst")
	cfg.Storefront.OAuth.ClientID = viper.GetString("storefront.oauth.client_id")
	cfg.Storefront.OAuth.ClientSecret = viper.GetString("storefront.oauth.client_secret")
	cfg.Storefront.OAuth.TokenURL = viper.GetString("storefront.oauth.token_url")
	cfg.Storefront.OAuth.Scopes = splitList(viper.GetString("storefront.oauth.scopes"))

	// Filter sessions
	cfg.Filter.Debounce = viper.GetDuration("filter.debounce")
	cfg.Filter.DisableDebounce = viper.GetBool("filter.disable_debounce")
	cfg.Filter.DefaultLimit = viper.GetInt("filter.default_limit")
	cfg.Filter.MaxLimit = viper.GetInt("filter.max_limit")
	cfg.Filter.Timezone = viper.GetString("filter.timezone")
	cfg.Session.TTL = viper.GetDuration("session.ttl")
	cfg.Session.MaxSessions = viper.GetInt("session.max_sessions")
	cfg.Session.NoticeBuffer = viper.GetInt("session.notice_buffer")
	cfg.Cache.Size = viper.GetInt("cache.size")
	cfg.Cache.TTL = viper.GetDuration("cache.ttl")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.Storefront.BaseURL == "" {
		return fmt.Errorf("storefront.base_url is required")
	}
	if cfg.Storefront.OAuth.ClientID != "" && cfg.Storefront.OAuth.TokenURL == "" {
		return fmt.Errorf("storefront.oauth.token_url is required when client_id is set")
	}
	if cfg.Filter.DefaultLimit <= 0 {
		return fmt.Errorf("filter.default_limit must be positive")
	}
	if cfg.Filter.MaxLimit < cfg.Filter.DefaultLimit {
		return fmt.Errorf("filter.max_limit must be at least filter.default_limit")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.shutdown_timeout", "10s")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.per_min", 600)
	viper.SetDefault("rate_limit.max_clients", 1000)
	viper.SetDefault("rate_limit.client_ttl", "5m")

	viper.SetDefault("storefront.base_url", "http://localhost:5000")
	viper.SetDefault("storefront.timeout", "10s")
	viper.SetDefault("storefront.burst", 10)

	viper.SetDefault("filter.debounce", "300ms")
	viper.SetDefault("filter.default_limit", 12)
	viper.SetDefault("filter.max_limit", 100)
	viper.SetDefault("filter.timezone", "UTC")
	viper.SetDefault("session.ttl", "30m")
	viper.SetDefault("session.max_sessions", 1000)
	viper.SetDefault("session.notice_buffer", 20)
	viper.SetDefault("cache.size", 256)
	viper.SetDefault("cache.ttl", "30s")
}

// splitList splits a comma separated value, since viper does not parse lists from env.
func splitList(raw string) []string {
	var out []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
