package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	ServerPort string `mapstructure:"SERVER_PORT"`
	GinMode    string `mapstructure:"GIN_MODE"`

	DatabaseDriver string `mapstructure:"DATABASE_DRIVER"`
	DatabaseURL    string `mapstructure:"DATABASE_URL"`

	JWTSecret       string        `mapstructure:"JWT_SECRET"`
	AccessTokenTTL  time.Duration `mapstructure:"ACCESS_TOKEN_TTL"`
	RefreshTokenTTL time.Duration `mapstructure:"REFRESH_TOKEN_TTL"`
	SessionTTL      time.Duration `mapstructure:"SESSION_TTL"`

	// MediaBaseURL is prefixed to stored audio asset references in track listings.
	MediaBaseURL string `mapstructure:"MEDIA_BASE_URL"`

	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	MinioEndpoint  string `mapstructure:"MINIO_ENDPOINT"`
	MinioAccessKey string `mapstructure:"MINIO_ACCESS_KEY"`
	MinioSecretKey string `mapstructure:"MINIO_SECRET_KEY"`
	MinioBucket    string `mapstructure:"MINIO_BUCKET"`
	MinioUseSSL    bool   `mapstructure:"MINIO_USE_SSL"`
	// MinioPublicURL is the root clients fetch uploads from; the endpoint when empty.
	MinioPublicURL string `mapstructure:"MINIO_PUBLIC_URL"`

	LogLevel string `mapstructure:"LOG_LEVEL"`
	LogFile  string `mapstructure:"LOG_FILE"`

	CORSAllowedOrigins   string        `mapstructure:"CORS_ALLOWED_ORIGINS"`
	RateLimitMaxRequests int           `mapstructure:"RATE_LIMIT_MAX_REQUESTS"`
	RateLimitWindow      time.Duration `mapstructure:"RATE_LIMIT_WINDOW"`

	TracingEnabled           bool   `mapstructure:"TRACING_ENABLED"`
	TracingCollectorEndpoint string `mapstructure:"TRACING_COLLECTOR_ENDPOINT"`
}

// AllowedOrigins splits CORS_ALLOWED_ORIGINS on commas.
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSAllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// IsRelease reports whether gin runs in release mode.
func (c *Config) IsRelease() bool {
	return c.GinMode == "release"
}

var keys = []string{
	"SERVER_PORT", "GIN_MODE", "DATABASE_DRIVER", "DATABASE_URL",
	"JWT_SECRET", "ACCESS_TOKEN_TTL", "REFRESH_TOKEN_TTL", "SESSION_TTL",
	"MEDIA_BASE_URL", "REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB",
	"MINIO_ENDPOINT", "MINIO_ACCESS_KEY", "MINIO_SECRET_KEY", "MINIO_BUCKET", "MINIO_USE_SSL",
	"MINIO_PUBLIC_URL",
	"LOG_LEVEL", "LOG_FILE", "CORS_ALLOWED_ORIGINS",
	"RATE_LIMIT_MAX_REQUESTS", "RATE_LIMIT_WINDOW",
	"TRACING_ENABLED", "TRACING_COLLECTOR_ENDPOINT",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("DATABASE_DRIVER", "postgres")
	v.SetDefault("ACCESS_TOKEN_TTL", 5*time.Minute)
	v.SetDefault("REFRESH_TOKEN_TTL", 24*time.Hour)
	v.SetDefault("SESSION_TTL", 14*24*time.Hour)
	v.SetDefault("MEDIA_BASE_URL", "https://res.cloudinary.com/dkpnqajrx/")
	v.SetDefault("MINIO_BUCKET", "audio")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("RATE_LIMIT_MAX_REQUESTS", 20)
	v.SetDefault("RATE_LIMIT_WINDOW", time.Minute)
}

// LoadConfig loads the configuration from a .env file in dir and environment variables.
func LoadConfig(dir string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(dir)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	v.AutomaticEnv()
	// Unmarshal only sees keys viper knows about, so bind every key explicitly.
	for _, k := range keys {
		_ = v.BindEnv(k)
	}
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		log.Println("Warning: .env file not found, loading from environment variables")
	}

	return decode(v)
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET must be set")
	}
	if c.IsRelease() && len(c.JWTSecret) < 32 {
		return fmt.Errorf("JWT_SECRET is too short (%d chars), must be at least 32 characters in release mode", len(c.JWTSecret))
	}
	switch c.DatabaseDriver {
	case "postgres", "mysql", "sqlite":
	default:
		return fmt.Errorf("unsupported DATABASE_DRIVER %q", c.DatabaseDriver)
	}
	if c.RateLimitMaxRequests <= 0 || c.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_MAX_REQUESTS and RATE_LIMIT_WINDOW must be positive")
	}
	return nil
}

// Watch re-reads the .env file in dir whenever it changes and hands the new
// config to onChange. Invalid edits are reported and skipped.
func Watch(dir string, onChange func(*Config), onError func(error)) {
	v := viper.New()
	v.AddConfigPath(dir)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	for _, k := range keys {
		_ = v.BindEnv(k)
	}
	setDefaults(v)
	if err := v.ReadInConfig(); err != nil {
		return
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		cfg, err := decode(v)
		if err != nil {
			onError(err)
			return
		}
		onChange(cfg)
	})
	v.WatchConfig()
}
