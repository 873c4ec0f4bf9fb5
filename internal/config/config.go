package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const devSecret = "dev-secret-change-in-production"

var ErrInsecureSecret = errors.New("SECRET_KEY must be set in production environment")

// Config is built once at startup and passed explicitly to the components that need it.
type Config struct {
	Port           string
	Env            string
	LogLevel       string
	MongoURI       string
	MongoDatabase  string
	SecretKey      string
	CORSOrigins    []string
	RateLimitRPS   float64
	RateLimitBurst int
}

// Load reads configuration from environment variables and an optional config.yaml
// in the working directory. Environment variables take precedence.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("port", "3001")
	v.SetDefault("env", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("mongo_uri", "mongodb://127.0.0.1:27017")
	v.SetDefault("mongo_database", "fsd13")
	v.SetDefault("secret_key", devSecret)
	v.SetDefault("cors_origins", "*")
	v.SetDefault("rate_limit_rps", 5)
	v.SetDefault("rate_limit_burst", 10)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	v.AutomaticEnv()

	cfg := Config{
		Port:           v.GetString("port"),
		Env:            v.GetString("env"),
		LogLevel:       strings.ToLower(v.GetString("log_level")),
		MongoURI:       v.GetString("mongo_uri"),
		MongoDatabase:  v.GetString("mongo_database"),
		SecretKey:      v.GetString("secret_key"),
		CORSOrigins:    splitList(v.GetString("cors_origins")),
		RateLimitRPS:   v.GetFloat64("rate_limit_rps"),
		RateLimitBurst: v.GetInt("rate_limit_burst"),
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// IsProduction reports whether the process runs with ENV=production.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func (c Config) validate() error {
	if c.SecretKey == "" {
		return errors.New("SECRET_KEY must not be empty")
	}
	if c.IsProduction() && c.SecretKey == devSecret {
		return ErrInsecureSecret
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		return fmt.Errorf("rate limit must be positive (rps=%v, burst=%d)", c.RateLimitRPS, c.RateLimitBurst)
	}
	return nil
}

// splitList parses a comma-separated list, dropping blanks and trailing slashes.
func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if o := strings.TrimRight(strings.TrimSpace(p), "/"); o != "" {
			out = append(out, o)
		}
	}
	return out
}
