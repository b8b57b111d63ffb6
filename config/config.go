package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"review-task-board/internal/tagfilter"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Review board specifics
	Board BoardConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	Enabled        bool
	RequestsPerMin int
}

// BoardConfig tunes tag filtering, tag editing and board sessions.
type BoardConfig struct {
	FilterPolicy        tagfilter.Policy
	DedupTags           bool
	AllowEmptyBookmarks bool
	SeedFile            string // empty: built-in seed
	SessionTTL          time.Duration
	SessionCapacity     int
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
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	// Board
	policy, err := tagfilter.ParsePolicy(viper.GetString("board.filter_policy"), tagfilter.DefaultPolicy)
	if err != nil {
		return nil, fmt.Errorf("board.filter_policy %q: %w", viper.GetString("board.filter_policy"), err)
	}
	cfg.Board.FilterPolicy = policy
	cfg.Board.DedupTags = viper.GetBool("board.dedup_tags")
	cfg.Board.AllowEmptyBookmarks = viper.GetBool("board.allow_empty_bookmarks")
	cfg.Board.SeedFile = expandEnvVar(viper.GetString("board.seed_file"))
	cfg.Board.SessionCapacity = viper.GetInt("board.session_capacity")

	ttl, err := time.ParseDuration(viper.GetString("board.session_ttl"))
	if err != nil {
		return nil, fmt.Errorf("board.session_ttl: %w", err)
	}
	cfg.Board.SessionTTL = ttl

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 120)

	viper.SetDefault("board.filter_policy", string(tagfilter.DefaultPolicy))
	viper.SetDefault("board.dedup_tags", true)
	viper.SetDefault("board.allow_empty_bookmarks", false)
	viper.SetDefault("board.seed_file", "")
	viper.SetDefault("board.session_ttl", "24h")
	viper.SetDefault("board.session_capacity", 1000)
}

func (c *Config) validate() error {
	if c.HTTPServer.Port <= 0 || c.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port must be in 1..65535, got %d", c.HTTPServer.Port)
	}
	if c.Board.SessionTTL <= 0 {
		return fmt.Errorf("board.session_ttl must be positive, got %s", c.Board.SessionTTL)
	}
	if c.Board.SessionCapacity <= 0 {
		return fmt.Errorf("board.session_capacity must be positive, got %d", c.Board.SessionCapacity)
	}
	if c.RateLimit.Enabled && c.RateLimit.RequestsPerMin <= 0 {
		return fmt.Errorf("rate_limit.requests_per_min must be positive when rate limiting is enabled")
	}
	return nil
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		return ""
	}

	return value
}
