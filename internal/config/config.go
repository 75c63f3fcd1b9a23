package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Codegen   CodegenConfig   `mapstructure:"codegen"`
	Cache     CacheConfig     `mapstructure:"cache"`
	Blocklist BlocklistConfig `mapstructure:"blocklist"`
	Clicks    ClicksConfig    `mapstructure:"clicks"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	RocketMQ  RocketMQConfig  `mapstructure:"rocketmq"`
	Janitor   JanitorConfig   `mapstructure:"janitor"`
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Port    int    `mapstructure:"port"`
	Mode    string `mapstructure:"mode"`
	BaseURL string `mapstructure:"base_url"`
}

// DatabaseConfig represents database configuration
type DatabaseConfig struct {
	MySQL MySQLConfig `mapstructure:"mysql"`
	Redis RedisConfig `mapstructure:"redis"`
}

// MySQLConfig represents MySQL configuration
type MySQLConfig struct {
	DSN string `mapstructure:"dsn"`
}

// RedisConfig represents Redis configuration
type RedisConfig struct {
	Addr         string        `mapstructure:"addr"`
	Password     string        `mapstructure:"password"`
	DB           int           `mapstructure:"db"`
	DialTimeout  time.Duration `mapstructure:"dial_timeout"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// CodegenConfig selects the short code generation strategy.
// Strategy "counter" is enumerable; "hash_random" is the safe default.
type CodegenConfig struct {
	Strategy    string `mapstructure:"strategy"`
	Length      int    `mapstructure:"length"`
	Fallback    bool   `mapstructure:"fallback"`
	MaxAttempts int    `mapstructure:"max_attempts"`
}

// CacheConfig holds TTLs for the Redis cache namespaces
type CacheConfig struct {
	URLTTL   time.Duration `mapstructure:"url_ttl"`
	DedupTTL time.Duration `mapstructure:"dedup_ttl"`
}

// BlocklistConfig configures URL blocking rules
type BlocklistConfig struct {
	Domains           []string `mapstructure:"domains"`
	TLDs              []string `mapstructure:"tlds"`
	Patterns          []string `mapstructure:"patterns"`
	File              string   `mapstructure:"file"`
	BlockPrivateHosts bool     `mapstructure:"block_private_hosts"`
}

// ClicksConfig configures the in-process click recorder
type ClicksConfig struct {
	QueueSize int `mapstructure:"queue_size"`
	Workers   int `mapstructure:"workers"`
}

// RateLimitConfig configures fixed-window per-IP rate limits
type RateLimitConfig struct {
	Enabled       bool          `mapstructure:"enabled"`
	Window        time.Duration `mapstructure:"window"`
	CreateLimit   int           `mapstructure:"create_limit"`
	RedirectLimit int           `mapstructure:"redirect_limit"`
}

// RocketMQConfig represents RocketMQ configuration
type RocketMQConfig struct {
	NameServer string `mapstructure:"nameserver"`
	Topic      string `mapstructure:"topic"`
	Group      string `mapstructure:"group"`
}

// JanitorConfig configures the expired-link sweep
type JanitorConfig struct {
	Interval time.Duration `mapstructure:"interval"`
}

// Global config instance
var cfg *Config

// Load loads configuration from file
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	// Set defaults
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg = &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Expand environment variables
	cfg.Database.Redis.Password = expandEnv(cfg.Database.Redis.Password)
	cfg.Database.MySQL.DSN = expandEnv(cfg.Database.MySQL.DSN)

	return cfg, nil
}

// Get returns the global config instance
func Get() *Config {
	return cfg
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.base_url", "http://localhost:8080")
	v.SetDefault("database.redis.dial_timeout", 5*time.Second)
	v.SetDefault("database.redis.read_timeout", 500*time.Millisecond)
	v.SetDefault("database.redis.write_timeout", 500*time.Millisecond)
	v.SetDefault("codegen.strategy", "hash_random")
	v.SetDefault("codegen.length", 8)
	v.SetDefault("codegen.fallback", true)
	v.SetDefault("codegen.max_attempts", 5)
	v.SetDefault("cache.url_ttl", time.Hour)
	v.SetDefault("cache.dedup_ttl", 24*time.Hour)
	v.SetDefault("blocklist.block_private_hosts", true)
	v.SetDefault("clicks.queue_size", 4096)
	v.SetDefault("clicks.workers", 2)
	v.SetDefault("ratelimit.enabled", true)
	v.SetDefault("ratelimit.window", time.Minute)
	v.SetDefault("ratelimit.create_limit", 30)
	v.SetDefault("ratelimit.redirect_limit", 300)
	v.SetDefault("rocketmq.topic", "click_events")
	v.SetDefault("rocketmq.group", "tinylink_click_group")
	v.SetDefault("janitor.interval", time.Hour)
}

// expandEnv expands environment variables in the string
func expandEnv(s string) string {
	if strings.HasPrefix(s, "${") && strings.HasSuffix(s, "}") {
		envKey := s[2 : len(s)-1]
		return viper.GetString(envKey)
	}
	return s
}
