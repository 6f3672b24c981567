package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig     `mapstructure:"server"`
	Zid       ZidConfig        `mapstructure:"zid"`
	Gateway   GatewayConfig    `mapstructure:"gateway"`
	Database  DatabaseConfig   `mapstructure:"database"`
	Redis     RedisConfig      `mapstructure:"redis"`
	JWT       JWTConfig        `mapstructure:"jwt"`
	RateLimit RateLimitConfig  `mapstructure:"rate_limit"`
	Operators []OperatorConfig `mapstructure:"operators"`
}

type ServerConfig struct {
	Port     string `mapstructure:"port"`
	Mode     string `mapstructure:"mode"`
	LogLevel string `mapstructure:"log_level"`
	// CORSOrigins lists the dashboard origins; empty allows any origin
	CORSOrigins []string `mapstructure:"cors_origins"`
}

// ZidConfig scopes every remote call to one store. StoreID and AccessToken
// are not validated here; a missing value surfaces as an authentication
// failure on the first remote call.
type ZidConfig struct {
	StoreID           string        `mapstructure:"store_id"`
	AccessToken       string        `mapstructure:"access_token"`
	BaseURL           string        `mapstructure:"base_url"`
	Timeout           time.Duration `mapstructure:"timeout"`
	RequestsPerSecond float64       `mapstructure:"requests_per_second"`
	Burst             int           `mapstructure:"burst"`
}

type GatewayConfig struct {
	BulkConcurrency int `mapstructure:"bulk_concurrency"`
}

type DatabaseConfig struct {
	URL      string `mapstructure:"url"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"ssl_mode"`
}

// Enabled reports whether an audit database has been configured
func (d DatabaseConfig) Enabled() bool {
	return d.URL != "" || d.Host != ""
}

// DSN returns the connection string, preferring an explicit URL
func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

type RedisConfig struct {
	URL      string `mapstructure:"url"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Host != ""
}

type JWTConfig struct {
	Secret      string `mapstructure:"secret"`
	ExpiryHours int    `mapstructure:"expiry_hours"`
}

func (j JWTConfig) Enabled() bool {
	return j.Secret != ""
}

type RateLimitConfig struct {
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
}

type OperatorConfig struct {
	Username     string `mapstructure:"username"`
	PasswordHash string `mapstructure:"password_hash"`
	Role         string `mapstructure:"role"`
}

// envBindings lets the well-known unprefixed variables override the file
var envBindings = map[string][]string{
	"zid.store_id":     {"ZIDADMIN_ZID_STORE_ID", "ZID_STORE_ID"},
	"zid.access_token": {"ZIDADMIN_ZID_ACCESS_TOKEN", "ZID_ACCESS_TOKEN"},
	"zid.base_url":     {"ZIDADMIN_ZID_BASE_URL", "ZID_BASE_URL"},
	"database.url":     {"ZIDADMIN_DATABASE_URL", "DATABASE_URL"},
	"redis.url":        {"ZIDADMIN_REDIS_URL", "REDIS_URL"},
	"server.port":      {"ZIDADMIN_SERVER_PORT", "PORT"},
}

func Load() (*Config, error) {
	return LoadFrom("")
}

// LoadFrom reads configuration from path, or searches the usual locations
// when path is empty. Environment variables always win over the file.
func LoadFrom(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/.zidadmin")
		v.AddConfigPath("/etc/zidadmin")
	}

	v.SetEnvPrefix("ZIDADMIN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	for key, envs := range envBindings {
		args := append([]string{key}, envs...)
		if err := v.BindEnv(args...); err != nil {
			return nil, fmt.Errorf("error binding %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		slog.Debug("Config file not found, using defaults and environment variables")
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.log_level", "info")

	v.SetDefault("zid.store_id", "")
	v.SetDefault("zid.access_token", "")
	v.SetDefault("zid.base_url", "https://api.zid.sa")
	v.SetDefault("zid.timeout", time.Duration(0))
	v.SetDefault("zid.requests_per_second", 0)
	v.SetDefault("zid.burst", 1)

	v.SetDefault("gateway.bulk_concurrency", 0)

	v.SetDefault("database.url", "")
	v.SetDefault("database.host", "")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "zidadmin")
	v.SetDefault("database.ssl_mode", "disable")

	v.SetDefault("redis.url", "")
	v.SetDefault("redis.host", "")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry_hours", 12)

	v.SetDefault("rate_limit.requests", 100)
	v.SetDefault("rate_limit.window", time.Minute)
}
