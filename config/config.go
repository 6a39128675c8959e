package config

import (
	"fmt"

	"github.com/spf13/viper"
)

const VERSION = "1.2"

type Config struct {
	Server      ServerConfig
	Database    DatabaseConfig
	Security    SecurityConfig
	Automation  AutomationConfig
	Tracing     TracingConfig
	Environment string
	LogLevel    string
	Version     string
}

type ServerConfig struct {
	Port int
	Host string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// DSN returns the postgres connection string for lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

type SecurityConfig struct {
	// JWTSecret signs admin API tokens
	JWTSecret string
	// CronSecret authorizes scheduled feature/segment sweeps
	CronSecret string
}

type TracingConfig struct {
	// Enabled wraps the sql driver and HTTP surfaces with OpenCensus
	Enabled bool
	// SamplingProbability is the trace sampling rate when enabled
	SamplingProbability float64
}

type AutomationConfig struct {
	// WebhookEndpoint receives segment transition notifications
	WebhookEndpoint string
	// WebhookSecret signs notification payloads (standard-webhooks format)
	WebhookSecret string
	MaxAttempts   int
}

// Load reads configuration from environment variables (and an optional
// config file for local development) and validates it.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVER_PORT", 8090)
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "growthplane")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("AUTOMATION_WEBHOOK_MAX_ATTEMPTS", 3)
	v.SetDefault("TRACING_ENABLED", false)
	v.SetDefault("TRACING_SAMPLING_PROBABILITY", 0.1)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: v.GetInt("SERVER_PORT"),
			Host: v.GetString("SERVER_HOST"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetInt("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			DBName:   v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		Security: SecurityConfig{
			JWTSecret:  v.GetString("JWT_SECRET"),
			CronSecret: v.GetString("CRON_SECRET"),
		},
		Automation: AutomationConfig{
			WebhookEndpoint: v.GetString("AUTOMATION_WEBHOOK_ENDPOINT"),
			WebhookSecret:   v.GetString("AUTOMATION_WEBHOOK_SECRET"),
			MaxAttempts:     v.GetInt("AUTOMATION_WEBHOOK_MAX_ATTEMPTS"),
		},
		Tracing: TracingConfig{
			Enabled:             v.GetBool("TRACING_ENABLED"),
			SamplingProbability: v.GetFloat64("TRACING_SAMPLING_PROBABILITY"),
		},
		Environment: v.GetString("ENVIRONMENT"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		Version:     VERSION,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that required settings are present
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid config: SERVER_PORT must be between 1 and 65535")
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("invalid config: DB_NAME is required")
	}
	if c.IsProduction() {
		if c.Security.JWTSecret == "" {
			return fmt.Errorf("invalid config: JWT_SECRET is required in production")
		}
		if c.Security.CronSecret == "" {
			return fmt.Errorf("invalid config: CRON_SECRET is required in production")
		}
	}
	if c.Automation.MaxAttempts <= 0 {
		return fmt.Errorf("invalid config: AUTOMATION_WEBHOOK_MAX_ATTEMPTS must be positive")
	}
	if c.Tracing.Enabled && (c.Tracing.SamplingProbability < 0 || c.Tracing.SamplingProbability > 1) {
		return fmt.Errorf("invalid config: TRACING_SAMPLING_PROBABILITY must be between 0 and 1")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
