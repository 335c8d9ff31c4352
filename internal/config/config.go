package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	BotToken       string
	FeedbackChatID int64
	LogLevel       string
	LogFile        string
	Completion     CompletionConfig
	State          StateConfig
	Database       DatabaseConfig
}

// CompletionConfig holds chat-completion endpoint settings
type CompletionConfig struct {
	APIKey   string
	BaseURL  string
	Model    string
	Timeout  time.Duration
	SiteURL  string
	SiteName string
}

// StateConfig holds in-memory user state settings
type StateConfig struct {
	HistoryLimit          int
	IdleTTL               time.Duration
	CleanupInterval       time.Duration
	FeedbackRetentionDays int
}

// DatabaseConfig holds feedback archive connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// Enabled reports whether the feedback archive database is configured
func (d DatabaseConfig) Enabled() bool {
	return d.Password != ""
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		BotToken: os.Getenv("TELEGRAM_TOKEN"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		LogFile:  os.Getenv("LOG_FILE"),
		Completion: CompletionConfig{
			APIKey:   os.Getenv("OPENROUTER_API_KEY"),
			BaseURL:  getEnv("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"),
			Model:    getEnv("OPENROUTER_MODEL", "openchat/openchat-3.5-1210"),
			SiteURL:  os.Getenv("OPENROUTER_SITE_URL"),
			SiteName: getEnv("OPENROUTER_SITE_NAME", "12 Step Sponsor Bot"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "sponsorbot"),
			User:     getEnv("DB_USER", "sponsorbot"),
			Password: os.Getenv("DB_PASSWORD"),
		},
	}

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("TELEGRAM_TOKEN is required")
	}
	if cfg.Completion.APIKey == "" {
		return nil, fmt.Errorf("OPENROUTER_API_KEY is required")
	}

	var err error
	if cfg.FeedbackChatID, err = getEnvInt64("FEEDBACK_CHAT_ID", 0); err != nil {
		return nil, err
	}
	if cfg.Completion.Timeout, err = getEnvDuration("COMPLETION_TIMEOUT", 60*time.Second); err != nil {
		return nil, err
	}
	if cfg.State.HistoryLimit, err = getEnvInt("HISTORY_LIMIT", 20); err != nil {
		return nil, err
	}
	if cfg.State.IdleTTL, err = getEnvDuration("STATE_IDLE_TTL", 168*time.Hour); err != nil {
		return nil, err
	}
	if cfg.State.CleanupInterval, err = getEnvDuration("CLEANUP_INTERVAL", time.Hour); err != nil {
		return nil, err
	}
	if cfg.State.FeedbackRetentionDays, err = getEnvInt("FEEDBACK_RETENTION_DAYS", 90); err != nil {
		return nil, err
	}
	if cfg.State.CleanupInterval <= 0 {
		return nil, fmt.Errorf("CLEANUP_INTERVAL must be positive")
	}

	return cfg, nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

func getEnvInt64(key string, defaultValue int64) (int64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration: %w", key, err)
	}
	return d, nil
}
