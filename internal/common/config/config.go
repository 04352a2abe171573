// internal/common/config/config.go
package config

import "fmt"

// Config is the main application configuration struct.
type Config struct {
	App           AppConfig          `mapstructure:"app"`
	Server        ServerConfig       `mapstructure:"server"`
	Database      DatabaseConfig     `mapstructure:"database"`
	Auth          AuthConfig         `mapstructure:"auth"`
	Allocation    AllocationConfig   `mapstructure:"allocation"`
	Notifications NotificationConfig `mapstructure:"notifications"`
	Logging       LoggingConfig      `mapstructure:"logging"`
}

// --- Core App/Infrastructure Config ---

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Address         string `mapstructure:"address"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"` // seconds
}

type DatabaseConfig struct {
	Postgres PostgresConfig `mapstructure:"postgres"`
	Redis    RedisConfig    `mapstructure:"redis"`
}

type PostgresConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Database       string `mapstructure:"database"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	MaxConnections int    `mapstructure:"max_connections"`
	MaxIdle        int    `mapstructure:"max_idle"`
	SSLMode        string `mapstructure:"sslmode"`
}

// Enabled reports whether the audit archive backend is configured.
func (p PostgresConfig) Enabled() bool {
	return p.Host != ""
}

// GetDSN returns the PostgreSQL connection string.
func (p PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// --- Specific Configuration Sections ---

// AuthConfig holds HR session settings.
type AuthConfig struct {
	SessionTTL      int  `mapstructure:"session_ttl"` // seconds
	SeedUsers       bool `mapstructure:"seed_users"`
	MinPasswordLen  int  `mapstructure:"min_password_len"`
}

// AllocationConfig holds the core engine knobs.
type AllocationConfig struct {
	TopPercentDefault  int    `mapstructure:"top_percent_default"`
	EnforceManualGuard bool   `mapstructure:"enforce_manual_guard"`
	AssessBaseURL      string `mapstructure:"assess_base_url"`
	MeetBaseURL        string `mapstructure:"meet_base_url"`
}

// NotificationConfig holds email/SNS delivery settings.
type NotificationConfig struct {
	EmailEnabled bool   `mapstructure:"email_enabled"`
	FromAddress  string `mapstructure:"from_address"`
	AWSRegion    string `mapstructure:"aws_region"`
	SNSTopicARN  string `mapstructure:"sns_topic_arn"`
	QueueSize    int    `mapstructure:"queue_size"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}
