package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	env "github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	AppName     string `env:"APP_NAME" envDefault:"WhenWeWork"`
	AppVersion  string `env:"APP_VERSION" envDefault:"1.0.0"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Debug       bool   `env:"DEBUG" envDefault:"false"`

	ServerPort  string   `env:"SERVER_PORT" envDefault:"8000"`
	APIPrefix   string   `env:"API_PREFIX" envDefault:"/api/v1"`
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`

	Auth     AuthConfig     `envPrefix:"JWT_"`
	Database DatabaseConfig `envPrefix:"DB_"`
	Log      LogConfig      `envPrefix:"LOG_"`
	Pending  PendingConfig  `envPrefix:"PENDING_"`
	Redis    RedisConfig    `envPrefix:"REDIS_"`
	Email    EmailConfig    `envPrefix:"EMAIL_"`
	Minio    MinioConfig    `envPrefix:"MINIO_"`
	Audit    AuditConfig    `envPrefix:"AUDIT_"`
}

type AuthConfig struct {
	Secret             string `env:"SECRET" envDefault:"change-me"`
	Issuer             string `env:"ISSUER" envDefault:"whenwework"`
	AccessTokenMinutes int    `env:"ACCESS_TOKEN_EXPIRE_MINUTES" envDefault:"30"`
}

func (a AuthConfig) AccessTokenTTL() time.Duration {
	return time.Duration(a.AccessTokenMinutes) * time.Minute
}

type DatabaseConfig struct {
	URL          string `env:"URL"`
	Host         string `env:"HOST" envDefault:"localhost"`
	Port         string `env:"PORT" envDefault:"5432"`
	User         string `env:"USER" envDefault:"postgres"`
	Password     string `env:"PASSWORD" envDefault:"password"`
	Name         string `env:"NAME" envDefault:"whenwework"`
	SSLMode      string `env:"SSLMODE" envDefault:"disable"`
	MaxOpenConns int    `env:"MAX_OPEN_CONNS" envDefault:"15"`
	MaxIdleConns int    `env:"MAX_IDLE_CONNS" envDefault:"5"`
	AutoMigrate  bool   `env:"AUTO_MIGRATE" envDefault:"true"`
}

// DSN prefers DB_URL when set.
func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode,
	)
}

type LogConfig struct {
	Level  string `env:"LEVEL" envDefault:"info"`
	Format string `env:"FORMAT" envDefault:"console"`
}

type PendingConfig struct {
	Store string        `env:"STORE" envDefault:"memory"`
	TTL   time.Duration `env:"TTL" envDefault:"10m"`
}

type RedisConfig struct {
	URL string `env:"URL" envDefault:"redis://localhost:6379/0"`
}

type EmailConfig struct {
	Provider       string `env:"PROVIDER" envDefault:"log"`
	From           string `env:"FROM" envDefault:"no-reply@whenwework.local"`
	FromName       string `env:"FROM_NAME" envDefault:"WhenWeWork"`
	AWSRegion      string `env:"AWS_REGION" envDefault:"us-east-1"`
	SendGridAPIKey string `env:"SENDGRID_API_KEY"`
	SMTPHost       string `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	SMTPPort       int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUsername   string `env:"SMTP_USERNAME"`
	SMTPPassword   string `env:"SMTP_PASSWORD"`
}

type MinioConfig struct {
	Enabled   bool   `env:"ENABLED" envDefault:"false"`
	Endpoint  string `env:"ENDPOINT" envDefault:"localhost:9000"`
	AccessKey string `env:"ACCESS_KEY" envDefault:"minioadmin"`
	SecretKey string `env:"SECRET_KEY" envDefault:"minioadmin"`
	UseSSL    bool   `env:"USE_SSL" envDefault:"false"`
	Bucket    string `env:"BUCKET" envDefault:"photos"`
	PublicURL string `env:"PUBLIC_URL"`
}

type AuditConfig struct {
	RetentionDays   int    `env:"RETENTION_DAYS" envDefault:"30"`
	CleanupSchedule string `env:"CLEANUP_SCHEDULE" envDefault:"@daily"`
	// EmbeddedCleanup runs retention inside the API process. Turn it off
	// when cmd/scheduler is deployed.
	EmbeddedCleanup bool `env:"EMBEDDED_CLEANUP" envDefault:"true"`
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

// LoadConfig reads an optional .env file and then the process environment.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()
	return Parse()
}

func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.IsProduction() && c.Auth.Secret == "change-me" {
		return errors.New("JWT_SECRET must be set in production")
	}
	if c.Auth.AccessTokenMinutes <= 0 {
		return errors.New("JWT_ACCESS_TOKEN_EXPIRE_MINUTES must be positive")
	}
	switch c.Pending.Store {
	case "memory", "redis":
	default:
		return fmt.Errorf("unknown PENDING_STORE %q", c.Pending.Store)
	}
	switch c.Email.Provider {
	case "log", "smtp", "ses", "sendgrid":
	default:
		return fmt.Errorf("unknown EMAIL_PROVIDER %q", c.Email.Provider)
	}
	if c.Email.Provider == "sendgrid" && c.Email.SendGridAPIKey == "" {
		return errors.New("EMAIL_SENDGRID_API_KEY is required for the sendgrid provider")
	}
	return nil
}
