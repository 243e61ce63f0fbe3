package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// JWT configuration
	JWTSecret string `mapstructure:"JWT_SECRET"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// AI provider credential; when set in env it marks the provider as configured
	AIProviderAPIKey string `mapstructure:"AI_PROVIDER_API_KEY"`

	// Meilisearch (external index) configuration
	MeiliURL    string `mapstructure:"MEILI_URL"`
	MeiliAPIKey string `mapstructure:"MEILI_API_KEY"`
	MeiliIndex  string `mapstructure:"MEILI_INDEX"`

	// MinIO (blob ingress) configuration
	MinioEndpoint  string `mapstructure:"MINIO_ENDPOINT"`
	MinioAccessKey string `mapstructure:"MINIO_ACCESS_KEY"`
	MinioSecretKey string `mapstructure:"MINIO_SECRET_KEY"`
	MinioBucket    string `mapstructure:"MINIO_BUCKET"`
	MinioUseSSL    bool   `mapstructure:"MINIO_USE_SSL"`

	// Redis (distributed sync lock) and NATS (status events)
	RedisURL string `mapstructure:"REDIS_URL"`
	NatsURL  string `mapstructure:"NATS_URL"`

	// Document upload and index sync tuning
	MaxUploadBytes      int64         `mapstructure:"MAX_UPLOAD_BYTES"`
	SyncPollInterval    time.Duration `mapstructure:"SYNC_POLL_INTERVAL"`
	SyncMaxPollAttempts int           `mapstructure:"SYNC_MAX_POLL_ATTEMPTS"`
	SyncUploadTimeout   time.Duration `mapstructure:"SYNC_UPLOAD_TIMEOUT"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7008")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "knowledge_base")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// JWT defaults
	viper.SetDefault("JWT_SECRET", "your-secret-key-change-in-production")

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})

	viper.SetDefault("AI_PROVIDER_API_KEY", "")

	// External index defaults
	viper.SetDefault("MEILI_URL", "http://localhost:7700")
	viper.SetDefault("MEILI_API_KEY", "")
	viper.SetDefault("MEILI_INDEX", "knowledge_documents")

	// Blob ingress defaults; an empty endpoint disables archiving
	viper.SetDefault("MINIO_ENDPOINT", "")
	viper.SetDefault("MINIO_ACCESS_KEY", "")
	viper.SetDefault("MINIO_SECRET_KEY", "")
	viper.SetDefault("MINIO_BUCKET", "knowledge-documents")
	viper.SetDefault("MINIO_USE_SSL", false)

	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("NATS_URL", "")

	// Upload and sync defaults
	viper.SetDefault("MAX_UPLOAD_BYTES", int64(10*1024*1024))
	viper.SetDefault("SYNC_POLL_INTERVAL", 2*time.Second)
	viper.SetDefault("SYNC_MAX_POLL_ATTEMPTS", 30)
	viper.SetDefault("SYNC_UPLOAD_TIMEOUT", 60*time.Second)
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.JWTSecret == "your-secret-key-change-in-production" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}

	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	if config.MaxUploadBytes <= 0 {
		return fmt.Errorf("MAX_UPLOAD_BYTES must be positive")
	}

	if config.SyncPollInterval <= 0 {
		return fmt.Errorf("SYNC_POLL_INTERVAL must be positive")
	}

	if config.SyncMaxPollAttempts < 1 {
		return fmt.Errorf("SYNC_MAX_POLL_ATTEMPTS must be at least 1")
	}

	if config.MinioEndpoint != "" && (config.MinioAccessKey == "" || config.MinioSecretKey == "") {
		return fmt.Errorf("MINIO_ACCESS_KEY and MINIO_SECRET_KEY are required when MINIO_ENDPOINT is set")
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
