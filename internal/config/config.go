package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	MinIO    MinIOConfig
	Catalog  CatalogConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	CORSOrigins  string
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	QueryTimeout    time.Duration
	AutoMigrate     bool
}

type RedisConfig struct {
	Enabled   bool
	URL       string
	FacetsTTL time.Duration
}

type MinIOConfig struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	Region          string
	UseSSL          bool
	PublicURL       string
	PresignExpiry   time.Duration
}

type CatalogConfig struct {
	DefaultLimit int
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnvOrDefault("SERVER_PORT", "8010"),
			ReadTimeout:  getDurationOrDefault("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout: getDurationOrDefault("SERVER_WRITE_TIMEOUT", 30*time.Second),
			CORSOrigins:  getEnvOrDefault("CORS_ORIGINS", "*"),
		},
		Database: DatabaseConfig{
			Host:            getEnvOrDefault("DB_HOST", "localhost"),
			Port:            getEnvOrDefault("DB_PORT", "5432"),
			User:            getEnvOrDefault("DB_USER", "postgres"),
			Password:        getEnvOrDefault("DB_PASSWORD", "postgres"),
			DBName:          getEnvOrDefault("DB_NAME", "edu_turkish"),
			SSLMode:         getEnvOrDefault("DB_SSLMODE", "disable"),
			MaxOpenConns:    getIntOrDefault("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getIntOrDefault("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationOrDefault("DB_CONN_MAX_LIFETIME", 5*time.Minute),
			QueryTimeout:    getDurationOrDefault("DB_QUERY_TIMEOUT", 10*time.Second),
			AutoMigrate:     getBoolOrDefault("DB_AUTO_MIGRATE", true),
		},
		Redis: RedisConfig{
			Enabled:   getBoolOrDefault("REDIS_ENABLED", false),
			URL:       getEnvOrDefault("REDIS_URL", "redis://localhost:6379/0"),
			FacetsTTL: getDurationOrDefault("REDIS_FACETS_TTL", 10*time.Minute),
		},
		MinIO: MinIOConfig{
			Endpoint:        getEnvOrDefault("AWS_ENDPOINT", ""),
			AccessKeyID:     getEnvOrDefault("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnvOrDefault("AWS_SECRET_ACCESS_KEY", ""),
			BucketName:      getEnvOrDefault("AWS_BUCKET", "edu-turkish"),
			Region:          getEnvOrDefault("AWS_DEFAULT_REGION", "us-east-1"),
			UseSSL:          getBoolOrDefault("AWS_USE_SSL", true),
			PublicURL:       getEnvOrDefault("AWS_URL", ""),
			PresignExpiry:   getDurationOrDefault("AWS_PRESIGN_EXPIRY", 15*time.Minute),
		},
		Catalog: CatalogConfig{
			DefaultLimit: getIntOrDefault("CATALOG_DEFAULT_LIMIT", 12),
		},
	}
}

// DSN returns PostgreSQL connection string
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC connect_timeout=10",
		d.Host,
		d.Port,
		d.User,
		d.Password,
		d.DBName,
		d.SSLMode,
	)
}

// MinIOEnabled reports whether enough settings are present to talk to object storage.
func (c *Config) MinIOEnabled() bool {
	return c.MinIO.Endpoint != "" && c.MinIO.AccessKeyID != "" && c.MinIO.SecretAccessKey != ""
}

// Validate returns an error for settings the server cannot start without and
// warnings for optional services that will be disabled.
func (c *Config) Validate() (warnings []string, err error) {
	if c.Database.Host == "" {
		return nil, fmt.Errorf("DB_HOST is required")
	}
	if c.Database.DBName == "" {
		return nil, fmt.Errorf("DB_NAME is required")
	}
	if !c.MinIOEnabled() {
		warnings = append(warnings, "MinIO is not configured, media paths are served as stored and uploads are disabled")
	}
	if c.Redis.Enabled && c.Redis.URL == "" {
		warnings = append(warnings, "REDIS_ENABLED is set without REDIS_URL, facet cache is disabled")
	}
	if c.Catalog.DefaultLimit <= 0 {
		warnings = append(warnings, "CATALOG_DEFAULT_LIMIT must be positive, using 12")
		c.Catalog.DefaultLimit = 12
	}
	return warnings, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
