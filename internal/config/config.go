package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig `json:"server"`

	// Relational store
	Database DatabaseConfig `json:"database"`

	// Document store, also backs media storage
	MongoDB MongoDBConfig `json:"mongodb"`

	Auth    AuthConfig    `json:"auth"`
	Store   StoreConfig   `json:"store"`
	Logging LoggingConfig `json:"logging"`
	Media   MediaConfig   `json:"media"`
}

// ServerConfig contains server-related configuration
type ServerConfig struct {
	Port         string `json:"port"`
	Host         string `json:"host"`
	ReadTimeout  int    `json:"read_timeout"`
	WriteTimeout int    `json:"write_timeout"`
	Environment  string `json:"environment"` // development, staging, production
	CORSOrigin   string `json:"cors_origin"`
}

// IsDevelopment reports whether error envelopes may carry stack traces.
func (s ServerConfig) IsDevelopment() bool {
	return strings.EqualFold(s.Environment, "development")
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host         string `json:"host"`
	Port         string `json:"port"`
	Username     string `json:"username"`
	Password     string `json:"password"`
	DatabaseName string `json:"database_name"`
	MaxOpenConns int    `json:"max_open_conns"`
	MaxIdleConns int    `json:"max_idle_conns"`
}

type MongoDBConfig struct {
	Host     string `json:"host"`
	Port     string `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
	Database string `json:"database"`
}

// AuthConfig holds token secrets and lifetimes
type AuthConfig struct {
	AccessTokenSecret  string        `json:"-"`
	RefreshTokenSecret string        `json:"-"`
	AccessTokenTTL     time.Duration `json:"access_token_ttl"`
	RefreshTokenTTL    time.Duration `json:"refresh_token_ttl"`
}

// StoreConfig picks the persistence backend: mysql or mongo
type StoreConfig struct {
	Backend string `json:"backend"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `json:"level"`  // debug, info, warn, error
	Format string `json:"format"` // json, console
}

// MediaConfig controls the GridFS-backed media routes
type MediaConfig struct {
	BaseURL     string `json:"base_url"`
	MaxUploadMB int    `json:"max_upload_mb"`
}

// LoadConfig reads .env (if any) and then the process environment.
func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         getEnv("PORT", "8000"),
			ReadTimeout:  getEnvAsInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvAsInt("SERVER_WRITE_TIMEOUT", 15),
			Environment:  getEnv("APP_ENV", "development"),
			CORSOrigin:   getEnv("CORS_ORIGIN", "*"),
		},
		Database: DatabaseConfig{
			Host:         getEnv("MYSQL_HOST", "localhost"),
			Port:         getEnv("MYSQL_PORT", "3306"),
			Username:     getEnv("MYSQL_USERNAME", "viztube"),
			Password:     getEnv("MYSQL_PASSWORD", "viztube123"),
			DatabaseName: getEnv("MYSQL_DATABASE", "viztube"),
			MaxOpenConns: getEnvAsInt("MYSQL_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getEnvAsInt("MYSQL_MAX_IDLE_CONNS", 5),
		},
		MongoDB: MongoDBConfig{
			Host:     getEnv("MONGO_HOST", "localhost"),
			Port:     getEnv("MONGO_PORT", "27017"),
			Username: getEnv("MONGO_USERNAME", ""),
			Password: getEnv("MONGO_PASSWORD", ""),
			Database: getEnv("MONGO_DATABASE", "viztube"),
		},
		Auth: AuthConfig{
			AccessTokenSecret:  getEnv("ACCESS_TOKEN_SECRET", "change-me-access"),
			RefreshTokenSecret: getEnv("REFRESH_TOKEN_SECRET", "change-me-refresh"),
			AccessTokenTTL:     getEnvAsDuration("ACCESS_TOKEN_EXPIRY", 24*time.Hour),
			RefreshTokenTTL:    getEnvAsDuration("REFRESH_TOKEN_EXPIRY", 10*24*time.Hour),
		},
		Store: StoreConfig{
			Backend: strings.ToLower(getEnv("STORE_BACKEND", "mysql")),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Media: MediaConfig{
			MaxUploadMB: getEnvAsInt("MEDIA_MAX_UPLOAD_MB", 100),
		},
	}

	cfg.Media.BaseURL = getEnv("MEDIA_BASE_URL",
		fmt.Sprintf("http://%s:%s/media", "localhost", cfg.Server.Port))

	return cfg
}

func (cfg *Config) DSN() string {
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == "" {
		cfg.Database.Port = "3306"
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DatabaseName,
	)
}

func (cfg *Config) GetMongoURI() string {
	m := cfg.MongoDB
	if m.Username != "" && m.Password != "" {
		return fmt.Sprintf("mongodb://%s:%s@%s:%s/%s?authSource=admin",
			m.Username, m.Password, m.Host, m.Port, m.Database)
	}
	return fmt.Sprintf("mongodb://%s:%s/%s", m.Host, m.Port, m.Database)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

// accepts Go durations ("15m") or the "10d" day form
func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if strings.HasSuffix(v, "d") {
		if days, err := strconv.Atoi(strings.TrimSuffix(v, "d")); err == nil {
			return time.Duration(days) * 24 * time.Hour
		}
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	return fallback
}
