package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Store     StoreConfig
	Advisory  AdvisoryConfig
}

type AppConfig struct {
	Name     string
	Env      string
	Port     string
	Debug    bool
	Timezone string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	Timezone string
}

// JWTConfig configures validation of bearer tokens issued by the external
// identity provider. Leadflow never issues tokens itself.
type JWTConfig struct {
	Enabled bool
	Secret  string
	Issuer  string
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

// StoreConfig controls how the in-memory lead set talks to the lead store.
type StoreConfig struct {
	WriteTimeout            time.Duration
	ReconcileOnWriteFailure bool
	NotificationsBuffer     int
}

type AdvisoryConfig struct {
	APIKey        string
	ChatModel     string
	StrategyModel string
	Timeout       time.Duration
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "leadflow-api")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("APP_TIMEZONE", "America/Argentina/Buenos_Aires")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_NAME", "leadflow")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("DB_TIMEZONE", "UTC")
	viper.SetDefault("AUTH_ENABLED", false)
	viper.SetDefault("JWT_SECRET", "change-this-secret-in-production")
	viper.SetDefault("JWT_ISSUER", "")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)
	viper.SetDefault("STORE_WRITE_TIMEOUT_SECONDS", 10)
	viper.SetDefault("STORE_RECONCILE_ON_WRITE_FAILURE", true)
	viper.SetDefault("NOTIFICATIONS_BUFFER", 20)
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_CHAT_MODEL", "gemini-3-flash-preview")
	viper.SetDefault("GEMINI_STRATEGY_MODEL", "gemini-3-pro-preview")
	viper.SetDefault("GEMINI_TIMEOUT_SECONDS", 60)

	return &Config{
		App: AppConfig{
			Name:     viper.GetString("APP_NAME"),
			Env:      viper.GetString("APP_ENV"),
			Port:     viper.GetString("APP_PORT"),
			Debug:    viper.GetBool("APP_DEBUG"),
			Timezone: viper.GetString("APP_TIMEZONE"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			SSLMode:  viper.GetString("DB_SSL_MODE"),
			Timezone: viper.GetString("DB_TIMEZONE"),
		},
		JWT: JWTConfig{
			Enabled: viper.GetBool("AUTH_ENABLED"),
			Secret:  viper.GetString("JWT_SECRET"),
			Issuer:  viper.GetString("JWT_ISSUER"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
		Store: StoreConfig{
			WriteTimeout:            time.Duration(viper.GetInt("STORE_WRITE_TIMEOUT_SECONDS")) * time.Second,
			ReconcileOnWriteFailure: viper.GetBool("STORE_RECONCILE_ON_WRITE_FAILURE"),
			NotificationsBuffer:     viper.GetInt("NOTIFICATIONS_BUFFER"),
		},
		Advisory: AdvisoryConfig{
			APIKey:        viper.GetString("GEMINI_API_KEY"),
			ChatModel:     viper.GetString("GEMINI_CHAT_MODEL"),
			StrategyModel: viper.GetString("GEMINI_STRATEGY_MODEL"),
			Timeout:       time.Duration(viper.GetInt("GEMINI_TIMEOUT_SECONDS")) * time.Second,
		},
	}
}

func (c *DatabaseConfig) DSN() string {
	return "host=" + c.Host +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Name +
		" port=" + c.Port +
		" sslmode=" + c.SSLMode +
		" TimeZone=" + c.Timezone
}

// Location resolves the business timezone used for date-range boundaries.
// Falls back to UTC when the configured zone is unknown.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		log.Printf("Warning: unknown APP_TIMEZONE %q, using UTC: %v", c.Timezone, err)
		return time.UTC
	}
	return loc
}
