// config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Telegram struct {
		Token string
	}
	DB struct {
		Host         string
		Port         string
		User         string
		Password     string
		DBName       string
		SSLMode      string
		MaxOpenConns int
		MaxIdleConns int
		ConnLifetime time.Duration
	}
	Redis struct {
		Addr     string
		Password string
		DB       int
	}
	Weather struct {
		APIKey  string
		BaseURL string
	}
	FatSecret struct {
		ClientID     string
		ClientSecret string
		TokenURL     string
		APIURL       string
	}
	Server struct {
		Port string
	}
	ExercisesPath   string
	HTTPTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// Load loads the configuration
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Paths where to look for the config file
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("../config")
	v.AddConfigPath("$HOME/.fitness-bot")

	v.SetDefault("ShutdownTimeout", 10*time.Second)
	v.SetDefault("HTTPTimeout", 5*time.Second)
	v.SetDefault("ExercisesPath", "exercises.yaml")
	v.SetDefault("Server.Port", "8080")
	v.SetDefault("DB.MaxOpenConns", 20)
	v.SetDefault("DB.MaxIdleConns", 10)
	v.SetDefault("DB.ConnLifetime", 5*time.Minute)
	v.SetDefault("Redis.Addr", "localhost:6379")
	v.SetDefault("Weather.BaseURL", "https://api.openweathermap.org/data/2.5")
	v.SetDefault("FatSecret.TokenURL", "https://oauth.fatsecret.com/connect/token")
	v.SetDefault("FatSecret.APIURL", "https://platform.fatsecret.com/rest")

	v.AutomaticEnv()

	err := v.ReadInConfig()

	// No config file: fall back to environment variables only
	if err != nil {
		cfg := &Config{}

		cfg.Telegram.Token = os.Getenv("TELEGRAM_TOKEN")
		cfg.DB.Host = getEnvOr("DB_HOST", "localhost")
		cfg.DB.Port = getEnvOr("DB_PORT", "5432")
		cfg.DB.User = getEnvOr("DB_USER", "postgres")
		cfg.DB.Password = getEnvOr("DB_PASSWORD", "postgres")
		cfg.DB.DBName = getEnvOr("DB_NAME", "fitness_bot")
		cfg.DB.SSLMode = getEnvOr("DB_SSL_MODE", "disable")
		cfg.DB.MaxOpenConns = 20
		cfg.DB.MaxIdleConns = 10
		cfg.DB.ConnLifetime = 5 * time.Minute
		cfg.Redis.Addr = getEnvOr("REDIS_ADDR", "localhost:6379")
		cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
		cfg.Redis.DB, _ = strconv.Atoi(getEnvOr("REDIS_DB", "0"))
		cfg.Weather.APIKey = os.Getenv("OWM_API_KEY")
		cfg.Weather.BaseURL = getEnvOr("OWM_BASE_URL", "https://api.openweathermap.org/data/2.5")
		cfg.FatSecret.ClientID = os.Getenv("FATSECRET_CLIENT_ID")
		cfg.FatSecret.ClientSecret = os.Getenv("FATSECRET_CLIENT_SECRET")
		cfg.FatSecret.TokenURL = getEnvOr("FATSECRET_TOKEN_URL", "https://oauth.fatsecret.com/connect/token")
		cfg.FatSecret.APIURL = getEnvOr("FATSECRET_API_URL", "https://platform.fatsecret.com/rest")
		cfg.Server.Port = getEnvOr("SERVER_PORT", "8080")
		cfg.ExercisesPath = getEnvOr("EXERCISES_PATH", "exercises.yaml")
		cfg.HTTPTimeout = 5 * time.Second
		cfg.ShutdownTimeout = 10 * time.Second

		return cfg, nil
	}

	// Process any ${ENV_VAR} syntax in the config values
	for _, key := range v.AllKeys() {
		value := v.GetString(key)
		if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
			envVar := strings.TrimPrefix(strings.TrimSuffix(value, "}"), "${")
			envValue := os.Getenv(envVar)
			if envValue != "" {
				v.Set(key, envValue)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Helper function to get environment variable with default value
func getEnvOr(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
