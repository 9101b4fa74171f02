// cmd/bot/main.go
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fitness-bot/config"
	"fitness-bot/internal/bot"
	"fitness-bot/internal/db"
	"fitness-bot/internal/food"
	"fitness-bot/internal/server"
	"fitness-bot/internal/service"
	"fitness-bot/internal/weather"
	"fitness-bot/internal/workout"
	"fitness-bot/pkg/logger"

	"github.com/redis/go-redis/v9"
)

func main() {
	// Initialize logger
	l := logger.New()
	l.Info("Starting Fitness Tracker Bot...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		l.Fatal("Failed to load config", err)
	}

	// Validate critical configuration
	if cfg.Telegram.Token == "" {
		l.Fatal("Telegram token is not configured")
	}
	if cfg.FatSecret.ClientID == "" || cfg.FatSecret.ClientSecret == "" {
		l.Fatal("FatSecret credentials are not configured")
	}
	if cfg.Weather.APIKey == "" {
		l.Fatal("OpenWeatherMap API key is not configured")
	}

	// Initialize database connection with retry
	var database *db.PostgresDB
	maxRetries := 5
	for i := 0; i < maxRetries; i++ {
		database, err = db.NewPostgresDB(cfg.DB)
		if err == nil {
			break
		}
		l.Error("Failed to connect to database, retrying...", err)
		time.Sleep(time.Duration(i+1) * time.Second)
	}
	if database == nil {
		l.Fatal("Failed to connect to database after multiple attempts", err)
	}
	defer database.Close()

	if err := database.InitSchema(context.Background()); err != nil {
		l.Fatal("Failed to init database schema", err)
	}

	// Token store: Redis when reachable, in-memory otherwise
	var tokenStore food.TokenStore
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		l.Error("Redis is not reachable, keeping API tokens in memory", err)
		tokenStore = food.NewMemoryTokenStore()
	} else {
		tokenStore = food.NewRedisTokenStore(redisClient)
	}
	defer redisClient.Close()

	// Workout table
	workouts, err := workout.Load(cfg.ExercisesPath)
	if err != nil {
		l.Fatal("Failed to load exercises table", err)
	}

	// Collaborator clients
	fatsecret := food.NewFatSecretClient(
		cfg.FatSecret.ClientID, cfg.FatSecret.ClientSecret,
		cfg.FatSecret.TokenURL, cfg.FatSecret.APIURL,
		tokenStore, cfg.HTTPTimeout,
	)
	nutrition := food.NewManager(
		fatsecret,
		food.NewOFFClient(cfg.HTTPTimeout),
		food.NewTranslator(cfg.HTTPTimeout),
		l,
	)
	owm := weather.NewOWMClient(cfg.Weather.APIKey, cfg.Weather.BaseURL, cfg.HTTPTimeout)

	// Daily stats service
	svc := service.New(database, workouts, nutrition, owm, l)

	// Create and start bot
	telegramBot, err := bot.NewTelegramBot(cfg.Telegram.Token, svc, l)
	if err != nil {
		l.Fatal("Failed to create Telegram bot", err)
	}

	l.Info("Starting Telegram bot...")
	if err := telegramBot.Start(context.Background()); err != nil {
		l.Fatal("Failed to start Telegram bot", err)
	}

	// Start health/metrics server
	httpServer := server.NewServer(cfg.Server.Port, l)
	go func() {
		if err := httpServer.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.Fatal("Failed to start HTTP server", err)
		}
	}()

	// Wait for termination signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	l.Info("Shutting down bot...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	// Stop HTTP server first
	if err := httpServer.Stop(ctx); err != nil {
		l.Error("Error during HTTP server shutdown", err)
	}

	// Then stop bot
	if err := telegramBot.Stop(ctx); err != nil {
		l.Error("Error during bot shutdown", err)
	}

	l.Info("Bot stopped successfully")
}
