package db

import (
	"context"
	"fmt"
	"time"

	"fitness-bot/internal/models"

	"github.com/jackc/pgx/v4/pgxpool"
)

type PostgresDB struct {
	pool *pgxpool.Pool
}

func NewPostgresDB(cfg struct {
	Host         string
	Port         string
	User         string
	Password     string
	DBName       string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
	ConnLifetime time.Duration
}) (*PostgresDB, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s pool_max_conns=%d",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode, cfg.MaxOpenConns,
	)

	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse DB connection string: %w", err)
	}

	poolConfig.MaxConns = int32(cfg.MaxOpenConns)
	poolConfig.MinConns = int32(cfg.MaxIdleConns)
	poolConfig.MaxConnLifetime = cfg.ConnLifetime
	poolConfig.MaxConnIdleTime = 15 * time.Minute

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.ConnectConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresDB{pool: pool}, nil
}

func (db *PostgresDB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// InitSchema creates the tables if they do not exist yet.
func (db *PostgresDB) InitSchema(ctx context.Context) error {
	schema := `
        CREATE TABLE IF NOT EXISTS users (
            id BIGSERIAL PRIMARY KEY,
            telegram_id BIGINT NOT NULL UNIQUE
        );
        CREATE TABLE IF NOT EXISTS health_profiles (
            id BIGSERIAL PRIMARY KEY,
            user_id BIGINT NOT NULL UNIQUE REFERENCES users(id),
            weight DOUBLE PRECISION NOT NULL,
            height DOUBLE PRECISION NOT NULL,
            age INT NOT NULL,
            activity INT NOT NULL,
            city TEXT NOT NULL,
            calorie_goal INT NOT NULL
        );
        CREATE TABLE IF NOT EXISTS daily_water_stats (
            id BIGSERIAL PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users(id),
            day DATE NOT NULL,
            water_goal INT NOT NULL,
            water_consumed INT NOT NULL DEFAULT 0,
            CONSTRAINT water_unique_user_day UNIQUE (user_id, day)
        );
        CREATE TABLE IF NOT EXISTS daily_calories_stats (
            id BIGSERIAL PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users(id),
            day DATE NOT NULL,
            calories_goal INT NOT NULL,
            calories_consumed INT NOT NULL DEFAULT 0,
            calories_burned INT NOT NULL DEFAULT 0,
            CONSTRAINT calories_unique_user_day UNIQUE (user_id, day)
        );
    `

	_, err := db.pool.Exec(ctx, schema)
	if err != nil {
		return fmt.Errorf("failed to init schema: %w", err)
	}
	return nil
}

func (db *PostgresDB) GetUserByTelegramID(ctx context.Context, telegramID int64) (*models.User, error) {
	query := `
        SELECT id, telegram_id
        FROM users
        WHERE telegram_id = $1
    `

	var user models.User
	err := db.pool.QueryRow(ctx, query, telegramID).Scan(&user.ID, &user.TelegramID)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (db *PostgresDB) AddUser(ctx context.Context, telegramID int64) (*models.User, error) {
	// The no-op update makes RETURNING yield the row on conflict as well.
	query := `
        INSERT INTO users (telegram_id)
        VALUES ($1)
        ON CONFLICT (telegram_id) DO UPDATE SET telegram_id = EXCLUDED.telegram_id
        RETURNING id, telegram_id
    `

	var user models.User
	err := db.pool.QueryRow(ctx, query, telegramID).Scan(&user.ID, &user.TelegramID)
	if err != nil {
		return nil, fmt.Errorf("failed to add user: %w", err)
	}

	return &user, nil
}

func (db *PostgresDB) GetHealthProfile(ctx context.Context, userID int64) (*models.HealthProfile, error) {
	query := `
        SELECT id, user_id, weight, height, age, activity, city, calorie_goal
        FROM health_profiles
        WHERE user_id = $1
    `

	var p models.HealthProfile
	err := db.pool.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.Weight, &p.Height, &p.Age, &p.Activity, &p.City, &p.CalorieGoal,
	)
	if err != nil {
		return nil, err
	}

	return &p, nil
}

// UpsertHealthProfile fully overwrites the single profile row of the user.
func (db *PostgresDB) UpsertHealthProfile(ctx context.Context, profile *models.HealthProfile) error {
	query := `
        INSERT INTO health_profiles (user_id, weight, height, age, activity, city, calorie_goal)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        ON CONFLICT (user_id) DO UPDATE
        SET weight = $2, height = $3, age = $4, activity = $5, city = $6, calorie_goal = $7
        RETURNING id
    `

	err := db.pool.QueryRow(ctx, query,
		profile.UserID, profile.Weight, profile.Height,
		profile.Age, profile.Activity, profile.City, profile.CalorieGoal,
	).Scan(&profile.ID)

	return err
}

func (db *PostgresDB) GetDailyWaterStats(ctx context.Context, userID int64, day time.Time) (*models.DailyWaterStats, error) {
	query := `
        SELECT id, user_id, day, water_goal, water_consumed
        FROM daily_water_stats
        WHERE user_id = $1 AND day = $2
    `

	var s models.DailyWaterStats
	err := db.pool.QueryRow(ctx, query, userID, day).Scan(
		&s.ID, &s.UserID, &s.Day, &s.WaterGoal, &s.WaterConsumed,
	)
	if err != nil {
		return nil, err
	}

	return &s, nil
}

// GetOrCreateDailyWaterStats inserts the day row with the given goal or, if it
// already exists, returns it untouched. Single statement, so two concurrent
// events cannot create two rows.
func (db *PostgresDB) GetOrCreateDailyWaterStats(ctx context.Context, userID int64, day time.Time, goal int) (*models.DailyWaterStats, error) {
	query := `
        INSERT INTO daily_water_stats (user_id, day, water_goal, water_consumed)
        VALUES ($1, $2, $3, 0)
        ON CONFLICT (user_id, day) DO UPDATE SET user_id = EXCLUDED.user_id
        RETURNING id, user_id, day, water_goal, water_consumed
    `

	var s models.DailyWaterStats
	err := db.pool.QueryRow(ctx, query, userID, day, goal).Scan(
		&s.ID, &s.UserID, &s.Day, &s.WaterGoal, &s.WaterConsumed,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create daily water stats: %w", err)
	}

	return &s, nil
}

func (db *PostgresDB) AddWaterConsumed(ctx context.Context, userID int64, day time.Time, amount int) (*models.DailyWaterStats, error) {
	query := `
        UPDATE daily_water_stats
        SET water_consumed = water_consumed + $3
        WHERE user_id = $1 AND day = $2
        RETURNING id, user_id, day, water_goal, water_consumed
    `

	var s models.DailyWaterStats
	err := db.pool.QueryRow(ctx, query, userID, day, amount).Scan(
		&s.ID, &s.UserID, &s.Day, &s.WaterGoal, &s.WaterConsumed,
	)
	if err != nil {
		return nil, err
	}

	return &s, nil
}

func (db *PostgresDB) AddWaterGoal(ctx context.Context, userID int64, day time.Time, delta int) (*models.DailyWaterStats, error) {
	query := `
        UPDATE daily_water_stats
        SET water_goal = water_goal + $3
        WHERE user_id = $1 AND day = $2
        RETURNING id, user_id, day, water_goal, water_consumed
    `

	var s models.DailyWaterStats
	err := db.pool.QueryRow(ctx, query, userID, day, delta).Scan(
		&s.ID, &s.UserID, &s.Day, &s.WaterGoal, &s.WaterConsumed,
	)
	if err != nil {
		return nil, err
	}

	return &s, nil
}

func (db *PostgresDB) GetDailyCaloriesStats(ctx context.Context, userID int64, day time.Time) (*models.DailyCaloriesStats, error) {
	query := `
        SELECT id, user_id, day, calories_goal, calories_consumed, calories_burned
        FROM daily_calories_stats
        WHERE user_id = $1 AND day = $2
    `

	var s models.DailyCaloriesStats
	err := db.pool.QueryRow(ctx, query, userID, day).Scan(
		&s.ID, &s.UserID, &s.Day, &s.CaloriesGoal, &s.CaloriesConsumed, &s.CaloriesBurned,
	)
	if err != nil {
		return nil, err
	}

	return &s, nil
}

func (db *PostgresDB) GetOrCreateDailyCaloriesStats(ctx context.Context, userID int64, day time.Time, goal int) (*models.DailyCaloriesStats, error) {
	query := `
        INSERT INTO daily_calories_stats (user_id, day, calories_goal, calories_consumed, calories_burned)
        VALUES ($1, $2, $3, 0, 0)
        ON CONFLICT (user_id, day) DO UPDATE SET user_id = EXCLUDED.user_id
        RETURNING id, user_id, day, calories_goal, calories_consumed, calories_burned
    `

	var s models.DailyCaloriesStats
	err := db.pool.QueryRow(ctx, query, userID, day, goal).Scan(
		&s.ID, &s.UserID, &s.Day, &s.CaloriesGoal, &s.CaloriesConsumed, &s.CaloriesBurned,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create daily calories stats: %w", err)
	}

	return &s, nil
}

func (db *PostgresDB) AddCaloriesConsumed(ctx context.Context, userID int64, day time.Time, amount int) (*models.DailyCaloriesStats, error) {
	query := `
        UPDATE daily_calories_stats
        SET calories_consumed = calories_consumed + $3
        WHERE user_id = $1 AND day = $2
        RETURNING id, user_id, day, calories_goal, calories_consumed, calories_burned
    `

	var s models.DailyCaloriesStats
	err := db.pool.QueryRow(ctx, query, userID, day, amount).Scan(
		&s.ID, &s.UserID, &s.Day, &s.CaloriesGoal, &s.CaloriesConsumed, &s.CaloriesBurned,
	)
	if err != nil {
		return nil, err
	}

	return &s, nil
}

func (db *PostgresDB) AddCaloriesBurned(ctx context.Context, userID int64, day time.Time, amount int) (*models.DailyCaloriesStats, error) {
	query := `
        UPDATE daily_calories_stats
        SET calories_burned = calories_burned + $3
        WHERE user_id = $1 AND day = $2
        RETURNING id, user_id, day, calories_goal, calories_consumed, calories_burned
    `

	var s models.DailyCaloriesStats
	err := db.pool.QueryRow(ctx, query, userID, day, amount).Scan(
		&s.ID, &s.UserID, &s.Day, &s.CaloriesGoal, &s.CaloriesConsumed, &s.CaloriesBurned,
	)
	if err != nil {
		return nil, err
	}

	return &s, nil
}

func (db *PostgresDB) GetWaterHistory(ctx context.Context, userID int64, since time.Time, limit int) ([]models.DailyWaterStats, error) {
	query := `
        SELECT id, user_id, day, water_goal, water_consumed
        FROM daily_water_stats
        WHERE user_id = $1 AND day >= $2
        ORDER BY day DESC
        LIMIT $3
    `

	rows, err := db.pool.Query(ctx, query, userID, since, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get water history: %w", err)
	}
	defer rows.Close()

	var history []models.DailyWaterStats
	for rows.Next() {
		var s models.DailyWaterStats
		if err := rows.Scan(&s.ID, &s.UserID, &s.Day, &s.WaterGoal, &s.WaterConsumed); err != nil {
			return nil, err
		}
		history = append(history, s)
	}

	return history, rows.Err()
}

func (db *PostgresDB) GetCalorieHistory(ctx context.Context, userID int64, since time.Time, limit int) ([]models.DailyCaloriesStats, error) {
	query := `
        SELECT id, user_id, day, calories_goal, calories_consumed, calories_burned
        FROM daily_calories_stats
        WHERE user_id = $1 AND day >= $2
        ORDER BY day DESC
        LIMIT $3
    `

	rows, err := db.pool.Query(ctx, query, userID, since, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get calorie history: %w", err)
	}
	defer rows.Close()

	var history []models.DailyCaloriesStats
	for rows.Next() {
		var s models.DailyCaloriesStats
		if err := rows.Scan(&s.ID, &s.UserID, &s.Day, &s.CaloriesGoal, &s.CaloriesConsumed, &s.CaloriesBurned); err != nil {
			return nil, err
		}
		history = append(history, s)
	}

	return history, rows.Err()
}
