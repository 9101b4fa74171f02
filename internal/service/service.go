// internal/service/service.go
package service

import (
	"context"
	"time"

	"fitness-bot/internal/models"
	"fitness-bot/internal/workout"
	"fitness-bot/pkg/apperrors"
	"fitness-bot/pkg/logger"
)

// Repository is the persistence surface the service needs. *db.PostgresDB
// satisfies it; tests plug in a map-backed fake.
type Repository interface {
	GetUserByTelegramID(ctx context.Context, telegramID int64) (*models.User, error)
	AddUser(ctx context.Context, telegramID int64) (*models.User, error)
	GetHealthProfile(ctx context.Context, userID int64) (*models.HealthProfile, error)
	UpsertHealthProfile(ctx context.Context, profile *models.HealthProfile) error
	GetDailyWaterStats(ctx context.Context, userID int64, day time.Time) (*models.DailyWaterStats, error)
	GetOrCreateDailyWaterStats(ctx context.Context, userID int64, day time.Time, goal int) (*models.DailyWaterStats, error)
	AddWaterConsumed(ctx context.Context, userID int64, day time.Time, amount int) (*models.DailyWaterStats, error)
	AddWaterGoal(ctx context.Context, userID int64, day time.Time, delta int) (*models.DailyWaterStats, error)
	GetDailyCaloriesStats(ctx context.Context, userID int64, day time.Time) (*models.DailyCaloriesStats, error)
	GetOrCreateDailyCaloriesStats(ctx context.Context, userID int64, day time.Time, goal int) (*models.DailyCaloriesStats, error)
	AddCaloriesConsumed(ctx context.Context, userID int64, day time.Time, amount int) (*models.DailyCaloriesStats, error)
	AddCaloriesBurned(ctx context.Context, userID int64, day time.Time, amount int) (*models.DailyCaloriesStats, error)
	GetWaterHistory(ctx context.Context, userID int64, since time.Time, limit int) ([]models.DailyWaterStats, error)
	GetCalorieHistory(ctx context.Context, userID int64, since time.Time, limit int) ([]models.DailyCaloriesStats, error)
}

// NutritionLookup resolves calories per 100g, 0 when unknown.
type NutritionLookup interface {
	CaloriesPer100g(ctx context.Context, foodName string) float64
}

// WeatherLookup resolves the current temperature of a city.
type WeatherLookup interface {
	CurrentTemperature(ctx context.Context, city string) (float64, error)
}

const (
	hotWeatherThreshold = 25.0
	hotWeatherBonus     = 500
	waterPerWorkoutStep = 200
	workoutStepMinutes  = 30
)

// Service реализует учёт дневной статистики воды и калорий.
type Service struct {
	repo      Repository
	workouts  *workout.Table
	nutrition NutritionLookup
	weather   WeatherLookup
	logger    *logger.Logger
	now       func() time.Time
}

func New(repo Repository, workouts *workout.Table, nutrition NutritionLookup, weather WeatherLookup, logger *logger.Logger) *Service {
	return &Service{
		repo:      repo,
		workouts:  workouts,
		nutrition: nutrition,
		weather:   weather,
		logger:    logger,
		now:       time.Now,
	}
}

// today truncates the clock to the calendar day.
func (s *Service) today() time.Time {
	y, m, d := s.now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// CreateUser registers the chat identity if it is not known yet.
func (s *Service) CreateUser(ctx context.Context, telegramID int64) error {
	_, err := s.repo.AddUser(ctx, telegramID)
	return err
}

func (s *Service) getUser(ctx context.Context, telegramID int64) (*models.User, error) {
	user, err := s.repo.GetUserByTelegramID(ctx, telegramID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *Service) getProfile(ctx context.Context, userID int64) (*models.HealthProfile, error) {
	profile, err := s.repo.GetHealthProfile(ctx, userID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.ErrNoProfile
		}
		return nil, err
	}
	return profile, nil
}

// GetHealthProfile returns the user's profile.
func (s *Service) GetHealthProfile(ctx context.Context, telegramID int64) (*models.HealthProfile, error) {
	user, err := s.getUser(ctx, telegramID)
	if err != nil {
		return nil, err
	}
	return s.getProfile(ctx, user.ID)
}

// UpdateHealthProfile overwrites the profile wholesale. A zero calorieGoal
// means "use the BMR-derived default".
func (s *Service) UpdateHealthProfile(ctx context.Context, telegramID int64, weight, height float64, age, activity int, city string, calorieGoal int) error {
	user, err := s.getUser(ctx, telegramID)
	if err != nil {
		return err
	}

	if calorieGoal == 0 {
		calorieGoal = s.CalculateDefaultCalorieGoal(weight, height, age, activity)
	}

	return s.repo.UpsertHealthProfile(ctx, &models.HealthProfile{
		UserID:      user.ID,
		Weight:      weight,
		Height:      height,
		Age:         age,
		Activity:    activity,
		City:        city,
		CalorieGoal: calorieGoal,
	})
}

// CalculateDefaultCalorieGoal derives the daily goal from the Mifflin-St Jeor
// BMR and a banded activity multiplier.
func (s *Service) CalculateDefaultCalorieGoal(weight, height float64, age, activity int) int {
	bmr := 10*weight + 6.25*height - 5*float64(age) + 5

	var multiplier float64
	switch {
	case activity < 30:
		multiplier = 1.2
	case activity < 60:
		multiplier = 1.375
	case activity < 120:
		multiplier = 1.55
	case activity < 180:
		multiplier = 1.725
	default:
		multiplier = 1.9
	}

	return int(bmr * multiplier)
}

// defaultWaterGoal computes the daily water goal in ml. The hot-weather bonus
// is skipped silently when the weather lookup fails.
func (s *Service) defaultWaterGoal(ctx context.Context, profile *models.HealthProfile) int {
	goal := 30*profile.Weight + float64(profile.Activity)/workoutStepMinutes*500

	temp, err := s.weather.CurrentTemperature(ctx, profile.City)
	if err != nil {
		s.logger.Warnw("weather lookup failed, skipping hot weather bonus", "city", profile.City, "error", err)
	} else if temp > hotWeatherThreshold {
		goal += hotWeatherBonus
	}

	return int(goal)
}

// GetOrCreateTodayWater returns today's water row, creating it with the
// profile-derived goal when the day has no row yet.
func (s *Service) GetOrCreateTodayWater(ctx context.Context, telegramID int64) (*models.DailyWaterStats, error) {
	user, err := s.getUser(ctx, telegramID)
	if err != nil {
		return nil, err
	}
	return s.todayWater(ctx, user.ID)
}

func (s *Service) todayWater(ctx context.Context, userID int64) (*models.DailyWaterStats, error) {
	day := s.today()

	stats, err := s.repo.GetDailyWaterStats(ctx, userID, day)
	if err == nil {
		return stats, nil
	}
	if !apperrors.IsNotFound(err) {
		return nil, err
	}

	profile, err := s.getProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	// The insert is a single atomic upsert, a concurrent event for the same
	// user and day gets the same row back.
	return s.repo.GetOrCreateDailyWaterStats(ctx, userID, day, s.defaultWaterGoal(ctx, profile))
}

// GetOrCreateTodayCalories returns today's calorie row, creating it with the
// profile's calorie goal when absent.
func (s *Service) GetOrCreateTodayCalories(ctx context.Context, telegramID int64) (*models.DailyCaloriesStats, error) {
	user, err := s.getUser(ctx, telegramID)
	if err != nil {
		return nil, err
	}
	return s.todayCalories(ctx, user.ID)
}

func (s *Service) todayCalories(ctx context.Context, userID int64) (*models.DailyCaloriesStats, error) {
	day := s.today()

	stats, err := s.repo.GetDailyCaloriesStats(ctx, userID, day)
	if err == nil {
		return stats, nil
	}
	if !apperrors.IsNotFound(err) {
		return nil, err
	}

	profile, err := s.getProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.repo.GetOrCreateDailyCaloriesStats(ctx, userID, day, profile.CalorieGoal)
}

// GetDailyProgress combines today's water and calorie rows.
func (s *Service) GetDailyProgress(ctx context.Context, telegramID int64) (*models.DailyProgress, error) {
	user, err := s.getUser(ctx, telegramID)
	if err != nil {
		return nil, err
	}

	water, err := s.todayWater(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	calories, err := s.todayCalories(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &models.DailyProgress{
		Day:              water.Day,
		WaterGoal:        water.WaterGoal,
		WaterConsumed:    water.WaterConsumed,
		CaloriesGoal:     calories.CaloriesGoal,
		CaloriesConsumed: calories.CaloriesConsumed,
		CaloriesBurned:   calories.CaloriesBurned,
	}, nil
}

// LogWater adds a positive amount of ml to today's consumption.
func (s *Service) LogWater(ctx context.Context, telegramID int64, amount int) (*models.DailyWaterStats, error) {
	if amount <= 0 {
		return nil, apperrors.ErrValidation
	}

	user, err := s.getUser(ctx, telegramID)
	if err != nil {
		return nil, err
	}

	if _, err := s.todayWater(ctx, user.ID); err != nil {
		return nil, err
	}

	return s.repo.AddWaterConsumed(ctx, user.ID, s.today(), amount)
}

// FoodCaloriesPer100g resolves the calories per 100g of the named food,
// 0 when every lookup fails.
func (s *Service) FoodCaloriesPer100g(ctx context.Context, foodName string) float64 {
	return s.nutrition.CaloriesPer100g(ctx, foodName)
}

// LogFood resolves the food and records the consumed calories in one step.
// The returned total is untruncated, truncation happens only at persist time.
func (s *Service) LogFood(ctx context.Context, telegramID int64, foodName string, grams float64) (float64, error) {
	return s.LogFoodConsumption(ctx, telegramID, s.FoodCaloriesPer100g(ctx, foodName), grams)
}

// LogFoodConsumption records the consumed calories for an already resolved food.
func (s *Service) LogFoodConsumption(ctx context.Context, telegramID int64, caloriesPer100g, grams float64) (float64, error) {
	if grams <= 0 {
		return 0, apperrors.ErrValidation
	}

	user, err := s.getUser(ctx, telegramID)
	if err != nil {
		return 0, err
	}

	if _, err := s.todayCalories(ctx, user.ID); err != nil {
		return 0, err
	}

	total := caloriesPer100g * grams / 100
	if _, err := s.repo.AddCaloriesConsumed(ctx, user.ID, s.today(), int(total)); err != nil {
		return 0, err
	}

	return total, nil
}

// LogWorkout records burned calories and raises today's water goal by
// 200 ml per full half hour of exercise. Unknown exercises burn 0 but the
// water goal still rises.
func (s *Service) LogWorkout(ctx context.Context, telegramID int64, exerciseName string, minutes float64) (float64, int, error) {
	if minutes <= 0 {
		return 0, 0, apperrors.ErrValidation
	}

	burned := s.workouts.Burned(exerciseName, minutes)
	waterDelta := int(minutes/workoutStepMinutes) * waterPerWorkoutStep

	user, err := s.getUser(ctx, telegramID)
	if err != nil {
		return 0, 0, err
	}

	if _, err := s.todayWater(ctx, user.ID); err != nil {
		return 0, 0, err
	}
	if _, err := s.repo.AddWaterGoal(ctx, user.ID, s.today(), waterDelta); err != nil {
		return 0, 0, err
	}

	if _, err := s.todayCalories(ctx, user.ID); err != nil {
		return 0, 0, err
	}
	if _, err := s.repo.AddCaloriesBurned(ctx, user.ID, s.today(), int(burned)); err != nil {
		return 0, 0, err
	}

	return burned, waterDelta, nil
}

// Exercises returns the known exercise names.
func (s *Service) Exercises() []string {
	return s.workouts.Names()
}

// WeeklyWaterHistory returns up to 7 most recent day rows of the last week,
// newest first.
func (s *Service) WeeklyWaterHistory(ctx context.Context, telegramID int64) ([]models.DailyWaterStats, error) {
	user, err := s.getUser(ctx, telegramID)
	if err != nil {
		return nil, err
	}
	since := s.today().AddDate(0, 0, -7)
	return s.repo.GetWaterHistory(ctx, user.ID, since, 7)
}

// WeeklyCalorieHistory returns up to 7 most recent day rows of the last week,
// newest first.
func (s *Service) WeeklyCalorieHistory(ctx context.Context, telegramID int64) ([]models.DailyCaloriesStats, error) {
	user, err := s.getUser(ctx, telegramID)
	if err != nil {
		return nil, err
	}
	since := s.today().AddDate(0, 0, -7)
	return s.repo.GetCalorieHistory(ctx, user.ID, since, 7)
}
