package service

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"fitness-bot/internal/models"
	"fitness-bot/internal/workout"
	"fitness-bot/pkg/apperrors"
	"fitness-bot/pkg/logger"
)

// Мок репозитория на картах, по образцу остальных сервисных тестов
type mockRepository struct {
	users    map[int64]*models.User
	profiles map[int64]*models.HealthProfile
	water    map[string]*models.DailyWaterStats
	calories map[string]*models.DailyCaloriesStats
	nextID   int64
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		users:    make(map[int64]*models.User),
		profiles: make(map[int64]*models.HealthProfile),
		water:    make(map[string]*models.DailyWaterStats),
		calories: make(map[string]*models.DailyCaloriesStats),
	}
}

func dayKey(userID int64, day time.Time) string {
	return fmt.Sprintf("%d/%s", userID, day.Format("2006-01-02"))
}

func (m *mockRepository) GetUserByTelegramID(_ context.Context, telegramID int64) (*models.User, error) {
	user, ok := m.users[telegramID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return user, nil
}

func (m *mockRepository) AddUser(_ context.Context, telegramID int64) (*models.User, error) {
	if user, ok := m.users[telegramID]; ok {
		return user, nil
	}
	m.nextID++
	user := &models.User{ID: m.nextID, TelegramID: telegramID}
	m.users[telegramID] = user
	return user, nil
}

func (m *mockRepository) GetHealthProfile(_ context.Context, userID int64) (*models.HealthProfile, error) {
	profile, ok := m.profiles[userID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return profile, nil
}

func (m *mockRepository) UpsertHealthProfile(_ context.Context, profile *models.HealthProfile) error {
	copied := *profile
	m.profiles[profile.UserID] = &copied
	return nil
}

func (m *mockRepository) GetDailyWaterStats(_ context.Context, userID int64, day time.Time) (*models.DailyWaterStats, error) {
	stats, ok := m.water[dayKey(userID, day)]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return stats, nil
}

func (m *mockRepository) GetOrCreateDailyWaterStats(_ context.Context, userID int64, day time.Time, goal int) (*models.DailyWaterStats, error) {
	key := dayKey(userID, day)
	if stats, ok := m.water[key]; ok {
		return stats, nil
	}
	m.nextID++
	stats := &models.DailyWaterStats{ID: m.nextID, UserID: userID, Day: day, WaterGoal: goal}
	m.water[key] = stats
	return stats, nil
}

func (m *mockRepository) AddWaterConsumed(_ context.Context, userID int64, day time.Time, amount int) (*models.DailyWaterStats, error) {
	stats, ok := m.water[dayKey(userID, day)]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	stats.WaterConsumed += amount
	return stats, nil
}

func (m *mockRepository) AddWaterGoal(_ context.Context, userID int64, day time.Time, delta int) (*models.DailyWaterStats, error) {
	stats, ok := m.water[dayKey(userID, day)]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	stats.WaterGoal += delta
	return stats, nil
}

func (m *mockRepository) GetDailyCaloriesStats(_ context.Context, userID int64, day time.Time) (*models.DailyCaloriesStats, error) {
	stats, ok := m.calories[dayKey(userID, day)]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return stats, nil
}

func (m *mockRepository) GetOrCreateDailyCaloriesStats(_ context.Context, userID int64, day time.Time, goal int) (*models.DailyCaloriesStats, error) {
	key := dayKey(userID, day)
	if stats, ok := m.calories[key]; ok {
		return stats, nil
	}
	m.nextID++
	stats := &models.DailyCaloriesStats{ID: m.nextID, UserID: userID, Day: day, CaloriesGoal: goal}
	m.calories[key] = stats
	return stats, nil
}

func (m *mockRepository) AddCaloriesConsumed(_ context.Context, userID int64, day time.Time, amount int) (*models.DailyCaloriesStats, error) {
	stats, ok := m.calories[dayKey(userID, day)]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	stats.CaloriesConsumed += amount
	return stats, nil
}

func (m *mockRepository) AddCaloriesBurned(_ context.Context, userID int64, day time.Time, amount int) (*models.DailyCaloriesStats, error) {
	stats, ok := m.calories[dayKey(userID, day)]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	stats.CaloriesBurned += amount
	return stats, nil
}

// Истории возвращаются новыми днями вперёд, как делает запрос с ORDER BY day DESC.
func (m *mockRepository) GetWaterHistory(_ context.Context, userID int64, since time.Time, limit int) ([]models.DailyWaterStats, error) {
	var history []models.DailyWaterStats
	for _, s := range m.water {
		if s.UserID == userID && !s.Day.Before(since) {
			history = append(history, *s)
		}
	}
	sort.Slice(history, func(i, j int) bool { return history[i].Day.After(history[j].Day) })
	if len(history) > limit {
		history = history[:limit]
	}
	return history, nil
}

func (m *mockRepository) GetCalorieHistory(_ context.Context, userID int64, since time.Time, limit int) ([]models.DailyCaloriesStats, error) {
	var history []models.DailyCaloriesStats
	for _, s := range m.calories {
		if s.UserID == userID && !s.Day.Before(since) {
			history = append(history, *s)
		}
	}
	sort.Slice(history, func(i, j int) bool { return history[i].Day.After(history[j].Day) })
	if len(history) > limit {
		history = history[:limit]
	}
	return history, nil
}

// Мок погоды с управляемой температурой
type mockWeather struct {
	temp float64
	err  error
}

func (m *mockWeather) CurrentTemperature(_ context.Context, _ string) (float64, error) {
	return m.temp, m.err
}

// Мок поиска калорийности
type mockNutrition struct {
	caloriesPer100g float64
}

func (m *mockNutrition) CaloriesPer100g(_ context.Context, _ string) float64 {
	return m.caloriesPer100g
}

func newTestService(repo *mockRepository, weather *mockWeather, nutrition *mockNutrition) *Service {
	table := workout.NewTable(map[string]float64{"бег": 10, "йога": 3})
	svc := New(repo, table, nutrition, weather, logger.NewNop())
	svc.now = func() time.Time {
		return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	}
	return svc
}

func setupUserWithProfile(t *testing.T, repo *mockRepository, telegramID int64) {
	t.Helper()
	ctx := context.Background()

	user, err := repo.AddUser(ctx, telegramID)
	if err != nil {
		t.Fatalf("Failed to setup test user: %v", err)
	}

	err = repo.UpsertHealthProfile(ctx, &models.HealthProfile{
		UserID:      user.ID,
		Weight:      70,
		Height:      175,
		Age:         30,
		Activity:    45,
		City:        "Berlin",
		CalorieGoal: 2267,
	})
	if err != nil {
		t.Fatalf("Failed to setup test profile: %v", err)
	}
}

func TestCalculateDefaultCalorieGoal(t *testing.T) {
	svc := newTestService(newMockRepository(), &mockWeather{}, &mockNutrition{})

	bmr := 1648.75

	tests := []struct {
		name     string
		weight   float64
		height   float64
		age      int
		activity int
		want     int
	}{
		{"Sedentary", 70, 175, 30, 10, int(bmr * 1.2)},
		{"Light", 70, 175, 30, 45, int(bmr * 1.375)},
		{"Moderate", 70, 175, 30, 90, int(bmr * 1.55)},
		{"Active", 70, 175, 30, 150, int(bmr * 1.725)},
		{"VeryActive", 70, 175, 30, 200, int(bmr * 1.9)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.CalculateDefaultCalorieGoal(tt.weight, tt.height, tt.age, tt.activity)
			if got != tt.want {
				t.Errorf("Expected goal %d, got %d", tt.want, got)
			}
		})
	}

	// Контрольное значение: BMR(70, 175, 30) = 1648.75, множитель 1.375
	if got := svc.CalculateDefaultCalorieGoal(70, 175, 30, 45); got != 2267 {
		t.Errorf("Expected goal 2267, got %d", got)
	}
}

func TestGetOrCreateTodayWater(t *testing.T) {
	ctx := context.Background()

	t.Run("GoalFromProfile", func(t *testing.T) {
		repo := newMockRepository()
		setupUserWithProfile(t, repo, 100)
		svc := newTestService(repo, &mockWeather{temp: 20}, &mockNutrition{})

		stats, err := svc.GetOrCreateTodayWater(ctx, 100)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		// 30*70 + 45/30*500 = 2850
		if stats.WaterGoal != 2850 {
			t.Errorf("Expected water goal 2850, got %d", stats.WaterGoal)
		}
		if stats.WaterConsumed != 0 {
			t.Errorf("Expected consumed 0, got %d", stats.WaterConsumed)
		}
	})

	t.Run("HotWeatherBonus", func(t *testing.T) {
		repo := newMockRepository()
		setupUserWithProfile(t, repo, 100)
		svc := newTestService(repo, &mockWeather{temp: 30}, &mockNutrition{})

		stats, err := svc.GetOrCreateTodayWater(ctx, 100)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		if stats.WaterGoal != 3350 {
			t.Errorf("Expected water goal 3350, got %d", stats.WaterGoal)
		}
	})

	t.Run("WeatherFailureOmitsBonus", func(t *testing.T) {
		repo := newMockRepository()
		setupUserWithProfile(t, repo, 100)
		svc := newTestService(repo, &mockWeather{err: apperrors.ErrUnavailable}, &mockNutrition{})

		stats, err := svc.GetOrCreateTodayWater(ctx, 100)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		if stats.WaterGoal != 2850 {
			t.Errorf("Expected water goal 2850 without bonus, got %d", stats.WaterGoal)
		}
	})

	t.Run("NoUser", func(t *testing.T) {
		repo := newMockRepository()
		svc := newTestService(repo, &mockWeather{}, &mockNutrition{})

		_, err := svc.GetOrCreateTodayWater(ctx, 999)
		if !apperrors.IsNotFound(err) {
			t.Fatalf("Expected not found error, got %v", err)
		}
	})

	t.Run("NoProfile", func(t *testing.T) {
		repo := newMockRepository()
		_, _ = repo.AddUser(ctx, 100)
		svc := newTestService(repo, &mockWeather{}, &mockNutrition{})

		_, err := svc.GetOrCreateTodayWater(ctx, 100)
		if err != apperrors.ErrNoProfile {
			t.Fatalf("Expected ErrNoProfile, got %v", err)
		}
	})
}

func TestLogWater(t *testing.T) {
	ctx := context.Background()

	t.Run("Accumulates", func(t *testing.T) {
		repo := newMockRepository()
		setupUserWithProfile(t, repo, 100)
		svc := newTestService(repo, &mockWeather{temp: 20}, &mockNutrition{})

		if _, err := svc.LogWater(ctx, 100, 300); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		stats, err := svc.LogWater(ctx, 100, 200)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		if stats.WaterConsumed != 500 {
			t.Errorf("Expected consumed 500, got %d", stats.WaterConsumed)
		}
	})

	t.Run("FreshDayResets", func(t *testing.T) {
		repo := newMockRepository()
		setupUserWithProfile(t, repo, 100)
		svc := newTestService(repo, &mockWeather{temp: 20}, &mockNutrition{})

		if _, err := svc.LogWater(ctx, 100, 300); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		// Следующий день
		svc.now = func() time.Time {
			return time.Date(2025, 6, 16, 9, 0, 0, 0, time.UTC)
		}

		stats, err := svc.GetOrCreateTodayWater(ctx, 100)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if stats.WaterConsumed != 0 {
			t.Errorf("Expected fresh day consumed 0, got %d", stats.WaterConsumed)
		}
		if stats.WaterGoal != 2850 {
			t.Errorf("Expected fresh day goal 2850, got %d", stats.WaterGoal)
		}
	})

	t.Run("RejectsNonPositive", func(t *testing.T) {
		repo := newMockRepository()
		setupUserWithProfile(t, repo, 100)
		svc := newTestService(repo, &mockWeather{}, &mockNutrition{})

		if _, err := svc.LogWater(ctx, 100, 0); err != apperrors.ErrValidation {
			t.Fatalf("Expected ErrValidation, got %v", err)
		}
		if _, err := svc.LogWater(ctx, 100, -100); err != apperrors.ErrValidation {
			t.Fatalf("Expected ErrValidation, got %v", err)
		}
	})

	t.Run("NoProfileFails", func(t *testing.T) {
		repo := newMockRepository()
		_, _ = repo.AddUser(ctx, 100)
		svc := newTestService(repo, &mockWeather{}, &mockNutrition{})

		if _, err := svc.LogWater(ctx, 100, 300); err != apperrors.ErrNoProfile {
			t.Fatalf("Expected ErrNoProfile, got %v", err)
		}
	})
}

func TestLogFood(t *testing.T) {
	ctx := context.Background()

	t.Run("TruncatesPersistedReturnsExact", func(t *testing.T) {
		repo := newMockRepository()
		setupUserWithProfile(t, repo, 100)
		svc := newTestService(repo, &mockWeather{temp: 20}, &mockNutrition{caloriesPer100g: 52})

		// 52 ккал/100г * 150 г = 78 ккал
		total, err := svc.LogFood(ctx, 100, "apple", 150)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if total != 78 {
			t.Errorf("Expected total 78, got %f", total)
		}

		total, err = svc.LogFoodConsumption(ctx, 100, 52, 55)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		// 52*55/100 = 28.6, возвращается без усечения
		if total != 28.6 {
			t.Errorf("Expected total 28.6, got %f", total)
		}

		stats, err := svc.GetOrCreateTodayCalories(ctx, 100)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		// 78 + 28 (усечение при записи)
		if stats.CaloriesConsumed != 106 {
			t.Errorf("Expected consumed 106, got %d", stats.CaloriesConsumed)
		}
	})

	t.Run("UnknownFoodLogsZero", func(t *testing.T) {
		repo := newMockRepository()
		setupUserWithProfile(t, repo, 100)
		svc := newTestService(repo, &mockWeather{temp: 20}, &mockNutrition{caloriesPer100g: 0})

		total, err := svc.LogFood(ctx, 100, "нечто", 200)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if total != 0 {
			t.Errorf("Expected total 0, got %f", total)
		}

		stats, err := svc.GetOrCreateTodayCalories(ctx, 100)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if stats.CaloriesConsumed != 0 {
			t.Errorf("Expected consumed 0, got %d", stats.CaloriesConsumed)
		}
	})

	t.Run("RejectsNonPositiveGrams", func(t *testing.T) {
		repo := newMockRepository()
		setupUserWithProfile(t, repo, 100)
		svc := newTestService(repo, &mockWeather{}, &mockNutrition{caloriesPer100g: 52})

		if _, err := svc.LogFoodConsumption(ctx, 100, 52, 0); err != apperrors.ErrValidation {
			t.Fatalf("Expected ErrValidation, got %v", err)
		}
	})
}

func TestLogWorkout(t *testing.T) {
	ctx := context.Background()

	t.Run("KnownExercise", func(t *testing.T) {
		repo := newMockRepository()
		setupUserWithProfile(t, repo, 100)
		svc := newTestService(repo, &mockWeather{temp: 20}, &mockNutrition{})

		burned, waterDelta, err := svc.LogWorkout(ctx, 100, "бег", 45)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if burned != 450 {
			t.Errorf("Expected burned 450, got %f", burned)
		}
		if waterDelta != 200 {
			t.Errorf("Expected water delta 200, got %d", waterDelta)
		}

		water, err := svc.GetOrCreateTodayWater(ctx, 100)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if water.WaterGoal != 3050 {
			t.Errorf("Expected water goal 2850+200=3050, got %d", water.WaterGoal)
		}

		calories, err := svc.GetOrCreateTodayCalories(ctx, 100)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if calories.CaloriesBurned != 450 {
			t.Errorf("Expected burned 450, got %d", calories.CaloriesBurned)
		}
	})

	t.Run("UnknownExerciseStillRaisesWaterGoal", func(t *testing.T) {
		repo := newMockRepository()
		setupUserWithProfile(t, repo, 100)
		svc := newTestService(repo, &mockWeather{temp: 20}, &mockNutrition{})

		burned, waterDelta, err := svc.LogWorkout(ctx, 100, "кёрлинг", 65)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if burned != 0 {
			t.Errorf("Expected burned 0 for unknown exercise, got %f", burned)
		}
		// floor(65/30)*200 = 400
		if waterDelta != 400 {
			t.Errorf("Expected water delta 400, got %d", waterDelta)
		}

		water, err := svc.GetOrCreateTodayWater(ctx, 100)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if water.WaterGoal != 3250 {
			t.Errorf("Expected water goal 2850+400=3250, got %d", water.WaterGoal)
		}
	})

	t.Run("ShortWorkoutNoWaterDelta", func(t *testing.T) {
		repo := newMockRepository()
		setupUserWithProfile(t, repo, 100)
		svc := newTestService(repo, &mockWeather{temp: 20}, &mockNutrition{})

		_, waterDelta, err := svc.LogWorkout(ctx, 100, "йога", 20)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if waterDelta != 0 {
			t.Errorf("Expected water delta 0, got %d", waterDelta)
		}
	})
}

func TestUpdateHealthProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("ComputesDefaultGoal", func(t *testing.T) {
		repo := newMockRepository()
		_, _ = repo.AddUser(ctx, 100)
		svc := newTestService(repo, &mockWeather{}, &mockNutrition{})

		err := svc.UpdateHealthProfile(ctx, 100, 70, 175, 30, 45, "Berlin", 0)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		profile, err := svc.GetHealthProfile(ctx, 100)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if profile.CalorieGoal != 2267 {
			t.Errorf("Expected computed goal 2267, got %d", profile.CalorieGoal)
		}
	})

	t.Run("OverwritesWholesale", func(t *testing.T) {
		repo := newMockRepository()
		setupUserWithProfile(t, repo, 100)
		svc := newTestService(repo, &mockWeather{}, &mockNutrition{})

		err := svc.UpdateHealthProfile(ctx, 100, 80, 180, 25, 60, "Moscow", 3000)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		profile, err := svc.GetHealthProfile(ctx, 100)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if profile.Weight != 80 || profile.City != "Moscow" || profile.CalorieGoal != 3000 {
			t.Errorf("Expected overwritten profile, got %+v", profile)
		}
	})
}

func TestWeeklyHistory(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T) (*mockRepository, *Service) {
		t.Helper()
		repo := newMockRepository()
		setupUserWithProfile(t, repo, 100)
		svc := newTestService(repo, &mockWeather{temp: 20}, &mockNutrition{})

		user, err := repo.GetUserByTelegramID(ctx, 100)
		if err != nil {
			t.Fatalf("Failed to fetch test user: %v", err)
		}

		// Девять дней подряд: сегодня (15.06) и восемь предыдущих
		for i := 0; i < 9; i++ {
			day := time.Date(2025, 6, 15-i, 0, 0, 0, 0, time.UTC)
			if _, err := repo.GetOrCreateDailyWaterStats(ctx, user.ID, day, 2000+i); err != nil {
				t.Fatalf("Failed to seed water day %d: %v", i, err)
			}
			if _, err := repo.GetOrCreateDailyCaloriesStats(ctx, user.ID, day, 2267); err != nil {
				t.Fatalf("Failed to seed calorie day %d: %v", i, err)
			}
		}
		return repo, svc
	}

	t.Run("Water", func(t *testing.T) {
		_, svc := seed(t)

		history, err := svc.WeeklyWaterHistory(ctx, 100)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		if len(history) != 7 {
			t.Fatalf("Expected 7 rows, got %d", len(history))
		}

		weekAgo := time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC)
		for i, s := range history {
			if s.Day.Before(weekAgo) {
				t.Errorf("Row %d day %s is older than a week", i, s.Day.Format("2006-01-02"))
			}
			if i > 0 && !history[i-1].Day.After(s.Day) {
				t.Errorf("Expected newest day first, got %s before %s",
					history[i-1].Day.Format("2006-01-02"), s.Day.Format("2006-01-02"))
			}
		}
		if got := history[0].Day; !got.Equal(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("Expected today first, got %s", got.Format("2006-01-02"))
		}
		if got := history[6].Day; !got.Equal(time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("Expected 09.06 as the oldest of seven, got %s", got.Format("2006-01-02"))
		}
	})

	t.Run("Calories", func(t *testing.T) {
		_, svc := seed(t)

		history, err := svc.WeeklyCalorieHistory(ctx, 100)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		if len(history) != 7 {
			t.Fatalf("Expected 7 rows, got %d", len(history))
		}
		if got := history[0].Day; !got.Equal(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("Expected today first, got %s", got.Format("2006-01-02"))
		}
	})

	t.Run("NoUser", func(t *testing.T) {
		repo := newMockRepository()
		svc := newTestService(repo, &mockWeather{}, &mockNutrition{})

		if _, err := svc.WeeklyWaterHistory(ctx, 999); !apperrors.IsNotFound(err) {
			t.Fatalf("Expected not found error, got %v", err)
		}
	})
}

func TestGetDailyProgress(t *testing.T) {
	ctx := context.Background()

	repo := newMockRepository()
	setupUserWithProfile(t, repo, 100)
	svc := newTestService(repo, &mockWeather{temp: 20}, &mockNutrition{caloriesPer100g: 100})

	if _, err := svc.LogWater(ctx, 100, 500); err != nil {
		t.Fatalf("Failed to setup test: %v", err)
	}
	if _, err := svc.LogFood(ctx, 100, "rice", 200); err != nil {
		t.Fatalf("Failed to setup test: %v", err)
	}

	progress, err := svc.GetDailyProgress(ctx, 100)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if progress.WaterConsumed != 500 {
		t.Errorf("Expected water consumed 500, got %d", progress.WaterConsumed)
	}
	if progress.CaloriesConsumed != 200 {
		t.Errorf("Expected calories consumed 200, got %d", progress.CaloriesConsumed)
	}
	if progress.CaloriesGoal != 2267 {
		t.Errorf("Expected calories goal 2267, got %d", progress.CaloriesGoal)
	}
}
