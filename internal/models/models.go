// internal/models/models.go
package models

import (
	"time"
)

type User struct {
	ID         int64 `json:"id"`
	TelegramID int64 `json:"telegram_id"`
}

type HealthProfile struct {
	ID          int64   `json:"id"`
	UserID      int64   `json:"user_id"`
	Weight      float64 `json:"weight"`
	Height      float64 `json:"height"`
	Age         int     `json:"age"`
	Activity    int     `json:"activity"`
	City        string  `json:"city"`
	CalorieGoal int     `json:"calorie_goal"`
}

type DailyWaterStats struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"user_id"`
	Day           time.Time `json:"day"`
	WaterGoal     int       `json:"water_goal"`
	WaterConsumed int       `json:"water_consumed"`
}

type DailyCaloriesStats struct {
	ID               int64     `json:"id"`
	UserID           int64     `json:"user_id"`
	Day              time.Time `json:"day"`
	CaloriesGoal     int       `json:"calories_goal"`
	CaloriesConsumed int       `json:"calories_consumed"`
	CaloriesBurned   int       `json:"calories_burned"`
}

// DailyProgress объединяет сегодняшние строки воды и калорий для команды /progress.
type DailyProgress struct {
	Day              time.Time `json:"day"`
	WaterGoal        int       `json:"water_goal"`
	WaterConsumed    int       `json:"water_consumed"`
	CaloriesGoal     int       `json:"calories_goal"`
	CaloriesConsumed int       `json:"calories_consumed"`
	CaloriesBurned   int       `json:"calories_burned"`
}
