// internal/bot/render.go
package bot

import (
	"fmt"
	"sort"
	"strings"

	"fitness-bot/internal/models"
)

const gaugeWidth = 10

// gauge renders a ▰▱ progress bar for consumed vs goal.
func gauge(consumed, goal int) string {
	filled := 0
	if goal > 0 {
		filled = consumed * gaugeWidth / goal
		if filled > gaugeWidth {
			filled = gaugeWidth
		}
	}
	return strings.Repeat("▰", filled) + strings.Repeat("▱", gaugeWidth-filled)
}

func renderWaterHistory(history []models.DailyWaterStats) string {
	if len(history) == 0 {
		return historyEmpty
	}

	// Oldest day first
	sorted := make([]models.DailyWaterStats, len(history))
	copy(sorted, history)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Day.Before(sorted[j].Day) })

	var sb strings.Builder
	sb.WriteString("💧 Вода за неделю:\n\n")
	for _, s := range sorted {
		sb.WriteString(fmt.Sprintf("%s  %s  %d из %d мл\n",
			s.Day.Format("02.01"), gauge(s.WaterConsumed, s.WaterGoal), s.WaterConsumed, s.WaterGoal))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func renderCalorieHistory(history []models.DailyCaloriesStats) string {
	if len(history) == 0 {
		return historyEmpty
	}

	sorted := make([]models.DailyCaloriesStats, len(history))
	copy(sorted, history)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Day.Before(sorted[j].Day) })

	var sb strings.Builder
	sb.WriteString("🍽 Калории за неделю:\n\n")
	for _, s := range sorted {
		sb.WriteString(fmt.Sprintf("%s  %s  %d из %d ккал, сожжено %d\n",
			s.Day.Format("02.01"), gauge(s.CaloriesConsumed, s.CaloriesGoal),
			s.CaloriesConsumed, s.CaloriesGoal, s.CaloriesBurned))
	}
	return strings.TrimRight(sb.String(), "\n")
}
