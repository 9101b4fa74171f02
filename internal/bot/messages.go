// internal/bot/messages.go
package bot

import (
	"fmt"
	"strings"

	"fitness-bot/internal/models"
)

const (
	welcomeMessage = "👋 Приветствую! Я помогу вам следить за водой, калориями и тренировками.\n\n" +
		"Начните с команды /set_profile, чтобы заполнить профиль здоровья.\n" +
		"Список команд: /help"

	helpMessage = "Доступные команды:\n" +
		"/start — регистрация\n" +
		"/set_profile — заполнить профиль здоровья\n" +
		"/profile — показать профиль\n" +
		"/progress — прогресс за сегодня\n" +
		"/log_water <мл> — записать выпитую воду\n" +
		"/log_food <продукт> — записать приём пищи\n" +
		"/log_workout <упражнение> <минуты> — записать тренировку\n" +
		"/workouts — список упражнений\n" +
		"/weekly_water — вода за неделю\n" +
		"/weekly_calories — калории за неделю\n" +
		"/help — эта справка"

	unknownCommand = "Неизвестная команда. Используйте /help для списка команд."
	useStartFirst  = "Пожалуйста, используйте /start для начала работы с ботом."

	notRegistered   = "Вы ещё не зарегистрированы. Используйте /start."
	invalidInput    = "Некорректный ввод. Проверьте формат команды, /help — справка."
	profileNotFound = "Профиль здоровья не заполнен. Используйте /set_profile."
	genericError    = "Извините, произошла ошибка. Пожалуйста, попробуйте позже."

	profileSaved     = "✅ Профиль сохранён!"
	profileSaveError = "Не удалось сохранить профиль. Пожалуйста, попробуйте позже."

	logWaterUsage   = "Использование: /log_water <количество в мл>"
	logWaterInvalid = "Количество воды должно быть положительным целым числом."

	logFoodUsage     = "Использование: /log_food <название продукта>"
	logFoodInvalid   = "Количество граммов должно быть положительным целым числом."
	logFoodCancelled = "Запись приёма пищи отменена."

	logWorkoutUsage   = "Использование: /log_workout <упражнение> <минуты>"
	logWorkoutInvalid = "Длительность должна быть положительным целым числом минут."

	historyEmpty = "Записей за последнюю неделю пока нет."
)

func formatWaterLogged(amount int, stats *models.DailyWaterStats) string {
	return fmt.Sprintf("💧 Записано %d мл воды.\nСегодня: %d из %d мл.",
		amount, stats.WaterConsumed, stats.WaterGoal)
}

func formatFoodPrompt(foodName string, caloriesPer100g float64) string {
	return fmt.Sprintf("🍽 %s — %.1f ккал на 100 г.\nСколько граммов вы съели?",
		foodName, caloriesPer100g)
}

func formatFoodLogged(totalCalories float64) string {
	return fmt.Sprintf("🍽 Записано %.1f ккал.", totalCalories)
}

func formatWorkoutLogged(burned float64, waterDelta int) string {
	return fmt.Sprintf("🏋️ Сожжено %.1f ккал.\nЦель по воде увеличена на %d мл.",
		burned, waterDelta)
}

func formatHealthProfile(p *models.HealthProfile) string {
	return fmt.Sprintf("Ваш профиль:\n\n"+
		"Вес: %.1f кг\n"+
		"Рост: %.1f см\n"+
		"Возраст: %d\n"+
		"Активность: %d мин/день\n"+
		"Город: %s\n"+
		"Цель по калориям: %d ккал",
		p.Weight, p.Height, p.Age, p.Activity, p.City, p.CalorieGoal)
}

func formatDailyProgress(p *models.DailyProgress) string {
	return fmt.Sprintf("Прогресс за %s:\n\n"+
		"💧 Вода: %d из %d мл\n"+
		"🍽 Калории: %d из %d ккал\n"+
		"🏋️ Сожжено: %d ккал",
		p.Day.Format("02.01.2006"),
		p.WaterConsumed, p.WaterGoal,
		p.CaloriesConsumed, p.CaloriesGoal,
		p.CaloriesBurned)
}

func formatExercises(names []string) string {
	var sb strings.Builder
	sb.WriteString("Доступные упражнения:\n")
	for _, name := range names {
		sb.WriteString("• ")
		sb.WriteString(name)
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}
