// internal/dialog/messages.go
package dialog

const (
	weightPrompt   = "Введите ваш вес в килограммах (например, 70.5):"
	heightPrompt   = "Введите ваш рост в сантиметрах (например, 175):"
	agePrompt      = "Введите ваш возраст:"
	activityPrompt = "Сколько минут в день вы активны? (например, 45):"
	cityPrompt     = "В каком городе вы находитесь?"

	calorieGoalPrompt = "Введите вашу цель по калориям (ккал в день) или используйте рассчитанную: %d ккал."

	weightAccepted   = "Вес: %.1f кг."
	heightAccepted   = "Рост: %.1f см."
	ageAccepted      = "Возраст: %d."
	activityAccepted = "Активность: %d мин/день."

	weightInvalid      = "Пожалуйста, введите корректный вес (от 0 до 300 кг)."
	heightInvalid      = "Пожалуйста, введите корректный рост (от 0 до 250 см)."
	ageInvalid         = "Пожалуйста, введите корректный возраст (от 1 до 120)."
	activityInvalid    = "Пожалуйста, введите корректную активность (от 0 до 1440 минут)."
	cityInvalid        = "Название города должно быть от 2 до 50 символов."
	calorieGoalInvalid = "Цель по калориям должна быть от 500 до 10000 ккал."

	invalidNumber  = "Пожалуйста, введите число."
	useButtons     = "Пожалуйста, используйте кнопки ниже."
	restartMessage = "Начинаем заново. Введите ваш вес в килограммах:"

	confirmationTemplate = "Проверьте введённые данные:\n\n" +
		"Вес: %.1f кг\n" +
		"Рост: %.1f см\n" +
		"Возраст: %d\n" +
		"Активность: %d мин/день\n" +
		"Город: %s\n" +
		"Цель по калориям: %d ккал\n\n" +
		"Всё верно?"
)
