// internal/bot/keyboards.go
package bot

import (
	"fitness-bot/internal/dialog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func navKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Назад", dialog.ActionBack),
			tgbotapi.NewInlineKeyboardButtonData("Начать заново", dialog.ActionRestart),
		),
	)
}

func goalKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Использовать рассчитанную", dialog.ActionUseDefault),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Назад", dialog.ActionBack),
			tgbotapi.NewInlineKeyboardButtonData("Начать заново", dialog.ActionRestart),
		),
	)
}

func confirmKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Всё верно!", dialog.ActionConfirm),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Назад", dialog.ActionBack),
			tgbotapi.NewInlineKeyboardButtonData("Начать заново", dialog.ActionRestart),
		),
	)
}

func cancelFoodKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Отмена", cancelFoodAction),
		),
	)
}

// keyboardFor maps a dialog keyboard kind to the telegram markup.
func keyboardFor(kind dialog.Keyboard) (tgbotapi.InlineKeyboardMarkup, bool) {
	switch kind {
	case dialog.KeyboardNav:
		return navKeyboard(), true
	case dialog.KeyboardGoal:
		return goalKeyboard(), true
	case dialog.KeyboardConfirm:
		return confirmKeyboard(), true
	default:
		return tgbotapi.InlineKeyboardMarkup{}, false
	}
}
