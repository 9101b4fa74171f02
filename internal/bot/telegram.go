package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"fitness-bot/internal/dialog"
	"fitness-bot/internal/metrics"
	"fitness-bot/internal/service"
	"fitness-bot/pkg/apperrors"
	"fitness-bot/pkg/logger"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const commandTimeout = 30 * time.Second

const cancelFoodAction = "cancel_log_food"

// pendingFood держит разрешённый продукт между /log_food и вводом граммов.
type pendingFood struct {
	Name            string
	CaloriesPer100g float64
}

type TelegramBot struct {
	bot        *tgbotapi.BotAPI
	svc        *service.Service
	logger     *logger.Logger
	forms      map[int64]*dialog.Form
	food       map[int64]*pendingFood
	stateMutex sync.RWMutex
}

func NewTelegramBot(token string, svc *service.Service, logger *logger.Logger) (*TelegramBot, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Telegram bot: %w", err)
	}

	logger.Infow("Authorized on Telegram", "username", bot.Self.UserName)

	return &TelegramBot{
		bot:    bot,
		svc:    svc,
		logger: logger,
		forms:  make(map[int64]*dialog.Form),
		food:   make(map[int64]*pendingFood),
	}, nil
}

// Start begins receiving updates from Telegram via polling
func (t *TelegramBot) Start(ctx context.Context) error {
	// Remove any existing webhook to ensure we can use polling
	_, err := t.bot.Request(tgbotapi.DeleteWebhookConfig{
		DropPendingUpdates: true,
	})
	if err != nil {
		return fmt.Errorf("failed to delete webhook: %w", err)
	}

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60

	updates := t.bot.GetUpdatesChan(updateConfig)

	t.logger.Info("Started receiving Telegram updates")

	go t.handleUpdates(ctx, updates)

	return nil
}

// handleUpdates processes incoming updates from Telegram
func (t *TelegramBot) handleUpdates(ctx context.Context, updates tgbotapi.UpdatesChannel) {
	for update := range updates {
		go func(update tgbotapi.Update) {
			defer func() {
				if r := recover(); r != nil {
					t.logger.Errorw("Recovered from panic while processing update", "error", r)
				}
			}()

			ctx, cancel := context.WithTimeout(ctx, commandTimeout)
			defer cancel()

			if update.Message != nil {
				if update.Message.IsCommand() {
					t.handleCommand(ctx, update.Message)
				} else {
					t.handleMessage(ctx, update.Message)
				}
			} else if update.CallbackQuery != nil {
				t.handleCallbackQuery(ctx, update.CallbackQuery)
			}
		}(update)
	}
}

// Stop gracefully shuts down the bot
func (t *TelegramBot) Stop(ctx context.Context) error {
	t.bot.StopReceivingUpdates()

	// Allow time for handlers to complete
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(500 * time.Millisecond):
		return nil
	}
}

// handleCommand processes bot commands
func (t *TelegramBot) handleCommand(ctx context.Context, message *tgbotapi.Message) {
	command := message.Command()
	chatID := message.Chat.ID
	userID := message.From.ID

	t.logger.Infow("Handling command", "command", command, "user_id", userID)

	started := time.Now()
	status := "ok"
	defer func() {
		metrics.CommandsTotal.WithLabelValues(command, status).Inc()
		metrics.CommandDuration.WithLabelValues(command).Observe(time.Since(started).Seconds())
	}()

	switch command {
	case "start":
		if err := t.svc.CreateUser(ctx, userID); err != nil {
			t.logger.Errorw("Failed to create user", "error", err, "user_id", userID)
			status = "error"
			t.reply(chatID, genericError)
			return
		}
		t.reply(chatID, welcomeMessage)

	case "set_profile":
		form := dialog.NewForm(t.svc.CalculateDefaultCalorieGoal)
		t.stateMutex.Lock()
		t.forms[userID] = form
		delete(t.food, userID)
		t.stateMutex.Unlock()

		t.sendReply(chatID, form.Prompt())

	case "profile":
		profile, err := t.svc.GetHealthProfile(ctx, userID)
		if err != nil {
			status = "error"
			t.reply(chatID, t.userMessage(err))
			return
		}
		t.reply(chatID, formatHealthProfile(profile))

	case "progress":
		progress, err := t.svc.GetDailyProgress(ctx, userID)
		if err != nil {
			status = "error"
			t.reply(chatID, t.userMessage(err))
			return
		}
		t.reply(chatID, formatDailyProgress(progress))

	case "log_water":
		args := strings.Fields(message.CommandArguments())
		if len(args) != 1 {
			status = "error"
			t.reply(chatID, logWaterUsage)
			return
		}
		amount, err := strconv.Atoi(args[0])
		if err != nil || amount <= 0 {
			status = "error"
			t.reply(chatID, logWaterInvalid)
			return
		}
		stats, err := t.svc.LogWater(ctx, userID, amount)
		if err != nil {
			status = "error"
			t.reply(chatID, t.userMessage(err))
			return
		}
		t.reply(chatID, formatWaterLogged(amount, stats))

	case "log_food":
		foodName := strings.TrimSpace(message.CommandArguments())
		if foodName == "" {
			status = "error"
			t.reply(chatID, logFoodUsage)
			return
		}

		caloriesPer100g := t.svc.FoodCaloriesPer100g(ctx, foodName)

		t.stateMutex.Lock()
		t.food[userID] = &pendingFood{Name: foodName, CaloriesPer100g: caloriesPer100g}
		delete(t.forms, userID)
		t.stateMutex.Unlock()

		msg := tgbotapi.NewMessage(chatID, formatFoodPrompt(foodName, caloriesPer100g))
		msg.ReplyMarkup = cancelFoodKeyboard()
		t.send(msg)

	case "log_workout":
		args := strings.Fields(message.CommandArguments())
		if len(args) != 2 {
			status = "error"
			t.reply(chatID, logWorkoutUsage)
			return
		}
		minutes, err := strconv.Atoi(args[1])
		if err != nil || minutes <= 0 {
			status = "error"
			t.reply(chatID, logWorkoutInvalid)
			return
		}
		burned, waterDelta, err := t.svc.LogWorkout(ctx, userID, args[0], float64(minutes))
		if err != nil {
			status = "error"
			t.reply(chatID, t.userMessage(err))
			return
		}
		t.reply(chatID, formatWorkoutLogged(burned, waterDelta))

	case "workouts":
		t.reply(chatID, formatExercises(t.svc.Exercises()))

	case "weekly_water":
		history, err := t.svc.WeeklyWaterHistory(ctx, userID)
		if err != nil {
			status = "error"
			t.reply(chatID, t.userMessage(err))
			return
		}
		t.reply(chatID, renderWaterHistory(history))

	case "weekly_calories":
		history, err := t.svc.WeeklyCalorieHistory(ctx, userID)
		if err != nil {
			status = "error"
			t.reply(chatID, t.userMessage(err))
			return
		}
		t.reply(chatID, renderCalorieHistory(history))

	case "help":
		t.reply(chatID, helpMessage)

	default:
		status = "error"
		t.reply(chatID, unknownCommand)
	}
}

// handleMessage processes free-text messages based on per-user state
func (t *TelegramBot) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	chatID := message.Chat.ID
	userID := message.From.ID
	text := message.Text

	t.stateMutex.RLock()
	pending := t.food[userID]
	form := t.forms[userID]
	t.stateMutex.RUnlock()

	if pending != nil {
		t.processFoodAmount(ctx, chatID, userID, pending, text)
		return
	}

	if form != nil {
		t.stateMutex.Lock()
		reply := form.Input(text)
		t.stateMutex.Unlock()
		t.sendReply(chatID, reply)
		return
	}

	t.reply(chatID, useStartFirst)
}

func (t *TelegramBot) processFoodAmount(ctx context.Context, chatID, userID int64, pending *pendingFood, text string) {
	grams, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || grams <= 0 {
		t.reply(chatID, logFoodInvalid)
		return
	}

	total, err := t.svc.LogFoodConsumption(ctx, userID, pending.CaloriesPer100g, float64(grams))

	t.stateMutex.Lock()
	delete(t.food, userID)
	t.stateMutex.Unlock()

	if err != nil {
		t.reply(chatID, t.userMessage(err))
		return
	}
	t.reply(chatID, formatFoodLogged(total))
}

// handleCallbackQuery processes inline keyboard actions
func (t *TelegramBot) handleCallbackQuery(ctx context.Context, query *tgbotapi.CallbackQuery) {
	userID := query.From.ID
	data := query.Data

	// Acknowledge the callback
	defer t.bot.Request(tgbotapi.NewCallback(query.ID, ""))

	if query.Message == nil {
		return
	}
	chatID := query.Message.Chat.ID
	messageID := query.Message.MessageID

	if data == cancelFoodAction {
		t.stateMutex.Lock()
		delete(t.food, userID)
		t.stateMutex.Unlock()
		t.edit(chatID, messageID, dialog.Reply{Text: logFoodCancelled})
		return
	}

	t.stateMutex.Lock()
	form := t.forms[userID]
	t.stateMutex.Unlock()
	if form == nil {
		return
	}

	switch data {
	case dialog.ActionBack:
		t.stateMutex.Lock()
		reply := form.Back()
		t.stateMutex.Unlock()
		t.edit(chatID, messageID, reply)

	case dialog.ActionRestart:
		t.stateMutex.Lock()
		reply := form.Restart()
		t.stateMutex.Unlock()
		t.edit(chatID, messageID, reply)

	case dialog.ActionUseDefault:
		t.stateMutex.Lock()
		reply, ok := form.UseDefaultGoal()
		t.stateMutex.Unlock()
		if ok {
			t.edit(chatID, messageID, reply)
		}

	case dialog.ActionConfirm:
		if !form.Confirmable() {
			return
		}
		err := t.svc.UpdateHealthProfile(ctx, userID,
			form.Weight, form.Height, form.Age, form.Activity, form.City, form.CalorieGoal)
		if err != nil {
			t.logger.Errorw("Failed to save health profile", "error", err, "user_id", userID)
			t.edit(chatID, messageID, dialog.Reply{Text: profileSaveError})
			return
		}

		t.stateMutex.Lock()
		delete(t.forms, userID)
		t.stateMutex.Unlock()

		t.edit(chatID, messageID, dialog.Reply{Text: profileSaved})
	}
}

func (t *TelegramBot) userMessage(err error) string {
	switch {
	case err == nil:
		return genericError
	case errors.Is(err, apperrors.ErrNoProfile):
		return profileNotFound
	case errors.Is(err, apperrors.ErrValidation):
		return invalidInput
	case apperrors.IsNotFound(err):
		return notRegistered
	default:
		return genericError
	}
}

func (t *TelegramBot) reply(chatID int64, text string) {
	t.send(tgbotapi.NewMessage(chatID, text))
}

func (t *TelegramBot) sendReply(chatID int64, reply dialog.Reply) {
	msg := tgbotapi.NewMessage(chatID, reply.Text)
	if markup, ok := keyboardFor(reply.Keyboard); ok {
		msg.ReplyMarkup = markup
	}
	t.send(msg)
}

func (t *TelegramBot) edit(chatID int64, messageID int, reply dialog.Reply) {
	if markup, ok := keyboardFor(reply.Keyboard); ok {
		edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, reply.Text, markup)
		if _, err := t.bot.Send(edit); err != nil {
			t.logger.Errorw("Failed to edit message", "error", err, "chat_id", chatID)
		}
		return
	}
	edit := tgbotapi.NewEditMessageText(chatID, messageID, reply.Text)
	if _, err := t.bot.Send(edit); err != nil {
		t.logger.Errorw("Failed to edit message", "error", err, "chat_id", chatID)
	}
}

func (t *TelegramBot) send(msg tgbotapi.MessageConfig) {
	if _, err := t.bot.Send(msg); err != nil {
		t.logger.Errorw("Failed to send message", "error", err, "chat_id", msg.ChatID)
	}
}
