package handler

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/crystalbot/internal/config"
	"github.com/set-night/crystalbot/internal/service"
)

// Handler holds all dependencies needed by command and callback handlers.
type Handler struct {
	bot         *bot.Bot
	cfg         *config.Config
	delivery    *service.DeliveryService
	stats       *service.StatsService
	botUsername string
}

// Deps contains all dependencies required to construct a Handler.
type Deps struct {
	Bot         *bot.Bot
	Cfg         *config.Config
	Delivery    *service.DeliveryService
	Stats       *service.StatsService
	BotUsername string
}

// New creates a new Handler from the provided dependencies.
func New(deps Deps) *Handler {
	return &Handler{
		bot:         deps.Bot,
		cfg:         deps.Cfg,
		delivery:    deps.Delivery,
		stats:       deps.Stats,
		botUsername: deps.BotUsername,
	}
}

func reply(ctx context.Context, b *bot.Bot, chatID int64, text string) {
	if _, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	}); err != nil {
		slog.Error("send message", "error", err, "chat_id", chatID)
	}
}

func (h *Handler) answerCallback(ctx context.Context, b *bot.Bot, callbackID string) {
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
	})
}

// callbackChatID resolves the chat a callback originated from; zero when the
// original message is no longer accessible.
func callbackChatID(update *models.Update) int64 {
	if update.CallbackQuery == nil || update.CallbackQuery.Message.Message == nil {
		return 0
	}
	return update.CallbackQuery.Message.Message.Chat.ID
}
