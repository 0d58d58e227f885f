package handler

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/crystalbot/internal/middleware"
	"github.com/set-night/crystalbot/internal/telegram"
)

// handleStart replies with the profile card and the persistent menu.
// Registration itself (including the referral bonus on first contact) already
// happened in the UserLoader middleware.
func (h *Handler) handleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	user := middleware.GetUser(ctx)
	if user == nil {
		return
	}

	chatID := update.Message.Chat.ID
	h.sendProfile(ctx, b, chatID, user)

	if _, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        "👇 Выберите действие:",
		ReplyMarkup: telegram.MainMenu(),
	}); err != nil {
		slog.Error("send main menu", "error", err, "chat_id", chatID)
	}
}
