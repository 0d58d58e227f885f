package handler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/crystalbot/internal/domain"
	"github.com/set-night/crystalbot/internal/middleware"
	"github.com/set-night/crystalbot/internal/telegram"
)

func (h *Handler) handleProfile(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	user := middleware.GetUser(ctx)
	if user == nil {
		return
	}

	h.sendProfile(ctx, b, update.Message.Chat.ID, user)
}

// sendProfile renders the profile card with the paid-action keyboard.
func (h *Handler) sendProfile(ctx context.Context, b *bot.Bot, chatID int64, user *domain.User) {
	name := user.Username
	if name == "" {
		name = "Без ника"
	}

	text := fmt.Sprintf(
		"👤 Ник: @%s\n👥 Рефералов: %d\n💎 Внутренний баланс: %d кристалликов",
		name, user.Referrals, user.Balance,
	)

	if _, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        text,
		ReplyMarkup: telegram.ProfileKeyboard(),
	}); err != nil {
		slog.Error("send profile", "error", err, "chat_id", chatID)
	}
}
