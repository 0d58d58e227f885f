package handler

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/crystalbot/internal/config"
	"github.com/set-night/crystalbot/internal/middleware"
)

// handleInvite composes the deep link embedding the inviting user's id.
func (h *Handler) handleInvite(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	user := middleware.GetUser(ctx)
	if user == nil {
		return
	}

	link := fmt.Sprintf("https://t.me/%s?start=%d", h.botUsername, user.TelegramID)
	reply(ctx, b, update.Message.Chat.ID, fmt.Sprintf(
		"🔗 Ваша ссылка для приглашения:\n%s\n\nЗа каждого друга — +%d💎!",
		link, config.ReferralBonus,
	))
}
