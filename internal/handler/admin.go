package handler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// handleAdmin reports aggregate statistics to the configured administrator.
func (h *Handler) handleAdmin(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}

	chatID := update.Message.Chat.ID
	if !h.cfg.IsAdmin(update.Message.From.ID) {
		reply(ctx, b, chatID, "⛔ Нет доступа.")
		return
	}

	report, err := h.stats.Report(ctx)
	if err != nil {
		slog.Error("load stats", "error", err)
		reply(ctx, b, chatID, "❌ Не удалось получить статистику.")
		return
	}

	text := fmt.Sprintf(
		"⚙️ Админ-панель\n\n"+
			"👥 Пользователей: %d\n"+
			"Сегодня: %d\n"+
			"За неделю: %d\n"+
			"За месяц: %d\n\n"+
			"🔗 Всего рефералов: %d\n"+
			"💎 Потрачено кристалликов: %d",
		report.TotalUsers,
		report.RegisteredToday,
		report.RegisteredThisWeek,
		report.RegisteredThisMonth,
		report.TotalReferrals,
		report.CrystalsSpent,
	)
	reply(ctx, b, chatID, text)
}
