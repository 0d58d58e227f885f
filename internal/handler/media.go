package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/crystalbot/internal/domain"
	"github.com/set-night/crystalbot/internal/middleware"
)

func (h *Handler) handlePhotoButton(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.deliverFromMessage(ctx, b, update, domain.MediaPhoto)
}

func (h *Handler) handleVideoButton(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.deliverFromMessage(ctx, b, update, domain.MediaVideo)
}

func (h *Handler) handlePhotoCallback(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.deliverFromCallback(ctx, b, update, domain.MediaPhoto)
}

func (h *Handler) handleVideoCallback(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.deliverFromCallback(ctx, b, update, domain.MediaVideo)
}

// handleMenuCallback re-renders the profile screen.
func (h *Handler) handleMenuCallback(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.CallbackQuery == nil {
		return
	}
	h.answerCallback(ctx, b, update.CallbackQuery.ID)

	user := middleware.GetUser(ctx)
	chatID := callbackChatID(update)
	if user == nil || chatID == 0 {
		return
	}

	h.sendProfile(ctx, b, chatID, user)
}

func (h *Handler) deliverFromMessage(ctx context.Context, b *bot.Bot, update *models.Update, kind domain.MediaKind) {
	if update.Message == nil {
		return
	}

	user := middleware.GetUser(ctx)
	if user == nil {
		return
	}

	h.deliver(ctx, b, update.Message.Chat.ID, user, kind)
}

func (h *Handler) deliverFromCallback(ctx context.Context, b *bot.Bot, update *models.Update, kind domain.MediaKind) {
	if update.CallbackQuery == nil {
		return
	}
	h.answerCallback(ctx, b, update.CallbackQuery.ID)

	user := middleware.GetUser(ctx)
	chatID := callbackChatID(update)
	if user == nil || chatID == 0 {
		return
	}

	h.deliver(ctx, b, chatID, user, kind)
}

// deliver maps spend-and-deliver outcomes to user-facing replies.
func (h *Handler) deliver(ctx context.Context, b *bot.Bot, chatID int64, user *domain.User, kind domain.MediaKind) {
	err := h.delivery.Deliver(ctx, user, chatID, kind)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrInsufficientBalance):
		reply(ctx, b, chatID, fmt.Sprintf("⚠️ Недостаточно кристалликов (%d💎 нужно).", h.delivery.Cost(kind)))
	case errors.Is(err, domain.ErrNoMedia):
		reply(ctx, b, chatID, fmt.Sprintf("⚠️ В папке %s нет файлов.", h.delivery.Folder(kind)))
	case errors.Is(err, domain.ErrDeliveryFailed):
		reply(ctx, b, chatID, "Ошибка при отправке файла.")
	default:
		slog.Error("deliver media", "error", err, "user_id", user.TelegramID, "kind", kind)
		reply(ctx, b, chatID, "Ошибка при отправке файла.")
	}
}
