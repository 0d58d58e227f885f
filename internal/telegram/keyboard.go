package telegram

import (
	"fmt"

	"github.com/go-telegram/bot/models"
	"github.com/set-night/crystalbot/internal/config"
	"github.com/set-night/crystalbot/internal/domain"
)

// Menu button labels double as exact-match message triggers.
const (
	BtnProfile = "👤 Мой профиль"
	BtnInvite  = "🤝 Пригласить друга"
	BtnPhoto   = "📸 Фото за кристаллики"
	BtnVideo   = "🎥 Видео за кристаллики"
)

// Callback data values carried by inline buttons.
const (
	CallbackGetPhoto  = "get_photo"
	CallbackMorePhoto = "more_photo"
	CallbackGetVideo  = "get_video"
	CallbackMoreVideo = "more_video"
	CallbackMenu      = "menu"
)

// InlineButton creates a single inline keyboard button.
func InlineButton(text, callbackData string) models.InlineKeyboardButton {
	return models.InlineKeyboardButton{
		Text:         text,
		CallbackData: callbackData,
	}
}

// InlineKeyboard creates an inline keyboard from rows of buttons.
func InlineKeyboard(rows ...[]models.InlineKeyboardButton) *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: rows,
	}
}

// ButtonRow creates a row of inline buttons.
func ButtonRow(buttons ...models.InlineKeyboardButton) []models.InlineKeyboardButton {
	return buttons
}

// MainMenu is the persistent reply keyboard shown after /start.
func MainMenu() *models.ReplyKeyboardMarkup {
	return &models.ReplyKeyboardMarkup{
		Keyboard: [][]models.KeyboardButton{
			{{Text: BtnProfile}, {Text: BtnInvite}},
			{{Text: BtnPhoto}, {Text: BtnVideo}},
		},
		ResizeKeyboard: true,
	}
}

// ProfileKeyboard offers the two paid media actions.
func ProfileKeyboard() *models.InlineKeyboardMarkup {
	return InlineKeyboard(
		ButtonRow(InlineButton(fmt.Sprintf("📸 Получить Фото (%d💎)", config.PhotoCost), CallbackGetPhoto)),
		ButtonRow(InlineButton(fmt.Sprintf("🎥 Получить Видео (%d💎)", config.VideoCost), CallbackGetVideo)),
	)
}

// AfterMediaKeyboard follows a delivered file: repeat at the same cost, or
// back to the menu.
func AfterMediaKeyboard(kind domain.MediaKind) *models.InlineKeyboardMarkup {
	cost, more := config.PhotoCost, CallbackMorePhoto
	if kind == domain.MediaVideo {
		cost, more = config.VideoCost, CallbackMoreVideo
	}
	return InlineKeyboard(
		ButtonRow(InlineButton(fmt.Sprintf("Показать ещё (-%d💎)", cost), more)),
		ButtonRow(InlineButton("Меню", CallbackMenu)),
	)
}
