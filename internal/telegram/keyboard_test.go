package telegram

import (
	"testing"

	"github.com/set-night/crystalbot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMainMenu(t *testing.T) {
	kb := MainMenu()

	require.Len(t, kb.Keyboard, 2)
	assert.Equal(t, BtnProfile, kb.Keyboard[0][0].Text)
	assert.Equal(t, BtnInvite, kb.Keyboard[0][1].Text)
	assert.Equal(t, BtnPhoto, kb.Keyboard[1][0].Text)
	assert.Equal(t, BtnVideo, kb.Keyboard[1][1].Text)
	assert.True(t, kb.ResizeKeyboard)
}

func TestProfileKeyboard(t *testing.T) {
	kb := ProfileKeyboard()

	require.Len(t, kb.InlineKeyboard, 2)
	assert.Equal(t, CallbackGetPhoto, kb.InlineKeyboard[0][0].CallbackData)
	assert.Equal(t, "📸 Получить Фото (1💎)", kb.InlineKeyboard[0][0].Text)
	assert.Equal(t, CallbackGetVideo, kb.InlineKeyboard[1][0].CallbackData)
	assert.Equal(t, "🎥 Получить Видео (3💎)", kb.InlineKeyboard[1][0].Text)
}

func TestAfterMediaKeyboard(t *testing.T) {
	photo := AfterMediaKeyboard(domain.MediaPhoto)
	require.Len(t, photo.InlineKeyboard, 2)
	assert.Equal(t, "Показать ещё (-1💎)", photo.InlineKeyboard[0][0].Text)
	assert.Equal(t, CallbackMorePhoto, photo.InlineKeyboard[0][0].CallbackData)
	assert.Equal(t, CallbackMenu, photo.InlineKeyboard[1][0].CallbackData)

	video := AfterMediaKeyboard(domain.MediaVideo)
	assert.Equal(t, "Показать ещё (-3💎)", video.InlineKeyboard[0][0].Text)
	assert.Equal(t, CallbackMoreVideo, video.InlineKeyboard[0][0].CallbackData)
}
