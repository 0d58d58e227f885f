package telegram

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/crystalbot/internal/domain"
)

// Sender uploads local media files to chats, concealed behind a spoiler and
// carrying the post-delivery keyboard.
type Sender struct {
	bot *bot.Bot
}

func NewSender(b *bot.Bot) *Sender {
	return &Sender{bot: b}
}

func (s *Sender) SendMedia(ctx context.Context, chatID int64, kind domain.MediaKind, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open media file: %w", err)
	}
	defer f.Close()

	upload := &models.InputFileUpload{Filename: filepath.Base(path), Data: f}
	markup := AfterMediaKeyboard(kind)

	if kind == domain.MediaVideo {
		_, err = s.bot.SendVideo(ctx, &bot.SendVideoParams{
			ChatID:      chatID,
			Video:       upload,
			Caption:     "🎥 Видео (скрытое)",
			HasSpoiler:  true,
			ReplyMarkup: markup,
		})
	} else {
		_, err = s.bot.SendPhoto(ctx, &bot.SendPhotoParams{
			ChatID:      chatID,
			Photo:       upload,
			Caption:     "📸 Фото (скрытое)",
			HasSpoiler:  true,
			ReplyMarkup: markup,
		})
	}
	if err != nil {
		return fmt.Errorf("send %s: %w", kind, err)
	}
	return nil
}
