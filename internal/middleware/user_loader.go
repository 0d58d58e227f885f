package middleware

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/crystalbot/internal/domain"
)

type ctxKey string

const UserKey ctxKey = "user"

// GetUser extracts the loaded user from context.
func GetUser(ctx context.Context) *domain.User {
	u, ok := ctx.Value(UserKey).(*domain.User)
	if !ok {
		return nil
	}
	return u
}

type userFinder interface {
	FindOrCreate(ctx context.Context, telegramID int64, username string, inviterID *int64) (*domain.User, bool, error)
}

// UserLoader returns middleware that loads the sender into context,
// registering them on first contact. The inviter id from a /start deep link
// is only honored on first creation.
func UserLoader(users userFinder) bot.Middleware {
	return func(next bot.HandlerFunc) bot.HandlerFunc {
		return func(ctx context.Context, b *bot.Bot, update *models.Update) {
			var from *models.User
			if update.Message != nil {
				from = update.Message.From
			} else if update.CallbackQuery != nil {
				from = &update.CallbackQuery.From
			}

			if from == nil {
				next(ctx, b, update)
				return
			}

			var inviterID *int64
			if update.Message != nil {
				inviterID = parseStartPayload(update.Message.Text)
			}

			user, _, err := users.FindOrCreate(ctx, from.ID, from.Username, inviterID)
			if err != nil {
				slog.Error("load user", "error", err, "telegram_id", from.ID)
			} else if user != nil {
				ctx = context.WithValue(ctx, UserKey, user)
			}

			next(ctx, b, update)
		}
	}
}

// parseStartPayload extracts the numeric inviter id from "/start <id>".
func parseStartPayload(text string) *int64 {
	if !strings.HasPrefix(text, "/start") {
		return nil
	}
	parts := strings.Fields(text)
	if len(parts) < 2 {
		return nil
	}
	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || id <= 0 {
		return nil
	}
	return &id
}
