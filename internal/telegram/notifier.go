package telegram

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/set-night/crystalbot/internal/config"
)

// Notifier sends best-effort service messages to individual users. Callers
// discard the returned error; it exists so tests can observe the attempt.
type Notifier struct {
	bot *bot.Bot
}

func NewNotifier(b *bot.Bot) *Notifier {
	return &Notifier{bot: b}
}

// NotifyReferral tells an inviter their referral registered. Single attempt,
// bounded by its own timeout.
func (n *Notifier) NotifyReferral(ctx context.Context, inviterID int64, referralUsername string) error {
	ctx, cancel := context.WithTimeout(ctx, config.NotifyTimeout)
	defer cancel()

	name := referralUsername
	if name == "" {
		name = "без ника"
	}

	_, err := n.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: inviterID,
		Text:   fmt.Sprintf("🎉 Твой реферал @%s зарегистрировался — тебе +%d💎!", name, config.ReferralBonus),
	})
	return err
}
