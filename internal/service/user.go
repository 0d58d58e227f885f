package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/set-night/crystalbot/internal/config"
	"github.com/set-night/crystalbot/internal/domain"
)

// UserStore is the persistence surface the registration flow needs.
type UserStore interface {
	GetByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error)
	Create(ctx context.Context, telegramID int64, username string, inviterID *int64, startingBalance int64) (bool, error)
	CreditReferral(ctx context.Context, inviterID, bonus int64) (bool, error)
}

// ReferralNotifier delivers the bonus notification to an inviter. The
// contract is one attempt, failure discarded, no retry.
type ReferralNotifier interface {
	NotifyReferral(ctx context.Context, inviterID int64, referralUsername string) error
}

type UserService struct {
	users    UserStore
	notifier ReferralNotifier
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// SetNotifier wires the referral notifier once the bot instance exists.
func (s *UserService) SetNotifier(n ReferralNotifier) {
	s.notifier = n
}

// FindOrCreate returns the user, registering them on first contact. The
// inviter id is only honored on first creation: it must differ from the new
// user's own id and reference an existing row, in which case the inviter is
// credited the referral bonus and notified best-effort.
func (s *UserService) FindOrCreate(ctx context.Context, telegramID int64, username string, inviterID *int64) (*domain.User, bool, error) {
	user, err := s.users.GetByTelegramID(ctx, telegramID)
	if err == nil {
		return user, false, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, false, fmt.Errorf("get user: %w", err)
	}

	// self-invites never count
	if inviterID != nil && *inviterID == telegramID {
		inviterID = nil
	}

	created, err := s.users.Create(ctx, telegramID, username, inviterID, config.StartingBalance)
	if err != nil {
		return nil, false, fmt.Errorf("create user: %w", err)
	}

	if created && inviterID != nil {
		credited, err := s.users.CreditReferral(ctx, *inviterID, config.ReferralBonus)
		if err != nil {
			slog.Error("credit referral bonus", "error", err, "inviter_id", *inviterID)
		} else if credited && s.notifier != nil {
			if err := s.notifier.NotifyReferral(ctx, *inviterID, username); err != nil {
				slog.Debug("referral notification not delivered", "error", err, "inviter_id", *inviterID)
			}
		}
	}

	user, err = s.users.GetByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, false, fmt.Errorf("reload user: %w", err)
	}
	return user, created, nil
}
