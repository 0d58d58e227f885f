package service

import (
	"context"
	"log/slog"

	"github.com/set-night/crystalbot/internal/config"
	"github.com/set-night/crystalbot/internal/domain"
)

// Debiter is the balance mutation surface the delivery flow needs.
type Debiter interface {
	Debit(ctx context.Context, telegramID, amount int64, description string) (int64, error)
	Refund(ctx context.Context, telegramID, amount int64, description string) error
}

// MediaSender uploads one media file to a chat.
type MediaSender interface {
	SendMedia(ctx context.Context, chatID int64, kind domain.MediaKind, path string) error
}

// DeliveryService runs the spend-and-deliver flow: insufficient funds abort
// before any file pick, an empty folder aborts before any charge, and a
// failed send refunds the already-debited cost. The send is never retried.
type DeliveryService struct {
	billing Debiter
	sender  MediaSender
	pick    func(folder string) (string, error)

	photosDir string
	videosDir string
}

func NewDeliveryService(billing Debiter, sender MediaSender, cfg *config.Config) *DeliveryService {
	return &DeliveryService{
		billing:   billing,
		sender:    sender,
		pick:      PickRandom,
		photosDir: cfg.PhotosDir,
		videosDir: cfg.VideosDir,
	}
}

// Cost returns the crystal price for one delivery of the given kind.
func (s *DeliveryService) Cost(kind domain.MediaKind) int64 {
	if kind == domain.MediaVideo {
		return config.VideoCost
	}
	return config.PhotoCost
}

// Folder returns the asset directory for the given kind.
func (s *DeliveryService) Folder(kind domain.MediaKind) string {
	if kind == domain.MediaVideo {
		return s.videosDir
	}
	return s.photosDir
}

func (s *DeliveryService) Deliver(ctx context.Context, user *domain.User, chatID int64, kind domain.MediaKind) error {
	cost := s.Cost(kind)

	if user.Balance < cost {
		return domain.ErrInsufficientBalance
	}

	path, err := s.pick(s.Folder(kind))
	if err != nil {
		return err
	}

	// A failed conditional debit means a concurrent spend got there first;
	// indistinguishable from the pre-check path for the caller.
	if _, err := s.billing.Debit(ctx, user.TelegramID, cost, string(kind)+" delivery"); err != nil {
		return err
	}

	if err := s.sender.SendMedia(ctx, chatID, kind, path); err != nil {
		slog.Error("media send failed, refunding", "error", err, "user_id", user.TelegramID, "kind", kind)
		if rerr := s.billing.Refund(ctx, user.TelegramID, cost, "failed "+string(kind)+" delivery"); rerr != nil {
			slog.Error("refund after failed send", "error", rerr, "user_id", user.TelegramID)
		}
		return domain.ErrDeliveryFailed
	}

	return nil
}
