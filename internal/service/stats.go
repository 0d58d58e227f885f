package service

import (
	"context"
	"fmt"
	"time"

	"github.com/set-night/crystalbot/internal/domain"
)

// StatsStore reads user aggregates.
type StatsStore interface {
	Stats(ctx context.Context) (totalUsers, totalReferrals int64, err error)
	CountRegisteredSince(ctx context.Context, since time.Time) (int64, error)
}

// LedgerReader reads transaction aggregates.
type LedgerReader interface {
	TotalSpent(ctx context.Context) (int64, error)
}

type StatsService struct {
	users  StatsStore
	ledger LedgerReader
	now    func() time.Time
}

func NewStatsService(users StatsStore, ledger LedgerReader) *StatsService {
	return &StatsService{users: users, ledger: ledger, now: time.Now}
}

// Report assembles the admin panel numbers.
func (s *StatsService) Report(ctx context.Context) (*domain.StatsReport, error) {
	totalUsers, totalReferrals, err := s.users.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("user stats: %w", err)
	}

	now := s.now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekStart := todayStart.AddDate(0, 0, -int(now.Weekday()))
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	today, err := s.users.CountRegisteredSince(ctx, todayStart)
	if err != nil {
		return nil, fmt.Errorf("count today: %w", err)
	}
	week, err := s.users.CountRegisteredSince(ctx, weekStart)
	if err != nil {
		return nil, fmt.Errorf("count week: %w", err)
	}
	month, err := s.users.CountRegisteredSince(ctx, monthStart)
	if err != nil {
		return nil, fmt.Errorf("count month: %w", err)
	}

	spent, err := s.ledger.TotalSpent(ctx)
	if err != nil {
		return nil, fmt.Errorf("total spent: %w", err)
	}

	return &domain.StatsReport{
		TotalUsers:          totalUsers,
		RegisteredToday:     today,
		RegisteredThisWeek:  week,
		RegisteredThisMonth: month,
		TotalReferrals:      totalReferrals,
		CrystalsSpent:       spent,
	}, nil
}
