package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStatsStore struct {
	totalUsers     int64
	totalReferrals int64
	sinceArgs      []time.Time
	sinceCounts    []int64
}

func (s *stubStatsStore) Stats(context.Context) (int64, int64, error) {
	return s.totalUsers, s.totalReferrals, nil
}

func (s *stubStatsStore) CountRegisteredSince(_ context.Context, since time.Time) (int64, error) {
	s.sinceArgs = append(s.sinceArgs, since)
	return s.sinceCounts[len(s.sinceArgs)-1], nil
}

type stubLedger struct {
	spent int64
}

func (l *stubLedger) TotalSpent(context.Context) (int64, error) {
	return l.spent, nil
}

func TestStatsReport(t *testing.T) {
	store := &stubStatsStore{totalUsers: 2, totalReferrals: 1, sinceCounts: []int64{1, 2, 2}}
	svc := NewStatsService(store, &stubLedger{spent: 21})
	svc.now = func() time.Time {
		return time.Date(2026, time.August, 29, 15, 0, 0, 0, time.UTC)
	}

	report, err := svc.Report(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(2), report.TotalUsers)
	assert.Equal(t, int64(1), report.RegisteredToday)
	assert.Equal(t, int64(2), report.RegisteredThisWeek)
	assert.Equal(t, int64(2), report.RegisteredThisMonth)
	assert.Equal(t, int64(1), report.TotalReferrals)
	assert.Equal(t, int64(21), report.CrystalsSpent)

	// 2026-08-29 is a Saturday
	require.Len(t, store.sinceArgs, 3)
	assert.Equal(t, time.Date(2026, time.August, 29, 0, 0, 0, 0, time.UTC), store.sinceArgs[0])
	assert.Equal(t, time.Date(2026, time.August, 23, 0, 0, 0, 0, time.UTC), store.sinceArgs[1])
	assert.Equal(t, time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC), store.sinceArgs[2])
}

func TestStatsReportEmpty(t *testing.T) {
	store := &stubStatsStore{sinceCounts: []int64{0, 0, 0}}
	svc := NewStatsService(store, &stubLedger{})

	report, err := svc.Report(context.Background())
	require.NoError(t, err)
	assert.Zero(t, report.TotalUsers)
	assert.Zero(t, report.TotalReferrals)
}
