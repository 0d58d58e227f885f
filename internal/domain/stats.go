package domain

// StatsReport aggregates the numbers shown on the admin panel.
type StatsReport struct {
	TotalUsers          int64
	RegisteredToday     int64
	RegisteredThisWeek  int64
	RegisteredThisMonth int64
	TotalReferrals      int64
	CrystalsSpent       int64
}
