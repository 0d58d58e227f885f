package config

import "time"

const (
	// Crystal economy
	StartingBalance = 10
	ReferralBonus   = 10
	PhotoCost       = 1
	VideoCost       = 3

	// Best-effort referral notification timeout
	NotifyTimeout = 10 * time.Second
)
