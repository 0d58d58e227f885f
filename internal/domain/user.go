package domain

import "time"

// User is one registered bot participant. A row is created exactly once, on
// first contact, and is never deleted.
type User struct {
	TelegramID int64
	Username   string
	Balance    int64
	Referrals  int64
	InviterID  *int64
	RegDate    time.Time
}
