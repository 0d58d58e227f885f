package domain

import (
	"time"

	"github.com/google/uuid"
)

type TxType string

const (
	TxTypeDebit         TxType = "debit"
	TxTypeCredit        TxType = "credit"
	TxTypeRefund        TxType = "refund"
	TxTypeReferralBonus TxType = "referral_bonus"
)

// Transaction is one ledger row, written in the same database transaction as
// the balance change it describes.
type Transaction struct {
	ID          uuid.UUID
	TelegramID  int64
	Amount      int64
	TxType      TxType
	Description string
	CreatedAt   time.Time
}
