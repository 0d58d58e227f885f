package service

import (
	"context"

	"github.com/set-night/crystalbot/internal/domain"
)

// BillingStore mutates balances through the ledger-backed repository.
type BillingStore interface {
	DebitIfEnough(ctx context.Context, telegramID, amount int64, description string) (int64, error)
	Credit(ctx context.Context, telegramID, amount int64, txType domain.TxType, description string) (int64, error)
}

// BillingService applies crystal debits and credits. Callers never pre-check
// and then write: Debit is a single conditional operation at the store.
type BillingService struct {
	store BillingStore
}

func NewBillingService(store BillingStore) *BillingService {
	return &BillingService{store: store}
}

// Debit charges amount, returning domain.ErrInsufficientBalance when the
// conditional decrement matches no row.
func (s *BillingService) Debit(ctx context.Context, telegramID, amount int64, description string) (int64, error) {
	return s.store.DebitIfEnough(ctx, telegramID, amount, description)
}

// Refund returns an already-debited amount. Best-effort additive credit; the
// row is not re-checked against concurrent activity.
func (s *BillingService) Refund(ctx context.Context, telegramID, amount int64, description string) error {
	_, err := s.store.Credit(ctx, telegramID, amount, domain.TxTypeRefund, description)
	return err
}
