package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/set-night/crystalbot/internal/domain"
)

// insertTransaction records one ledger row inside the caller's transaction.
func insertTransaction(ctx context.Context, tx pgx.Tx, telegramID, amount int64, txType domain.TxType, description string) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO transactions (id, telegram_id, amount, tx_type, description)
		 VALUES ($1, $2, $3, $4, $5)`,
		uuid.New(), telegramID, amount, string(txType), description)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// TransactionRepository reads the ledger for reporting.
type TransactionRepository struct {
	db DB
}

func NewTransactionRepository(db DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// TotalSpent returns the number of crystals debited across all users.
func (r *TransactionRepository) TotalSpent(ctx context.Context) (int64, error) {
	var spent int64
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(-amount), 0) FROM transactions WHERE tx_type = $1`,
		string(domain.TxTypeDebit)).Scan(&spent)
	if err != nil {
		return 0, fmt.Errorf("total spent: %w", err)
	}
	return spent, nil
}
