package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/set-night/crystalbot/internal/domain"
)

const userColumns = "telegram_id, username, balance, referrals, inviter_id, reg_date"

type UserRepository struct {
	db DB
}

func NewUserRepository(db DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error) {
	row := r.db.QueryRow(ctx,
		"SELECT "+userColumns+" FROM users WHERE telegram_id = $1", telegramID)

	var user domain.User
	err := row.Scan(&user.TelegramID, &user.Username, &user.Balance, &user.Referrals, &user.InviterID, &user.RegDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &user, nil
}

// Create inserts a new user row with the given starting balance. It reports
// created=false without touching anything when the id is already registered.
func (r *UserRepository) Create(ctx context.Context, telegramID int64, username string, inviterID *int64, startingBalance int64) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`INSERT INTO users (telegram_id, username, balance, referrals, inviter_id)
		 VALUES ($1, $2, $3, 0, $4)
		 ON CONFLICT (telegram_id) DO NOTHING`,
		telegramID, username, startingBalance, inviterID)
	if err != nil {
		return false, fmt.Errorf("create user: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// CreditReferral credits the bonus and bumps the referral counter in a single
// statement. Zero rows affected means the inviter is not registered; nothing
// is written in that case.
func (r *UserRepository) CreditReferral(ctx context.Context, inviterID, bonus int64) (bool, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx,
		`UPDATE users SET balance = balance + $2, referrals = referrals + 1 WHERE telegram_id = $1`,
		inviterID, bonus)
	if err != nil {
		return false, fmt.Errorf("credit referral: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return false, nil
	}

	if err := insertTransaction(ctx, tx, inviterID, bonus, domain.TxTypeReferralBonus, "referral registration bonus"); err != nil {
		return false, err
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("commit: %w", err)
	}
	return true, nil
}

// DebitIfEnough decrements the balance only when it covers the amount. The
// check and the decrement are one statement, so two concurrent spends cannot
// both pass a separate balance read.
func (r *UserRepository) DebitIfEnough(ctx context.Context, telegramID, amount int64, description string) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	var balance int64
	err = tx.QueryRow(ctx,
		`UPDATE users SET balance = balance - $2 WHERE telegram_id = $1 AND balance >= $2 RETURNING balance`,
		telegramID, amount).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrInsufficientBalance
		}
		return 0, fmt.Errorf("debit balance: %w", err)
	}

	if err := insertTransaction(ctx, tx, telegramID, -amount, domain.TxTypeDebit, description); err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return balance, nil
}

// Credit adds amount unconditionally (refunds, manual corrections).
func (r *UserRepository) Credit(ctx context.Context, telegramID, amount int64, txType domain.TxType, description string) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	var balance int64
	err = tx.QueryRow(ctx,
		`UPDATE users SET balance = balance + $2 WHERE telegram_id = $1 RETURNING balance`,
		telegramID, amount).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrUserNotFound
		}
		return 0, fmt.Errorf("credit balance: %w", err)
	}

	if err := insertTransaction(ctx, tx, telegramID, amount, txType, description); err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return balance, nil
}

// Stats returns the total row count and the sum of the referrals column.
func (r *UserRepository) Stats(ctx context.Context) (totalUsers, totalReferrals int64, err error) {
	err = r.db.QueryRow(ctx,
		`SELECT COUNT(*), COALESCE(SUM(referrals), 0) FROM users`).Scan(&totalUsers, &totalReferrals)
	if err != nil {
		return 0, 0, fmt.Errorf("user stats: %w", err)
	}
	return totalUsers, totalReferrals, nil
}

func (r *UserRepository) CountRegisteredSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM users WHERE reg_date >= $1`, since).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count registered since: %w", err)
	}
	return count, nil
}
