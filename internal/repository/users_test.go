package repository

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/set-night/crystalbot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (pgxmock.PgxPoolIface, *UserRepository) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, NewUserRepository(mock)
}

func TestUserRepositoryGetByTelegramID(t *testing.T) {
	mock, repo := newMockRepo(t)
	regDate := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT telegram_id, username, balance, referrals, inviter_id, reg_date FROM users WHERE telegram_id`).
		WithArgs(int64(100)).
		WillReturnRows(pgxmock.NewRows([]string{"telegram_id", "username", "balance", "referrals", "inviter_id", "reg_date"}).
			AddRow(int64(100), "alice", int64(10), int64(0), nil, regDate))

	user, err := repo.GetByTelegramID(context.Background(), 100)
	require.NoError(t, err)
	assert.Equal(t, int64(100), user.TelegramID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, int64(10), user.Balance)
	assert.Nil(t, user.InviterID)
	assert.Equal(t, regDate, user.RegDate)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryGetByTelegramIDNotFound(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectQuery(`SELECT telegram_id, username, balance, referrals, inviter_id, reg_date FROM users WHERE telegram_id`).
		WithArgs(int64(999)).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByTelegramID(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserRepositoryCreate(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectExec(`INSERT INTO users`).
		WithArgs(int64(200), "bob", int64(10), (*int64)(nil)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	created, err := repo.Create(context.Background(), 200, "bob", nil, 10)
	require.NoError(t, err)
	assert.True(t, created)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryCreateAlreadyExists(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectExec(`INSERT INTO users`).
		WithArgs(int64(200), "bob", int64(10), (*int64)(nil)).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))

	created, err := repo.Create(context.Background(), 200, "bob", nil, 10)
	require.NoError(t, err)
	assert.False(t, created)
}

func TestUserRepositoryCreditReferral(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE users SET balance = balance \+ \$2, referrals = referrals \+ 1 WHERE telegram_id = \$1`).
		WithArgs(int64(100), int64(10)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(`INSERT INTO transactions`).
		WithArgs(pgxmock.AnyArg(), int64(100), int64(10), string(domain.TxTypeReferralBonus), "referral registration bonus").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	credited, err := repo.CreditReferral(context.Background(), 100, 10)
	require.NoError(t, err)
	assert.True(t, credited)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryCreditReferralInviterMissing(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE users SET balance = balance \+ \$2, referrals = referrals \+ 1 WHERE telegram_id = \$1`).
		WithArgs(int64(777), int64(10)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectRollback()

	credited, err := repo.CreditReferral(context.Background(), 777, 10)
	require.NoError(t, err)
	assert.False(t, credited)
}

func TestUserRepositoryDebitIfEnough(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`UPDATE users SET balance = balance - \$2 WHERE telegram_id = \$1 AND balance >= \$2 RETURNING balance`).
		WithArgs(int64(100), int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"balance"}).AddRow(int64(9)))
	mock.ExpectExec(`INSERT INTO transactions`).
		WithArgs(pgxmock.AnyArg(), int64(100), int64(-1), string(domain.TxTypeDebit), "photo delivery").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	balance, err := repo.DebitIfEnough(context.Background(), 100, 1, "photo delivery")
	require.NoError(t, err)
	assert.Equal(t, int64(9), balance)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryDebitIfEnoughInsufficient(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`UPDATE users SET balance = balance - \$2 WHERE telegram_id = \$1 AND balance >= \$2 RETURNING balance`).
		WithArgs(int64(100), int64(3)).
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectRollback()

	_, err := repo.DebitIfEnough(context.Background(), 100, 3, "video delivery")
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
}

func TestUserRepositoryCredit(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`UPDATE users SET balance = balance \+ \$2 WHERE telegram_id = \$1 RETURNING balance`).
		WithArgs(int64(100), int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"balance"}).AddRow(int64(10)))
	mock.ExpectExec(`INSERT INTO transactions`).
		WithArgs(pgxmock.AnyArg(), int64(100), int64(1), string(domain.TxTypeRefund), "failed photo delivery").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	balance, err := repo.Credit(context.Background(), 100, 1, domain.TxTypeRefund, "failed photo delivery")
	require.NoError(t, err)
	assert.Equal(t, int64(10), balance)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryStats(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\), COALESCE\(SUM\(referrals\), 0\) FROM users`).
		WillReturnRows(pgxmock.NewRows([]string{"count", "coalesce"}).AddRow(int64(2), int64(1)))

	users, referrals, err := repo.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), users)
	assert.Equal(t, int64(1), referrals)
}

func TestUserRepositoryCountRegisteredSince(t *testing.T) {
	mock, repo := newMockRepo(t)
	since := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users WHERE reg_date >= \$1`).
		WithArgs(since).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(1)))

	count, err := repo.CountRegisteredSince(context.Background(), since)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
