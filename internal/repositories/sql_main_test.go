package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erpcore/go-fin-ledger/internal/common"
	"github.com/erpcore/go-fin-ledger/internal/common/matcher"
	"github.com/erpcore/go-fin-ledger/internal/models"
)

func TestRepository_Atomic(t *testing.T) {
	tests := []struct {
		name    string
		doMock  func(mock sqlmock.Sqlmock)
		steps   func(ctx context.Context, r SQLRepository) error
		wantErr error
	}{
		{
			name: "commit when steps succeed",
			doMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(regexp.QuoteMeta(queryBankAccountAdjustBalance)).
					WithArgs(int64(1), models.MustMoney("50.00")).
					WillReturnRows(sqlmock.NewRows([]string{"current_balance"}).AddRow("150.00"))
				mock.ExpectCommit()
			},
			steps: func(ctx context.Context, r SQLRepository) error {
				_, err := r.GetBankAccountRepository().AdjustBalance(ctx, 1, models.MustMoney("50.00"))
				return err
			},
		},
		{
			name: "rollback when steps fail",
			doMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectRollback()
			},
			steps: func(ctx context.Context, r SQLRepository) error {
				return common.ErrOverSettlement
			},
			wantErr: common.ErrOverSettlement,
		},
		{
			name: "serialization failure on commit is a conflict",
			doMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectCommit().WillReturnError(&pgconn.PgError{Code: "40001"})
			},
			steps: func(ctx context.Context, r SQLRepository) error {
				return nil
			},
			wantErr: common.ErrStorageConflict,
		},
		{
			name: "failed begin",
			doMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin().WillReturnError(assert.AnError)
			},
			steps: func(ctx context.Context, r SQLRepository) error {
				return nil
			},
			wantErr: assert.AnError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newSQLMockRepository(t)
			tt.doMock(mock)

			err := repo.Atomic(context.Background(), tt.steps)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), err)
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Atomic_panic(t *testing.T) {
	repo, mock := newSQLMockRepository(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.Panics(t, func() {
		_ = repo.Atomic(context.Background(), func(ctx context.Context, r SQLRepository) error {
			panic("boom")
		})
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Atomic_boundedByDBTimeout(t *testing.T) {
	repo, mock := newSQLMockRepository(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	err := repo.Atomic(context.Background(), func(ctx context.Context, r SQLRepository) error {
		assert.True(t, matcher.ContextWithTimeoutRange(0, time.Second).Matches(ctx))
		return nil
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_lockOutsideTransaction(t *testing.T) {
	repo, mock := newSQLMockRepository(t)

	_, err := repo.GetBankAccountRepository().GetForUpdate(context.Background(), 1)
	assert.ErrorIs(t, err, errLockOutsideTx)

	_, err = repo.GetObligationRepository().GetForUpdate(context.Background(), 1)
	assert.ErrorIs(t, err, errLockOutsideTx)

	require.NoError(t, mock.ExpectationsWereMet())
}
