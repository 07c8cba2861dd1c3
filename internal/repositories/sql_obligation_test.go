package repositories

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/erpcore/go-fin-ledger/internal/common"
	"github.com/erpcore/go-fin-ledger/internal/models"
)

func TestObligationRepositoryTestSuite(t *testing.T) {
	t.Helper()
	suite.Run(t, new(obligationTestSuite))
}

type obligationTestSuite struct {
	suite.Suite
	mock    sqlmock.Sqlmock
	sqlRepo *Repository
	repo    ObligationRepository
}

func (suite *obligationTestSuite) SetupTest() {
	suite.sqlRepo, suite.mock = newSQLMockRepository(suite.T())
	suite.repo = suite.sqlRepo.GetObligationRepository()
}

func (suite *obligationTestSuite) TearDownTest() {
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func sampleObligation() models.Obligation {
	return models.Obligation{
		ID:              3,
		Direction:       models.ObligationPayable,
		Counterparty:    "ACME Supplies",
		Description:     "invoice 42",
		OriginalAmount:  models.MustMoney("1000.00"),
		SettledAmount:   models.ZeroMoney(),
		InterestAccrued: models.ZeroMoney(),
		DiscountGranted: models.ZeroMoney(),
		IssueDate:       testDate,
		DueDate:         testDate.AddDate(0, 0, 30),
		Status:          models.ObligationStatusPending,
		CreatedAt:       testTime,
		UpdatedAt:       testTime,
	}
}

func (suite *obligationTestSuite) TestRepository_Create() {
	want := sampleObligation()
	in := models.CreateObligationIn{
		Direction:      want.Direction,
		Counterparty:   want.Counterparty,
		Description:    want.Description,
		OriginalAmount: want.OriginalAmount,
		IssueDate:      want.IssueDate,
		DueDate:        want.DueDate,
	}

	suite.mock.ExpectQuery(regexp.QuoteMeta(queryObligationCreate)).
		WithArgs("payable", want.Counterparty, want.Description, nil, nil, want.OriginalAmount,
			want.IssueDate, want.DueDate, nil, nil, nil, nil).
		WillReturnRows(obligationRows(want))

	got, err := suite.repo.Create(context.Background(), in)
	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), cmp.Diff(want, got, moneyComparer()))
}

func (suite *obligationTestSuite) TestRepository_Create_duplicatePeriod() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(queryObligationCreate)).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "obligation_recurring_period_key"})

	_, err := suite.repo.Create(context.Background(), models.CreateObligationIn{
		Direction:           models.ObligationPayable,
		Counterparty:        "Landlord Ltd",
		RecurringTemplateID: nullInt64(4),
		RecurringPeriod:     sql.NullString{String: "2025-01", Valid: true},
	})
	assert.ErrorIs(suite.T(), err, common.ErrDataExist)
	assert.Contains(suite.T(), err.Error(), "obligation_recurring_period_key")
}

func (suite *obligationTestSuite) TestRepository_Get() {
	want := sampleObligation()

	suite.mock.ExpectQuery(regexp.QuoteMeta(queryObligationGet)).
		WithArgs(want.ID).
		WillReturnRows(obligationRows(want))

	got, err := suite.repo.Get(context.Background(), want.ID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), want.Counterparty, got.Counterparty)
	assert.False(suite.T(), got.CostCenterID.Valid)

	suite.mock.ExpectQuery(regexp.QuoteMeta(queryObligationGet)).
		WithArgs(int64(404)).
		WillReturnRows(obligationRows())

	_, err = suite.repo.Get(context.Background(), 404)
	assert.EqualError(suite.T(), err, "obligation 404: data not found")
}

func (suite *obligationTestSuite) TestRepository_GetForUpdate_outsideTx() {
	_, err := suite.repo.GetForUpdate(context.Background(), 3)
	assert.ErrorIs(suite.T(), err, errLockOutsideTx)
}

func (suite *obligationTestSuite) TestRepository_Update() {
	want := sampleObligation()
	want.SettledAmount = models.MustMoney("400.00")
	want.Status = models.ObligationStatusPartial
	want.SettledAt = sql.NullTime{Time: testDate, Valid: true}

	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(regexp.QuoteMeta(queryObligationGetForUpdate)).
		WithArgs(want.ID).
		WillReturnRows(obligationRows(sampleObligation()))
	suite.mock.ExpectQuery(regexp.QuoteMeta(queryObligationUpdate)).
		WithArgs(want.ID, want.SettledAmount, want.InterestAccrued, want.DiscountGranted, testDate,
			"partial", want.DueDate).
		WillReturnRows(obligationRows(want))
	suite.mock.ExpectCommit()

	err := suite.sqlRepo.Atomic(context.Background(), func(ctx context.Context, r SQLRepository) error {
		o, err := r.GetObligationRepository().GetForUpdate(ctx, want.ID)
		if err != nil {
			return err
		}
		o, err = o.ApplySettlement(models.MustMoney("400.00"), models.ZeroMoney(), models.ZeroMoney(), testDate)
		if err != nil {
			return err
		}
		got, err := r.GetObligationRepository().Update(ctx, o)
		assert.Empty(suite.T(), cmp.Diff(want, got, moneyComparer()))
		return err
	})
	assert.NoError(suite.T(), err)
}

func (suite *obligationTestSuite) TestRepository_List() {
	dueTo := testDate.AddDate(0, 1, 0)
	filter := models.ObligationFilter{
		Direction:    models.ObligationReceivable,
		Status:       models.ObligationStatusPending,
		Counterparty: "acme",
		DueTo:        &dueTo,
		Limit:        50,
	}
	args := []driver.Value{"receivable", "pending", "%acme%", dueTo}
	where := `WHERE \(direction = \$1 AND status = \$2 AND counterparty ILIKE \$3 AND due_date <= \$4\)`

	testCases := []struct {
		name       string
		setupMocks func()
		wantTotal  int64
		wantLen    int
		wantErr    bool
	}{
		{
			name: "success",
			setupMocks: func() {
				suite.mock.ExpectQuery(`SELECT COUNT\(\*\) FROM obligation ` + where).
					WithArgs(args...).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(2)))
				suite.mock.ExpectQuery(`SELECT (.+) FROM obligation ` + where + ` ORDER BY due_date ASC, id ASC LIMIT 50 OFFSET 0`).
					WithArgs(args...).
					WillReturnRows(obligationRows(sampleObligation(), sampleObligation()))
			},
			wantTotal: 2,
			wantLen:   2,
		},
		{
			name: "list failed",
			setupMocks: func() {
				suite.mock.ExpectQuery(`SELECT COUNT\(\*\) FROM obligation ` + where).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(2)))
				suite.mock.ExpectQuery(`SELECT (.+) FROM obligation ` + where).
					WillReturnError(assert.AnError)
			},
			wantErr: true,
		},
	}
	for _, tt := range testCases {
		suite.T().Run(tt.name, func(t *testing.T) {
			tt.setupMocks()

			got, total, err := suite.repo.List(context.Background(), filter)
			assert.Equal(t, tt.wantErr, err != nil)
			assert.Equal(t, tt.wantTotal, total)
			assert.Len(t, got, tt.wantLen)
		})
	}
}

func (suite *obligationTestSuite) TestRepository_OpenTotals() {
	to := testDate.AddDate(0, 0, 30)
	suite.mock.ExpectQuery(regexp.QuoteMeta(queryObligationOpenTotals)).
		WithArgs(testDate, to).
		WillReturnRows(sqlmock.NewRows([]string{"direction", "count", "sum"}).
			AddRow("payable", 3, "1800.00").
			AddRow("receivable", 1, "250.10"))

	got, err := suite.repo.OpenTotals(context.Background(), testDate, to)
	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), cmp.Diff([]models.OpenObligationTotal{
		{Direction: models.ObligationPayable, Count: 3, Remaining: models.MustMoney("1800.00")},
		{Direction: models.ObligationReceivable, Count: 1, Remaining: models.MustMoney("250.10")},
	}, got, moneyComparer()))
}
