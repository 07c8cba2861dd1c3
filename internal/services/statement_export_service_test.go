package services_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"

	"github.com/erpcore/go-fin-ledger/internal/models"
)

func expectStatement(h testServiceHelper, account models.BankAccount, movements []models.BankMovement) {
	h.mockBankAccountRepo.EXPECT().Get(gomock.Any(), account.ID).Return(account, nil).Times(2)
	h.mockBankMovementRepo.EXPECT().SumBefore(gomock.Any(), account.ID, gomock.Any()).Return(models.ZeroMoney(), nil)
	h.mockBankMovementRepo.EXPECT().ListInRange(gomock.Any(), account.ID, gomock.Any(), gomock.Any()).Return(movements, nil)
}

func TestStatementExportService_ExportStatement(t *testing.T) {
	h := serviceTestHelper(t)
	account := sampleAccount(1, "0.00")
	account.OpeningBalance = models.MustMoney("100.00")

	expectStatement(h, account, []models.BankMovement{
		sampleMovement(1, 1, models.MovementKindDeposit, models.DirectionCredit, "50.00"),
		sampleMovement(2, 1, models.MovementKindFee, models.DirectionDebit, "20.00"),
	})

	file, err := h.statementService.ExportStatement(context.TODO(), 1, date("2025-01-01"), date("2025-01-31"))
	require.NoError(t, err)
	assert.Equal(t, "statement_1_20250101_20250131.xlsx", file.FileName)
	assert.Equal(t, models.ContentTypeXLSX, file.ContentType)

	workbook, err := excelize.OpenReader(bytes.NewReader(file.Data))
	require.NoError(t, err)
	defer workbook.Close()

	rows, err := workbook.GetRows("Statement")
	require.NoError(t, err)
	require.Len(t, rows, 9)
	assert.Equal(t, []string{"Opening balance", "100.00"}, rows[2])
	assert.Equal(t, "Value date", rows[4][0])
	assert.Equal(t, "150.00", rows[5][8])
	assert.Equal(t, "20.00", rows[6][6])
	assert.Equal(t, "130.00", rows[6][8])
	assert.Equal(t, []string{"Closing balance", "130.00"}, rows[8])
}

func TestStatementExportService_ArchivePreviousMonth(t *testing.T) {
	h := serviceTestHelper(t)
	first, second := sampleAccount(1, "0.00"), sampleAccount(2, "0.00")

	h.mockBankAccountRepo.EXPECT().List(gomock.Any(), models.BankAccountFilter{ActiveOnly: true}).
		Return([]models.BankAccount{first, second}, nil)
	expectStatement(h, first, nil)
	expectStatement(h, second, nil)

	h.mockGcs.EXPECT().
		Upload(gomock.Any(), models.CloudStoragePayload{Path: "statements/2025-02", Filename: "statement_1_20250201_20250228.xlsx"},
			models.ContentTypeXLSX, gomock.Any()).
		Return("https://storage.googleapis.com/fin-ledger/statements/2025-02/statement_1_20250201_20250228.xlsx", nil)
	h.mockGcs.EXPECT().
		Upload(gomock.Any(), models.CloudStoragePayload{Path: "statements/2025-02", Filename: "statement_2_20250201_20250228.xlsx"},
			models.ContentTypeXLSX, gomock.Any()).
		Return("", assert.AnError)

	result, err := h.statementService.ArchivePreviousMonth(context.TODO(), date("2025-03-05"))
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, models.Period{Year: 2025, Month: 2}, result.Period)
	assert.Len(t, result.Archived, 1)
	assert.Equal(t, 1, result.Failed)
}
