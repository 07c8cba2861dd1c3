package services

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/xuri/excelize/v2"

	"github.com/erpcore/go-fin-ledger/internal/common"
	"github.com/erpcore/go-fin-ledger/internal/common/xlog"
	"github.com/erpcore/go-fin-ledger/internal/models"
	"github.com/erpcore/go-fin-ledger/internal/monitoring"
)

const statementSheet = "Statement"

var statementHeader = []interface{}{
	"Value date", "Posted at", "Movement", "Kind", "Description", "Reference", "Debit", "Credit", "Balance", "Reconciled",
}

//go:generate mockgen -source=statement_export_service.go -destination=mock/statement_export_service.go -package=mock
type StatementExportService interface {
	ExportStatement(ctx context.Context, accountID int64, from, to time.Time) (models.StatementFile, error)

	// ArchivePreviousMonth uploads the statement of the month before asOf for
	// every active account.
	ArchivePreviousMonth(ctx context.Context, asOf time.Time) (models.ArchiveResult, error)
}

type statementExport service

var _ StatementExportService = (*statementExport)(nil)

func (s *statementExport) ExportStatement(ctx context.Context, accountID int64, from, to time.Time) (file models.StatementFile, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	account, err := s.srv.sqlRepo.GetBankAccountRepository().Get(ctx, accountID)
	if err != nil {
		return file, err
	}
	statement, err := s.srv.Journal.Statement(ctx, accountID, from, to)
	if err != nil {
		return file, err
	}

	data, err := renderStatement(account, statement)
	if err != nil {
		return file, fmt.Errorf("render statement of bank account %d: %w", accountID, err)
	}

	return models.StatementFile{
		FileName:    models.StatementFileName(accountID, from, to),
		ContentType: models.ContentTypeXLSX,
		Data:        data,
	}, nil
}

func (s *statementExport) ArchivePreviousMonth(ctx context.Context, asOf time.Time) (result models.ArchiveResult, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	period := models.PeriodOf(asOf).Previous()
	result = models.ArchiveResult{Period: period, Archived: []string{}}

	accounts, err := s.srv.sqlRepo.GetBankAccountRepository().List(ctx, models.BankAccountFilter{ActiveOnly: true})
	if err != nil {
		return result, err
	}

	var errs *multierror.Error
	for _, account := range accounts {
		url, err := s.archive(ctx, account.ID, period)
		if err != nil {
			result.Failed++
			errs = multierror.Append(errs, fmt.Errorf("bank account %d: %w", account.ID, err))
			continue
		}
		result.Archived = append(result.Archived, url)
	}

	xlog.Info(ctx, "[STATEMENT-ARCHIVE] archive finished",
		xlog.String("period", period.String()),
		xlog.Int("archived", len(result.Archived)),
		xlog.Int("failed", result.Failed))

	return result, errs.ErrorOrNil()
}

func (s *statementExport) archive(ctx context.Context, accountID int64, period models.Period) (string, error) {
	file, err := s.ExportStatement(ctx, accountID, period.FirstDay(), period.LastDay())
	if err != nil {
		return "", err
	}

	payload := models.NewStatementArchivePayload(s.srv.conf.CloudStorageConfig.StatementFolder, accountID, period)
	return s.srv.cloudStorage.Upload(ctx, payload, file.ContentType, file.Data)
}

func renderStatement(account models.BankAccount, statement models.Statement) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", statementSheet); err != nil {
		return nil, err
	}

	rows := [][]interface{}{
		{"Bank account", fmt.Sprintf("%s (%s %s %s)", account.Name, account.BankCode, account.Branch, account.AccountNumber)},
		{"Period", fmt.Sprintf("%s to %s",
			statement.From.Format(common.DateFormatYYYYMMDD), statement.To.Format(common.DateFormatYYYYMMDD))},
		{"Opening balance", statement.OpeningBalance.String()},
		{},
		statementHeader,
	}

	running := statement.OpeningBalance
	for _, m := range statement.Movements {
		running = running.Add(m.Signed())

		debit, credit := "", ""
		if m.Direction == models.DirectionDebit {
			debit = m.Amount.String()
		} else {
			credit = m.Amount.String()
		}
		rows = append(rows, []interface{}{
			m.ValueDate.Format(common.DateFormatYYYYMMDD),
			m.PostedAt.Format(common.DateFormatYYYYMMDDWithTimeAndOffset),
			m.ID,
			string(m.Kind),
			m.Description,
			m.Reference.String,
			debit,
			credit,
			running.String(),
			m.Reconciled,
		})
	}
	rows = append(rows, []interface{}{}, []interface{}{"Closing balance", statement.ClosingBalance.String()})

	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err = f.SetSheetRow(statementSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
