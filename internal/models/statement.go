package models

import (
	"time"

	"github.com/erpcore/go-fin-ledger/internal/common"
)

type Statement struct {
	AccountID      int64
	From           time.Time
	To             time.Time
	OpeningBalance Money
	Movements      []BankMovement
	ClosingBalance Money
}

// BuildStatement closes the period from the opening balance and the period
// movements, which must already be ordered.
func BuildStatement(accountID int64, from, to time.Time, opening Money, movements []BankMovement) Statement {
	closing := opening
	for _, m := range movements {
		closing = closing.Add(m.Signed())
	}

	return Statement{
		AccountID:      accountID,
		From:           from,
		To:             to,
		OpeningBalance: opening,
		Movements:      movements,
		ClosingBalance: closing,
	}
}

type DoStatementRequest struct {
	From string `query:"from" validate:"required,date" example:"2025-01-01"`
	To   string `query:"to" validate:"required,date" example:"2025-01-31"`
}

func (r DoStatementRequest) Range() (from, to time.Time, err error) {
	from, err = common.ParseStringToDatetime(common.DateFormatYYYYMMDD, r.From)
	if err != nil {
		return
	}
	to, err = common.ParseStringToDatetime(common.DateFormatYYYYMMDD, r.To)
	if err != nil {
		return
	}
	if to.Before(from) {
		err = common.ErrInvalidPeriod
	}
	return
}

type StatementLineOut struct {
	BankMovementOut
	RunningBalance Money `json:"runningBalance" swaggertype:"string"`
}

type StatementOut struct {
	Kind           string             `json:"kind" example:"statement"`
	AccountID      int64              `json:"accountId"`
	From           string             `json:"from"`
	To             string             `json:"to"`
	OpeningBalance Money              `json:"openingBalance" swaggertype:"string"`
	ClosingBalance Money              `json:"closingBalance" swaggertype:"string"`
	Lines          []StatementLineOut `json:"lines"`
}

func (s Statement) ToResponse() StatementOut {
	lines := make([]StatementLineOut, 0, len(s.Movements))
	running := s.OpeningBalance
	for _, m := range s.Movements {
		running = running.Add(m.Signed())
		lines = append(lines, StatementLineOut{
			BankMovementOut: m.ToResponse(),
			RunningBalance:  running,
		})
	}

	return StatementOut{
		Kind:           "statement",
		AccountID:      s.AccountID,
		From:           s.From.Format(common.DateFormatYYYYMMDD),
		To:             s.To.Format(common.DateFormatYYYYMMDD),
		OpeningBalance: s.OpeningBalance,
		ClosingBalance: s.ClosingBalance,
		Lines:          lines,
	}
}

// ReconciliationWorklist lists the movements still waiting for a bank
// statement match.
type ReconciliationWorklist struct {
	AccountID         int64
	Movements         []BankMovement
	UnreconciledTotal Money
}

func NewReconciliationWorklist(accountID int64, movements []BankMovement) ReconciliationWorklist {
	total := ZeroMoney()
	for _, m := range movements {
		total = total.Add(m.Signed())
	}
	return ReconciliationWorklist{
		AccountID:         accountID,
		Movements:         movements,
		UnreconciledTotal: total,
	}
}

type ReconciliationWorklistOut struct {
	Kind              string            `json:"kind" example:"reconciliationWorklist"`
	AccountID         int64             `json:"accountId"`
	Count             int               `json:"count"`
	UnreconciledTotal Money             `json:"unreconciledTotal" swaggertype:"string"`
	Movements         []BankMovementOut `json:"movements"`
}

func (w ReconciliationWorklist) ToResponse() ReconciliationWorklistOut {
	return ReconciliationWorklistOut{
		Kind:              "reconciliationWorklist",
		AccountID:         w.AccountID,
		Count:             len(w.Movements),
		UnreconciledTotal: w.UnreconciledTotal,
		Movements:         ToMovementResponses(w.Movements),
	}
}
