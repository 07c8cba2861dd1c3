package models

import (
	"time"

	"github.com/erpcore/go-fin-ledger/internal/common"
)

// OpenObligationTotal aggregates open remaining amounts of one direction.
type OpenObligationTotal struct {
	Direction ObligationDirection `json:"direction"`
	Count     int                 `json:"count"`
	Remaining Money               `json:"remaining"`
}

type CashFlowProjection struct {
	From             time.Time           `json:"from"`
	To               time.Time           `json:"to"`
	CurrentCash      Money               `json:"currentCash"`
	Payables         OpenObligationTotal `json:"payables"`
	Receivables      OpenObligationTotal `json:"receivables"`
	ProjectedBalance Money               `json:"projectedBalance"`
}

func NewCashFlowProjection(from, to time.Time, cash Money, payables, receivables OpenObligationTotal) CashFlowProjection {
	return CashFlowProjection{
		From:             from,
		To:               to,
		CurrentCash:      cash,
		Payables:         payables,
		Receivables:      receivables,
		ProjectedBalance: cash.Add(receivables.Remaining).Sub(payables.Remaining),
	}
}

type OpenObligationTotalOut struct {
	Count     int   `json:"count"`
	Remaining Money `json:"remaining" swaggertype:"string"`
}

type CashFlowProjectionOut struct {
	Kind             string                 `json:"kind" example:"cashFlowProjection"`
	From             string                 `json:"from"`
	To               string                 `json:"to"`
	CurrentCash      Money                  `json:"currentCash" swaggertype:"string"`
	Payables         OpenObligationTotalOut `json:"payables"`
	Receivables      OpenObligationTotalOut `json:"receivables"`
	ProjectedBalance Money                  `json:"projectedBalance" swaggertype:"string"`
}

func (p CashFlowProjection) ToResponse() CashFlowProjectionOut {
	return CashFlowProjectionOut{
		Kind:             "cashFlowProjection",
		From:             p.From.Format(common.DateFormatYYYYMMDD),
		To:               p.To.Format(common.DateFormatYYYYMMDD),
		CurrentCash:      p.CurrentCash,
		Payables:         OpenObligationTotalOut{Count: p.Payables.Count, Remaining: p.Payables.Remaining},
		Receivables:      OpenObligationTotalOut{Count: p.Receivables.Count, Remaining: p.Receivables.Remaining},
		ProjectedBalance: p.ProjectedBalance,
	}
}
