package models

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/erpcore/go-fin-ledger/internal/common"
)

type Installment struct {
	Index   int
	Count   int
	Amount  Money
	DueDate time.Time
}

// SplitInstallments divides principal evenly. Every installment carries
// round(principal/count, 2); the rounding remainder is not corrected so the
// sum may differ from principal by up to count*0.005.
func SplitInstallments(principal Money, count int, firstDueDate time.Time, intervalDays int) ([]Installment, error) {
	if !principal.IsPositive() {
		return nil, common.ErrInvalidAmount
	}
	if count < 1 {
		return nil, common.ErrInvalidInstallment
	}
	if intervalDays < 1 {
		return nil, fmt.Errorf("%w: interval must be at least one day", common.ErrInvalidInstallment)
	}

	amount := principal.DivRound(int64(count))
	if !amount.IsPositive() {
		return nil, common.ErrInvalidAmount
	}

	installments := make([]Installment, 0, count)
	for i := 0; i < count; i++ {
		installments = append(installments, Installment{
			Index:   i + 1,
			Count:   count,
			Amount:  amount,
			DueDate: firstDueDate.AddDate(0, 0, i*intervalDays),
		})
	}
	return installments, nil
}

// InstallmentDescription suffixes description with "(i/N)".
func InstallmentDescription(description string, index, count int) string {
	if description == "" {
		return fmt.Sprintf("(%d/%d)", index, count)
	}
	return fmt.Sprintf("%s (%d/%d)", description, index, count)
}

type InstallmentPlanIn struct {
	Direction       ObligationDirection
	Counterparty    string
	Description     string
	Principal       Money
	Count           int
	FirstDueDate    time.Time
	IntervalDays    int
	IssueDate       time.Time
	SourceReference sql.NullString
	CostCenterID    sql.NullInt64
}

// Obligations expands the plan into one create input per installment.
func (p InstallmentPlanIn) Obligations(installments []Installment) []CreateObligationIn {
	out := make([]CreateObligationIn, 0, len(installments))
	for _, inst := range installments {
		out = append(out, CreateObligationIn{
			Direction:        p.Direction,
			Counterparty:     p.Counterparty,
			Description:      InstallmentDescription(p.Description, inst.Index, inst.Count),
			OriginalAmount:   inst.Amount,
			IssueDate:        p.IssueDate,
			DueDate:          inst.DueDate,
			SourceReference:  p.SourceReference,
			CostCenterID:     p.CostCenterID,
			InstallmentIndex: sql.NullInt32{Int32: int32(inst.Index), Valid: true},
			InstallmentCount: sql.NullInt32{Int32: int32(inst.Count), Valid: true},
		})
	}
	return out
}

type DoInstallmentPlanRequest struct {
	Direction       string `json:"direction" validate:"required,oneof=payable receivable" example:"payable"`
	Counterparty    string `json:"counterparty" validate:"required,max=160" example:"ACME Supplies"`
	Description     string `json:"description" validate:"max=240" example:"Forklift"`
	Principal       Money  `json:"principal" validate:"moneyGreaterThan=0" swaggertype:"string" example:"100.00"`
	Count           int    `json:"count" validate:"required,gte=1" example:"3"`
	FirstDueDate    string `json:"firstDueDate" validate:"required,date" example:"2025-01-10"`
	IntervalDays    int    `json:"intervalDays" validate:"gte=0" example:"30"`
	IssueDate       string `json:"issueDate" validate:"omitempty,date"`
	SourceReference string `json:"sourceReference" validate:"max=60"`
	CostCenterID    int64  `json:"costCenterId" validate:"gte=0"`
}

// ToPlanIn converts the request, a zero interval falls back to defaultInterval.
func (r DoInstallmentPlanRequest) ToPlanIn(defaultInterval int) (InstallmentPlanIn, error) {
	first, err := common.ParseStringToDatetime(common.DateFormatYYYYMMDD, r.FirstDueDate)
	if err != nil {
		return InstallmentPlanIn{}, err
	}

	in := InstallmentPlanIn{
		Direction:       ObligationDirection(r.Direction),
		Counterparty:    r.Counterparty,
		Description:     r.Description,
		Principal:       r.Principal,
		Count:           r.Count,
		FirstDueDate:    first,
		IntervalDays:    r.IntervalDays,
		SourceReference: nullString(r.SourceReference),
		CostCenterID:    nullID(r.CostCenterID),
	}
	if in.IntervalDays == 0 {
		in.IntervalDays = defaultInterval
	}
	if r.IssueDate != "" {
		in.IssueDate, err = common.ParseStringToDatetime(common.DateFormatYYYYMMDD, r.IssueDate)
		if err != nil {
			return InstallmentPlanIn{}, err
		}
	}
	return in, nil
}

type DoInstallmentPreviewRequest struct {
	Principal    Money  `json:"principal" validate:"moneyGreaterThan=0" swaggertype:"string" example:"100.00"`
	Count        int    `json:"count" validate:"required,gte=1" example:"3"`
	FirstDueDate string `json:"firstDueDate" validate:"required,date" example:"2025-01-10"`
	IntervalDays int    `json:"intervalDays" validate:"gte=0" example:"30"`
}

type InstallmentOut struct {
	Index   int    `json:"index"`
	Count   int    `json:"count"`
	Amount  Money  `json:"amount" swaggertype:"string"`
	DueDate string `json:"dueDate"`
}

type InstallmentPreviewOut struct {
	Kind         string           `json:"kind" example:"installmentPreview"`
	Principal    Money            `json:"principal" swaggertype:"string"`
	Total        Money            `json:"total" swaggertype:"string"`
	Drift        Money            `json:"drift" swaggertype:"string"`
	Installments []InstallmentOut `json:"installments"`
}

// NewInstallmentPreview reports the split together with its rounding drift.
func NewInstallmentPreview(principal Money, installments []Installment) InstallmentPreviewOut {
	out := InstallmentPreviewOut{
		Kind:         "installmentPreview",
		Principal:    principal,
		Installments: make([]InstallmentOut, 0, len(installments)),
	}
	total := ZeroMoney()
	for _, inst := range installments {
		total = total.Add(inst.Amount)
		out.Installments = append(out.Installments, InstallmentOut{
			Index:   inst.Index,
			Count:   inst.Count,
			Amount:  inst.Amount,
			DueDate: inst.DueDate.Format(common.DateFormatYYYYMMDD),
		})
	}
	out.Total = total
	out.Drift = total.Sub(principal)
	return out
}
