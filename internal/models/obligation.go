package models

import (
	"database/sql"
	"time"

	"github.com/erpcore/go-fin-ledger/internal/common"
)

type ObligationDirection string

const (
	ObligationPayable    ObligationDirection = "payable"
	ObligationReceivable ObligationDirection = "receivable"
)

func (d ObligationDirection) Valid() bool {
	return d == ObligationPayable || d == ObligationReceivable
}

// MovementDirection is the bank movement direction a settlement posts:
// receivables bring money in, payables take it out.
func (d ObligationDirection) MovementDirection() Direction {
	if d == ObligationReceivable {
		return DirectionCredit
	}
	return DirectionDebit
}

type ObligationStatus string

const (
	ObligationStatusPending ObligationStatus = "pending"
	ObligationStatusPartial ObligationStatus = "partial"
	ObligationStatusSettled ObligationStatus = "settled"
)

func (s ObligationStatus) Valid() bool {
	switch s {
	case ObligationStatusPending, ObligationStatusPartial, ObligationStatusSettled:
		return true
	}
	return false
}

// DeriveStatus is the only source of an obligation status.
func DeriveStatus(original, settled, interest, discount Money) ObligationStatus {
	remaining := original.Add(interest).Sub(discount).Sub(settled)
	switch {
	case remaining.IsEffectivelyZero() || remaining.IsNegative():
		return ObligationStatusSettled
	case settled.IsPositive():
		return ObligationStatusPartial
	default:
		return ObligationStatusPending
	}
}

type Obligation struct {
	ID                  int64
	Direction           ObligationDirection
	Counterparty        string
	Description         string
	SourceReference     sql.NullString
	CostCenterID        sql.NullInt64
	OriginalAmount      Money
	SettledAmount       Money
	InterestAccrued     Money
	DiscountGranted     Money
	IssueDate           time.Time
	DueDate             time.Time
	SettledAt           sql.NullTime
	Status              ObligationStatus
	InstallmentIndex    sql.NullInt32
	InstallmentCount    sql.NullInt32
	RecurringTemplateID sql.NullInt64
	RecurringPeriod     sql.NullString
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Remaining is what is still owed: original + interest - discount - settled.
func (o Obligation) Remaining() Money {
	return o.OriginalAmount.Add(o.InterestAccrued).Sub(o.DiscountGranted).Sub(o.SettledAmount)
}

func (o Obligation) IsSettled() bool {
	return o.Status == ObligationStatusSettled
}

// CheckSettlement validates a settlement against the current obligation state.
func (o Obligation) CheckSettlement(amount, interest, discount Money) error {
	if !amount.IsPositive() || interest.IsNegative() || discount.IsNegative() {
		return common.ErrInvalidAmount
	}
	remaining := o.OriginalAmount.
		Add(o.InterestAccrued).Add(interest).
		Sub(o.DiscountGranted).Sub(discount).
		Sub(o.SettledAmount)
	if !amount.Sub(remaining).LessThan(NewMoney(SettledTolerance)) {
		return common.ErrOverSettlement
	}
	return nil
}

// ApplySettlement returns the obligation after a settlement. settledAt is only
// recorded the first time the obligation is touched.
func (o Obligation) ApplySettlement(amount, interest, discount Money, at time.Time) (Obligation, error) {
	if err := o.CheckSettlement(amount, interest, discount); err != nil {
		return o, err
	}

	o.SettledAmount = o.SettledAmount.Add(amount)
	o.InterestAccrued = o.InterestAccrued.Add(interest)
	o.DiscountGranted = o.DiscountGranted.Add(discount)
	if !o.SettledAt.Valid {
		o.SettledAt = sql.NullTime{Time: at, Valid: true}
	}
	o.Status = DeriveStatus(o.OriginalAmount, o.SettledAmount, o.InterestAccrued, o.DiscountGranted)

	return o, nil
}

type CreateObligationIn struct {
	Direction           ObligationDirection
	Counterparty        string
	Description         string
	OriginalAmount      Money
	IssueDate           time.Time
	DueDate             time.Time
	SourceReference     sql.NullString
	CostCenterID        sql.NullInt64
	InstallmentIndex    sql.NullInt32
	InstallmentCount    sql.NullInt32
	RecurringTemplateID sql.NullInt64
	RecurringPeriod     sql.NullString
}

type DoCreateObligationRequest struct {
	Counterparty    string `json:"counterparty" validate:"required,max=160" example:"ACME Supplies"`
	Description     string `json:"description" validate:"max=255" example:"Office chairs"`
	OriginalAmount  Money  `json:"originalAmount" validate:"moneyGreaterThan=0" swaggertype:"string" example:"1200.00"`
	IssueDate       string `json:"issueDate" validate:"omitempty,date" example:"2025-01-02"`
	DueDate         string `json:"dueDate" validate:"required,date" example:"2025-02-02"`
	SourceReference string `json:"sourceReference" validate:"max=60" example:"PO-2025-0001"`
	CostCenterID    int64  `json:"costCenterId" validate:"gte=0" example:"3"`
}

func (r DoCreateObligationRequest) ToCreateIn(direction ObligationDirection) (CreateObligationIn, error) {
	dueDate, err := common.ParseStringToDatetime(common.DateFormatYYYYMMDD, r.DueDate)
	if err != nil {
		return CreateObligationIn{}, err
	}

	in := CreateObligationIn{
		Direction:       direction,
		Counterparty:    r.Counterparty,
		Description:     r.Description,
		OriginalAmount:  r.OriginalAmount,
		DueDate:         dueDate,
		SourceReference: nullString(r.SourceReference),
		CostCenterID:    nullID(r.CostCenterID),
	}
	if r.IssueDate != "" {
		in.IssueDate, err = common.ParseStringToDatetime(common.DateFormatYYYYMMDD, r.IssueDate)
		if err != nil {
			return CreateObligationIn{}, err
		}
	}
	return in, nil
}

type SettleIn struct {
	ObligationID  int64
	AmountApplied Money
	InterestDelta Money
	DiscountDelta Money
	BankAccountID int64
	SettledAt     time.Time
	Note          string
}

type DoSettleRequest struct {
	AmountApplied Money  `json:"amountApplied" validate:"moneyGreaterThan=0" swaggertype:"string" example:"1200.00"`
	InterestDelta Money  `json:"interestDelta" validate:"moneyGreaterThanOrEqual=0" swaggertype:"string" example:"0.00"`
	DiscountDelta Money  `json:"discountDelta" validate:"moneyGreaterThanOrEqual=0" swaggertype:"string" example:"0.00"`
	BankAccountID int64  `json:"bankAccountId" validate:"required,gt=0" example:"1"`
	SettledAt     string `json:"settledAt" validate:"omitempty,date" example:"2025-01-20"`
	Note          string `json:"note" validate:"max=255"`
}

func (r DoSettleRequest) ToSettleIn(obligationID int64) (SettleIn, error) {
	in := SettleIn{
		ObligationID:  obligationID,
		AmountApplied: r.AmountApplied,
		InterestDelta: r.InterestDelta,
		DiscountDelta: r.DiscountDelta,
		BankAccountID: r.BankAccountID,
		Note:          r.Note,
	}
	if r.SettledAt != "" {
		at, err := common.ParseStringToDatetime(common.DateFormatYYYYMMDD, r.SettledAt)
		if err != nil {
			return SettleIn{}, err
		}
		in.SettledAt = at
	}
	return in, nil
}

type SettlementResult struct {
	Obligation Obligation
	Movement   BankMovement
	History    SettlementHistory
}

type SettlementResultOut struct {
	Kind       string               `json:"kind" example:"settlement"`
	Obligation ObligationOut        `json:"obligation"`
	Movement   BankMovementOut      `json:"movement"`
	History    SettlementHistoryOut `json:"history"`
}

func (r SettlementResult) ToResponse() SettlementResultOut {
	return SettlementResultOut{
		Kind:       "settlement",
		Obligation: r.Obligation.ToResponse(),
		Movement:   r.Movement.ToResponse(),
		History:    r.History.ToResponse(),
	}
}

type DoRescheduleRequest struct {
	DueDate string `json:"dueDate" validate:"required,date" example:"2025-03-01"`
}

type ObligationFilter struct {
	Direction    ObligationDirection
	Status       ObligationStatus
	Counterparty string
	DueFrom      *time.Time
	DueTo        *time.Time
	Limit        int
	Offset       int
}

type DoListObligationRequest struct {
	Direction    string `query:"direction" validate:"omitempty,oneof=payable receivable"`
	Status       string `query:"status" validate:"omitempty,oneof=pending partial settled"`
	Counterparty string `query:"counterparty"`
	DueFrom      string `query:"dueFrom" validate:"omitempty,date"`
	DueTo        string `query:"dueTo" validate:"omitempty,date"`
	Limit        int    `query:"limit" validate:"omitempty,gte=0"`
	Offset       int    `query:"offset" validate:"omitempty,gte=0"`
}

func (r DoListObligationRequest) ToFilter() (ObligationFilter, error) {
	filter := ObligationFilter{
		Direction:    ObligationDirection(r.Direction),
		Status:       ObligationStatus(r.Status),
		Counterparty: r.Counterparty,
		Limit:        r.Limit,
		Offset:       r.Offset,
	}
	if r.DueFrom != "" {
		from, err := common.ParseStringToDatetime(common.DateFormatYYYYMMDD, r.DueFrom)
		if err != nil {
			return filter, err
		}
		filter.DueFrom = &from
	}
	if r.DueTo != "" {
		to, err := common.ParseStringToDatetime(common.DateFormatYYYYMMDD, r.DueTo)
		if err != nil {
			return filter, err
		}
		filter.DueTo = &to
	}
	return filter, nil
}

type ObligationOut struct {
	Kind                string  `json:"kind" example:"obligation"`
	ID                  int64   `json:"id"`
	Direction           string  `json:"direction"`
	Counterparty        string  `json:"counterparty"`
	Description         string  `json:"description"`
	SourceReference     *string `json:"sourceReference"`
	CostCenterID        *int64  `json:"costCenterId"`
	OriginalAmount      Money   `json:"originalAmount" swaggertype:"string"`
	SettledAmount       Money   `json:"settledAmount" swaggertype:"string"`
	InterestAccrued     Money   `json:"interestAccrued" swaggertype:"string"`
	DiscountGranted     Money   `json:"discountGranted" swaggertype:"string"`
	Remaining           Money   `json:"remaining" swaggertype:"string"`
	IssueDate           string  `json:"issueDate"`
	DueDate             string  `json:"dueDate"`
	SettledAt           *string `json:"settledAt"`
	Status              string  `json:"status"`
	InstallmentIndex    *int32  `json:"installmentIndex"`
	InstallmentCount    *int32  `json:"installmentCount"`
	RecurringTemplateID *int64  `json:"recurringTemplateId"`
	RecurringPeriod     *string `json:"recurringPeriod"`
}

func (o Obligation) ToResponse() ObligationOut {
	out := ObligationOut{
		Kind:            "obligation",
		ID:              o.ID,
		Direction:       string(o.Direction),
		Counterparty:    o.Counterparty,
		Description:     o.Description,
		OriginalAmount:  o.OriginalAmount,
		SettledAmount:   o.SettledAmount,
		InterestAccrued: o.InterestAccrued,
		DiscountGranted: o.DiscountGranted,
		Remaining:       o.Remaining(),
		IssueDate:       o.IssueDate.Format(common.DateFormatYYYYMMDD),
		DueDate:         o.DueDate.Format(common.DateFormatYYYYMMDD),
		Status:          string(o.Status),
	}
	if o.SourceReference.Valid {
		out.SourceReference = &o.SourceReference.String
	}
	if o.CostCenterID.Valid {
		out.CostCenterID = &o.CostCenterID.Int64
	}
	if o.SettledAt.Valid {
		at := o.SettledAt.Time.Format(common.DateFormatYYYYMMDDWithTimeAndOffset)
		out.SettledAt = &at
	}
	if o.InstallmentIndex.Valid {
		out.InstallmentIndex = &o.InstallmentIndex.Int32
	}
	if o.InstallmentCount.Valid {
		out.InstallmentCount = &o.InstallmentCount.Int32
	}
	if o.RecurringTemplateID.Valid {
		out.RecurringTemplateID = &o.RecurringTemplateID.Int64
	}
	if o.RecurringPeriod.Valid {
		out.RecurringPeriod = &o.RecurringPeriod.String
	}
	return out
}

func ToObligationResponses(obligations []Obligation) []ObligationOut {
	out := make([]ObligationOut, 0, len(obligations))
	for _, o := range obligations {
		out = append(out, o.ToResponse())
	}
	return out
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullID(id int64) sql.NullInt64 {
	return sql.NullInt64{Int64: id, Valid: id > 0}
}
