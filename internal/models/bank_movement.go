package models

import (
	"database/sql"
	"time"

	"github.com/erpcore/go-fin-ledger/internal/common"
)

type MovementKind string

const (
	MovementKindDeposit     MovementKind = "deposit"
	MovementKindWithdrawal  MovementKind = "withdrawal"
	MovementKindFee         MovementKind = "fee"
	MovementKindTransferIn  MovementKind = "transfer_in"
	MovementKindTransferOut MovementKind = "transfer_out"
	MovementKindInterest    MovementKind = "interest"
	MovementKindReversal    MovementKind = "reversal"
	MovementKindOther       MovementKind = "other"
)

func (k MovementKind) Valid() bool {
	switch k {
	case MovementKindDeposit, MovementKindWithdrawal, MovementKindFee,
		MovementKindTransferIn, MovementKindTransferOut, MovementKindInterest,
		MovementKindReversal, MovementKindOther:
		return true
	}
	return false
}

// FixedDirection returns the direction implied by the kind. Reversal and
// other carry the direction chosen by the caller.
func (k MovementKind) FixedDirection() (Direction, bool) {
	switch k {
	case MovementKindDeposit, MovementKindTransferIn, MovementKindInterest:
		return DirectionCredit, true
	case MovementKindWithdrawal, MovementKindFee, MovementKindTransferOut:
		return DirectionDebit, true
	}
	return "", false
}

type Direction string

const (
	DirectionCredit Direction = "credit"
	DirectionDebit  Direction = "debit"
)

func (d Direction) Valid() bool {
	return d == DirectionCredit || d == DirectionDebit
}

func (d Direction) Opposite() Direction {
	if d == DirectionCredit {
		return DirectionDebit
	}
	return DirectionCredit
}

// ResolveDirection picks the movement direction for kind. An empty direction
// is filled from the kind, a contradicting one is rejected.
func ResolveDirection(kind MovementKind, direction Direction) (Direction, error) {
	if !kind.Valid() {
		return "", common.ErrInvalidDirection
	}

	fixed, ok := kind.FixedDirection()
	if ok {
		if direction != "" && direction != fixed {
			return "", common.ErrInvalidDirection
		}
		return fixed, nil
	}

	if !direction.Valid() {
		return "", common.ErrInvalidDirection
	}
	return direction, nil
}

// SignedAmount is +amount for credits and -amount for debits.
func SignedAmount(direction Direction, amount Money) Money {
	if direction == DirectionDebit {
		return amount.Neg()
	}
	return amount
}

type BankMovement struct {
	ID               int64
	BankAccountID    int64
	Kind             MovementKind
	Direction        Direction
	Amount           Money
	PostedAt         time.Time
	ValueDate        time.Time
	Description      string
	ObligationID     sql.NullInt64
	PairedMovementID sql.NullInt64
	Reference        sql.NullString
	Reconciled       bool
	ReconciledAt     sql.NullTime
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (m BankMovement) Signed() Money {
	return SignedAmount(m.Direction, m.Amount)
}

func (m BankMovement) IsSettlement() bool {
	return m.ObligationID.Valid
}

func (m BankMovement) IsPaired() bool {
	return m.PairedMovementID.Valid
}

func (m BankMovement) IsTransferLeg() bool {
	return m.IsPaired() && (m.Kind == MovementKindTransferIn || m.Kind == MovementKindTransferOut)
}

// IsLinked reports movements tied to an obligation or to another movement.
func (m BankMovement) IsLinked() bool {
	return m.IsSettlement() || m.IsPaired()
}

type PostMovementIn struct {
	BankAccountID int64
	Kind          MovementKind
	Direction     Direction
	Amount        Money
	ValueDate     time.Time
	Description   string
	ObligationID  sql.NullInt64
}

type DoPostMovementRequest struct {
	BankAccountID int64  `json:"bankAccountId" validate:"required,gt=0" example:"1"`
	Kind          string `json:"kind" validate:"required,oneof=deposit withdrawal fee transfer_in transfer_out interest reversal other" example:"deposit"`
	Direction     string `json:"direction" validate:"omitempty,oneof=credit debit" example:"credit"`
	Amount        Money  `json:"amount" validate:"moneyGreaterThan=0" swaggertype:"string" example:"1500.00"`
	ValueDate     string `json:"valueDate" validate:"required,date" example:"2025-01-10"`
	Description   string `json:"description" validate:"max=255"`
	ObligationID  int64  `json:"obligationId" validate:"gte=0" example:"0"`
}

func (r DoPostMovementRequest) ToPostIn() (PostMovementIn, error) {
	valueDate, err := common.ParseStringToDatetime(common.DateFormatYYYYMMDD, r.ValueDate)
	if err != nil {
		return PostMovementIn{}, err
	}

	return PostMovementIn{
		BankAccountID: r.BankAccountID,
		Kind:          MovementKind(r.Kind),
		Direction:     Direction(r.Direction),
		Amount:        r.Amount,
		ValueDate:     valueDate,
		Description:   r.Description,
		ObligationID:  nullID(r.ObligationID),
	}, nil
}

// MovementPatch holds the fields an update may change, nil means unchanged.
type MovementPatch struct {
	Kind        *MovementKind
	Direction   *Direction
	Amount      *Money
	ValueDate   *time.Time
	Description *string
}

// TouchesAmount reports whether the patch can change the balance effect.
func (p MovementPatch) TouchesAmount() bool {
	return p.Kind != nil || p.Direction != nil || p.Amount != nil
}

// Apply returns m with the patch applied, the direction is resolved again
// against the resulting kind.
func (p MovementPatch) Apply(m BankMovement) (BankMovement, error) {
	if p.Kind != nil {
		m.Kind = *p.Kind
	}
	if p.Amount != nil {
		if !p.Amount.IsPositive() {
			return m, common.ErrInvalidAmount
		}
		m.Amount = *p.Amount
	}
	if p.ValueDate != nil {
		m.ValueDate = *p.ValueDate
	}
	if p.Description != nil {
		m.Description = *p.Description
	}

	if p.Kind != nil || p.Direction != nil {
		var requested Direction
		if p.Direction != nil {
			requested = *p.Direction
		} else if _, fixed := m.Kind.FixedDirection(); !fixed {
			requested = m.Direction
		}
		direction, err := ResolveDirection(m.Kind, requested)
		if err != nil {
			return m, err
		}
		m.Direction = direction
	}

	return m, nil
}

type DoUpdateMovementRequest struct {
	Kind        *string `json:"kind" validate:"omitempty,oneof=deposit withdrawal fee transfer_in transfer_out interest reversal other"`
	Direction   *string `json:"direction" validate:"omitempty,oneof=credit debit"`
	Amount      *Money  `json:"amount" swaggertype:"string"`
	ValueDate   *string `json:"valueDate" validate:"omitempty,date"`
	Description *string `json:"description" validate:"omitempty,max=255"`
}

func (r DoUpdateMovementRequest) ToPatch() (MovementPatch, error) {
	var patch MovementPatch
	if r.Kind != nil {
		kind := MovementKind(*r.Kind)
		patch.Kind = &kind
	}
	if r.Direction != nil {
		direction := Direction(*r.Direction)
		patch.Direction = &direction
	}
	if r.Amount != nil {
		amount := *r.Amount
		patch.Amount = &amount
	}
	if r.ValueDate != nil {
		valueDate, err := common.ParseStringToDatetime(common.DateFormatYYYYMMDD, *r.ValueDate)
		if err != nil {
			return MovementPatch{}, err
		}
		patch.ValueDate = &valueDate
	}
	patch.Description = r.Description

	return patch, nil
}

type ReverseMovementIn struct {
	MovementID  int64
	ValueDate   time.Time
	Description string
}

type DoReverseMovementRequest struct {
	ValueDate   string `json:"valueDate" validate:"required,date" example:"2025-01-15"`
	Description string `json:"description" validate:"max=255"`
}

type DoReconcileRequest struct {
	MovementIDs []int64 `json:"movementIds" validate:"required,min=1,dive,gt=0"`
}

type MovementFilter struct {
	From       *time.Time
	To         *time.Time
	Reconciled *bool
	Limit      int
	Offset     int
}

type DoListMovementRequest struct {
	From       string `query:"from" validate:"omitempty,date"`
	To         string `query:"to" validate:"omitempty,date"`
	Reconciled *bool  `query:"reconciled"`
	Limit      int    `query:"limit" validate:"omitempty,gte=0"`
	Offset     int    `query:"offset" validate:"omitempty,gte=0"`
}

func (r DoListMovementRequest) ToFilter() (MovementFilter, error) {
	filter := MovementFilter{
		Reconciled: r.Reconciled,
		Limit:      r.Limit,
		Offset:     r.Offset,
	}
	if r.From != "" {
		from, err := common.ParseStringToDatetime(common.DateFormatYYYYMMDD, r.From)
		if err != nil {
			return filter, err
		}
		filter.From = &from
	}
	if r.To != "" {
		to, err := common.ParseStringToDatetime(common.DateFormatYYYYMMDD, r.To)
		if err != nil {
			return filter, err
		}
		filter.To = &to
	}
	return filter, nil
}

type BankMovementOut struct {
	Kind             string  `json:"kind" example:"bankMovement"`
	ID               int64   `json:"id"`
	BankAccountID    int64   `json:"bankAccountId"`
	MovementKind     string  `json:"movementKind"`
	Direction        string  `json:"direction"`
	Amount           Money   `json:"amount" swaggertype:"string"`
	PostedAt         string  `json:"postedAt"`
	ValueDate        string  `json:"valueDate"`
	Description      string  `json:"description"`
	ObligationID     *int64  `json:"obligationId"`
	PairedMovementID *int64  `json:"pairedMovementId"`
	Reference        *string `json:"reference"`
	Reconciled       bool    `json:"reconciled"`
	ReconciledAt     *string `json:"reconciledAt"`
}

func (m BankMovement) ToResponse() BankMovementOut {
	out := BankMovementOut{
		Kind:          "bankMovement",
		ID:            m.ID,
		BankAccountID: m.BankAccountID,
		MovementKind:  string(m.Kind),
		Direction:     string(m.Direction),
		Amount:        m.Amount,
		PostedAt:      m.PostedAt.Format(common.DateFormatYYYYMMDDWithTimeAndOffset),
		ValueDate:     m.ValueDate.Format(common.DateFormatYYYYMMDD),
		Description:   m.Description,
		Reconciled:    m.Reconciled,
	}
	if m.ObligationID.Valid {
		out.ObligationID = &m.ObligationID.Int64
	}
	if m.PairedMovementID.Valid {
		out.PairedMovementID = &m.PairedMovementID.Int64
	}
	if m.Reference.Valid {
		out.Reference = &m.Reference.String
	}
	if m.ReconciledAt.Valid {
		at := m.ReconciledAt.Time.Format(common.DateFormatYYYYMMDDWithTimeAndOffset)
		out.ReconciledAt = &at
	}
	return out
}

func ToMovementResponses(movements []BankMovement) []BankMovementOut {
	out := make([]BankMovementOut, 0, len(movements))
	for _, m := range movements {
		out = append(out, m.ToResponse())
	}
	return out
}
