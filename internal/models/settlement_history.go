package models

import (
	"database/sql"
	"time"

	"github.com/erpcore/go-fin-ledger/internal/common"
)

const (
	SettlementOperationSettlement = "settlement"
	SettlementOperationOffset     = "offset"
)

// SettlementHistory is an immutable trace of every amount applied to an
// obligation.
type SettlementHistory struct {
	ID             int64
	Operation      string
	ObligationID   int64
	BankMovementID sql.NullInt64
	OffsetID       sql.NullInt64
	AmountApplied  Money
	InterestDelta  Money
	DiscountDelta  Money
	SettledAt      time.Time
	Note           string
	CreatedAt      time.Time
}

type SettlementHistoryOut struct {
	Kind           string `json:"kind" example:"settlementHistory"`
	ID             int64  `json:"id"`
	Operation      string `json:"operation"`
	ObligationID   int64  `json:"obligationId"`
	BankMovementID *int64 `json:"bankMovementId"`
	OffsetID       *int64 `json:"offsetId"`
	AmountApplied  Money  `json:"amountApplied" swaggertype:"string"`
	InterestDelta  Money  `json:"interestDelta" swaggertype:"string"`
	DiscountDelta  Money  `json:"discountDelta" swaggertype:"string"`
	SettledAt      string `json:"settledAt"`
	Note           string `json:"note"`
}

func (h SettlementHistory) ToResponse() SettlementHistoryOut {
	out := SettlementHistoryOut{
		Kind:          "settlementHistory",
		ID:            h.ID,
		Operation:     h.Operation,
		ObligationID:  h.ObligationID,
		AmountApplied: h.AmountApplied,
		InterestDelta: h.InterestDelta,
		DiscountDelta: h.DiscountDelta,
		SettledAt:     h.SettledAt.Format(common.DateFormatYYYYMMDD),
		Note:          h.Note,
	}
	if h.BankMovementID.Valid {
		out.BankMovementID = &h.BankMovementID.Int64
	}
	if h.OffsetID.Valid {
		out.OffsetID = &h.OffsetID.Int64
	}
	return out
}

func ToSettlementHistoryResponses(histories []SettlementHistory) []SettlementHistoryOut {
	out := make([]SettlementHistoryOut, 0, len(histories))
	for _, h := range histories {
		out = append(out, h.ToResponse())
	}
	return out
}
