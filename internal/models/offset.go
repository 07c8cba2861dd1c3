package models

import (
	"time"

	"github.com/erpcore/go-fin-ledger/internal/common"
)

// Offset settles a payable against a receivable without moving cash.
type Offset struct {
	ID           int64
	PayableID    int64
	ReceivableID int64
	Amount       Money
	OffsetDate   time.Time
	Note         string
	CreatedAt    time.Time
}

type OffsetIn struct {
	PayableID    int64
	ReceivableID int64
	Amount       Money
	OffsetDate   time.Time
	Note         string
}

type DoOffsetRequest struct {
	PayableID    int64  `json:"payableId" validate:"required,gt=0" example:"10"`
	ReceivableID int64  `json:"receivableId" validate:"required,gt=0" example:"11"`
	Amount       Money  `json:"amount" validate:"moneyGreaterThan=0" swaggertype:"string" example:"250.00"`
	OffsetDate   string `json:"offsetDate" validate:"omitempty,date" example:"2025-01-31"`
	Note         string `json:"note" validate:"max=255"`
}

func (r DoOffsetRequest) ToOffsetIn() (OffsetIn, error) {
	in := OffsetIn{
		PayableID:    r.PayableID,
		ReceivableID: r.ReceivableID,
		Amount:       r.Amount,
		Note:         r.Note,
	}
	if r.OffsetDate != "" {
		date, err := common.ParseStringToDatetime(common.DateFormatYYYYMMDD, r.OffsetDate)
		if err != nil {
			return OffsetIn{}, err
		}
		in.OffsetDate = date
	}
	return in, nil
}

type OffsetResult struct {
	Offset     Offset
	Payable    Obligation
	Receivable Obligation
}

type OffsetResultOut struct {
	Kind       string        `json:"kind" example:"offset"`
	ID         int64         `json:"id"`
	Amount     Money         `json:"amount" swaggertype:"string"`
	OffsetDate string        `json:"offsetDate"`
	Note       string        `json:"note"`
	Payable    ObligationOut `json:"payable"`
	Receivable ObligationOut `json:"receivable"`
}

func (r OffsetResult) ToResponse() OffsetResultOut {
	return OffsetResultOut{
		Kind:       "offset",
		ID:         r.Offset.ID,
		Amount:     r.Offset.Amount,
		OffsetDate: r.Offset.OffsetDate.Format(common.DateFormatYYYYMMDD),
		Note:       r.Offset.Note,
		Payable:    r.Payable.ToResponse(),
		Receivable: r.Receivable.ToResponse(),
	}
}
