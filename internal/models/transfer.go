package models

import (
	"time"

	"github.com/erpcore/go-fin-ledger/internal/common"
)

type TransferIn struct {
	SourceAccountID      int64
	DestinationAccountID int64
	Amount               Money
	Date                 time.Time
	Description          string
}

type DoTransferRequest struct {
	SourceAccountID      int64  `json:"sourceAccountId" validate:"required,gt=0" example:"1"`
	DestinationAccountID int64  `json:"destinationAccountId" validate:"required,gt=0" example:"2"`
	Amount               Money  `json:"amount" validate:"moneyGreaterThan=0" swaggertype:"string" example:"2000.00"`
	Date                 string `json:"date" validate:"required,date" example:"2025-01-15"`
	Description          string `json:"description" validate:"max=240"`
}

func (r DoTransferRequest) ToTransferIn() (TransferIn, error) {
	date, err := common.ParseStringToDatetime(common.DateFormatYYYYMMDD, r.Date)
	if err != nil {
		return TransferIn{}, err
	}
	return TransferIn{
		SourceAccountID:      r.SourceAccountID,
		DestinationAccountID: r.DestinationAccountID,
		Amount:               r.Amount,
		Date:                 date,
		Description:          r.Description,
	}, nil
}

type TransferResult struct {
	Reference string
	Debit     BankMovement
	Credit    BankMovement
}

type TransferResultOut struct {
	Kind      string          `json:"kind" example:"transfer"`
	Reference string          `json:"reference"`
	Debit     BankMovementOut `json:"debit"`
	Credit    BankMovementOut `json:"credit"`
}

func (r TransferResult) ToResponse() TransferResultOut {
	return TransferResultOut{
		Kind:      "transfer",
		Reference: r.Reference,
		Debit:     r.Debit.ToResponse(),
		Credit:    r.Credit.ToResponse(),
	}
}
