package models

import (
	"time"

	"github.com/erpcore/go-fin-ledger/internal/common"
)

type BankAccount struct {
	ID                 int64
	Name               string
	BankCode           string
	Branch             string
	AccountNumber      string
	OpeningBalance     Money
	OpeningBalanceDate time.Time
	CurrentBalance     Money
	Active             bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type CreateBankAccountIn struct {
	Name               string
	BankCode           string
	Branch             string
	AccountNumber      string
	OpeningBalance     Money
	OpeningBalanceDate time.Time
}

type DoCreateBankAccountRequest struct {
	Name               string `json:"name" validate:"required,max=120,noStartEndSpaces" example:"Main operating account"`
	BankCode           string `json:"bankCode" validate:"omitempty,max=10" example:"001"`
	Branch             string `json:"branch" validate:"omitempty,max=20" example:"1234-5"`
	AccountNumber      string `json:"accountNumber" validate:"omitempty,max=30" example:"98765-0"`
	OpeningBalance     Money  `json:"openingBalance" validate:"moneyGreaterThanOrEqual=0" swaggertype:"string" example:"1500.00"`
	OpeningBalanceDate string `json:"openingBalanceDate" validate:"required,date" example:"2025-01-01"`
}

func (r DoCreateBankAccountRequest) ToCreateIn() (CreateBankAccountIn, error) {
	date, err := common.ParseStringToDatetime(common.DateFormatYYYYMMDD, r.OpeningBalanceDate)
	if err != nil {
		return CreateBankAccountIn{}, err
	}

	return CreateBankAccountIn{
		Name:               r.Name,
		BankCode:           r.BankCode,
		Branch:             r.Branch,
		AccountNumber:      r.AccountNumber,
		OpeningBalance:     r.OpeningBalance,
		OpeningBalanceDate: date,
	}, nil
}

type BankAccountOut struct {
	Kind               string `json:"kind" example:"bankAccount"`
	ID                 int64  `json:"id" example:"1"`
	Name               string `json:"name"`
	BankCode           string `json:"bankCode"`
	Branch             string `json:"branch"`
	AccountNumber      string `json:"accountNumber"`
	OpeningBalance     Money  `json:"openingBalance" swaggertype:"string"`
	OpeningBalanceDate string `json:"openingBalanceDate"`
	CurrentBalance     Money  `json:"currentBalance" swaggertype:"string"`
	Active             bool   `json:"active"`
	CreatedAt          string `json:"createdAt"`
	UpdatedAt          string `json:"updatedAt"`
}

func (a BankAccount) ToResponse() BankAccountOut {
	return BankAccountOut{
		Kind:               "bankAccount",
		ID:                 a.ID,
		Name:               a.Name,
		BankCode:           a.BankCode,
		Branch:             a.Branch,
		AccountNumber:      a.AccountNumber,
		OpeningBalance:     a.OpeningBalance,
		OpeningBalanceDate: a.OpeningBalanceDate.Format(common.DateFormatYYYYMMDD),
		CurrentBalance:     a.CurrentBalance,
		Active:             a.Active,
		CreatedAt:          a.CreatedAt.Format(common.DateFormatYYYYMMDDWithTimeAndOffset),
		UpdatedAt:          a.UpdatedAt.Format(common.DateFormatYYYYMMDDWithTimeAndOffset),
	}
}

type BankAccountFilter struct {
	ActiveOnly bool `query:"activeOnly"`
}

// BalanceAudit compares the cached balance with the one derived from the
// movement log.
type BalanceAudit struct {
	AccountID         int64
	CachedBalance     Money
	RecomputedBalance Money
}

func (b BalanceAudit) Difference() Money {
	return b.CachedBalance.Sub(b.RecomputedBalance)
}

func (b BalanceAudit) Consistent() bool {
	return b.CachedBalance.Equal(b.RecomputedBalance)
}

type BalanceAuditOut struct {
	Kind              string `json:"kind" example:"balanceAudit"`
	AccountID         int64  `json:"accountId"`
	CachedBalance     Money  `json:"cachedBalance" swaggertype:"string"`
	RecomputedBalance Money  `json:"recomputedBalance" swaggertype:"string"`
	Difference        Money  `json:"difference" swaggertype:"string"`
	Consistent        bool   `json:"consistent"`
}

func (b BalanceAudit) ToResponse() BalanceAuditOut {
	return BalanceAuditOut{
		Kind:              "balanceAudit",
		AccountID:         b.AccountID,
		CachedBalance:     b.CachedBalance,
		RecomputedBalance: b.RecomputedBalance,
		Difference:        b.Difference(),
		Consistent:        b.Consistent(),
	}
}
