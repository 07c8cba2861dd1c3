package models

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/erpcore/go-fin-ledger/internal/common"
)

const (
	PeriodicityMonthly = "monthly"

	// MaxDueDay keeps every due day valid in every month.
	MaxDueDay = 28
)

// Period is a calendar month, rendered as YYYY-MM.
type Period struct {
	Year  int
	Month time.Month
}

func NewPeriod(year, month int) (Period, error) {
	if year < 1 || month < 1 || month > 12 {
		return Period{}, fmt.Errorf("%w: %04d-%02d", common.ErrInvalidPeriod, year, month)
	}
	return Period{Year: year, Month: time.Month(month)}, nil
}

func ParsePeriod(value string) (Period, error) {
	t, err := time.Parse(common.DateFormatYYYYMM, value)
	if err != nil {
		return Period{}, fmt.Errorf("%w: %s", common.ErrInvalidPeriod, value)
	}
	return PeriodOf(t), nil
}

func PeriodOf(t time.Time) Period {
	return Period{Year: t.Year(), Month: t.Month()}
}

func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}

func (p Period) FirstDay() time.Time {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
}

func (p Period) LastDay() time.Time {
	return p.FirstDay().AddDate(0, 1, -1)
}

func (p Period) Previous() Period {
	return PeriodOf(p.FirstDay().AddDate(0, -1, 0))
}

// DueDate places min(dueDay, 28) inside the period.
func (p Period) DueDate(dueDay int) time.Time {
	if dueDay > MaxDueDay {
		dueDay = MaxDueDay
	}
	if dueDay < 1 {
		dueDay = 1
	}
	return time.Date(p.Year, p.Month, dueDay, 0, 0, 0, 0, time.UTC)
}

func (p Period) Before(o Period) bool {
	return p.Year < o.Year || (p.Year == o.Year && p.Month < o.Month)
}

type RecurringTemplate struct {
	ID                  int64
	Direction           ObligationDirection
	Counterparty        string
	Description         string
	Amount              Money
	DueDay              int
	Periodicity         string
	StartDate           time.Time
	EndDate             sql.NullTime
	Active              bool
	LastGeneratedPeriod sql.NullString
	CostCenterID        sql.NullInt64
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// EligibleFor reports whether an obligation should be generated for p.
func (t RecurringTemplate) EligibleFor(p Period) bool {
	if !t.Active {
		return false
	}
	if p.Before(PeriodOf(t.StartDate)) {
		return false
	}
	if t.EndDate.Valid && PeriodOf(t.EndDate.Time).Before(p) {
		return false
	}
	return !(t.LastGeneratedPeriod.Valid && t.LastGeneratedPeriod.String == p.String())
}

// ObligationFor builds the obligation generated for period p.
func (t RecurringTemplate) ObligationFor(p Period) CreateObligationIn {
	return CreateObligationIn{
		Direction:           t.Direction,
		Counterparty:        t.Counterparty,
		Description:         t.Description,
		OriginalAmount:      t.Amount,
		IssueDate:           p.FirstDay(),
		DueDate:             p.DueDate(t.DueDay),
		CostCenterID:        t.CostCenterID,
		RecurringTemplateID: sql.NullInt64{Int64: t.ID, Valid: true},
		RecurringPeriod:     sql.NullString{String: p.String(), Valid: true},
	}
}

type CreateRecurringTemplateIn struct {
	Direction    ObligationDirection
	Counterparty string
	Description  string
	Amount       Money
	DueDay       int
	Periodicity  string
	StartDate    time.Time
	EndDate      sql.NullTime
	CostCenterID sql.NullInt64
}

type DoCreateRecurringTemplateRequest struct {
	Direction    string `json:"direction" validate:"required,oneof=payable receivable" example:"payable"`
	Counterparty string `json:"counterparty" validate:"required,max=160" example:"Landlord Ltd"`
	Description  string `json:"description" validate:"max=255" example:"Office rent"`
	Amount       Money  `json:"amount" validate:"moneyGreaterThan=0" swaggertype:"string" example:"3500.00"`
	DueDay       int    `json:"dueDay" validate:"required,gte=1,lte=28" example:"10"`
	Periodicity  string `json:"periodicity" validate:"omitempty,oneof=monthly" example:"monthly"`
	StartDate    string `json:"startDate" validate:"required,date" example:"2025-01-01"`
	EndDate      string `json:"endDate" validate:"omitempty,date"`
	CostCenterID int64  `json:"costCenterId" validate:"gte=0"`
}

func (r DoCreateRecurringTemplateRequest) ToCreateIn() (CreateRecurringTemplateIn, error) {
	start, err := common.ParseStringToDatetime(common.DateFormatYYYYMMDD, r.StartDate)
	if err != nil {
		return CreateRecurringTemplateIn{}, err
	}

	in := CreateRecurringTemplateIn{
		Direction:    ObligationDirection(r.Direction),
		Counterparty: r.Counterparty,
		Description:  r.Description,
		Amount:       r.Amount,
		DueDay:       r.DueDay,
		Periodicity:  r.Periodicity,
		StartDate:    start,
		CostCenterID: nullID(r.CostCenterID),
	}
	if in.Periodicity == "" {
		in.Periodicity = PeriodicityMonthly
	}
	if r.EndDate != "" {
		end, err := common.ParseStringToDatetime(common.DateFormatYYYYMMDD, r.EndDate)
		if err != nil {
			return CreateRecurringTemplateIn{}, err
		}
		in.EndDate = sql.NullTime{Time: end, Valid: true}
	}
	return in, nil
}

type DoListRecurringTemplateRequest struct {
	ActiveOnly bool `query:"activeOnly"`
}

type DoGenerateRecurringRequest struct {
	Year  int `json:"year" validate:"required,gte=2000,lte=9999" example:"2025"`
	Month int `json:"month" validate:"required,gte=1,lte=12" example:"2"`
}

type RecurringTemplateOut struct {
	Kind                string  `json:"kind" example:"recurringTemplate"`
	ID                  int64   `json:"id"`
	Direction           string  `json:"direction"`
	Counterparty        string  `json:"counterparty"`
	Description         string  `json:"description"`
	Amount              Money   `json:"amount" swaggertype:"string"`
	DueDay              int     `json:"dueDay"`
	Periodicity         string  `json:"periodicity"`
	StartDate           string  `json:"startDate"`
	EndDate             *string `json:"endDate"`
	Active              bool    `json:"active"`
	LastGeneratedPeriod *string `json:"lastGeneratedPeriod"`
	CostCenterID        *int64  `json:"costCenterId"`
}

func (t RecurringTemplate) ToResponse() RecurringTemplateOut {
	out := RecurringTemplateOut{
		Kind:         "recurringTemplate",
		ID:           t.ID,
		Direction:    string(t.Direction),
		Counterparty: t.Counterparty,
		Description:  t.Description,
		Amount:       t.Amount,
		DueDay:       t.DueDay,
		Periodicity:  t.Periodicity,
		StartDate:    t.StartDate.Format(common.DateFormatYYYYMMDD),
		Active:       t.Active,
	}
	if t.EndDate.Valid {
		end := t.EndDate.Time.Format(common.DateFormatYYYYMMDD)
		out.EndDate = &end
	}
	if t.LastGeneratedPeriod.Valid {
		out.LastGeneratedPeriod = &t.LastGeneratedPeriod.String
	}
	if t.CostCenterID.Valid {
		out.CostCenterID = &t.CostCenterID.Int64
	}
	return out
}

// GenerationResult summarises one GenerateForPeriod run.
type GenerationResult struct {
	Period    Period
	Generated []Obligation
	Skipped   int
	Failed    int
}

type GenerationResultOut struct {
	Kind      string          `json:"kind" example:"recurringGeneration"`
	Period    string          `json:"period"`
	Generated []ObligationOut `json:"generated"`
	Skipped   int             `json:"skipped"`
	Failed    int             `json:"failed"`
}

func (r GenerationResult) ToResponse() GenerationResultOut {
	return GenerationResultOut{
		Kind:      "recurringGeneration",
		Period:    r.Period.String(),
		Generated: ToObligationResponses(r.Generated),
		Skipped:   r.Skipped,
		Failed:    r.Failed,
	}
}
