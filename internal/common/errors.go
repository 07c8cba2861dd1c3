package common

import (
	"database/sql"
	"errors"
	"fmt"
)

var (
	ErrNoRowsAffected        = errors.New("no rows affected")
	ErrValidation            = errors.New("validation failed")
	ErrDataNotFound          = errors.New("data not found")
	ErrInternalServerError   = errors.New("internal server error")
	ErrInvalidFormatDate     = errors.New("invalid format date")
	ErrDataExist             = errors.New("data exist")
	ErrNoRows                = sql.ErrNoRows
	ErrInvalidFingerprint    = errors.New("idempotency key cannot be reused for different requests payload")
	ErrRequestBeingProcessed = errors.New("request with same idempotency key is being processed")
	ErrMissingIdempotencyKey = errors.New("missing idempotency key. this operation requires idempotency key")
	ErrJobAlreadyRunning     = errors.New("job is already running on another worker")

	// ledger rules
	ErrInvalidAmount      = errors.New("amount must be greater than zero")
	ErrAlreadyReconciled  = errors.New("movement is reconciled and can not be changed")
	ErrAlreadySettled     = errors.New("obligation is already settled")
	ErrOverSettlement     = errors.New("amount applied exceeds the remaining balance of the obligation")
	ErrInsufficientFunds  = errors.New("insufficient funds on bank account")
	ErrSameAccount        = errors.New("source and destination account must be different")
	ErrStorageConflict    = errors.New("concurrent update detected, retry the operation")
	ErrAccountInactive    = errors.New("bank account is inactive")
	ErrInvalidDirection   = errors.New("direction does not match the movement kind or obligation")
	ErrLinkedMovement     = errors.New("movement is linked to a settlement or transfer and only description or value date can change")
	ErrAlreadyReversed    = errors.New("movement already has a reversal")
	ErrInvalidPeriod      = errors.New("invalid period")
	ErrInvalidInstallment = errors.New("installment count must be at least one")
	ErrInvalidDueDay      = errors.New("due day must be between 1 and 28")
	ErrCostCenterInactive = errors.New("cost center is inactive")
)

type WrapError struct {
	Causer interface{}
	Err    error
}

func (e WrapError) Error() string {
	return fmt.Sprintf("%v, root cause: %v", e.Causer, e.Err)
}

func (e WrapError) Unwrap() error {
	return e.Err
}
