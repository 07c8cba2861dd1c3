package models

import (
	"strconv"
	"time"
)

const (
	LedgerEventMovementPosted    = "movement.posted"
	LedgerEventTransferCompleted = "transfer.completed"
	LedgerEventObligationSettled = "obligation.settled"
)

// LedgerEvent is published after a money changing unit of work commits.
type LedgerEvent struct {
	Type          string    `json:"type"`
	BankAccountID int64     `json:"bankAccountId,omitempty"`
	MovementIDs   []int64   `json:"movementIds,omitempty"`
	ObligationID  int64     `json:"obligationId,omitempty"`
	Reference     string    `json:"reference,omitempty"`
	Amount        Money     `json:"amount"`
	Direction     string    `json:"direction,omitempty"`
	Status        string    `json:"status,omitempty"`
	OccurredAt    time.Time `json:"occurredAt"`
}

// Key partitions events by bank account so consumers see them in order.
func (e LedgerEvent) Key() string {
	return strconv.FormatInt(e.BankAccountID, 10)
}
