package publisher

import (
	"context"

	"github.com/erpcore/go-fin-ledger/internal/models"
)

const HeaderEventType = "event-type"

//go:generate mockgen -source=ledger_event.go -destination=mock/ledger_event.go -package=mock
type LedgerEventPublisher interface {
	PublishLedgerEvent(ctx context.Context, event models.LedgerEvent) error
}

type ledgerEventPublisher struct {
	publisher Publisher
}

func NewLedgerEventPublisher(p Publisher) LedgerEventPublisher {
	return &ledgerEventPublisher{publisher: p}
}

// PublishLedgerEvent keys the message by bank account so one account's events stay on one partition.
func (l *ledgerEventPublisher) PublishLedgerEvent(ctx context.Context, event models.LedgerEvent) error {
	return l.publisher.Publish(ctx, event,
		WithKey(event.Key()),
		WithHeaders(map[string]string{HeaderEventType: event.Type}),
	)
}
