package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/erpcore/go-fin-ledger/internal/models"
)

// LedgerPrometheusMetrics counts money movements. A nil receiver records nothing.
type LedgerPrometheusMetrics struct {
	movements        *prometheus.CounterVec
	movementAmounts  *prometheus.CounterVec
	settlements      *prometheus.CounterVec
	transfers        prometheus.Counter
	conflicts        *prometheus.CounterVec
	publishFailures  *prometheus.CounterVec
	recurringResults *prometheus.CounterVec
	balanceDrift     *prometheus.GaugeVec
}

func newLedgerPrometheusMetrics(reg prometheus.Registerer) *LedgerPrometheusMetrics {
	mtc := &LedgerPrometheusMetrics{
		movements: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_bank_movements_total",
				Help: "Number of bank movements posted by kind and direction",
			},
			[]string{"kind", "direction"},
		),
		movementAmounts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_bank_movement_amount_total",
				Help: "Sum of posted bank movement amounts by kind",
			},
			[]string{"kind"},
		),
		settlements: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_settlements_total",
				Help: "Number of settlements and offsets by obligation direction and resulting status",
			},
			[]string{"operation", "direction", "status"},
		),
		transfers: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "ledger_transfers_total",
				Help: "Number of completed inter-account transfers",
			},
		),
		conflicts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_storage_conflicts_total",
				Help: "Number of serialization conflicts detected by operation",
			},
			[]string{"operation"},
		),
		publishFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_event_publish_failures_total",
				Help: "Number of ledger events that could not be published",
			},
			[]string{"event_type"},
		),
		recurringResults: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_recurring_templates_total",
				Help: "Recurring template outcomes per generation run",
			},
			[]string{"result"},
		),
		balanceDrift: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "ledger_bank_account_balance_drift",
				Help: "Cached balance minus recomputed balance per bank account, set by the audit job",
			},
			[]string{"bank_account_id"},
		),
	}

	reg.MustRegister(
		mtc.movements,
		mtc.movementAmounts,
		mtc.settlements,
		mtc.transfers,
		mtc.conflicts,
		mtc.publishFailures,
		mtc.recurringResults,
		mtc.balanceDrift,
	)

	return mtc
}

func (m *LedgerPrometheusMetrics) RecordMovement(mv models.BankMovement) {
	if m == nil {
		return
	}
	amount, _ := mv.Amount.Decimal().Float64()

	m.movements.WithLabelValues(string(mv.Kind), string(mv.Direction)).Inc()
	m.movementAmounts.WithLabelValues(string(mv.Kind)).Add(amount)
}

func (m *LedgerPrometheusMetrics) RecordSettlement(operation string, ob models.Obligation) {
	if m == nil {
		return
	}
	m.settlements.WithLabelValues(operation, string(ob.Direction), string(ob.Status)).Inc()
}

func (m *LedgerPrometheusMetrics) RecordTransfer() {
	if m == nil {
		return
	}
	m.transfers.Inc()
}

func (m *LedgerPrometheusMetrics) RecordConflict(operation string) {
	if m == nil {
		return
	}
	m.conflicts.WithLabelValues(operation).Inc()
}

func (m *LedgerPrometheusMetrics) RecordPublishFailure(eventType string) {
	if m == nil {
		return
	}
	m.publishFailures.WithLabelValues(eventType).Inc()
}

func (m *LedgerPrometheusMetrics) RecordGeneration(res models.GenerationResult) {
	if m == nil {
		return
	}
	m.recurringResults.WithLabelValues("generated").Add(float64(len(res.Generated)))
	m.recurringResults.WithLabelValues("skipped").Add(float64(res.Skipped))
	m.recurringResults.WithLabelValues("failed").Add(float64(res.Failed))
}

func (m *LedgerPrometheusMetrics) RecordAudit(audit models.BalanceAudit) {
	if m == nil {
		return
	}
	drift, _ := audit.Difference().Decimal().Float64()
	m.balanceDrift.WithLabelValues(strconv.FormatInt(audit.AccountID, 10)).Set(drift)
}
