package shared

import (
	"context"
	"log/slog"

	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OperationCreateOrderEvent = "create_order_event"
	OperationListOrderEvents  = "list_order_events"
)

var (
	accessDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "orderevents",
		Subsystem: "access",
		Name:      "decisions_total",
		Help:      "Total number of order access decisions broken down by operation and deciding rule.",
	}, []string{"operation", "rule"})

	operationOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "orderevents",
		Subsystem: "operation",
		Name:      "outcomes_total",
		Help:      "Total number of order event operations broken down by operation and failure kind.",
	}, []string{"operation", "outcome"})

	staleOrders = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "orderevents",
		Name:      "stale_orders",
		Help:      "Orders whose latest event is non-terminal and older than the staleness threshold.",
	})
)

// RecordAccessDecision counts one access guard decision.
func RecordAccessDecision(operation string, decision services.Decision) {
	accessDecisions.WithLabelValues(operation, string(decision.Rule)).Inc()
}

// SetStaleOrders publishes the size of the latest stale-order report.
func SetStaleOrders(n int) {
	staleOrders.Set(float64(n))
}

// LogOutcome writes one log entry for a finished operation and counts it.
// Success is logged at info level; every failure at error level with its kind.
func LogOutcome(ctx context.Context, logger *slog.Logger, operation string, err error, attrs ...any) {
	if err == nil {
		operationOutcomes.WithLabelValues(operation, "ok").Inc()
		logger.InfoContext(ctx, operation+" succeeded", attrs...)
		return
	}

	kind := errs.KindOf(err)
	operationOutcomes.WithLabelValues(operation, kind.String()).Inc()
	logger.ErrorContext(ctx, operation+" failed", append(attrs, "kind", kind.String(), "error", err)...)
}
