package jobs

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "furniture"

// Metrics groups the collectors fed by background work.
type Metrics struct {
	// ProductionDispatched counts production dispatches by outcome:
	// created, invalid_argument, unavailable, cancelled or failed.
	ProductionDispatched *prometheus.CounterVec

	// ReconcileReads counts convergence reads by outcome:
	// converged, stale, failed or cancelled.
	ReconcileReads *prometheus.CounterVec

	// OrdersMissingProduction is the size of the last production sweep result.
	OrdersMissingProduction prometheus.Gauge

	// KanbanColumnsRepaired counts renumber runs by outcome: ok or failed.
	KanbanColumnsRepaired *prometheus.CounterVec
}

// NewMetrics registers the collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		ProductionDispatched: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "production",
			Name:      "dispatch_total",
			Help:      "Production operation dispatches after an order entered in_production, by outcome.",
		}, []string{"outcome"}),
		ReconcileReads: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "reconciler",
			Name:      "reads_total",
			Help:      "Delayed order re-reads scheduled after a status write, by outcome.",
		}, []string{"outcome"}),
		OrdersMissingProduction: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "production",
			Name:      "orders_missing_operation",
			Help:      "Orders in in_production without a produce operation at the last sweep.",
		}),
		KanbanColumnsRepaired: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "kanban",
			Name:      "column_repairs_total",
			Help:      "Kanban column renumber runs, by outcome.",
		}, []string{"outcome"}),
	}
}
