package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"furniture/internal/core/application/usecases/queries"
	"furniture/internal/core/domain/model/kernel"
	"furniture/internal/core/domain/model/order"
	"furniture/internal/pkg/errs"
)

// ReconcileDelays are the delays, measured from the write, of the two
// convergence reads. Short must be positive and less than Long.
type ReconcileDelays struct {
	Short time.Duration
	Long  time.Duration
}

// DefaultReconcileDelays is used for the zero ReconcileDelays.
var DefaultReconcileDelays = ReconcileDelays{Short: 50 * time.Millisecond, Long: 500 * time.Millisecond}

// Validate reports delays that do not describe a short read followed by a longer one.
func (d ReconcileDelays) Validate() error {
	if d.Short <= 0 {
		return errs.NewValueIsOutOfRangeError("short reconcile delay", d.Short, "1ns", d.Long)
	}
	if d.Long <= d.Short {
		return errs.NewValueIsInvalidErrorWithCause(
			"reconcile delays",
			fmt.Errorf("long delay %s must exceed short delay %s", d.Long, d.Short),
		)
	}
	return nil
}

func (d ReconcileDelays) list() []time.Duration {
	return []time.Duration{d.Short, d.Long}
}

// OrderReader is the read path whose lag the reconciler observes.
type OrderReader interface {
	Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderView, error)
}

// RefreshReconciler schedules delayed re-reads of an order after a status write.
// Every read runs in its own goroutine; one failing read does not affect the others.
type RefreshReconciler struct {
	reader  OrderReader
	delays  []time.Duration
	metrics *Metrics
	logger  *slog.Logger
	life    *lifetime
}

// NewRefreshReconciler creates a reconciler reading through reader at the given
// delays after each write. The zero ReconcileDelays uses DefaultReconcileDelays.
func NewRefreshReconciler(
	reader OrderReader,
	delays ReconcileDelays,
	metrics *Metrics,
	logger *slog.Logger,
) (*RefreshReconciler, error) {
	if delays == (ReconcileDelays{}) {
		delays = DefaultReconcileDelays
	}
	if err := delays.Validate(); err != nil {
		return nil, err
	}

	return &RefreshReconciler{
		reader:  reader,
		delays:  delays.list(),
		metrics: metrics,
		logger:  logger.With("component", "refresh_reconciler"),
		life:    newLifetime(),
	}, nil
}

// ScheduleConverge schedules the two reads and returns at once.
// Reads still pending when ctx ends or Stop is called are cancelled.
func (r *RefreshReconciler) ScheduleConverge(ctx context.Context, orderID kernel.UUID, expected order.Status) {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		r.logger.ErrorContext(ctx, "cannot schedule convergence", "order_id", orderID.String(), "error", err)
		return
	}

	for attempt, delay := range r.delays {
		scheduled := r.life.goBound(ctx, func(ctx context.Context) {
			r.readAfter(ctx, query, expected, attempt+1, delay)
		})
		if !scheduled {
			r.logger.DebugContext(ctx, "reconciler stopped, convergence skipped", "order_id", orderID.String())
			return
		}
	}
}

// Stop cancels pending reads and waits for running ones.
func (r *RefreshReconciler) Stop() {
	r.life.stop()
	r.logger.InfoContext(context.Background(), "Refresh reconciler stopped")
}

func (r *RefreshReconciler) readAfter(
	ctx context.Context,
	query queries.GetOrderQuery,
	expected order.Status,
	attempt int,
	delay time.Duration,
) {
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		r.metrics.ReconcileReads.WithLabelValues("cancelled").Inc()
		return
	case <-timer.C:
	}

	log := r.logger.With("order_id", query.OrderID().String(), "attempt", attempt)

	view, err := r.reader.Handle(ctx, query)
	switch {
	case err != nil:
		r.metrics.ReconcileReads.WithLabelValues("failed").Inc()
		log.WarnContext(ctx, "convergence read failed", "error", err)
	case view.Status != expected:
		r.metrics.ReconcileReads.WithLabelValues("stale").Inc()
		log.InfoContext(ctx, "read path has not converged",
			"expected", expected.String(),
			"observed", view.Status.String(),
		)
	default:
		r.metrics.ReconcileReads.WithLabelValues("converged").Inc()
		log.DebugContext(ctx, "read path converged", "status", view.Status.String())
	}
}
