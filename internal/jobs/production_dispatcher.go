package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"furniture/internal/core/application/usecases/commands"
	"furniture/internal/core/domain/model/production"
	"furniture/internal/pkg/errs"

	"github.com/cenkalti/backoff/v4"
)

// ProductionOperationCreator creates a production operation idempotently per episode.
type ProductionOperationCreator interface {
	Handle(ctx context.Context, cmd commands.CreateProductionOperationCommand) (*production.Operation, error)
}

// RetryPolicy bounds the attempts of one dispatch.
type RetryPolicy struct {
	// MaxAttempts counts the first attempt. Zero means one attempt.
	MaxAttempts uint64
	// InitialInterval is the first backoff delay; later delays grow exponentially.
	InitialInterval time.Duration
}

// DefaultRetryPolicy is used for zero fields of a RetryPolicy.
var DefaultRetryPolicy = RetryPolicy{MaxAttempts: 3, InitialInterval: 100 * time.Millisecond}

// ProductionDispatcher runs production operation creation as a post-commit task.
// Invalid arguments are not retried. Every failure is logged and counted; none
// reaches the caller of Dispatch.
type ProductionDispatcher struct {
	creator ProductionOperationCreator
	policy  RetryPolicy
	metrics *Metrics
	logger  *slog.Logger
	life    *lifetime
}

func NewProductionDispatcher(
	creator ProductionOperationCreator,
	policy RetryPolicy,
	metrics *Metrics,
	logger *slog.Logger,
) *ProductionDispatcher {
	if policy.MaxAttempts == 0 {
		policy.MaxAttempts = DefaultRetryPolicy.MaxAttempts
	}
	if policy.InitialInterval <= 0 {
		policy.InitialInterval = DefaultRetryPolicy.InitialInterval
	}

	return &ProductionDispatcher{
		creator: creator,
		policy:  policy,
		metrics: metrics,
		logger:  logger.With("component", "production_dispatcher"),
		life:    newLifetime(),
	}
}

// Dispatch starts the creation in the background and returns at once.
func (d *ProductionDispatcher) Dispatch(ctx context.Context, cmd commands.CreateProductionOperationCommand) {
	if !d.life.goBound(ctx, func(ctx context.Context) { d.run(ctx, cmd) }) {
		d.metrics.ProductionDispatched.WithLabelValues("cancelled").Inc()
		d.logger.WarnContext(ctx, "dispatcher stopped, production operation not created",
			"order_id", cmd.OrderID().String(),
			"episode_id", cmd.EpisodeID().String(),
		)
	}
}

// Stop cancels running dispatches and waits for them to return.
func (d *ProductionDispatcher) Stop() {
	d.life.stop()
	d.logger.InfoContext(context.Background(), "Production dispatcher stopped")
}

func (d *ProductionDispatcher) run(ctx context.Context, cmd commands.CreateProductionOperationCommand) {
	log := d.logger.With(
		"order_id", cmd.OrderID().String(),
		"episode_id", cmd.EpisodeID().String(),
		"operation_type", cmd.OperationType().String(),
	)

	var created *production.Operation
	operation := func() error {
		op, err := d.creator.Handle(ctx, cmd)
		if err != nil {
			if errs.IsInvalidArgument(err) {
				return backoff.Permanent(err)
			}
			return err
		}
		created = op
		return nil
	}

	notify := func(err error, next time.Duration) {
		log.DebugContext(ctx, "production operation attempt failed, retrying", "error", err, "retry_in", next)
	}

	err := backoff.RetryNotify(operation, d.backOff(ctx), notify)
	if err == nil {
		d.metrics.ProductionDispatched.WithLabelValues("created").Inc()
		log.InfoContext(ctx, "production operation created", "operation_id", created.ID().String())
		return
	}

	outcome := failureOutcome(err)
	d.metrics.ProductionDispatched.WithLabelValues(outcome).Inc()
	log.ErrorContext(ctx, "production operation not created", "outcome", outcome, "error", err)
}

func (d *ProductionDispatcher) backOff(ctx context.Context) backoff.BackOff {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = d.policy.InitialInterval
	exp.MaxElapsedTime = 0

	return backoff.WithContext(backoff.WithMaxRetries(exp, d.policy.MaxAttempts-1), ctx)
}

func failureOutcome(err error) string {
	switch {
	case errs.IsInvalidArgument(err):
		return "invalid_argument"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "cancelled"
	case errors.Is(err, errs.ErrRepositoryUnavailable):
		return "unavailable"
	default:
		return "failed"
	}
}
