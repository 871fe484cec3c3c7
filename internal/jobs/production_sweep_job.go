package jobs

import (
	"context"
	"log/slog"

	"furniture/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// DefaultProductionSweepSchedule runs the sweep every five minutes.
const DefaultProductionSweepSchedule = "0 */5 * * * *"

// MissingProductionFinder lists in_production orders without a produce operation.
type MissingProductionFinder interface {
	GetAllInProductionWithoutOperation(ctx context.Context) ([]*order.Order, error)
}

// ProductionSweepJob reports orders left in_production without a produce
// operation. It does not create operations.
type ProductionSweepJob struct {
	finder   MissingProductionFinder
	schedule string
	metrics  *Metrics
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewProductionSweepJob(
	finder MissingProductionFinder,
	schedule string,
	metrics *Metrics,
	logger *slog.Logger,
) *ProductionSweepJob {
	if schedule == "" {
		schedule = DefaultProductionSweepSchedule
	}

	return &ProductionSweepJob{
		finder:   finder,
		schedule: schedule,
		metrics:  metrics,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "production_sweep_job"),
	}
}

// Start schedules the sweep.
func (j *ProductionSweepJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if _, err := j.RunOnce(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Production sweep failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Production sweep job started", "schedule", j.schedule)
	return nil
}

// Stop stops scheduling and waits for a running sweep.
func (j *ProductionSweepJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Production sweep job stopped")
}

// RunOnce performs one sweep and returns the number of orders reported.
func (j *ProductionSweepJob) RunOnce(ctx context.Context) (int, error) {
	orders, err := j.finder.GetAllInProductionWithoutOperation(ctx)
	if err != nil {
		return 0, err
	}

	j.metrics.OrdersMissingProduction.Set(float64(len(orders)))
	for _, o := range orders {
		j.logger.WarnContext(ctx, "order in production has no production operation",
			"order_id", o.ID().String(),
			"order_number", o.Number(),
			"since", o.UpdatedAt(),
		)
	}

	return len(orders), nil
}
