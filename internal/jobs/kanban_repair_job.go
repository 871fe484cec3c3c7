package jobs

import (
	"context"
	"log/slog"

	"furniture/internal/core/application/usecases/commands"
	"furniture/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultKanbanRepairSchedule runs the repair at the top of every hour.
const DefaultKanbanRepairSchedule = "0 0 * * * *"

type (
	KanbanColumnLister interface {
		Handle(ctx context.Context, query queries.ListKanbanColumnsQuery) ([]queries.KanbanColumnView, error)
	}

	KanbanColumnRenumberer interface {
		Handle(ctx context.Context, cmd commands.RenumberKanbanColumnCommand) (int, error)
	}
)

// KanbanRepairJob renumbers every kanban column on a slow schedule. A failing
// column is logged and the remaining columns are still repaired.
type KanbanRepairJob struct {
	lister     KanbanColumnLister
	renumberer KanbanColumnRenumberer
	schedule   string
	metrics    *Metrics
	cron       *cron.Cron
	logger     *slog.Logger
}

func NewKanbanRepairJob(
	lister KanbanColumnLister,
	renumberer KanbanColumnRenumberer,
	schedule string,
	metrics *Metrics,
	logger *slog.Logger,
) *KanbanRepairJob {
	if schedule == "" {
		schedule = DefaultKanbanRepairSchedule
	}

	return &KanbanRepairJob{
		lister:     lister,
		renumberer: renumberer,
		schedule:   schedule,
		metrics:    metrics,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "kanban_repair_job"),
	}
}

// Start schedules the repair.
func (j *KanbanRepairJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if _, err := j.RunOnce(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Kanban repair failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Kanban repair job started", "schedule", j.schedule)
	return nil
}

// Stop stops scheduling and waits for a running repair.
func (j *KanbanRepairJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Kanban repair job stopped")
}

// RunOnce renumbers every column and returns how many succeeded.
func (j *KanbanRepairJob) RunOnce(ctx context.Context) (int, error) {
	columns, err := j.lister.Handle(ctx, queries.NewListKanbanColumnsQuery())
	if err != nil {
		return 0, err
	}

	repaired := 0
	for _, column := range columns {
		cmd, cmdErr := commands.NewRenumberKanbanColumnCommand(column.ID)
		if cmdErr != nil {
			return repaired, cmdErr
		}

		size, renumberErr := j.renumberer.Handle(ctx, cmd)
		if renumberErr != nil {
			j.metrics.KanbanColumnsRepaired.WithLabelValues("failed").Inc()
			j.logger.WarnContext(ctx, "kanban column renumber failed",
				"column_id", column.ID.String(),
				"error", renumberErr,
			)
			continue
		}

		j.metrics.KanbanColumnsRepaired.WithLabelValues("ok").Inc()
		j.logger.DebugContext(ctx, "kanban column renumbered", "column_id", column.ID.String(), "size", size)
		repaired++
	}

	return repaired, nil
}
