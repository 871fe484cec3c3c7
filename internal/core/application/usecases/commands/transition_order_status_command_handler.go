package commands

import (
	"context"
	"log/slog"

	"furniture/internal/core/domain/model/kernel"
	"furniture/internal/core/domain/model/order"
	"furniture/internal/core/domain/model/production"
	"furniture/internal/pkg/errs"
	"furniture/internal/pkg/keyed"
)

type (
	// ProductionDispatcher runs production operation creation after the status
	// write has committed. Dispatch must not block on the creation itself.
	ProductionDispatcher interface {
		Dispatch(ctx context.Context, cmd CreateProductionOperationCommand)
	}

	// ConvergenceScheduler schedules delayed re-reads of an order after a write.
	ConvergenceScheduler interface {
		ScheduleConverge(ctx context.Context, orderID kernel.UUID, expected order.Status)
	}

	// KanbanPlacer places an order in the column bound to status, if any.
	KanbanPlacer interface {
		PlaceForStatus(ctx context.Context, orderID kernel.UUID, status order.Status) error
	}
)

// TransitionOrderStatusCommandHandler coordinates an order status change.
//
// Per call it performs, in order:
//  1. a non-blocking busy check: a second transition for an order already in
//     flight fails with errs.BusyError
//  2. the transactional status write, compare-and-set on the status read
//  3. when entering in_production, the post-commit production dispatch
//  4. convergence scheduling
//  5. placement in the kanban column bound to the new status, if configured
//
// Only step 2 can fail the call. Once the write is issued it is not cancelled by ctx.
type TransitionOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	production ProductionDispatcher
	reconciler ConvergenceScheduler
	placer     KanbanPlacer
	inFlight   *keyed.Guard[kernel.UUID]
	logger     *slog.Logger
}

// NewTransitionOrderStatusCommandHandler wires the coordinator. placer may be nil
// when no column is bound to a status.
func NewTransitionOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	production ProductionDispatcher,
	reconciler ConvergenceScheduler,
	placer KanbanPlacer,
	logger *slog.Logger,
) TransitionOrderStatusCommandHandler {
	return TransitionOrderStatusCommandHandler{
		uowFactory: uowFactory,
		production: production,
		reconciler: reconciler,
		placer:     placer,
		inFlight:   &keyed.Guard[kernel.UUID]{},
		logger:     logger.With("component", "transition_order_status"),
	}
}

// Handle applies the transition and returns the updated order.
//
// Returns:
//   - errs.BusyError if another transition for the order is in flight
//   - errs.ObjectNotFoundError if the order does not exist
//   - errs.InvalidTransitionError if the order's status has no edge to the target
//   - errs.RepositoryUnavailableError for storage failures
func (h TransitionOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd TransitionOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	release, ok := h.inFlight.TryAcquire(cmd.OrderID())
	if !ok {
		return nil, errs.NewBusyError("order", cmd.OrderID())
	}
	defer release()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ctx = context.WithoutCancel(ctx)

	aggregate, err := h.applyStatus(ctx, cmd)
	if err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "order status changed",
		"order_id", cmd.OrderID().String(),
		"status", aggregate.Status().String(),
		"episode_id", cmd.EpisodeID().String(),
	)

	if cmd.Target() == order.InProduction {
		h.dispatchProduction(ctx, cmd)
	}

	// ctx no longer cancels; the reconciler's Stop, tied to the server
	// lifetime, is what ends these reads.
	h.reconciler.ScheduleConverge(ctx, cmd.OrderID(), cmd.Target())

	if h.placer != nil {
		if err = h.placer.PlaceForStatus(ctx, cmd.OrderID(), cmd.Target()); err != nil {
			h.logger.WarnContext(ctx, "kanban placement failed",
				"order_id", cmd.OrderID().String(),
				"status", cmd.Target().String(),
				"error", err,
			)
		}
	}

	return aggregate, nil
}

func (h TransitionOrderStatusCommandHandler) applyStatus(
	ctx context.Context,
	cmd TransitionOrderStatusCommand,
) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()

	aggregate, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	previous, err := aggregate.ChangeStatus(cmd.Target())
	if err != nil {
		return nil, err
	}

	if err = repo.UpdateStatus(ctx, aggregate, previous); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

func (h TransitionOrderStatusCommandHandler) dispatchProduction(ctx context.Context, cmd TransitionOrderStatusCommand) {
	produce, err := NewCreateProductionOperationCommand(
		cmd.OrderID(),
		cmd.EpisodeID(),
		production.Produce,
		production.StageDesign,
	)
	if err != nil {
		h.logger.ErrorContext(ctx, "cannot build production operation command",
			"order_id", cmd.OrderID().String(),
			"error", err,
		)
		return
	}

	h.production.Dispatch(ctx, produce)
}
