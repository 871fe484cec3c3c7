package commands

import (
	"context"

	"furniture/internal/core/domain/model/kanban"
	"furniture/internal/core/domain/model/kernel"
	"furniture/internal/core/domain/services"
	"furniture/internal/core/ports"
	"furniture/internal/pkg/errs"
	"furniture/internal/pkg/keyed"
)

// maxMoveAttempts bounds how often a move re-reads an order that another move
// relocated between the placement read and the column locks.
const maxMoveAttempts = 3

// MoveOrderOnKanbanCommandHandler moves an order between or within kanban columns.
//
// Moves hold the sections of the source and target columns for the whole
// read-modify-write, so moves touching a common column serialize while moves on
// disjoint columns run independently. Both lanes are rewritten with contiguous
// zero-based positions.
type MoveOrderOnKanbanCommandHandler struct {
	uowFactory KanbanUoWFactory
	columns    *keyed.Mutex[string]
	planner    services.KanbanPlanner
}

// NewMoveOrderOnKanbanCommandHandler creates the handler. columns must be shared by
// every handler that rewrites column positions.
func NewMoveOrderOnKanbanCommandHandler(
	uowFactory KanbanUoWFactory,
	columns *keyed.Mutex[string],
) MoveOrderOnKanbanCommandHandler {
	return MoveOrderOnKanbanCommandHandler{
		uowFactory: uowFactory,
		columns:    columns,
		planner:    services.NewKanbanPlanner(),
	}
}

// Handle performs the move and reports the position actually used.
func (h MoveOrderOnKanbanCommandHandler) Handle(
	ctx context.Context,
	cmd MoveOrderOnKanbanCommand,
) (services.MoveResult, error) {
	if err := cmd.Validate(); err != nil {
		return services.MoveResult{}, err
	}

	source, err := h.currentColumn(ctx, cmd.OrderID())
	if err != nil {
		return services.MoveResult{}, err
	}

	for range maxMoveAttempts {
		result, moved, actual, moveErr := h.moveFrom(ctx, cmd, source)
		if moveErr != nil || moved {
			return result, moveErr
		}
		source = actual
	}

	return services.MoveResult{}, errs.NewBusyError("order", cmd.OrderID())
}

func (h MoveOrderOnKanbanCommandHandler) currentColumn(ctx context.Context, orderID kernel.UUID) (*kernel.UUID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	return aggregate.KanbanColumnID(), nil
}

// moveFrom runs the move under the locks of source and target. When the order is
// no longer in source it returns moved=false and the column it is in now.
func (h MoveOrderOnKanbanCommandHandler) moveFrom(
	ctx context.Context,
	cmd MoveOrderOnKanbanCommand,
	source *kernel.UUID,
) (services.MoveResult, bool, *kernel.UUID, error) {
	target := cmd.TargetColumnID()

	keys := []string{target.String()}
	if source != nil {
		keys = append(keys, source.String())
	}
	unlock := h.columns.Lock(keys...)
	defer unlock()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return services.MoveResult{}, false, nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders := uow.OrderRepository()

	aggregate, err := orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return services.MoveResult{}, false, nil, err
	}
	if !kernel.IsEqualPtr(aggregate.KanbanColumnID(), source) {
		return services.MoveResult{}, false, aggregate.KanbanColumnID(), nil
	}

	if _, err = uow.KanbanColumnRepository().Get(ctx, target); err != nil {
		return services.MoveResult{}, false, nil, err
	}

	targetLane, err := loadLane(ctx, orders, target)
	if err != nil {
		return services.MoveResult{}, false, nil, err
	}

	var sourceLane *kanban.Lane
	switch {
	case source == nil:
	case source.IsEqual(target):
		sourceLane = targetLane
	default:
		if sourceLane, err = loadLane(ctx, orders, *source); err != nil {
			return services.MoveResult{}, false, nil, err
		}
	}

	result, err := h.planner.Move(sourceLane, targetLane, cmd.OrderID(), cmd.TargetPosition())
	if err != nil {
		return services.MoveResult{}, false, nil, err
	}

	if sourceLane != nil && !result.SameColumn {
		if err = orders.SaveKanbanLane(ctx, *source, sourceLane.Placements()); err != nil {
			return services.MoveResult{}, false, nil, err
		}
	}

	if err = orders.SaveKanbanLane(ctx, target, targetLane.Placements()); err != nil {
		return services.MoveResult{}, false, nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return services.MoveResult{}, false, nil, err
	}

	return result, true, source, nil
}

func loadLane(ctx context.Context, orders ports.OrderRepository, columnID kernel.UUID) (*kanban.Lane, error) {
	ids, err := orders.GetKanbanLane(ctx, columnID)
	if err != nil {
		return nil, err
	}
	return kanban.NewLane(columnID, ids)
}
