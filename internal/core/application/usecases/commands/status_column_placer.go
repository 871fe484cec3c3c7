package commands

import (
	"context"
	"math"

	"furniture/internal/core/domain/model/kanban"
	"furniture/internal/core/domain/model/kernel"
	"furniture/internal/core/domain/model/order"
	"furniture/internal/core/domain/services"
)

// StatusColumnPlacer appends an order to the column bound to its new status.
// It implements KanbanPlacer for the transition handler.
type StatusColumnPlacer struct {
	uowFactory KanbanUoWFactory
	mover      MoveOrderOnKanbanCommandHandler
	planner    services.KanbanPlanner
}

func NewStatusColumnPlacer(uowFactory KanbanUoWFactory, mover MoveOrderOnKanbanCommandHandler) StatusColumnPlacer {
	return StatusColumnPlacer{
		uowFactory: uowFactory,
		mover:      mover,
		planner:    services.NewKanbanPlanner(),
	}
}

// PlaceForStatus is a no-op when no column is bound to status or the order is
// already in the bound column.
func (p StatusColumnPlacer) PlaceForStatus(ctx context.Context, orderID kernel.UUID, status order.Status) error {
	column, current, err := p.lookup(ctx, orderID, status)
	if err != nil || column == nil {
		return err
	}
	if current != nil && current.IsEqual(column.ID()) {
		return nil
	}

	cmd, err := NewMoveOrderOnKanbanCommand(orderID, column.ID(), math.MaxInt32)
	if err != nil {
		return err
	}

	_, err = p.mover.Handle(ctx, cmd)
	return err
}

func (p StatusColumnPlacer) lookup(
	ctx context.Context,
	orderID kernel.UUID,
	status order.Status,
) (*kanban.Column, *kernel.UUID, error) {
	uow := p.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	columns, err := uow.KanbanColumnRepository().GetAll(ctx)
	if err != nil {
		return nil, nil, err
	}

	column := p.planner.ColumnForStatus(columns, status)
	if column == nil {
		return nil, nil, nil
	}

	aggregate, err := uow.OrderRepository().Get(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}

	return column, aggregate.KanbanColumnID(), nil
}
