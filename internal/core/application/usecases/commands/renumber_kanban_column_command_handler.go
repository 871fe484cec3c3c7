package commands

import (
	"context"

	"furniture/internal/pkg/keyed"
)

// RenumberKanbanColumnCommandHandler repairs the positions of one column.
type RenumberKanbanColumnCommandHandler struct {
	uowFactory KanbanUoWFactory
	columns    *keyed.Mutex[string]
}

func NewRenumberKanbanColumnCommandHandler(
	uowFactory KanbanUoWFactory,
	columns *keyed.Mutex[string],
) RenumberKanbanColumnCommandHandler {
	return RenumberKanbanColumnCommandHandler{
		uowFactory: uowFactory,
		columns:    columns,
	}
}

// Handle renumbers the column and returns the number of orders it holds.
func (h RenumberKanbanColumnCommandHandler) Handle(ctx context.Context, cmd RenumberKanbanColumnCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	unlock := h.columns.Lock(cmd.ColumnID().String())
	defer unlock()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.KanbanColumnRepository().Get(ctx, cmd.ColumnID()); err != nil {
		return 0, err
	}

	orders := uow.OrderRepository()
	lane, err := loadLane(ctx, orders, cmd.ColumnID())
	if err != nil {
		return 0, err
	}

	if err = orders.SaveKanbanLane(ctx, cmd.ColumnID(), lane.Placements()); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return lane.Len(), nil
}
