package commands

import (
	"context"

	"furniture/internal/pkg/errs"
	"furniture/internal/pkg/keyed"
)

// DeleteKanbanColumnCommandHandler deletes a column. Deletion is rejected with
// errs.ObjectInUseError while any order references the column; orders are never
// reassigned implicitly.
type DeleteKanbanColumnCommandHandler struct {
	uowFactory KanbanUoWFactory
	columns    *keyed.Mutex[string]
}

func NewDeleteKanbanColumnCommandHandler(
	uowFactory KanbanUoWFactory,
	columns *keyed.Mutex[string],
) DeleteKanbanColumnCommandHandler {
	return DeleteKanbanColumnCommandHandler{
		uowFactory: uowFactory,
		columns:    columns,
	}
}

func (h DeleteKanbanColumnCommandHandler) Handle(ctx context.Context, cmd DeleteKanbanColumnCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	unlock := h.columns.Lock(cmd.ColumnID().String())
	defer unlock()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	columns := uow.KanbanColumnRepository()
	if _, err := columns.Get(ctx, cmd.ColumnID()); err != nil {
		return err
	}

	references, err := uow.OrderRepository().CountInKanbanColumn(ctx, cmd.ColumnID())
	if err != nil {
		return err
	}
	if references > 0 {
		return errs.NewObjectInUseError("kanban column", cmd.ColumnID(), references)
	}

	if err = columns.Delete(ctx, cmd.ColumnID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
