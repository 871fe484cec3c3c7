package commands

import (
	"context"
	"fmt"

	"furniture/internal/core/domain/model/kanban"
	"furniture/internal/pkg/errs"
)

// CreateKanbanColumnCommandHandler adds columns to the board. Column positions are
// unique and a status may be bound to at most one column.
type CreateKanbanColumnCommandHandler struct {
	uowFactory KanbanUoWFactory
}

func NewCreateKanbanColumnCommandHandler(uowFactory KanbanUoWFactory) CreateKanbanColumnCommandHandler {
	return CreateKanbanColumnCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CreateKanbanColumnCommandHandler) Handle(
	ctx context.Context,
	cmd CreateKanbanColumnCommand,
) (*kanban.Column, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	column, err := kanban.NewColumn(cmd.ColumnID(), cmd.Name(), cmd.Position(), cmd.Status())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.KanbanColumnRepository()

	existing, err := repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if err = checkColumnConflicts(existing, column); err != nil {
		return nil, err
	}

	if err = repo.Add(ctx, column); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return column, nil
}

func checkColumnConflicts(existing []*kanban.Column, column *kanban.Column) error {
	for _, c := range existing {
		if c.Position() == column.Position() {
			return errs.NewValueIsInvalidErrorWithCause(
				"kanban column position",
				fmt.Errorf("position %d is taken by column %q", c.Position(), c.Name()),
			)
		}
		if c.Status() != nil && column.Status() != nil && *c.Status() == *column.Status() {
			return errs.NewValueIsInvalidErrorWithCause(
				"kanban column status",
				fmt.Errorf("status %s is bound to column %q", *c.Status(), c.Name()),
			)
		}
	}
	return nil
}
