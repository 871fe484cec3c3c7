package commands

import (
	"errors"

	"furniture/internal/core/domain/model/kernel"
	"furniture/internal/pkg/guard"
)

var (
	ErrDeleteKanbanColumnCommandIsNotConstructed = errors.New(
		"DeleteKanbanColumnCommand must be created via NewDeleteKanbanColumnCommand constructor",
	)
)

// DeleteKanbanColumnCommand removes an empty column from the board.
type DeleteKanbanColumnCommand struct { //nolint:recvcheck //using for validation
	columnID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteKanbanColumnCommand(columnID kernel.UUID) (DeleteKanbanColumnCommand, error) {
	if err := columnID.Validate(); err != nil {
		return DeleteKanbanColumnCommand{}, err
	}

	return DeleteKanbanColumnCommand{
		columnID: columnID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteKanbanColumnCommand) Validate() error {
	return c.guard.Validate(ErrDeleteKanbanColumnCommandIsNotConstructed)
}

func (c DeleteKanbanColumnCommand) ColumnID() kernel.UUID {
	return c.columnID
}
