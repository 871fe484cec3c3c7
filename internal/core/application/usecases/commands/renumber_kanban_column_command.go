package commands

import (
	"errors"

	"furniture/internal/core/domain/model/kernel"
	"furniture/internal/pkg/guard"
)

var (
	ErrRenumberKanbanColumnCommandIsNotConstructed = errors.New(
		"RenumberKanbanColumnCommand must be created via NewRenumberKanbanColumnCommand constructor",
	)
)

// RenumberKanbanColumnCommand rewrites the positions of a column as 0..n-1,
// keeping the current relative order. It repairs gaps or duplicate positions
// written outside the kanban handlers.
type RenumberKanbanColumnCommand struct { //nolint:recvcheck //using for validation
	columnID kernel.UUID

	guard guard.ConstructorGuard
}

func NewRenumberKanbanColumnCommand(columnID kernel.UUID) (RenumberKanbanColumnCommand, error) {
	if err := columnID.Validate(); err != nil {
		return RenumberKanbanColumnCommand{}, err
	}

	return RenumberKanbanColumnCommand{
		columnID: columnID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RenumberKanbanColumnCommand) Validate() error {
	return c.guard.Validate(ErrRenumberKanbanColumnCommandIsNotConstructed)
}

func (c RenumberKanbanColumnCommand) ColumnID() kernel.UUID {
	return c.columnID
}
