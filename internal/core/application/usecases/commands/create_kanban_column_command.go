package commands

import (
	"errors"

	"furniture/internal/core/domain/model/kernel"
	"furniture/internal/core/domain/model/order"
	"furniture/internal/pkg/guard"
)

var (
	ErrCreateKanbanColumnCommandIsNotConstructed = errors.New(
		"CreateKanbanColumnCommand must be created via NewCreateKanbanColumnCommand constructor",
	)
)

// CreateKanbanColumnCommand adds a column to the board, optionally bound to an
// order status. An empty status leaves the column unbound.
type CreateKanbanColumnCommand struct { //nolint:recvcheck //using for validation
	columnID kernel.UUID
	name     string
	position int
	status   *order.Status

	guard guard.ConstructorGuard
}

func NewCreateKanbanColumnCommand(
	columnID kernel.UUID,
	name string,
	position int,
	status string,
) (CreateKanbanColumnCommand, error) {
	cmd := CreateKanbanColumnCommand{
		name:     name,
		position: position,
		guard:    guard.NewConstructorGuard(),
	}

	var statusErr error
	if status != "" {
		var s order.Status
		if s, statusErr = order.StatusFromString(status); statusErr == nil {
			cmd.status = &s
		}
	}

	if err := errors.Join(columnID.Validate(), statusErr); err != nil {
		return CreateKanbanColumnCommand{}, err
	}
	cmd.columnID = columnID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateKanbanColumnCommand) Validate() error {
	return c.guard.Validate(ErrCreateKanbanColumnCommandIsNotConstructed)
}

func (c CreateKanbanColumnCommand) ColumnID() kernel.UUID {
	return c.columnID
}

func (c CreateKanbanColumnCommand) Name() string {
	return c.name
}

func (c CreateKanbanColumnCommand) Position() int {
	return c.position
}

// Status returns the bound status, nil for an unbound column.
func (c CreateKanbanColumnCommand) Status() *order.Status {
	return c.status
}
