package commands

import (
	"errors"

	"furniture/internal/core/domain/model/kernel"
	"furniture/internal/pkg/guard"
)

var (
	ErrMoveOrderOnKanbanCommandIsNotConstructed = errors.New(
		"MoveOrderOnKanbanCommand must be created via NewMoveOrderOnKanbanCommand constructor",
	)
)

// MoveOrderOnKanbanCommand places an order at a position in a kanban column.
// Out of range positions are clamped by the handler, so any int is accepted.
type MoveOrderOnKanbanCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	targetColumnID kernel.UUID
	targetPosition int

	guard guard.ConstructorGuard
}

func NewMoveOrderOnKanbanCommand(
	orderID kernel.UUID,
	targetColumnID kernel.UUID,
	targetPosition int,
) (MoveOrderOnKanbanCommand, error) {
	if err := errors.Join(orderID.Validate(), targetColumnID.Validate()); err != nil {
		return MoveOrderOnKanbanCommand{}, err
	}

	return MoveOrderOnKanbanCommand{
		orderID:        orderID,
		targetColumnID: targetColumnID,
		targetPosition: targetPosition,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MoveOrderOnKanbanCommand) Validate() error {
	return c.guard.Validate(ErrMoveOrderOnKanbanCommandIsNotConstructed)
}

func (c MoveOrderOnKanbanCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c MoveOrderOnKanbanCommand) TargetColumnID() kernel.UUID {
	return c.targetColumnID
}

func (c MoveOrderOnKanbanCommand) TargetPosition() int {
	return c.targetPosition
}
