package commands

import (
	"errors"

	"furniture/internal/core/domain/model/kernel"
	"furniture/internal/core/domain/model/production"
	"furniture/internal/pkg/guard"
)

var (
	ErrCreateProductionOperationCommandIsNotConstructed = errors.New(
		"CreateProductionOperationCommand must be created via NewCreateProductionOperationCommand constructor",
	)
)

// CreateProductionOperationCommand requests manufacturing work for an order.
// episodeID identifies the status transition that triggered the request and scopes
// idempotency: replaying the same command never creates a second operation.
type CreateProductionOperationCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	episodeID     kernel.UUID
	operationType production.OperationType
	stage         production.Stage

	guard guard.ConstructorGuard
}

// NewCreateProductionOperationCommand validates the identifiers and the closed
// operation type and stage sets.
func NewCreateProductionOperationCommand(
	orderID kernel.UUID,
	episodeID kernel.UUID,
	operationType production.OperationType,
	stage production.Stage,
) (CreateProductionOperationCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		episodeID.Validate(),
		operationType.Validate(),
		stage.Validate(),
	); err != nil {
		return CreateProductionOperationCommand{}, err
	}

	return CreateProductionOperationCommand{
		orderID:       orderID,
		episodeID:     episodeID,
		operationType: operationType,
		stage:         stage,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductionOperationCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductionOperationCommandIsNotConstructed)
}

func (c CreateProductionOperationCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateProductionOperationCommand) EpisodeID() kernel.UUID {
	return c.episodeID
}

func (c CreateProductionOperationCommand) OperationType() production.OperationType {
	return c.operationType
}

func (c CreateProductionOperationCommand) Stage() production.Stage {
	return c.stage
}
