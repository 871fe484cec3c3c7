// Package ports defines repository interfaces for the furniture order domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"furniture/internal/core/domain/model/kanban"
	"furniture/internal/core/domain/model/kernel"
	"furniture/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// Implementations report a missing order as errs.ObjectNotFoundError and any
// storage failure as errs.RepositoryUnavailableError.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// UpdateStatus writes the aggregate's current status, provided the stored status
	// still equals from. A concurrent change of the stored status is reported as
	// errs.InvalidTransitionError; nothing is written in that case.
	UpdateStatus(ctx context.Context, aggregate *order.Order, from order.Status) error

	// GetKanbanLane returns the ids of the orders placed in columnID ordered by
	// position, ties broken by id.
	GetKanbanLane(ctx context.Context, columnID kernel.UUID) ([]kernel.UUID, error)

	// SaveKanbanLane assigns columnID and the given positions to every listed order.
	SaveKanbanLane(ctx context.Context, columnID kernel.UUID, placements []kanban.Placement) error

	// CountInKanbanColumn counts orders referencing columnID.
	CountInKanbanColumn(ctx context.Context, columnID kernel.UUID) (int64, error)

	// GetAllInProductionWithoutOperation lists in_production orders that have no
	// production operation of the produce type.
	GetAllInProductionWithoutOperation(ctx context.Context) ([]*order.Order, error)
}
