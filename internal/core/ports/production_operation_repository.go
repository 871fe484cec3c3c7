package ports

import (
	"context"

	"furniture/internal/core/domain/model/kernel"
	"furniture/internal/core/domain/model/production"
)

// ProductionOperationRepository defines the persistence contract for production operations.
type ProductionOperationRepository interface {
	// Add persists a new operation. A second operation for the same
	// (order, type, episode) is rejected by storage.
	Add(ctx context.Context, operation *production.Operation) error

	// FindActive returns the pending or in_progress operation created for
	// (orderID, operationType, episodeID), or errs.ObjectNotFoundError.
	FindActive(
		ctx context.Context,
		orderID kernel.UUID,
		operationType production.OperationType,
		episodeID kernel.UUID,
	) (*production.Operation, error)

	// GetAllByOrder lists the operations of an order, oldest first.
	GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*production.Operation, error)
}
