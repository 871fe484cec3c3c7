// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"furniture/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest set of repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ProductionRepoFactory provides access to production operation repository within a transaction.
	ProductionRepoFactory interface {
		ProductionOperationRepository() ports.ProductionOperationRepository
	}

	// KanbanRepoFactory provides access to kanban column repository within a transaction.
	KanbanRepoFactory interface {
		KanbanColumnRepository() ports.KanbanColumnRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used by order creation and status transitions.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ProductionUoW manages transactions for production operation records.
	ProductionUoW interface {
		TxManager
		ProductionRepoFactory
	}

	// ProductionUoWFactory creates new production unit of work instances.
	ProductionUoWFactory interface {
		Create() ProductionUoW
	}

	// KanbanUoW manages transactions across columns and the placements stored on orders.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   columns := uow.KanbanColumnRepository()
	//   orders := uow.OrderRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	KanbanUoW interface {
		TxManager
		OrderRepoFactory
		KanbanRepoFactory
	}

	// KanbanUoWFactory creates new kanban unit of work instances.
	KanbanUoWFactory interface {
		Create() KanbanUoW
	}
)
