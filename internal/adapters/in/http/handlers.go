package http

import (
	"context"

	"furniture/internal/core/application/usecases/commands"
	"furniture/internal/core/application/usecases/queries"
	"furniture/internal/core/domain/model/kanban"
	"furniture/internal/core/domain/model/order"
	"furniture/internal/core/domain/services"
)

// The interfaces below are satisfied by the command and query handler values in
// the usecases packages. Server depends on them so each route can be tested alone.

type OrderCreator interface {
	Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
}

type OrderStatusTransitioner interface {
	Handle(ctx context.Context, cmd commands.TransitionOrderStatusCommand) (*order.Order, error)
}

type KanbanColumnCreator interface {
	Handle(ctx context.Context, cmd commands.CreateKanbanColumnCommand) (*kanban.Column, error)
}

type KanbanColumnDeleter interface {
	Handle(ctx context.Context, cmd commands.DeleteKanbanColumnCommand) error
}

type KanbanColumnRenumberer interface {
	Handle(ctx context.Context, cmd commands.RenumberKanbanColumnCommand) (int, error)
}

type KanbanOrderMover interface {
	Handle(ctx context.Context, cmd commands.MoveOrderOnKanbanCommand) (services.MoveResult, error)
}

type OrderLister interface {
	Handle(ctx context.Context, query queries.ListOrdersQuery) (queries.ListOrdersQueryResponse, error)
}

type OrderGetter interface {
	Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderView, error)
}

type ProductionOperationLister interface {
	Handle(ctx context.Context, query queries.ListProductionOperationsQuery) ([]queries.ProductionOperationView, error)
}

type KanbanColumnLister interface {
	Handle(ctx context.Context, query queries.ListKanbanColumnsQuery) ([]queries.KanbanColumnView, error)
}

// Handlers groups everything Server dispatches to.
type Handlers struct {
	CreateOrder       OrderCreator
	TransitionStatus  OrderStatusTransitioner
	CreateColumn      KanbanColumnCreator
	DeleteColumn      KanbanColumnDeleter
	RenumberColumn    KanbanColumnRenumberer
	MoveOrder         KanbanOrderMover
	ListOrders        OrderLister
	GetOrder          OrderGetter
	ListProduction    ProductionOperationLister
	ListKanbanColumns KanbanColumnLister
}
