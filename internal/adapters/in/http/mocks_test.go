package http_test

import (
	"context"

	"furniture/internal/core/application/usecases/commands"
	"furniture/internal/core/application/usecases/queries"
	"furniture/internal/core/domain/model/kanban"
	"furniture/internal/core/domain/model/order"
	"furniture/internal/core/domain/services"

	"github.com/stretchr/testify/mock"
)

type MockOrderCreator struct{ mock.Mock }

func (m *MockOrderCreator) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockOrderStatusTransitioner struct{ mock.Mock }

func (m *MockOrderStatusTransitioner) Handle(
	ctx context.Context,
	cmd commands.TransitionOrderStatusCommand,
) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockKanbanColumnCreator struct{ mock.Mock }

func (m *MockKanbanColumnCreator) Handle(
	ctx context.Context,
	cmd commands.CreateKanbanColumnCommand,
) (*kanban.Column, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*kanban.Column), args.Error(1)
}

type MockKanbanColumnDeleter struct{ mock.Mock }

func (m *MockKanbanColumnDeleter) Handle(ctx context.Context, cmd commands.DeleteKanbanColumnCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

type MockKanbanColumnRenumberer struct{ mock.Mock }

func (m *MockKanbanColumnRenumberer) Handle(ctx context.Context, cmd commands.RenumberKanbanColumnCommand) (int, error) {
	args := m.Called(ctx, cmd)
	return args.Int(0), args.Error(1)
}

type MockKanbanOrderMover struct{ mock.Mock }

func (m *MockKanbanOrderMover) Handle(
	ctx context.Context,
	cmd commands.MoveOrderOnKanbanCommand,
) (services.MoveResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(services.MoveResult), args.Error(1)
}

type MockOrderLister struct{ mock.Mock }

func (m *MockOrderLister) Handle(
	ctx context.Context,
	query queries.ListOrdersQuery,
) (queries.ListOrdersQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.ListOrdersQueryResponse), args.Error(1)
}

type MockOrderGetter struct{ mock.Mock }

func (m *MockOrderGetter) Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderView, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.OrderView), args.Error(1)
}

type MockProductionOperationLister struct{ mock.Mock }

func (m *MockProductionOperationLister) Handle(
	ctx context.Context,
	query queries.ListProductionOperationsQuery,
) ([]queries.ProductionOperationView, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.ProductionOperationView), args.Error(1)
}

type MockKanbanColumnLister struct{ mock.Mock }

func (m *MockKanbanColumnLister) Handle(
	ctx context.Context,
	query queries.ListKanbanColumnsQuery,
) ([]queries.KanbanColumnView, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.KanbanColumnView), args.Error(1)
}
