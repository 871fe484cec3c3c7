package jobs_test

import (
	"context"

	"furniture/internal/core/application/usecases/commands"
	"furniture/internal/core/application/usecases/queries"
	"furniture/internal/core/domain/model/order"
	"furniture/internal/core/domain/model/production"

	"github.com/stretchr/testify/mock"
)

type MockOrderReader struct {
	mock.Mock
}

func (m *MockOrderReader) Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderView, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.OrderView), args.Error(1)
}

type MockProductionOperationCreator struct {
	mock.Mock
}

func (m *MockProductionOperationCreator) Handle(
	ctx context.Context,
	cmd commands.CreateProductionOperationCommand,
) (*production.Operation, error) {
	args := m.Called(ctx, cmd)
	if op := args.Get(0); op != nil {
		return op.(*production.Operation), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockMissingProductionFinder struct {
	mock.Mock
}

func (m *MockMissingProductionFinder) GetAllInProductionWithoutOperation(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if orders := args.Get(0); orders != nil {
		return orders.([]*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockKanbanColumnLister struct {
	mock.Mock
}

func (m *MockKanbanColumnLister) Handle(
	ctx context.Context,
	query queries.ListKanbanColumnsQuery,
) ([]queries.KanbanColumnView, error) {
	args := m.Called(ctx, query)
	if columns := args.Get(0); columns != nil {
		return columns.([]queries.KanbanColumnView), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockKanbanColumnRenumberer struct {
	mock.Mock
}

func (m *MockKanbanColumnRenumberer) Handle(ctx context.Context, cmd commands.RenumberKanbanColumnCommand) (int, error) {
	args := m.Called(ctx, cmd)
	return args.Int(0), args.Error(1)
}
