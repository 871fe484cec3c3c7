package commands_test

import (
	"context"
	"sync"

	"furniture/internal/core/application/usecases/commands"
	"furniture/internal/core/domain/model/kanban"
	"furniture/internal/core/domain/model/kernel"
	"furniture/internal/core/domain/model/order"
	"furniture/internal/core/domain/model/production"
	"furniture/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, o *order.Order, from order.Status) error {
	args := m.Called(ctx, o, from)
	return args.Error(0)
}

func (m *MockOrderRepository) GetKanbanLane(ctx context.Context, columnID kernel.UUID) ([]kernel.UUID, error) {
	args := m.Called(ctx, columnID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]kernel.UUID), args.Error(1)
}

func (m *MockOrderRepository) SaveKanbanLane(
	ctx context.Context,
	columnID kernel.UUID,
	placements []kanban.Placement,
) error {
	args := m.Called(ctx, columnID, placements)
	return args.Error(0)
}

func (m *MockOrderRepository) CountInKanbanColumn(ctx context.Context, columnID kernel.UUID) (int64, error) {
	args := m.Called(ctx, columnID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) GetAllInProductionWithoutOperation(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockProductionOperationRepository struct{ mock.Mock }

func (m *MockProductionOperationRepository) Add(ctx context.Context, op *production.Operation) error {
	args := m.Called(ctx, op)
	return args.Error(0)
}

func (m *MockProductionOperationRepository) FindActive(
	ctx context.Context,
	orderID kernel.UUID,
	operationType production.OperationType,
	episodeID kernel.UUID,
) (*production.Operation, error) {
	args := m.Called(ctx, orderID, operationType, episodeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*production.Operation), args.Error(1)
}

func (m *MockProductionOperationRepository) GetAllByOrder(
	ctx context.Context,
	orderID kernel.UUID,
) ([]*production.Operation, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*production.Operation), args.Error(1)
}

type MockKanbanColumnRepository struct{ mock.Mock }

func (m *MockKanbanColumnRepository) Add(ctx context.Context, c *kanban.Column) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockKanbanColumnRepository) Get(ctx context.Context, id kernel.UUID) (*kanban.Column, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*kanban.Column), args.Error(1)
}

func (m *MockKanbanColumnRepository) GetAll(ctx context.Context) ([]*kanban.Column, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*kanban.Column), args.Error(1)
}

func (m *MockKanbanColumnRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUoW satisfies every unit of work interface of the commands package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) ProductionOperationRepository() ports.ProductionOperationRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductionOperationRepository)
}

func (m *MockUoW) KanbanColumnRepository() ports.KanbanColumnRepository {
	args := m.Called()
	return args.Get(0).(ports.KanbanColumnRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockProductionUoWFactory struct{ mock.Mock }

func (m *MockProductionUoWFactory) Create() commands.ProductionUoW {
	args := m.Called()
	return args.Get(0).(commands.ProductionUoW)
}

type MockKanbanUoWFactory struct{ mock.Mock }

func (m *MockKanbanUoWFactory) Create() commands.KanbanUoW {
	args := m.Called()
	return args.Get(0).(commands.KanbanUoW)
}

type MockProductionDispatcher struct{ mock.Mock }

func (m *MockProductionDispatcher) Dispatch(ctx context.Context, cmd commands.CreateProductionOperationCommand) {
	m.Called(ctx, cmd)
}

type MockConvergenceScheduler struct{ mock.Mock }

func (m *MockConvergenceScheduler) ScheduleConverge(ctx context.Context, orderID kernel.UUID, expected order.Status) {
	m.Called(ctx, orderID, expected)
}

type MockKanbanPlacer struct{ mock.Mock }

func (m *MockKanbanPlacer) PlaceForStatus(ctx context.Context, orderID kernel.UUID, status order.Status) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

// memoryOrderUoW is an in-memory OrderUoW used by scenario tests that need
// state to carry across several handler calls.
type memoryOrderUoW struct {
	mu     *sync.Mutex
	orders map[kernel.UUID]*order.Order
}

func newMemoryOrderUoW(orders ...*order.Order) *memoryOrderUoW {
	m := &memoryOrderUoW{mu: &sync.Mutex{}, orders: make(map[kernel.UUID]*order.Order)}
	for _, o := range orders {
		m.orders[o.ID()] = o
	}
	return m
}

func (m *memoryOrderUoW) Create() commands.OrderUoW { return m }

func (m *memoryOrderUoW) Begin(context.Context) error { return nil }

func (m *memoryOrderUoW) Commit(context.Context) error { return nil }

func (m *memoryOrderUoW) Rollback(context.Context) error { return nil }

func (m *memoryOrderUoW) OrderRepository() ports.OrderRepository { return memoryOrderRepository{m} }

type memoryOrderRepository struct{ *memoryOrderUoW }

func (r memoryOrderRepository) Add(_ context.Context, o *order.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[o.ID()] = o
	return nil
}

func (r memoryOrderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, errNotFound(id)
	}
	return restoreCopy(o), nil
}

func (r memoryOrderRepository) UpdateStatus(_ context.Context, o *order.Order, _ order.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[o.ID()] = restoreCopy(o)
	return nil
}

func (r memoryOrderRepository) GetKanbanLane(context.Context, kernel.UUID) ([]kernel.UUID, error) {
	return nil, nil
}

func (r memoryOrderRepository) SaveKanbanLane(context.Context, kernel.UUID, []kanban.Placement) error {
	return nil
}

func (r memoryOrderRepository) CountInKanbanColumn(context.Context, kernel.UUID) (int64, error) {
	return 0, nil
}

func (r memoryOrderRepository) GetAllInProductionWithoutOperation(context.Context) ([]*order.Order, error) {
	return nil, nil
}
