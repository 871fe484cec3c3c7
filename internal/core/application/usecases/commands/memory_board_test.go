package commands_test

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"furniture/internal/core/application/usecases/commands"
	"furniture/internal/core/domain/model/kanban"
	"furniture/internal/core/domain/model/kernel"
	"furniture/internal/core/domain/model/order"
	"furniture/internal/core/ports"
	"furniture/internal/pkg/errs"
)

type placement struct {
	columnID *kernel.UUID
	position int
}

// memoryBoard is an in-memory KanbanUoW. Writes apply immediately; Rollback is a no-op.
type memoryBoard struct {
	mu         sync.Mutex
	columns    map[kernel.UUID]*kanban.Column
	placements map[kernel.UUID]placement
}

func newMemoryBoard() *memoryBoard {
	return &memoryBoard{
		columns:    make(map[kernel.UUID]*kanban.Column),
		placements: make(map[kernel.UUID]placement),
	}
}

func (b *memoryBoard) addColumn(c *kanban.Column) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.columns[c.ID()] = c
}

func (b *memoryBoard) addOrder(id kernel.UUID, columnID *kernel.UUID, position int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.placements[id] = placement{columnID: columnID, position: position}
}

func (b *memoryBoard) lane(columnID kernel.UUID) []kernel.UUID {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.laneLocked(columnID)
}

func (b *memoryBoard) laneLocked(columnID kernel.UUID) []kernel.UUID {
	type row struct {
		id  kernel.UUID
		pos int
	}
	var rows []row
	for id, p := range b.placements {
		if p.columnID != nil && p.columnID.IsEqual(columnID) {
			rows = append(rows, row{id: id, pos: p.position})
		}
	}
	slices.SortFunc(rows, func(a, c row) int {
		return cmp.Or(cmp.Compare(a.pos, c.pos), a.id.Compare(c.id))
	})
	ids := make([]kernel.UUID, len(rows))
	for i, r := range rows {
		ids[i] = r.id
	}
	return ids
}

func (b *memoryBoard) positions(columnID kernel.UUID) []int {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []int
	for _, p := range b.placements {
		if p.columnID != nil && p.columnID.IsEqual(columnID) {
			out = append(out, p.position)
		}
	}
	slices.Sort(out)
	return out
}

func (b *memoryBoard) Create() commands.KanbanUoW { return b }

func (b *memoryBoard) Begin(context.Context) error { return nil }

func (b *memoryBoard) Commit(context.Context) error { return nil }

func (b *memoryBoard) Rollback(context.Context) error { return nil }

func (b *memoryBoard) OrderRepository() ports.OrderRepository { return boardOrders{b} }

func (b *memoryBoard) KanbanColumnRepository() ports.KanbanColumnRepository { return boardColumns{b} }

type boardOrders struct{ *memoryBoard }

func (r boardOrders) Add(context.Context, *order.Order) error { return nil }

func (r boardOrders) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	r.mu.Lock()
	p, ok := r.placements[id]
	r.mu.Unlock()
	if !ok {
		return nil, errNotFound(id)
	}
	amount, _ := kernel.MoneyFromString("10")
	return order.RestoreOrder(order.Snapshot{
		ID:             id,
		Number:         "ORD-" + id.String()[:8],
		Status:         order.Confirmed,
		Priority:       order.Normal,
		CustomerID:     id,
		TotalAmount:    amount,
		DeliveryDate:   deliveryDate,
		KanbanColumnID: p.columnID,
		KanbanPosition: p.position,
	})
}

func (r boardOrders) UpdateStatus(context.Context, *order.Order, order.Status) error { return nil }

func (r boardOrders) GetKanbanLane(_ context.Context, columnID kernel.UUID) ([]kernel.UUID, error) {
	return r.lane(columnID), nil
}

func (r boardOrders) SaveKanbanLane(_ context.Context, columnID kernel.UUID, placements []kanban.Placement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range placements {
		id := columnID
		r.placements[p.OrderID] = placement{columnID: &id, position: p.Position}
	}
	return nil
}

func (r boardOrders) CountInKanbanColumn(_ context.Context, columnID kernel.UUID) (int64, error) {
	return int64(len(r.lane(columnID))), nil
}

func (r boardOrders) GetAllInProductionWithoutOperation(context.Context) ([]*order.Order, error) {
	return nil, nil
}

type boardColumns struct{ *memoryBoard }

func (r boardColumns) Add(_ context.Context, c *kanban.Column) error {
	r.addColumn(c)
	return nil
}

func (r boardColumns) Get(_ context.Context, id kernel.UUID) (*kanban.Column, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.columns[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("kanban column", id)
	}
	return c, nil
}

func (r boardColumns) GetAll(context.Context) ([]*kanban.Column, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*kanban.Column, 0, len(r.columns))
	for _, c := range r.columns {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, c *kanban.Column) int { return cmp.Compare(a.Position(), c.Position()) })
	return out, nil
}

func (r boardColumns) Delete(_ context.Context, id kernel.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.columns, id)
	return nil
}
