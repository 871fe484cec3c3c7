package commands_test

import (
	"testing"
	"time"

	"furniture/internal/core/domain/model/kanban"
	"furniture/internal/core/domain/model/kernel"
	"furniture/internal/core/domain/model/order"
	"furniture/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

var deliveryDate = time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

func newOrder(t *testing.T) *order.Order {
	t.Helper()
	amount, err := kernel.MoneyFromString("1890.00")
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), "ORD-"+kernel.NewUUID().String()[:8], kernel.NewUUID(),
		"Oak & Co", order.High, amount, deliveryDate)
	require.NoError(t, err)
	return o
}

func newOrderIn(t *testing.T, status order.Status, columnID *kernel.UUID) *order.Order {
	t.Helper()
	o := newOrder(t)
	restored, err := order.RestoreOrder(order.Snapshot{
		ID:             o.ID(),
		Number:         o.Number(),
		Status:         status,
		Priority:       o.Priority(),
		CustomerID:     o.CustomerID(),
		CustomerName:   o.CustomerName(),
		TotalAmount:    o.TotalAmount(),
		DeliveryDate:   o.DeliveryDate(),
		CreatedAt:      o.CreatedAt(),
		UpdatedAt:      o.UpdatedAt(),
		KanbanColumnID: columnID,
	})
	require.NoError(t, err)
	return restored
}

func newColumn(t *testing.T, name string, position int, status *order.Status) *kanban.Column {
	t.Helper()
	c, err := kanban.NewColumn(kernel.NewUUID(), name, position, status)
	require.NoError(t, err)
	return c
}

// restoreCopy returns an independent copy so in-memory storage is not aliased
// by the aggregate a handler mutates.
func restoreCopy(o *order.Order) *order.Order {
	c, err := order.RestoreOrder(order.Snapshot{
		ID:             o.ID(),
		Number:         o.Number(),
		Status:         o.Status(),
		Priority:       o.Priority(),
		CustomerID:     o.CustomerID(),
		CustomerName:   o.CustomerName(),
		TotalAmount:    o.TotalAmount(),
		DeliveryDate:   o.DeliveryDate(),
		CreatedAt:      o.CreatedAt(),
		UpdatedAt:      o.UpdatedAt(),
		KanbanColumnID: o.KanbanColumnID(),
		KanbanPosition: o.KanbanPosition(),
	})
	if err != nil {
		panic(err)
	}
	return c
}

func errNotFound(id kernel.UUID) error {
	return errs.NewObjectNotFoundError("order", id)
}
