package kanban

import (
	"fmt"
	"slices"

	"furniture/internal/core/domain/model/kernel"
	"furniture/internal/pkg/errs"
)

// Placement is the position of one order inside a column.
type Placement struct {
	OrderID  kernel.UUID
	Position int
}

// Lane is the ordered list of orders in one column. The index of an order is its position.
type Lane struct {
	columnID kernel.UUID
	orderIDs []kernel.UUID
}

// NewLane builds a lane from order ids already sorted by position.
// Duplicate ids are rejected.
func NewLane(columnID kernel.UUID, orderIDs []kernel.UUID) (*Lane, error) {
	if err := columnID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("column id", err)
	}
	seen := make(map[kernel.UUID]struct{}, len(orderIDs))
	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		if _, ok := seen[id]; ok {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"lane is invalid",
				fmt.Errorf("order %s appears twice in column %s", id, columnID),
			)
		}
		seen[id] = struct{}{}
	}
	return &Lane{columnID: columnID, orderIDs: slices.Clone(orderIDs)}, nil
}

func (l *Lane) ColumnID() kernel.UUID {
	return l.columnID
}

func (l *Lane) Len() int {
	return len(l.orderIDs)
}

// OrderIDs returns a copy of the lane in position order.
func (l *Lane) OrderIDs() []kernel.UUID {
	return slices.Clone(l.orderIDs)
}

// IndexOf returns the position of orderID, or -1.
func (l *Lane) IndexOf(orderID kernel.UUID) int {
	return slices.IndexFunc(l.orderIDs, orderID.IsEqual)
}

// Remove takes orderID out of the lane, shifting every later order down by one.
// It returns the vacated position and whether the order was present.
func (l *Lane) Remove(orderID kernel.UUID) (int, bool) {
	idx := l.IndexOf(orderID)
	if idx < 0 {
		return -1, false
	}
	l.orderIDs = slices.Delete(l.orderIDs, idx, idx+1)
	return idx, true
}

// Insert places orderID at position, shifting orders at or after it up by one.
// position is clamped to [0, Len()]. Inserting an order already in the lane moves it.
// It returns the position actually used.
func (l *Lane) Insert(orderID kernel.UUID, position int) int {
	l.Remove(orderID)
	position = max(0, min(position, len(l.orderIDs)))
	l.orderIDs = slices.Insert(l.orderIDs, position, orderID)
	return position
}

// Placements lists every order with its contiguous position.
func (l *Lane) Placements() []Placement {
	placements := make([]Placement, len(l.orderIDs))
	for i, id := range l.orderIDs {
		placements[i] = Placement{OrderID: id, Position: i}
	}
	return placements
}
