// Package queries contains read-side operations of the CQRS architecture.
// Query handlers read the tables directly through GORM and return flat views
// instead of aggregates.
package queries

import (
	"time"

	"furniture/internal/core/domain/model/kernel"
	"furniture/internal/core/domain/model/order"
	"furniture/internal/core/domain/model/production"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderView is the read model of an order.
type OrderView struct {
	ID             kernel.UUID
	Number         string
	Status         order.Status
	Priority       order.Priority
	CustomerID     kernel.UUID
	CustomerName   string
	TotalAmount    kernel.Money
	DeliveryDate   time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
	KanbanColumnID *kernel.UUID
	KanbanPosition *int
}

// ProductionOperationView is the read model of a production operation.
type ProductionOperationView struct {
	ID            kernel.UUID
	OrderID       kernel.UUID
	EpisodeID     kernel.UUID
	OperationType production.OperationType
	Stage         production.Stage
	Status        production.Status
	CreatedAt     time.Time
}

// KanbanColumnView is the read model of a board column.
type KanbanColumnView struct {
	ID       kernel.UUID
	Name     string
	Position int
	Status   *order.Status
}

const orderColumns = `id, order_number, status, priority, customer_id, customer_name, total_amount,
	delivery_date, created_at, updated_at, kanban_column_id, kanban_position`

type orderRow struct {
	ID             uuid.UUID
	OrderNumber    string
	Status         string
	Priority       string
	CustomerID     uuid.UUID
	CustomerName   string
	TotalAmount    decimal.Decimal
	DeliveryDate   time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
	KanbanColumnID *uuid.UUID
	KanbanPosition int
}

func (r orderRow) toView() (OrderView, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return OrderView{}, err
	}
	customerID, err := kernel.UUIDFromBytes(r.CustomerID[:])
	if err != nil {
		return OrderView{}, err
	}
	status, err := order.StatusFromString(r.Status)
	if err != nil {
		return OrderView{}, err
	}
	priority, err := order.PriorityFromString(r.Priority)
	if err != nil {
		return OrderView{}, err
	}
	amount, err := kernel.NewMoney(r.TotalAmount)
	if err != nil {
		return OrderView{}, err
	}

	view := OrderView{
		ID:           id,
		Number:       r.OrderNumber,
		Status:       status,
		Priority:     priority,
		CustomerID:   customerID,
		CustomerName: r.CustomerName,
		TotalAmount:  amount,
		DeliveryDate: r.DeliveryDate.UTC(),
		CreatedAt:    r.CreatedAt.UTC(),
		UpdatedAt:    r.UpdatedAt.UTC(),
	}
	if r.KanbanColumnID != nil {
		columnID, colErr := kernel.UUIDFromBytes(r.KanbanColumnID[:])
		if colErr != nil {
			return OrderView{}, colErr
		}
		position := r.KanbanPosition
		view.KanbanColumnID = &columnID
		view.KanbanPosition = &position
	}
	return view, nil
}
