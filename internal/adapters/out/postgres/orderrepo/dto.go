// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"furniture/internal/core/domain/model/kernel"
	"furniture/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status and priority are stored by wire name; the kanban placement columns are
// indexed together so a lane is read in one index scan.
type OrderDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderNumber    string          `gorm:"size:32;not null;uniqueIndex"`
	Status         string          `gorm:"size:32;not null;index"`
	Priority       string          `gorm:"size:16;not null;index"`
	CustomerID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	CustomerName   string          `gorm:"size:255;not null;default:''"`
	TotalAmount    decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	DeliveryDate   time.Time       `gorm:"not null"`
	CreatedAt      time.Time       `gorm:"not null;index"`
	UpdatedAt      time.Time       `gorm:"not null"`
	KanbanColumnID *uuid.UUID      `gorm:"type:uuid;index:idx_orders_kanban_lane,priority:1"`
	KanbanPosition int             `gorm:"not null;default:0;index:idx_orders_kanban_lane,priority:2"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	var columnID *uuid.UUID
	if id := o.KanbanColumnID(); id != nil {
		raw := id.Bytes()
		columnID = &raw
	}

	return OrderDTO{
		ID:             o.ID().Bytes(),
		OrderNumber:    o.Number(),
		Status:         o.Status().String(),
		Priority:       o.Priority().String(),
		CustomerID:     o.CustomerID().Bytes(),
		CustomerName:   o.CustomerName(),
		TotalAmount:    o.TotalAmount().Decimal(),
		DeliveryDate:   o.DeliveryDate(),
		CreatedAt:      o.CreatedAt(),
		UpdatedAt:      o.UpdatedAt(),
		KanbanColumnID: columnID,
		KanbanPosition: o.KanbanPosition(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	priority, err := order.PriorityFromString(dto.Priority)
	if err != nil {
		return nil, err
	}

	amount, err := kernel.NewMoney(dto.TotalAmount)
	if err != nil {
		return nil, err
	}

	var columnID *kernel.UUID
	if dto.KanbanColumnID != nil {
		cID, columnErr := kernel.UUIDFromBytes((*dto.KanbanColumnID)[:])
		if columnErr != nil {
			return nil, columnErr
		}
		columnID = &cID
	}

	return order.RestoreOrder(order.Snapshot{
		ID:             id,
		Number:         dto.OrderNumber,
		Status:         status,
		Priority:       priority,
		CustomerID:     customerID,
		CustomerName:   dto.CustomerName,
		TotalAmount:    amount,
		DeliveryDate:   dto.DeliveryDate,
		CreatedAt:      dto.CreatedAt.UTC(),
		UpdatedAt:      dto.UpdatedAt.UTC(),
		KanbanColumnID: columnID,
		KanbanPosition: dto.KanbanPosition,
	})
}
