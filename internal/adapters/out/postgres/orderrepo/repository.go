package orderrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"furniture/internal/core/domain/model/kanban"
	"furniture/internal/core/domain/model/kernel"
	"furniture/internal/core/domain/model/order"
	"furniture/internal/core/domain/model/production"
	"furniture/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
//
// The gorm.DB is expected to be opened with TranslateError so unique violations
// surface as gorm.ErrDuplicatedKey.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewValueIsInvalidErrorWithCause(
				"order number",
				fmt.Errorf("%q is already taken", aggregate.Number()),
			)
		}
		return errs.NewRepositoryUnavailableError("add order", err)
	}

	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, errs.NewRepositoryUnavailableError("get order", err)
	}

	return toDomain(dto)
}

// UpdateStatus writes the status as a compare-and-set on from.
func (r *GormOrderRepository) UpdateStatus(ctx context.Context, aggregate *order.Order, from order.Status) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	result := db.Model(&OrderDTO{}).
		Where("id = ? AND status = ?", aggregate.ID().Bytes(), from.String()).
		Updates(map[string]any{
			"status":     aggregate.Status().String(),
			"updated_at": aggregate.UpdatedAt(),
		})
	if result.Error != nil {
		return errs.NewRepositoryUnavailableError("update order status", result.Error)
	}
	if result.RowsAffected == 1 {
		return nil
	}

	var current OrderDTO
	if err := db.Select("status").First(&current, "id = ?", aggregate.ID().Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewObjectNotFoundError("order", aggregate.ID().String())
		}
		return errs.NewRepositoryUnavailableError("update order status", err)
	}

	return errs.NewInvalidTransitionError(current.Status, aggregate.Status().String())
}

// GetKanbanLane lists the ids of the orders in columnID by position, then id.
func (r *GormOrderRepository) GetKanbanLane(ctx context.Context, columnID kernel.UUID) ([]kernel.UUID, error) {
	var raw []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("kanban_column_id = ?", columnID.Bytes()).
		Order("kanban_position, id").
		Pluck("id", &raw).Error
	if err != nil {
		return nil, errs.NewRepositoryUnavailableError("get kanban lane", err)
	}

	ids := make([]kernel.UUID, 0, len(raw))
	for _, id := range raw {
		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		ids = append(ids, orderID)
	}
	return ids, nil
}

// SaveKanbanLane places every listed order in columnID at its position.
func (r *GormOrderRepository) SaveKanbanLane(
	ctx context.Context,
	columnID kernel.UUID,
	placements []kanban.Placement,
) error {
	db := r.db.WithContext(ctx)
	column := columnID.Bytes()
	now := time.Now().UTC()

	for _, p := range placements {
		result := db.Model(&OrderDTO{}).
			Where("id = ?", p.OrderID.Bytes()).
			Updates(map[string]any{
				"kanban_column_id": column,
				"kanban_position":  p.Position,
				"updated_at":       now,
			})
		if result.Error != nil {
			return errs.NewRepositoryUnavailableError("save kanban lane", result.Error)
		}
		if result.RowsAffected == 0 {
			return errs.NewObjectNotFoundError("order", p.OrderID.String())
		}
	}

	return nil
}

// CountInKanbanColumn counts the orders placed in columnID.
func (r *GormOrderRepository) CountInKanbanColumn(ctx context.Context, columnID kernel.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("kanban_column_id = ?", columnID.Bytes()).
		Count(&n).Error
	if err != nil {
		return 0, errs.NewRepositoryUnavailableError("count kanban column orders", err)
	}
	return n, nil
}

// GetAllInProductionWithoutOperation lists in_production orders lacking any produce operation.
func (r *GormOrderRepository) GetAllInProductionWithoutOperation(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("status = ?", order.InProduction.String()).
		Where(`NOT EXISTS (
			SELECT 1 FROM production_operations po
			WHERE po.order_id = orders.id AND po.operation_type = ?
		)`, production.Produce.String()).
		Order("updated_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, errs.NewRepositoryUnavailableError("get orders missing production", err)
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
