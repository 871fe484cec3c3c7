package queries

import (
	"context"
	"errors"
	"time"

	"furniture/internal/core/domain/model/kernel"
	"furniture/internal/core/domain/model/production"
	"furniture/internal/pkg/errs"
	"furniture/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrListProductionOperationsQueryIsNotConstructed = errors.New(
		"ListProductionOperationsQuery must be created via NewListProductionOperationsQuery constructor",
	)
)

// ListProductionOperationsQuery lists the production operations of one order.
type ListProductionOperationsQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewListProductionOperationsQuery(orderID kernel.UUID) (ListProductionOperationsQuery, error) {
	if err := orderID.Validate(); err != nil {
		return ListProductionOperationsQuery{}, err
	}
	return ListProductionOperationsQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListProductionOperationsQuery) Validate() error {
	return q.guard.Validate(ErrListProductionOperationsQueryIsNotConstructed)
}

func (q ListProductionOperationsQuery) OrderID() kernel.UUID {
	return q.orderID
}

// ListProductionOperationsQueryHandler returns operations oldest first. An unknown
// order is reported as errs.ObjectNotFoundError rather than an empty list.
type ListProductionOperationsQueryHandler struct {
	db *gorm.DB
}

func NewListProductionOperationsQueryHandler(db *gorm.DB) ListProductionOperationsQueryHandler {
	return ListProductionOperationsQueryHandler{db: db}
}

type productionOperationRow struct {
	ID              uuid.UUID
	OrderID         uuid.UUID
	EpisodeID       uuid.UUID
	OperationType   string
	ProductionStage string
	Status          string
	CreatedAt       time.Time
}

func (h ListProductionOperationsQueryHandler) Handle(
	ctx context.Context,
	query ListProductionOperationsQuery,
) ([]ProductionOperationView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)
	orderID := query.OrderID().Bytes()

	var exists int64
	if err := db.Table("orders").Where("id = ?", orderID).Count(&exists).Error; err != nil {
		return nil, errs.NewRepositoryUnavailableError("list production operations", err)
	}
	if exists == 0 {
		return nil, errs.NewObjectNotFoundError("order", query.OrderID())
	}

	var rows []productionOperationRow
	err := db.Table("production_operations").
		Select("id, order_id, episode_id, operation_type, production_stage, status, created_at").
		Where("order_id = ?", orderID).
		Order("created_at, id").
		Scan(&rows).Error
	if err != nil {
		return nil, errs.NewRepositoryUnavailableError("list production operations", err)
	}

	views := make([]ProductionOperationView, 0, len(rows))
	for _, row := range rows {
		view, viewErr := row.toView()
		if viewErr != nil {
			return nil, viewErr
		}
		views = append(views, view)
	}
	return views, nil
}

func (r productionOperationRow) toView() (ProductionOperationView, error) {
	id, idErr := kernel.UUIDFromBytes(r.ID[:])
	orderID, orderErr := kernel.UUIDFromBytes(r.OrderID[:])
	episodeID, episodeErr := kernel.UUIDFromBytes(r.EpisodeID[:])
	operationType, typeErr := production.OperationTypeFromString(r.OperationType)
	stage, stageErr := production.StageFromString(r.ProductionStage)
	status, statusErr := production.StatusFromString(r.Status)
	if err := errors.Join(idErr, orderErr, episodeErr, typeErr, stageErr, statusErr); err != nil {
		return ProductionOperationView{}, err
	}

	return ProductionOperationView{
		ID:            id,
		OrderID:       orderID,
		EpisodeID:     episodeID,
		OperationType: operationType,
		Stage:         stage,
		Status:        status,
		CreatedAt:     r.CreatedAt.UTC(),
	}, nil
}
