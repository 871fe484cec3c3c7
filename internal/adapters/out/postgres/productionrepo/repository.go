package productionrepo

import (
	"context"
	"errors"
	"fmt"

	"furniture/internal/core/domain/model/kernel"
	"furniture/internal/core/domain/model/production"
	"furniture/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProductionOperationRepository implements ProductionOperationRepository using GORM.
type GormProductionOperationRepository struct {
	db *gorm.DB
}

func NewGormProductionOperationRepository(db *gorm.DB) *GormProductionOperationRepository {
	return &GormProductionOperationRepository{db: db}
}

// Add inserts a new operation. A duplicate (order, type, episode) is reported as
// an invalid value so callers do not retry it.
func (r *GormProductionOperationRepository) Add(ctx context.Context, operation *production.Operation) error {
	if err := operation.Validate(); err != nil {
		return err
	}

	dto := fromDomain(operation)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewValueIsInvalidErrorWithCause(
				"production operation",
				fmt.Errorf("episode %s already has a %s operation", operation.EpisodeID(), operation.Type()),
			)
		}
		return errs.NewRepositoryUnavailableError("add production operation", err)
	}

	return nil
}

func (r *GormProductionOperationRepository) FindActive(
	ctx context.Context,
	orderID kernel.UUID,
	operationType production.OperationType,
	episodeID kernel.UUID,
) (*production.Operation, error) {
	var dto ProductionOperationDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ? AND operation_type = ? AND episode_id = ?",
			orderID.Bytes(), operationType.String(), episodeID.Bytes()).
		Where("status IN ?", []string{production.Pending.String(), production.InProgress.String()}).
		Take(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("production operation", episodeID.String())
		}
		return nil, errs.NewRepositoryUnavailableError("find production operation", err)
	}

	return toDomain(dto)
}

func (r *GormProductionOperationRepository) GetAllByOrder(
	ctx context.Context,
	orderID kernel.UUID,
) ([]*production.Operation, error) {
	var dtos []ProductionOperationDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("created_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, errs.NewRepositoryUnavailableError("list production operations", err)
	}

	ops := make([]*production.Operation, 0, len(dtos))
	for _, dto := range dtos {
		op, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}
