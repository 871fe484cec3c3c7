// Package productionrepo persists production operations.
package productionrepo

import (
	"time"

	"furniture/internal/core/domain/model/kernel"
	"furniture/internal/core/domain/model/production"

	"github.com/google/uuid"
)

// ProductionOperationDTO is the row shape of a production operation. The unique
// index over (order_id, operation_type, episode_id) rejects a second operation
// for the same transition episode.
type ProductionOperationDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_production_operations_episode,priority:1"`
	OperationType   string    `gorm:"size:32;not null;uniqueIndex:idx_production_operations_episode,priority:2"`
	EpisodeID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_production_operations_episode,priority:3"`
	ProductionStage string    `gorm:"size:32;not null"`
	Status          string    `gorm:"size:16;not null;index"`
	CreatedAt       time.Time `gorm:"not null"`
}

func (ProductionOperationDTO) TableName() string {
	return "production_operations"
}

func fromDomain(op *production.Operation) ProductionOperationDTO {
	return ProductionOperationDTO{
		ID:              op.ID().Bytes(),
		OrderID:         op.OrderID().Bytes(),
		OperationType:   op.Type().String(),
		EpisodeID:       op.EpisodeID().Bytes(),
		ProductionStage: op.Stage().String(),
		Status:          op.Status().String(),
		CreatedAt:       op.CreatedAt(),
	}
}

func toDomain(dto ProductionOperationDTO) (*production.Operation, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	episodeID, err := kernel.UUIDFromBytes(dto.EpisodeID[:])
	if err != nil {
		return nil, err
	}
	operationType, err := production.OperationTypeFromString(dto.OperationType)
	if err != nil {
		return nil, err
	}
	stage, err := production.StageFromString(dto.ProductionStage)
	if err != nil {
		return nil, err
	}
	status, err := production.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return production.RestoreOperation(id, orderID, episodeID, operationType, stage, status, dto.CreatedAt.UTC())
}
