package kanbanrepo

import (
	"context"
	"errors"
	"fmt"

	"furniture/internal/core/domain/model/kanban"
	"furniture/internal/core/domain/model/kernel"
	"furniture/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormKanbanColumnRepository implements KanbanColumnRepository using GORM.
type GormKanbanColumnRepository struct {
	db *gorm.DB
}

// NewGormKanbanColumnRepository creates a new GORM kanban column repository.
func NewGormKanbanColumnRepository(db *gorm.DB) *GormKanbanColumnRepository {
	return &GormKanbanColumnRepository{db: db}
}

// Add saves a new column. Position and status bindings are unique board-wide.
func (r *GormKanbanColumnRepository) Add(ctx context.Context, column *kanban.Column) error {
	if err := column.Validate(); err != nil {
		return err
	}

	dto := fromDomain(column)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewValueIsInvalidErrorWithCause(
				"kanban column",
				fmt.Errorf("position %d or its status binding is already taken", column.Position()),
			)
		}
		return errs.NewRepositoryUnavailableError("add kanban column", err)
	}

	return nil
}

// Get retrieves a column by ID.
func (r *GormKanbanColumnRepository) Get(ctx context.Context, id kernel.UUID) (*kanban.Column, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto KanbanColumnDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("kanban column", id.String())
		}
		return nil, errs.NewRepositoryUnavailableError("get kanban column", err)
	}

	return toDomain(dto)
}

// GetAll retrieves every column ordered by position.
func (r *GormKanbanColumnRepository) GetAll(ctx context.Context) ([]*kanban.Column, error) {
	var dtos []KanbanColumnDTO
	if err := r.db.WithContext(ctx).Order("position").Find(&dtos).Error; err != nil {
		return nil, errs.NewRepositoryUnavailableError("list kanban columns", err)
	}

	columns := make([]*kanban.Column, 0, len(dtos))
	for _, dto := range dtos {
		column, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		columns = append(columns, column)
	}

	return columns, nil
}

// Delete removes a column by ID.
func (r *GormKanbanColumnRepository) Delete(ctx context.Context, id kernel.UUID) error {
	result := r.db.WithContext(ctx).Delete(&KanbanColumnDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return errs.NewRepositoryUnavailableError("delete kanban column", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("kanban column", id.String())
	}
	return nil
}
