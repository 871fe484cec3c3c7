// Package kanbanrepo persists kanban board columns.
package kanbanrepo

import (
	"furniture/internal/core/domain/model/kanban"
	"furniture/internal/core/domain/model/kernel"
	"furniture/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// KanbanColumnDTO is the row shape of a board column. Postgres treats NULLs as
// distinct, so any number of unbound columns coexist with the unique status index.
type KanbanColumnDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string    `gorm:"size:64;not null"`
	Position int       `gorm:"not null;uniqueIndex"`
	Status   *string   `gorm:"size:32;uniqueIndex"`
}

func (KanbanColumnDTO) TableName() string {
	return "kanban_columns"
}

func fromDomain(c *kanban.Column) KanbanColumnDTO {
	dto := KanbanColumnDTO{
		ID:       c.ID().Bytes(),
		Name:     c.Name(),
		Position: c.Position(),
	}
	if status := c.Status(); status != nil {
		s := status.String()
		dto.Status = &s
	}
	return dto
}

func toDomain(dto KanbanColumnDTO) (*kanban.Column, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var status *order.Status
	if dto.Status != nil {
		s, err := order.StatusFromString(*dto.Status)
		if err != nil {
			return nil, err
		}
		status = &s
	}

	return kanban.NewColumn(id, dto.Name, dto.Position, status)
}
