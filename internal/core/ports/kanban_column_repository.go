package ports

import (
	"context"

	"furniture/internal/core/domain/model/kanban"
	"furniture/internal/core/domain/model/kernel"
)

// KanbanColumnRepository defines the persistence contract for board columns.
type KanbanColumnRepository interface {
	Add(ctx context.Context, column *kanban.Column) error

	Get(ctx context.Context, id kernel.UUID) (*kanban.Column, error)

	// GetAll lists every column ordered by position.
	GetAll(ctx context.Context) ([]*kanban.Column, error)

	// Delete removes a column. Callers check for referencing orders first.
	Delete(ctx context.Context, id kernel.UUID) error
}
