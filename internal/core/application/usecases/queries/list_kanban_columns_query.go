package queries

import (
	"context"
	"errors"

	"furniture/internal/core/domain/model/kernel"
	"furniture/internal/core/domain/model/order"
	"furniture/internal/pkg/errs"
	"furniture/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrListKanbanColumnsQueryIsNotConstructed = errors.New(
		"ListKanbanColumnsQuery must be created via NewListKanbanColumnsQuery constructor",
	)
)

// ListKanbanColumnsQuery lists every board column ordered by position.
type ListKanbanColumnsQuery struct {
	guard guard.ConstructorGuard
}

func NewListKanbanColumnsQuery() ListKanbanColumnsQuery {
	return ListKanbanColumnsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListKanbanColumnsQuery) Validate() error {
	return q.guard.Validate(ErrListKanbanColumnsQueryIsNotConstructed)
}

type ListKanbanColumnsQueryHandler struct {
	db *gorm.DB
}

func NewListKanbanColumnsQueryHandler(db *gorm.DB) ListKanbanColumnsQueryHandler {
	return ListKanbanColumnsQueryHandler{db: db}
}

func (h ListKanbanColumnsQueryHandler) Handle(ctx context.Context, query ListKanbanColumnsQuery) ([]KanbanColumnView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			position,
			status
		FROM kanban_columns
		ORDER BY position
	`).Rows()
	if err != nil {
		return nil, errs.NewRepositoryUnavailableError("list kanban columns", err)
	}
	defer rows.Close()

	columns := make([]KanbanColumnView, 0)
	for rows.Next() {
		var (
			id     uuid.UUID
			view   KanbanColumnView
			status *string
		)
		if err = rows.Scan(&id, &view.Name, &view.Position, &status); err != nil {
			return nil, errs.NewRepositoryUnavailableError("list kanban columns", err)
		}

		if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if status != nil {
			s, statusErr := order.StatusFromString(*status)
			if statusErr != nil {
				return nil, statusErr
			}
			view.Status = &s
		}
		columns = append(columns, view)
	}

	if err = rows.Err(); err != nil {
		return nil, errs.NewRepositoryUnavailableError("list kanban columns", err)
	}

	return columns, nil
}
