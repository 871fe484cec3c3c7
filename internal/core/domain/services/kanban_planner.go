package services

import (
	"errors"

	"furniture/internal/core/domain/model/kanban"
	"furniture/internal/core/domain/model/kernel"
	"furniture/internal/core/domain/model/order"
)

// ErrTargetLaneIsRequired is returned when Move is called without a target lane.
var ErrTargetLaneIsRequired = errors.New("target lane is required")

// MoveResult describes the outcome of a move.
type MoveResult struct {
	// SourceVacated is the position freed in the source lane, -1 when the order was not in it.
	SourceVacated int
	// Position is the clamped position used in the target lane.
	Position int
	// SameColumn is true when the order moved within one column.
	SameColumn bool
}

// KanbanPlanner is a stateless domain service for board placement.
//
// Example usage:
//
//	planner := services.NewKanbanPlanner()
//	res, err := planner.Move(sourceLane, targetLane, orderID, 2)
//	if err != nil {
//	    return err
//	}
//	// persist sourceLane.Placements() and targetLane.Placements()
type KanbanPlanner struct{}

func NewKanbanPlanner() KanbanPlanner {
	return KanbanPlanner{}
}

// Move removes orderID from source (which may be nil for an unplaced order) and
// inserts it into target at position, clamped to [0, target.Len()]. When source and
// target are the same column, only target is mutated.
func (KanbanPlanner) Move(source, target *kanban.Lane, orderID kernel.UUID, position int) (MoveResult, error) {
	if target == nil {
		return MoveResult{}, ErrTargetLaneIsRequired
	}
	if err := orderID.Validate(); err != nil {
		return MoveResult{}, err
	}

	result := MoveResult{SourceVacated: -1}
	switch {
	case source != nil && source.ColumnID().IsEqual(target.ColumnID()):
		result.SameColumn = true
		result.SourceVacated, _ = target.Remove(orderID)
	case source != nil:
		result.SourceVacated, _ = source.Remove(orderID)
		// an order listed in the target as well is a corrupt row; drop the stale slot
		target.Remove(orderID)
	default:
		target.Remove(orderID)
	}

	result.Position = target.Insert(orderID, position)
	return result, nil
}

// ColumnForStatus returns the column bound to status, or nil when none is bound.
func (KanbanPlanner) ColumnForStatus(columns []*kanban.Column, status order.Status) *kanban.Column {
	for _, c := range columns {
		if c.Status() != nil && *c.Status() == status {
			return c
		}
	}
	return nil
}
