// Package services contains domain services that coordinate several domain objects
// without owning state of their own.
//
// KanbanPlanner moves an order between kanban lanes, keeping both lanes contiguous,
// and resolves which column an order belongs to after a status change.
package services
