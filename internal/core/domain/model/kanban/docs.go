// Package kanban models the production board: named, ordered columns and the
// ordered lane of orders each column holds.
//
// A Lane keeps its orders at contiguous zero-based positions. Every mutation
// (Remove, Insert) preserves that invariant, so positions read from a Lane can be
// written back to storage as-is.
package kanban
