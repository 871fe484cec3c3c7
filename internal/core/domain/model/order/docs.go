// Package order provides the Order aggregate of the furniture order service and the
// state machine that governs its lifecycle.
//
// The package includes:
//   - Order: the aggregate root holding identity, commercial data and kanban placement
//   - Status: the lifecycle state machine (new → confirmed → in_production → ready →
//     shipped → delivered, with cancellation from any non-terminal state)
//   - Priority: the closed set urgent, high, normal, low
//
// Key business rules:
//   - Orders are created in New status
//   - Delivered and Cancelled are terminal
//   - Moving into the current status, backwards, or skipping ahead is an invalid transition
//   - Unrecognized status or priority names are invalid arguments
package order
