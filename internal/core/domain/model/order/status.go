package order

import (
	"fmt"

	"furniture/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the manufacturing workflow.
//
// State transitions:
//
//	New ──> Confirmed ──> InProduction ──> Ready ──> Shipped ──> Delivered
//	 │          │              │             │          │
//	 └──────────┴──────────────┴─────────────┴──────────┴──> Cancelled
//
// Delivered and Cancelled are terminal. A transition into the current
// status is never an edge.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// New is the initial status of every order.
	New

	// Confirmed means the customer and the workshop agreed on the order.
	Confirmed

	// InProduction means manufacturing has started. Entering this status
	// triggers the creation of a produce operation.
	InProduction

	// Ready means the furniture is built and awaits shipping.
	Ready

	// Shipped means the order left the workshop.
	Shipped

	// Delivered is the terminal success status.
	Delivered

	// Cancelled is the terminal status reachable from any non-terminal status.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:      "unknown",
		New:          "new",
		Confirmed:    "confirmed",
		InProduction: "in_production",
		Ready:        "ready",
		Shipped:      "shipped",
		Delivered:    "delivered",
		Cancelled:    "cancelled",
	}
}

// forwardEdges lists the single forward successor of each non-terminal status.
// Cancelled is reachable from every key of this map.
func forwardEdges() map[Status]Status {
	return map[Status]Status{
		New:          Confirmed,
		Confirmed:    InProduction,
		InProduction: Ready,
		Ready:        Shipped,
		Shipped:      Delivered,
	}
}

// Statuses returns every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{New, Confirmed, InProduction, Ready, Shipped, Delivered, Cancelled}
}

// StatusFromString parses the wire name of a status ("in_production").
// Unrecognized names are rejected with an invalid argument error.
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the recognized statuses.
func (s Status) Validate() error {
	if s < New || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, "unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanTransitionTo reports whether (s, target) is an edge of the lifecycle graph.
func (s Status) CanTransitionTo(target Status) bool {
	if s.Validate() != nil || target.Validate() != nil || s.IsTerminal() || s == target {
		return false
	}
	if target == Cancelled {
		return true
	}
	next, ok := forwardEdges()[s]
	return ok && next == target
}

// TransitionTo returns target when (s, target) is an edge, otherwise an
// invalid argument error for an unrecognized target or an invalid transition error.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(target) {
		return Unknown, errs.NewInvalidTransitionError(s.String(), target.String())
	}
	return target, nil
}
