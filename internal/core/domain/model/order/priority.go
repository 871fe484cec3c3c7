package order

import (
	"fmt"

	"furniture/internal/pkg/errs"
)

// Priority ranks how urgently an order should be manufactured.
type Priority int

const (
	UnknownPriority Priority = iota
	Urgent
	High
	Normal
	Low
)

var priorityNames = map[Priority]string{
	Urgent: "urgent",
	High:   "high",
	Normal: "normal",
	Low:    "low",
}

// PriorityFromString parses the wire name of a priority.
func PriorityFromString(s string) (Priority, error) {
	for p, name := range priorityNames {
		if name == s {
			return p, nil
		}
	}
	return UnknownPriority, errs.NewValueIsInvalidErrorWithCause(
		"priority is invalid",
		fmt.Errorf("%q is not a valid priority", s),
	)
}

func (p Priority) Validate() error {
	if _, ok := priorityNames[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("priority is invalid", fmt.Errorf("%d is not a valid priority", p))
	}
	return nil
}

func (p Priority) String() string {
	if name, ok := priorityNames[p]; ok {
		return name
	}
	return "unknown"
}
