package production

import (
	"fmt"

	"furniture/internal/pkg/errs"
)

// OperationType is the kind of manufacturing work requested.
type OperationType string

const (
	Purchase           OperationType = "purchase"
	PurchaseAndProduce OperationType = "purchase_and_produce"
	Produce            OperationType = "produce"
	Cancel             OperationType = "cancel"
)

// OperationTypeFromString parses and validates an operation type.
func OperationTypeFromString(s string) (OperationType, error) {
	t := OperationType(s)
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

func (t OperationType) Validate() error {
	switch t {
	case Purchase, PurchaseAndProduce, Produce, Cancel:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"operation type is invalid",
			fmt.Errorf("%q is not a valid operation type", string(t)),
		)
	}
}

func (t OperationType) String() string {
	return string(t)
}

// Status is the progress of an operation on the shop floor.
type Status string

const (
	Pending    Status = "pending"
	InProgress Status = "in_progress"
	Completed  Status = "completed"
)

// StatusFromString parses and validates an operation status.
func StatusFromString(s string) (Status, error) {
	st := Status(s)
	if err := st.Validate(); err != nil {
		return "", err
	}
	return st, nil
}

func (s Status) Validate() error {
	switch s {
	case Pending, InProgress, Completed:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"operation status is invalid",
			fmt.Errorf("%q is not a valid operation status", string(s)),
		)
	}
}

// IsActive reports whether work is still outstanding.
func (s Status) IsActive() bool {
	return s == Pending || s == InProgress
}

func (s Status) String() string {
	return string(s)
}

// Stage labels the manufacturing phase an operation occupies.
type Stage string

const (
	// StageDesign is the initial stage of every produce operation.
	StageDesign       Stage = "design"
	StageProcurement  Stage = "procurement"
	StageCutting      Stage = "cutting"
	StageAssembly     Stage = "assembly"
	StageFinishing    Stage = "finishing"
	StageQualityCheck Stage = "quality_check"
	StagePackaging    Stage = "packaging"
)

// StageFromString parses and validates a stage label.
func StageFromString(s string) (Stage, error) {
	st := Stage(s)
	if err := st.Validate(); err != nil {
		return "", err
	}
	return st, nil
}

func (s Stage) Validate() error {
	switch s {
	case StageDesign, StageProcurement, StageCutting, StageAssembly,
		StageFinishing, StageQualityCheck, StagePackaging:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"production stage is invalid",
			fmt.Errorf("%q is not a valid production stage", string(s)),
		)
	}
}

func (s Stage) String() string {
	return string(s)
}
