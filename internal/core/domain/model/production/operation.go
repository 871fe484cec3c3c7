package production

import (
	"errors"
	"fmt"
	"time"

	"furniture/internal/core/domain/model/kernel"
	"furniture/internal/pkg/errs"
)

// ErrOperationIsNotConstructed is returned when an Operation bypassed its constructors.
var ErrOperationIsNotConstructed = errors.New("Operation must be created via NewOperation or RestoreOperation constructor")

// Operation is a production operation record tied to one order.
type Operation struct {
	id            kernel.UUID
	orderID       kernel.UUID
	episodeID     kernel.UUID
	operationType OperationType
	stage         Stage
	status        Status
	createdAt     time.Time

	isConstructed bool
}

// NewOperation creates a pending operation for orderID requested by the transition episode episodeID.
func NewOperation(
	id kernel.UUID,
	orderID kernel.UUID,
	episodeID kernel.UUID,
	operationType OperationType,
	stage Stage,
) (*Operation, error) {
	op := &Operation{
		status:        Pending,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		op.setIDs(id, orderID, episodeID),
		op.setType(operationType),
		op.setStage(stage),
	); err != nil {
		return nil, err
	}

	return op, nil
}

// RestoreOperation rebuilds an operation from persistence.
func RestoreOperation(
	id kernel.UUID,
	orderID kernel.UUID,
	episodeID kernel.UUID,
	operationType OperationType,
	stage Stage,
	status Status,
	createdAt time.Time,
) (*Operation, error) {
	op := &Operation{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		op.setIDs(id, orderID, episodeID),
		op.setType(operationType),
		op.setStage(stage),
		op.setStatus(status),
	); err != nil {
		return nil, err
	}

	return op, nil
}

func (o *Operation) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOperationIsNotConstructed
	}
	return nil
}

func (o *Operation) ID() kernel.UUID {
	return o.id
}

func (o *Operation) OrderID() kernel.UUID {
	return o.orderID
}

// EpisodeID identifies the transition episode that requested this operation.
func (o *Operation) EpisodeID() kernel.UUID {
	return o.episodeID
}

func (o *Operation) Type() OperationType {
	return o.operationType
}

func (o *Operation) Stage() Stage {
	return o.stage
}

func (o *Operation) Status() Status {
	return o.status
}

func (o *Operation) CreatedAt() time.Time {
	return o.createdAt
}

// Matches reports whether the operation answers the creation request
// (orderID, operationType, episodeID) and is still active.
func (o *Operation) Matches(orderID kernel.UUID, operationType OperationType, episodeID kernel.UUID) bool {
	return o.orderID.IsEqual(orderID) &&
		o.operationType == operationType &&
		o.episodeID.IsEqual(episodeID) &&
		o.status.IsActive()
}

func (o *Operation) setIDs(id, orderID, episodeID kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order id", err)
	}
	if err := episodeID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("episode id", err)
	}
	o.id, o.orderID, o.episodeID = id, orderID, episodeID
	return nil
}

func (o *Operation) setType(t OperationType) error {
	if err := t.Validate(); err != nil {
		return err
	}
	o.operationType = t
	return nil
}

func (o *Operation) setStage(s Stage) error {
	if err := s.Validate(); err != nil {
		return err
	}
	o.stage = s
	return nil
}

func (o *Operation) setStatus(s Status) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("restore operation: %w", err)
	}
	o.status = s
	return nil
}
