package commands

import (
	"context"
	"errors"

	"furniture/internal/core/domain/model/kernel"
	"furniture/internal/core/domain/model/production"
	"furniture/internal/pkg/errs"
)

// CreateProductionOperationCommandHandler creates production operation records.
//
// The handler is idempotent per transition episode: when an active operation of
// the same type already exists for (order, episode) it is returned unchanged. The
// unique index on (order_id, operation_type, episode_id) rejects a racing insert.
type CreateProductionOperationCommandHandler struct {
	uowFactory ProductionUoWFactory
}

func NewCreateProductionOperationCommandHandler(
	uowFactory ProductionUoWFactory,
) CreateProductionOperationCommandHandler {
	return CreateProductionOperationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the operation for the command's episode, creating it when absent.
//
// Returns:
//   - invalid argument errors for an unconstructed command
//   - repository unavailable errors from storage, which callers may retry
func (h CreateProductionOperationCommandHandler) Handle(
	ctx context.Context,
	cmd CreateProductionOperationCommand,
) (*production.Operation, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ProductionOperationRepository()

	existing, err := repo.FindActive(ctx, cmd.OrderID(), cmd.OperationType(), cmd.EpisodeID())
	switch {
	case err == nil:
		return existing, nil
	case !errors.Is(err, errs.ErrObjectNotFound):
		return nil, err
	}

	op, err := production.NewOperation(
		kernel.NewUUID(),
		cmd.OrderID(),
		cmd.EpisodeID(),
		cmd.OperationType(),
		cmd.Stage(),
	)
	if err != nil {
		return nil, err
	}

	if err = repo.Add(ctx, op); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return op, nil
}
