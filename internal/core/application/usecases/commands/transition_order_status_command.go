package commands

import (
	"errors"

	"furniture/internal/core/domain/model/kernel"
	"furniture/internal/core/domain/model/order"
	"furniture/internal/pkg/guard"
)

var (
	ErrTransitionOrderStatusCommandIsNotConstructed = errors.New(
		"TransitionOrderStatusCommand must be created via NewTransitionOrderStatusCommand constructor",
	)
)

// TransitionOrderStatusCommand requests moving an order to a new lifecycle status.
//
// Each command is one transition episode: its EpisodeID scopes the side effects the
// transition triggers, so handling the same command value twice cannot create a
// second production operation.
//
// Example:
//
//	cmd, err := NewTransitionOrderStatusCommand(orderID, "in_production")
//	if err != nil {
//	    return err // unrecognized status
//	}
//	updated, err := handler.Handle(ctx, cmd)
type TransitionOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	target    order.Status
	episodeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewTransitionOrderStatusCommand parses target and opens a new transition episode.
func NewTransitionOrderStatusCommand(orderID kernel.UUID, target string) (TransitionOrderStatusCommand, error) {
	status, statusErr := order.StatusFromString(target)
	if err := errors.Join(orderID.Validate(), statusErr); err != nil {
		return TransitionOrderStatusCommand{}, err
	}

	return TransitionOrderStatusCommand{
		orderID:   orderID,
		target:    status,
		episodeID: kernel.NewUUID(),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderStatusCommandIsNotConstructed)
}

func (c TransitionOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c TransitionOrderStatusCommand) Target() order.Status {
	return c.target
}

// EpisodeID identifies this transition episode.
func (c TransitionOrderStatusCommand) EpisodeID() kernel.UUID {
	return c.episodeID
}
