package kanban

import (
	"errors"
	"fmt"
	"strings"

	"furniture/internal/core/domain/model/kernel"
	"furniture/internal/core/domain/model/order"
	"furniture/internal/pkg/errs"
)

// MaxColumnNameLength bounds column names.
const MaxColumnNameLength = 64

// ErrColumnIsNotConstructed is returned when a Column bypassed its constructor.
var ErrColumnIsNotConstructed = errors.New("Column must be created via NewColumn constructor")

// Column is a named bucket on the board. Position orders columns left to right.
// A column may be bound to an order status; orders entering that status are
// appended to the column.
type Column struct {
	id       kernel.UUID
	name     string
	position int
	status   *order.Status

	isConstructed bool
}

// NewColumn creates a column. status may be nil for an unbound column.
func NewColumn(id kernel.UUID, name string, position int, status *order.Status) (*Column, error) {
	c := &Column{isConstructed: true}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setPosition(position),
		c.setStatus(status),
	); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Column) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrColumnIsNotConstructed
	}
	return nil
}

func (c *Column) ID() kernel.UUID {
	return c.id
}

func (c *Column) Name() string {
	return c.name
}

func (c *Column) Position() int {
	return c.position
}

// Status returns the bound order status, nil when unbound.
func (c *Column) Status() *order.Status {
	return c.status
}

func (c *Column) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Column) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("column name")
	}
	if len(name) > MaxColumnNameLength {
		return errs.NewValueIsOutOfRangeError("column name length", len(name), 1, MaxColumnNameLength)
	}
	c.name = name
	return nil
}

func (c *Column) setPosition(position int) error {
	if position < 0 {
		return errs.NewValueIsInvalidErrorWithCause("column position is invalid", fmt.Errorf("%d is negative", position))
	}
	c.position = position
	return nil
}

func (c *Column) setStatus(status *order.Status) error {
	if status == nil {
		return nil
	}
	if err := status.Validate(); err != nil {
		return err
	}
	s := *status
	c.status = &s
	return nil
}
