package commands

import (
	"errors"
	"time"

	"furniture/internal/core/domain/model/kernel"
	"furniture/internal/core/domain/model/order"
	"furniture/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to register a new furniture order.
// Priority and amount arrive in their wire form and are parsed here, so an
// unrecognized value is rejected before any write.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), "ORD-2024-0042", customerID, "Oak & Co",
//	    "high", "1890.00", time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC))
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	number       string
	customerID   kernel.UUID
	customerName string
	priority     order.Priority
	totalAmount  kernel.Money
	deliveryDate time.Time

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// An empty priority defaults to normal.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	number string,
	customerID kernel.UUID,
	customerName string,
	priority string,
	totalAmount string,
	deliveryDate time.Time,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		number:       number,
		customerName: customerName,
		deliveryDate: deliveryDate,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setPriority(priority),
		cmd.setTotalAmount(totalAmount),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) Number() string {
	return c.number
}

func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

func (c CreateOrderCommand) Priority() order.Priority {
	return c.priority
}

func (c CreateOrderCommand) TotalAmount() kernel.Money {
	return c.totalAmount
}

func (c CreateOrderCommand) DeliveryDate() time.Time {
	return c.deliveryDate
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setPriority(priority string) error {
	if priority == "" {
		c.priority = order.Normal
		return nil
	}

	p, err := order.PriorityFromString(priority)
	if err != nil {
		return err
	}

	c.priority = p
	return nil
}

func (c *CreateOrderCommand) setTotalAmount(amount string) error {
	m, err := kernel.MoneyFromString(amount)
	if err != nil {
		return err
	}

	c.totalAmount = m
	return nil
}
