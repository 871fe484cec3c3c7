package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"furniture/internal/core/domain/model/kernel"
	"furniture/internal/pkg/errs"
)

const (
	// MaxNumberLength bounds the display key of an order.
	MaxNumberLength = 32
	// MaxCustomerNameLength bounds the denormalized customer name.
	MaxCustomerNameLength = 255
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order represents a custom furniture order. It is the aggregate root that manages
// the order lifecycle from creation through production to delivery.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a non-empty, immutable order number
//   - Must reference a customer
//   - Total amount is never negative
//   - Status only moves along the edges of the lifecycle graph (see Status)
//   - Kanban placement is either absent or a column reference with a non-negative position
type Order struct {
	id           kernel.UUID
	number       string
	status       Status
	priority     Priority
	customerID   kernel.UUID
	customerName string
	totalAmount  kernel.Money
	deliveryDate time.Time
	createdAt    time.Time
	updatedAt    time.Time

	// kanbanColumnID is nil while the order is not placed on the board
	kanbanColumnID *kernel.UUID
	kanbanPosition int

	isConstructed bool
}

// NewOrder creates a new Order in New status with validation.
//
// Example:
//
//	amount, _ := kernel.MoneyFromString("1890.00")
//	o, err := order.NewOrder(kernel.NewUUID(), "ORD-2024-0042", customerID, "Oak & Co",
//	    order.High, amount, time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC))
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(
	id kernel.UUID,
	number string,
	customerID kernel.UUID,
	customerName string,
	priority Priority,
	totalAmount kernel.Money,
	deliveryDate time.Time,
) (*Order, error) {
	now := time.Now().UTC()
	order := &Order{
		status:        New,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setNumber(number),
		order.setCustomer(customerID, customerName),
		order.setPriority(priority),
		order.setTotalAmount(totalAmount),
		order.setDeliveryDate(deliveryDate),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Snapshot carries the persisted state of an order for RestoreOrder.
type Snapshot struct {
	ID             kernel.UUID
	Number         string
	Status         Status
	Priority       Priority
	CustomerID     kernel.UUID
	CustomerName   string
	TotalAmount    kernel.Money
	DeliveryDate   time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
	KanbanColumnID *kernel.UUID
	KanbanPosition int
}

// RestoreOrder rebuilds an order from persistence, validating every field.
func RestoreOrder(s Snapshot) (*Order, error) {
	order := &Order{
		createdAt:     s.CreatedAt,
		updatedAt:     s.UpdatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(s.ID),
		order.setNumber(s.Number),
		order.setStatus(s.Status),
		order.setCustomer(s.CustomerID, s.CustomerName),
		order.setPriority(s.Priority),
		order.setTotalAmount(s.TotalAmount),
		order.setDeliveryDate(s.DeliveryDate),
		order.setKanbanPlacement(s.KanbanColumnID, s.KanbanPosition),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the human-facing order number.
func (o *Order) Number() string {
	return o.number
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) Priority() Priority {
	return o.priority
}

func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

func (o *Order) CustomerName() string {
	return o.customerName
}

func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

func (o *Order) DeliveryDate() time.Time {
	return o.deliveryDate
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// KanbanColumnID returns the column holding the order, nil when unplaced.
func (o *Order) KanbanColumnID() *kernel.UUID {
	return o.kanbanColumnID
}

// KanbanPosition returns the zero-based position inside KanbanColumnID.
func (o *Order) KanbanPosition() int {
	return o.kanbanPosition
}

// ChangeStatus moves the order along one edge of the lifecycle graph and
// returns the status it left.
//
// Returns:
//   - invalid argument error if target is not a recognized status
//   - invalid transition error if (current, target) is not an edge
func (o *Order) ChangeStatus(target Status) (Status, error) {
	if err := o.Validate(); err != nil {
		return Unknown, err
	}

	next, err := o.status.TransitionTo(target)
	if err != nil {
		return Unknown, err
	}

	previous := o.status
	o.status = next
	o.updatedAt = time.Now().UTC()
	return previous, nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return errs.NewValueIsRequiredError("order number")
	}
	if len(number) > MaxNumberLength {
		return errs.NewValueIsOutOfRangeError("order number length", len(number), 1, MaxNumberLength)
	}
	o.number = number
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setCustomer(customerID kernel.UUID, customerName string) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer id", err)
	}
	if len(customerName) > MaxCustomerNameLength {
		return errs.NewValueIsOutOfRangeError("customer name length", len(customerName), 0, MaxCustomerNameLength)
	}
	o.customerID = customerID
	o.customerName = strings.TrimSpace(customerName)
	return nil
}

func (o *Order) setPriority(priority Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	o.priority = priority
	return nil
}

func (o *Order) setTotalAmount(amount kernel.Money) error {
	if err := amount.Validate(); err != nil {
		return err
	}
	o.totalAmount = amount
	return nil
}

func (o *Order) setDeliveryDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("delivery date")
	}
	o.deliveryDate = date.UTC()
	return nil
}

func (o *Order) setKanbanPlacement(columnID *kernel.UUID, position int) error {
	if columnID == nil {
		o.kanbanColumnID = nil
		o.kanbanPosition = 0
		return nil
	}
	if err := columnID.Validate(); err != nil {
		return err
	}
	if position < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"kanban position is invalid",
			fmt.Errorf("%d is negative", position),
		)
	}
	id := *columnID
	o.kanbanColumnID = &id
	o.kanbanPosition = position
	return nil
}
