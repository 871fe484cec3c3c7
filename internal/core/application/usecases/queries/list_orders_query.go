package queries

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"furniture/internal/core/domain/model/kernel"
	"furniture/internal/core/domain/model/order"
	"furniture/internal/pkg/errs"
	"furniture/internal/pkg/guard"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// SortField is a column orders can be sorted by.
type SortField string

const (
	SortByCreatedAt    SortField = "created_at"
	SortByOrderNumber  SortField = "order_number"
	SortByTotalAmount  SortField = "total_amount"
	SortByDeliveryDate SortField = "delivery_date"
)

// SortOrder is the direction of the sort.
type SortOrder string

const (
	Asc  SortOrder = "asc"
	Desc SortOrder = "desc"
)

// ListOrdersFilter is the raw listing filter as received from callers.
// Empty fields impose no constraint; zero Page and Limit take their defaults.
type ListOrdersFilter struct {
	Status     string
	Priority   string
	CustomerID string
	Search     string
	SortBy     string
	SortOrder  string
	Page       int
	Limit      int
}

// ListOrdersQuery is a validated ListOrdersFilter.
//
// Example:
//
//	query, err := NewListOrdersQuery(ListOrdersFilter{Status: "in_production", SortBy: "total_amount", SortOrder: "desc"})
//	if err != nil {
//	    return err // unknown enum value or bad paging
//	}
//	page, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	status     *order.Status
	priority   *order.Priority
	customerID *kernel.UUID
	search     string
	sortBy     SortField
	sortOrder  SortOrder
	page       int
	limit      int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery validates every filter field. Any value outside the closed
// enumerations is rejected with an invalid argument error.
func NewListOrdersQuery(filter ListOrdersFilter) (ListOrdersQuery, error) {
	q := ListOrdersQuery{
		search: strings.TrimSpace(filter.Search),
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setStatus(filter.Status),
		q.setPriority(filter.Priority),
		q.setCustomerID(filter.CustomerID),
		q.setSort(filter.SortBy, filter.SortOrder),
		q.setPaging(filter.Page, filter.Limit),
	); err != nil {
		return ListOrdersQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Status() *order.Status {
	return q.status
}

func (q ListOrdersQuery) Priority() *order.Priority {
	return q.priority
}

func (q ListOrdersQuery) CustomerID() *kernel.UUID {
	return q.customerID
}

func (q ListOrdersQuery) Search() string {
	return q.search
}

func (q ListOrdersQuery) SortBy() SortField {
	return q.sortBy
}

func (q ListOrdersQuery) SortOrder() SortOrder {
	return q.sortOrder
}

func (q ListOrdersQuery) Page() int {
	return q.page
}

func (q ListOrdersQuery) Limit() int {
	return q.limit
}

// Offset is the number of rows skipped before the page.
func (q ListOrdersQuery) Offset() int {
	return (q.page - 1) * q.limit
}

func (q *ListOrdersQuery) setStatus(s string) error {
	if s == "" {
		return nil
	}
	status, err := order.StatusFromString(s)
	if err != nil {
		return err
	}
	q.status = &status
	return nil
}

func (q *ListOrdersQuery) setPriority(p string) error {
	if p == "" {
		return nil
	}
	priority, err := order.PriorityFromString(p)
	if err != nil {
		return err
	}
	q.priority = &priority
	return nil
}

func (q *ListOrdersQuery) setCustomerID(id string) error {
	if id == "" {
		return nil
	}
	customerID, err := kernel.UUIDFromString(id)
	if err != nil {
		return err
	}
	q.customerID = &customerID
	return nil
}

func (q *ListOrdersQuery) setSort(sortBy, sortOrder string) error {
	q.sortBy, q.sortOrder = SortByCreatedAt, Desc

	var errSortBy, errSortOrder error
	switch f := SortField(sortBy); f {
	case "":
	case SortByCreatedAt, SortByOrderNumber, SortByTotalAmount, SortByDeliveryDate:
		q.sortBy = f
	default:
		errSortBy = errs.NewValueIsInvalidErrorWithCause("sort_by", fmt.Errorf("%q is not a sortable field", sortBy))
	}

	switch o := SortOrder(sortOrder); o {
	case "":
	case Asc, Desc:
		q.sortOrder = o
	default:
		errSortOrder = errs.NewValueIsInvalidErrorWithCause("sort_order", fmt.Errorf("%q is not asc or desc", sortOrder))
	}

	return errors.Join(errSortBy, errSortOrder)
}

func (q *ListOrdersQuery) setPaging(page, limit int) error {
	q.page, q.limit = DefaultPage, DefaultLimit

	var errPage, errLimit error
	switch {
	case page == 0:
	case page < 0:
		errPage = errs.NewValueIsOutOfRangeError("page", page, 1, "unbounded")
	default:
		q.page = page
	}

	switch {
	case limit == 0:
	case limit < 0 || limit > MaxLimit:
		errLimit = errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxLimit)
	default:
		q.limit = limit
	}

	// Offset is bound to int32 so it survives any driver and never wraps.
	if maxPage := math.MaxInt32/q.limit + 1; errPage == nil && q.page > maxPage {
		errPage = errs.NewValueIsOutOfRangeError("page", page, 1, maxPage)
	}

	return errors.Join(errPage, errLimit)
}
