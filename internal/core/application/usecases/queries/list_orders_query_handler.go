package queries

import (
	"context"
	"strings"

	"furniture/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Pagination describes the page returned by ListOrdersQueryHandler.
type Pagination struct {
	Page  int
	Limit int
	Total int64
}

// ListOrdersQueryResponse is one page of orders.
type ListOrdersQueryResponse struct {
	Orders     []OrderView
	Pagination Pagination
}

// ListOrdersQueryHandler filters, sorts and paginates orders.
//
// Ordering is deterministic: ties on the sort field break by id ascending, so
// offset pages never overlap or skip rows while the data is unchanged.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) (ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	tx := h.db.WithContext(ctx).Table("orders")
	if s := query.Status(); s != nil {
		tx = tx.Where("status = ?", s.String())
	}
	if p := query.Priority(); p != nil {
		tx = tx.Where("priority = ?", p.String())
	}
	if id := query.CustomerID(); id != nil {
		tx = tx.Where("customer_id = ?", id.Bytes())
	}
	if search := query.Search(); search != "" {
		pattern := "%" + escapeLike(search) + "%"
		tx = tx.Where("(order_number ILIKE ? OR customer_name ILIKE ?)", pattern, pattern)
	}

	var total int64
	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return ListOrdersQueryResponse{}, errs.NewRepositoryUnavailableError("count orders", err)
	}

	var rows []orderRow
	err := tx.Session(&gorm.Session{}).
		Select(orderColumns).
		Order(clause.OrderByColumn{Column: clause.Column{Name: string(query.SortBy())}, Desc: query.SortOrder() == Desc}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}}).
		Limit(query.Limit()).
		Offset(query.Offset()).
		Scan(&rows).Error
	if err != nil {
		return ListOrdersQueryResponse{}, errs.NewRepositoryUnavailableError("list orders", err)
	}

	orders := make([]OrderView, 0, len(rows))
	for _, row := range rows {
		view, viewErr := row.toView()
		if viewErr != nil {
			return ListOrdersQueryResponse{}, viewErr
		}
		orders = append(orders, view)
	}

	return ListOrdersQueryResponse{
		Orders: orders,
		Pagination: Pagination{
			Page:  query.Page(),
			Limit: query.Limit(),
			Total: total,
		},
	}, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
