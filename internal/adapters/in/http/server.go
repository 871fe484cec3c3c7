package http

import (
	"log/slog"
	"net/http"

	"furniture/internal/core/application/usecases/commands"
	"furniture/internal/core/application/usecases/queries"
	"furniture/internal/core/domain/model/kernel"
	"furniture/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

var _ servers.ServerInterface = (*Server)(nil)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "http"),
	}
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	query, err := queries.NewListOrdersQuery(listOrdersFilter(params))
	if err != nil {
		return s.respondError(ctx, "list orders", err)
	}

	page, err := s.handlers.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, "list orders", err)
	}

	response := servers.OrderList{
		Orders: make([]servers.Order, len(page.Orders)),
		Pagination: servers.Pagination{
			Page:  page.Pagination.Page,
			Limit: page.Pagination.Limit,
			Total: page.Pagination.Total,
		},
	}
	for i, view := range page.Orders {
		response.Orders[i] = orderFromView(view)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.CreateOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromBytes(body.CustomerId[:])
	if err != nil {
		return s.respondError(ctx, "create order", err)
	}

	var customerName, priority string
	if body.CustomerName != nil {
		customerName = *body.CustomerName
	}
	if body.Priority != nil {
		priority = string(*body.Priority)
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		body.OrderNumber,
		customerID,
		customerName,
		priority,
		body.TotalAmount,
		body.DeliveryDate,
	)
	if err != nil {
		return s.respondError(ctx, "create order", err)
	}

	created, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, "create order", err)
	}

	return ctx.JSON(http.StatusCreated, orderFromAggregate(created))
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderId servers.OrderId) error {
	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return s.respondError(ctx, "get order", err)
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return s.respondError(ctx, "get order", err)
	}

	view, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, "get order", err)
	}

	return ctx.JSON(http.StatusOK, orderFromView(view))
}

// ChangeOrderStatus handles POST /api/v1/orders/{orderId}/status.
//
// The command handler detaches from the request context once the write is
// issued, so a client disconnect cannot leave the order half-transitioned.
func (s *Server) ChangeOrderStatus(ctx echo.Context, orderId servers.OrderId) error {
	var body servers.ChangeOrderStatusJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return s.respondError(ctx, "change order status", err)
	}

	cmd, err := commands.NewTransitionOrderStatusCommand(id, string(body.Status))
	if err != nil {
		return s.respondError(ctx, "change order status", err)
	}

	updated, err := s.handlers.TransitionStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, "change order status", err)
	}

	return ctx.JSON(http.StatusOK, orderFromAggregate(updated))
}

// ListProductionOperations handles GET /api/v1/orders/{orderId}/production-operations.
func (s *Server) ListProductionOperations(ctx echo.Context, orderId servers.OrderId) error {
	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return s.respondError(ctx, "list production operations", err)
	}

	query, err := queries.NewListProductionOperationsQuery(id)
	if err != nil {
		return s.respondError(ctx, "list production operations", err)
	}

	views, err := s.handlers.ListProduction.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, "list production operations", err)
	}

	response := make([]servers.ProductionOperation, len(views))
	for i, view := range views {
		response[i] = productionOperationFromView(view)
	}

	return ctx.JSON(http.StatusOK, response)
}

// ListKanbanColumns handles GET /api/v1/kanban/columns.
func (s *Server) ListKanbanColumns(ctx echo.Context) error {
	views, err := s.handlers.ListKanbanColumns.Handle(ctx.Request().Context(), queries.NewListKanbanColumnsQuery())
	if err != nil {
		return s.respondError(ctx, "list kanban columns", err)
	}

	response := make([]servers.KanbanColumn, len(views))
	for i, view := range views {
		response[i] = servers.KanbanColumn{
			Id:       view.ID.Bytes(),
			Name:     view.Name,
			Position: view.Position,
			Status:   statusPtr(view.Status),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateKanbanColumn handles POST /api/v1/kanban/columns.
func (s *Server) CreateKanbanColumn(ctx echo.Context) error {
	var body servers.CreateKanbanColumnJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var status string
	if body.Status != nil {
		status = string(*body.Status)
	}

	cmd, err := commands.NewCreateKanbanColumnCommand(kernel.NewUUID(), body.Name, body.Position, status)
	if err != nil {
		return s.respondError(ctx, "create kanban column", err)
	}

	column, err := s.handlers.CreateColumn.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, "create kanban column", err)
	}

	return ctx.JSON(http.StatusCreated, servers.KanbanColumn{
		Id:       column.ID().Bytes(),
		Name:     column.Name(),
		Position: column.Position(),
		Status:   statusPtr(column.Status()),
	})
}

// DeleteKanbanColumn handles DELETE /api/v1/kanban/columns/{columnId}.
func (s *Server) DeleteKanbanColumn(ctx echo.Context, columnId servers.ColumnId) error {
	id, err := kernel.UUIDFromBytes(columnId[:])
	if err != nil {
		return s.respondError(ctx, "delete kanban column", err)
	}

	cmd, err := commands.NewDeleteKanbanColumnCommand(id)
	if err != nil {
		return s.respondError(ctx, "delete kanban column", err)
	}

	if err = s.handlers.DeleteColumn.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, "delete kanban column", err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RenumberKanbanColumn handles POST /api/v1/kanban/columns/{columnId}/renumber.
func (s *Server) RenumberKanbanColumn(ctx echo.Context, columnId servers.ColumnId) error {
	id, err := kernel.UUIDFromBytes(columnId[:])
	if err != nil {
		return s.respondError(ctx, "renumber kanban column", err)
	}

	cmd, err := commands.NewRenumberKanbanColumnCommand(id)
	if err != nil {
		return s.respondError(ctx, "renumber kanban column", err)
	}

	size, err := s.handlers.RenumberColumn.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, "renumber kanban column", err)
	}

	return ctx.JSON(http.StatusOK, servers.RenumberResult{
		ColumnId: columnId,
		Size:     size,
	})
}

// MoveOrderOnKanban handles POST /api/v1/kanban/moves.
func (s *Server) MoveOrderOnKanban(ctx echo.Context) error {
	var body servers.MoveOrderOnKanbanJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, orderErr := kernel.UUIDFromBytes(body.OrderId[:])
	columnID, columnErr := kernel.UUIDFromBytes(body.TargetColumnId[:])
	if orderErr != nil {
		return s.respondError(ctx, "move order on kanban", orderErr)
	}
	if columnErr != nil {
		return s.respondError(ctx, "move order on kanban", columnErr)
	}

	cmd, err := commands.NewMoveOrderOnKanbanCommand(orderID, columnID, body.TargetPosition)
	if err != nil {
		return s.respondError(ctx, "move order on kanban", err)
	}

	result, err := s.handlers.MoveOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, "move order on kanban", err)
	}

	return ctx.JSON(http.StatusOK, servers.KanbanMoveResult{
		Position:   result.Position,
		SameColumn: result.SameColumn,
	})
}
