package http

import (
	"furniture/internal/core/application/usecases/queries"
	"furniture/internal/core/domain/model/kernel"
	"furniture/internal/core/domain/model/order"
	"furniture/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func listOrdersFilter(params servers.ListOrdersParams) queries.ListOrdersFilter {
	var filter queries.ListOrdersFilter
	if params.Status != nil {
		filter.Status = string(*params.Status)
	}
	if params.Priority != nil {
		filter.Priority = string(*params.Priority)
	}
	if params.CustomerId != nil {
		filter.CustomerID = params.CustomerId.String()
	}
	if params.Search != nil {
		filter.Search = *params.Search
	}
	if params.SortBy != nil {
		filter.SortBy = string(*params.SortBy)
	}
	if params.SortOrder != nil {
		filter.SortOrder = string(*params.SortOrder)
	}
	if params.Page != nil {
		filter.Page = *params.Page
	}
	if params.Limit != nil {
		filter.Limit = *params.Limit
	}
	return filter
}

func orderFromView(view queries.OrderView) servers.Order {
	return servers.Order{
		Id:             view.ID.Bytes(),
		OrderNumber:    view.Number,
		Status:         servers.OrderStatus(view.Status.String()),
		Priority:       servers.Priority(view.Priority.String()),
		CustomerId:     view.CustomerID.Bytes(),
		CustomerName:   view.CustomerName,
		TotalAmount:    view.TotalAmount.String(),
		DeliveryDate:   view.DeliveryDate,
		CreatedAt:      view.CreatedAt,
		UpdatedAt:      view.UpdatedAt,
		KanbanColumnId: uuidPtr(view.KanbanColumnID),
		KanbanPosition: view.KanbanPosition,
	}
}

func orderFromAggregate(o *order.Order) servers.Order {
	response := servers.Order{
		Id:             o.ID().Bytes(),
		OrderNumber:    o.Number(),
		Status:         servers.OrderStatus(o.Status().String()),
		Priority:       servers.Priority(o.Priority().String()),
		CustomerId:     o.CustomerID().Bytes(),
		CustomerName:   o.CustomerName(),
		TotalAmount:    o.TotalAmount().String(),
		DeliveryDate:   o.DeliveryDate(),
		CreatedAt:      o.CreatedAt(),
		UpdatedAt:      o.UpdatedAt(),
		KanbanColumnId: uuidPtr(o.KanbanColumnID()),
	}
	if o.KanbanColumnID() != nil {
		position := o.KanbanPosition()
		response.KanbanPosition = &position
	}
	return response
}

func productionOperationFromView(view queries.ProductionOperationView) servers.ProductionOperation {
	return servers.ProductionOperation{
		Id:              view.ID.Bytes(),
		OrderId:         view.OrderID.Bytes(),
		EpisodeId:       view.EpisodeID.Bytes(),
		OperationType:   servers.OperationType(view.OperationType.String()),
		ProductionStage: servers.ProductionStage(view.Stage.String()),
		Status:          servers.OperationStatus(view.Status.String()),
		CreatedAt:       view.CreatedAt,
	}
}

func uuidPtr(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	v := id.Bytes()
	return &v
}

func statusPtr(status *order.Status) *servers.OrderStatus {
	if status == nil {
		return nil
	}
	v := servers.OrderStatus(status.String())
	return &v
}
