package cmd

import (
	"log/slog"

	httpadapter "furniture/internal/adapters/in/http"
	"furniture/internal/adapters/out/postgres"
	"furniture/internal/adapters/out/postgres/orderrepo"
	"furniture/internal/core/application/usecases/commands"
	"furniture/internal/core/application/usecases/queries"
	"furniture/internal/jobs"
	"furniture/internal/pkg/keyed"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger

	// columns is shared by every handler that rewrites kanban positions.
	columns *keyed.Mutex[string]

	metrics    *jobs.Metrics
	dispatcher *jobs.ProductionDispatcher
	reconciler *jobs.RefreshReconciler

	transitionHandler commands.TransitionOrderStatusCommandHandler
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	registry prometheus.Registerer,
	logger *slog.Logger,
) (*CompositionRoot, error) {
	c := &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
		columns:    &keyed.Mutex[string]{},
		metrics:    jobs.NewMetrics(registry),
	}

	c.dispatcher = jobs.NewProductionDispatcher(
		c.CreateCreateProductionOperationCommandHandler(),
		config.RetryPolicy(),
		c.metrics,
		logger,
	)
	reconciler, err := jobs.NewRefreshReconciler(
		c.CreateGetOrderQueryHandler(),
		config.ReconcileDelays,
		c.metrics,
		logger,
	)
	if err != nil {
		return nil, err
	}
	c.reconciler = reconciler
	c.transitionHandler = commands.NewTransitionOrderStatusCommandHandler(
		c.orderUoWFactory(),
		c.dispatcher,
		c.reconciler,
		commands.NewStatusColumnPlacer(c.kanbanUoWFactory(), c.CreateMoveOrderOnKanbanCommandHandler()),
		logger,
	)

	return c, nil
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) productionUoWFactory() commands.ProductionUoWFactory {
	return FuncProductionUoWFactory(func() commands.ProductionUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) kanbanUoWFactory() commands.KanbanUoWFactory {
	return FuncKanbanUoWFactory(func() commands.KanbanUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

// TransitionOrderStatusCommandHandler returns the single transition handler. It
// must not be recreated: it owns the per-order in-flight guard.
func (c *CompositionRoot) TransitionOrderStatusCommandHandler() commands.TransitionOrderStatusCommandHandler {
	return c.transitionHandler
}

func (c *CompositionRoot) CreateCreateProductionOperationCommandHandler() commands.CreateProductionOperationCommandHandler {
	return commands.NewCreateProductionOperationCommandHandler(c.productionUoWFactory())
}

func (c *CompositionRoot) CreateCreateKanbanColumnCommandHandler() commands.CreateKanbanColumnCommandHandler {
	return commands.NewCreateKanbanColumnCommandHandler(c.kanbanUoWFactory())
}

func (c *CompositionRoot) CreateDeleteKanbanColumnCommandHandler() commands.DeleteKanbanColumnCommandHandler {
	return commands.NewDeleteKanbanColumnCommandHandler(c.kanbanUoWFactory(), c.columns)
}

func (c *CompositionRoot) CreateRenumberKanbanColumnCommandHandler() commands.RenumberKanbanColumnCommandHandler {
	return commands.NewRenumberKanbanColumnCommandHandler(c.kanbanUoWFactory(), c.columns)
}

func (c *CompositionRoot) CreateMoveOrderOnKanbanCommandHandler() commands.MoveOrderOnKanbanCommandHandler {
	return commands.NewMoveOrderOnKanbanCommandHandler(c.kanbanUoWFactory(), c.columns)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListProductionOperationsQueryHandler() queries.ListProductionOperationsQueryHandler {
	return queries.NewListProductionOperationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListKanbanColumnsQueryHandler() queries.ListKanbanColumnsQueryHandler {
	return queries.NewListKanbanColumnsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		CreateOrder:       c.CreateCreateOrderCommandHandler(),
		TransitionStatus:  c.TransitionOrderStatusCommandHandler(),
		CreateColumn:      c.CreateCreateKanbanColumnCommandHandler(),
		DeleteColumn:      c.CreateDeleteKanbanColumnCommandHandler(),
		RenumberColumn:    c.CreateRenumberKanbanColumnCommandHandler(),
		MoveOrder:         c.CreateMoveOrderOnKanbanCommandHandler(),
		ListOrders:        c.CreateListOrdersQueryHandler(),
		GetOrder:          c.CreateGetOrderQueryHandler(),
		ListProduction:    c.CreateListProductionOperationsQueryHandler(),
		ListKanbanColumns: c.CreateListKanbanColumnsQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	sweep := jobs.NewProductionSweepJob(
		orderrepo.NewGormOrderRepository(c.gormDB),
		c.config.ProductionSweepSchedule,
		c.metrics,
		c.logger,
	)
	repair := jobs.NewKanbanRepairJob(
		c.CreateListKanbanColumnsQueryHandler(),
		c.CreateRenumberKanbanColumnCommandHandler(),
		c.config.KanbanRepairSchedule,
		c.metrics,
		c.logger,
	)
	return jobs.NewJobManager(c.dispatcher, c.reconciler, sweep, repair)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncProductionUoWFactory func() commands.ProductionUoW

func (f FuncProductionUoWFactory) Create() commands.ProductionUoW {
	return f()
}

type FuncKanbanUoWFactory func() commands.KanbanUoW

func (f FuncKanbanUoWFactory) Create() commands.KanbanUoW {
	return f()
}
