// Package jobs provides the background work of the furniture order service.
//
// Two kinds of work live here:
//
// Post-commit tasks, started by the status transition coordinator after the
// primary write has committed:
//
//  1. ProductionDispatcher - creates the production operation for an order that
//     entered in_production, retrying with exponential backoff
//  2. RefreshReconciler - re-reads an order twice, at a short and a longer delay, after a
//     status write and records whether the read path has converged
//
// Scheduled jobs built on github.com/robfig/cron/v3:
//
//  1. ProductionSweepJob - reports in_production orders that have no produce operation
//  2. KanbanRepairJob - renumbers every kanban column
//
// # Usage
//
//	metrics := jobs.NewMetrics(prometheus.DefaultRegisterer)
//	dispatcher := jobs.NewProductionDispatcher(createOperationHandler, policy, metrics, logger)
//	reconciler, err := jobs.NewRefreshReconciler(getOrderHandler, jobs.DefaultReconcileDelays, metrics, logger)
//	if err != nil {
//		log.Fatal("Invalid reconcile delays:", err)
//	}
//
//	jobManager := jobs.NewJobManager(dispatcher, reconciler, sweepJob, repairJob)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Lifetimes
//
// Post-commit tasks run on the lifetime of their owner, not of the request that
// triggered them. Stop cancels pending work and waits for running goroutines.
// Failures are never returned to the caller that scheduled the work; they are
// logged and counted in Prometheus.
package jobs
