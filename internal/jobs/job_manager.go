package jobs

import (
	"fmt"
)

// JobManager coordinates all background work of the application.
// Provides a unified interface to start and stop it.
type JobManager struct {
	productionDispatcher *ProductionDispatcher
	refreshReconciler    *RefreshReconciler
	productionSweepJob   *ProductionSweepJob
	kanbanRepairJob      *KanbanRepairJob
}

// NewJobManager creates a job manager over already constructed jobs.
// The dispatcher and reconciler run on demand and are only stopped by it.
func NewJobManager(
	productionDispatcher *ProductionDispatcher,
	refreshReconciler *RefreshReconciler,
	productionSweepJob *ProductionSweepJob,
	kanbanRepairJob *KanbanRepairJob,
) *JobManager {
	return &JobManager{
		productionDispatcher: productionDispatcher,
		refreshReconciler:    refreshReconciler,
		productionSweepJob:   productionSweepJob,
		kanbanRepairJob:      kanbanRepairJob,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.productionSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start production sweep job: %w", err)
	}

	if err := jm.kanbanRepairJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.productionSweepJob.Stop()
		return fmt.Errorf("failed to start kanban repair job: %w", err)
	}

	return nil
}

// StopAll stops scheduled jobs, then cancels and drains post-commit tasks.
func (jm *JobManager) StopAll() {
	jm.kanbanRepairJob.Stop()
	jm.productionSweepJob.Stop()
	jm.productionDispatcher.Stop()
	jm.refreshReconciler.Stop()
}
