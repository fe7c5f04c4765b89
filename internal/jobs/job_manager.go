package jobs

import (
	"fmt"
	"log/slog"

	"cargotracker/internal/core/application/usecases/commands"
	"cargotracker/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	deliveryInspectionJob *DeliveryInspectionJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command and query handlers as dependencies to wire up job execution.
func NewJobManager(
	listCargosHandler queries.ListCargosQueryHandler,
	inspectCargoHandler commands.InspectCargoCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		deliveryInspectionJob: NewDeliveryInspectionJob(listCargosHandler, inspectCargoHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.deliveryInspectionJob.Start(); err != nil {
		return fmt.Errorf("failed to start delivery inspection job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.deliveryInspectionJob.Stop()
}
