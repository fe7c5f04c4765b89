package jobs

import (
	"context"
	"errors"
	"log/slog"

	"cargotracker/internal/core/application/usecases/commands"
	"cargotracker/internal/core/application/usecases/queries"
	"cargotracker/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

// DeliveryInspectionJob periodically re-derives delivery snapshots.
// Runs every minute over all registered cargos. The derivation is
// deterministic, so the job only changes stored state after out of band
// corrections; it keeps the read model honest without blocking the
// request path.
type DeliveryInspectionJob struct {
	listHandler    queries.ListCargosQueryHandler
	inspectHandler commands.InspectCargoCommandHandler
	cron           *cron.Cron
	logger         *slog.Logger
}

// NewDeliveryInspectionJob creates a new job for inspecting cargo deliveries.
// Uses ListCargosQueryHandler to enumerate cargos and
// InspectCargoCommandHandler to refresh each snapshot.
func NewDeliveryInspectionJob(
	listHandler queries.ListCargosQueryHandler,
	inspectHandler commands.InspectCargoCommandHandler,
	logger *slog.Logger,
) *DeliveryInspectionJob {
	return &DeliveryInspectionJob{
		listHandler:    listHandler,
		inspectHandler: inspectHandler,
		cron:           cron.New(cron.WithSeconds()),
		logger:         logger.With("component", "delivery_inspection_job"),
	}
}

// Start begins the delivery inspection job to run every minute.
func (j *DeliveryInspectionJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		j.inspectAll(ctx)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery inspection job started (running every minute)")
	return nil
}

// Stop stops the delivery inspection job.
func (j *DeliveryInspectionJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery inspection job stopped")
}

func (j *DeliveryInspectionJob) inspectAll(ctx context.Context) {
	cargos, err := j.listHandler.Handle(ctx, queries.NewListCargosQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Delivery inspection job failed to list cargos", "error", err)
		return
	}

	for _, summary := range cargos {
		trackingID, idErr := kernel.TrackingIDFromString(summary.TrackingID)
		if idErr != nil {
			j.logger.ErrorContext(ctx, "Skipping cargo with invalid tracking ID",
				"trackingId", summary.TrackingID, "error", idErr)
			continue
		}

		cmd, cmdErr := commands.NewInspectCargoCommand(trackingID)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Failed to build inspection command",
				"trackingId", summary.TrackingID, "error", cmdErr)
			continue
		}

		if handleErr := j.inspectHandler.Handle(ctx, cmd); handleErr != nil {
			// A cargo deleted between listing and inspection is not an error
			if errors.Is(handleErr, commands.ErrNoCargoFound) {
				continue
			}
			j.logger.ErrorContext(ctx, "Cargo inspection failed",
				"trackingId", summary.TrackingID, "error", handleErr)
		}
	}
}
