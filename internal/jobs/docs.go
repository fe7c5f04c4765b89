// Package jobs provides scheduled background tasks for the cargo tracking
// system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the tracking service.
//
// # Available Jobs
//
// 1. DeliveryInspectionJob - Runs every minute to re-derive the delivery
// snapshot of every registered cargo from its stored route, itinerary and
// handling history
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(listCargosHandler, inspectCargoHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The inspection job logs and skips failing cargos instead of aborting the
// sweep; a cargo that disappears between listing and inspection is ignored.
package jobs
