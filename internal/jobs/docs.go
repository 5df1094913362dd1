// Package jobs provides scheduled background tasks for the delivery fee service.
//
// Jobs are cron-based (github.com/robfig/cron/v3, six-field specs with seconds).
//
// # Available Jobs
//
// DeliveryFeeRefreshJob computes and records the delivery fee of every stored
// order that has none yet. It runs every minute unless FEE_REFRESH_SCHEDULE says
// otherwise, and never overlaps with itself.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(refreshHandler, config.FeeRefreshSchedule, config.FeeRefreshBatchSize, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed batch is rolled back and logged; the next tick retries it. Orders
// that cannot be priced from their own data are skipped by the command handler
// and stay awaiting.
package jobs
