package jobs

import (
	"context"
	"log/slog"

	"deliveryfee/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultRefreshSchedule runs the refresh at the start of every minute.
const DefaultRefreshSchedule = "0 * * * * *"

// FeeRefresher runs one refresh batch. commands.RefreshDeliveryFeesCommandHandler
// satisfies it.
type FeeRefresher interface {
	Handle(ctx context.Context, cmd commands.RefreshDeliveryFeesCommand) (commands.RefreshDeliveryFeesResult, error)
}

// DeliveryFeeRefreshJob records delivery fees on stored orders on a cron schedule.
// A run still in progress when the next tick fires makes that tick a no-op.
type DeliveryFeeRefreshJob struct {
	handler   FeeRefresher
	schedule  string
	batchSize int
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewDeliveryFeeRefreshJob creates the job. schedule is a six-field cron spec
// (with seconds); an empty schedule means DefaultRefreshSchedule.
func NewDeliveryFeeRefreshJob(
	handler FeeRefresher,
	schedule string,
	batchSize int,
	logger *slog.Logger,
) *DeliveryFeeRefreshJob {
	if schedule == "" {
		schedule = DefaultRefreshSchedule
	}

	return &DeliveryFeeRefreshJob{
		handler:   handler,
		schedule:  schedule,
		batchSize: batchSize,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		logger: logger.With("component", "delivery_fee_refresh_job"),
	}
}

// Start schedules the job. It fails on an invalid schedule.
func (j *DeliveryFeeRefreshJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery fee refresh job started", "schedule", j.schedule)
	return nil
}

// RunOnce executes a single refresh batch and logs its outcome.
func (j *DeliveryFeeRefreshJob) RunOnce(ctx context.Context) {
	cmd, err := commands.NewRefreshDeliveryFeesCommand(j.batchSize)
	if err != nil {
		j.logger.ErrorContext(ctx, "Delivery fee refresh job misconfigured", "error", err)
		return
	}

	result, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Delivery fee refresh job failed", "error", err)
		return
	}

	if result.Updated > 0 || result.Skipped > 0 {
		j.logger.InfoContext(ctx, "Delivery fee refresh job completed",
			"updated", result.Updated,
			"skipped", result.Skipped,
		)
	}
}

// Stop unschedules the job and waits for a running batch to finish.
func (j *DeliveryFeeRefreshJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Delivery fee refresh job stopped")
}
