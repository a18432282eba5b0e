package jobs

import (
	"context"
	"log/slog"
	"time"

	"ordering/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// CartCleanupJob periodically removes carts that were abandoned longer than
// maxAge ago. Placed orders are never touched; only cart state expires.
type CartCleanupJob struct {
	handler commands.RemoveStaleCartsCommandHandler
	maxAge  time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewCartCleanupJob creates a cleanup job removing carts untouched for
// longer than maxAge.
func NewCartCleanupJob(
	handler commands.RemoveStaleCartsCommandHandler,
	maxAge time.Duration,
	logger *slog.Logger,
) *CartCleanupJob {
	return &CartCleanupJob{
		handler: handler,
		maxAge:  maxAge,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "cart_cleanup_job"),
	}
}

// Start begins the cleanup job to run at the top of every hour.
func (j *CartCleanupJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewRemoveStaleCartsCommand(j.maxAge)
		if err != nil {
			j.logger.ErrorContext(ctx, "Cart cleanup job misconfigured", "error", err)
			return
		}

		removed, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Cart cleanup job failed", "error", err)
			return
		}

		if removed > 0 {
			j.logger.InfoContext(ctx, "Removed stale carts", "count", removed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Cart cleanup job started (running hourly)", "maxAge", j.maxAge)
	return nil
}

// Stop stops the cleanup job.
func (j *CartCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Cart cleanup job stopped")
}
