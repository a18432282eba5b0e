// Package jobs provides scheduled background tasks for the ordering system.
//
// Jobs are cron-based, using github.com/robfig/cron/v3, and are managed
// through JobManager which starts and stops them as a group.
//
// CartCleanupJob runs hourly and removes carts that have not been touched
// for longer than the configured max age. Abandoned carts carry no order
// value, so purging them keeps the carts table from growing without bound.
package jobs
