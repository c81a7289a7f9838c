// Package jobs provides scheduled background tasks for the desk.
//
// Jobs are cron-based (github.com/robfig/cron/v3) and only observe the desk:
// assignment happens synchronously inside commands, and deadlines are
// informational, so nothing here mutates orders.
//
// # Available Jobs
//
// 1. BoardReportJob - logs orders per status, queue length and solver loads on
// a configurable schedule (REPORT_SCHEDULE, "@every 1m" by default)
//
// # Usage
//
//	report := jobs.NewBoardReportJob(boardHandler, "@every 1m", logger)
//	jobManager := jobs.NewJobManager(logger, report)
//
//	if err := jobManager.StartAll(); err != nil {
//		return fmt.Errorf("start jobs: %w", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - A report that cannot read the board is logged and skipped
// - Failed job starts will stop any already running jobs
package jobs
