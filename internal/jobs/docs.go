// Package jobs provides scheduled background tasks built on
// github.com/robfig/cron/v3.
//
// StaleOrdersJob reports orders whose most recent event is non-terminal and
// older than a threshold. Each stale order is logged with its age label and
// the orderevents_stale_orders gauge is set to the number found. The job only
// reads.
//
// Jobs are started and stopped through JobManager:
//
//	manager := jobs.NewJobManager(staleOrdersJob)
//	if err := manager.StartAll(); err != nil {
//		return err
//	}
//	defer manager.StopAll()
package jobs
