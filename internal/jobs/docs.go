// Package jobs runs the storefront's cron-driven retries on github.com/robfig/cron/v3.
//
// Two jobs exist. AgentAssignmentJob re-polls orders left in waiting_for_agent when no
// agent was free at assignment time. RestockReconciliationJob applies the restock
// tasks a return approval could not finish.
//
// Schedules use six cron fields, seconds first:
//
//	manager := jobs.NewJobManager(
//		jobs.NewAgentAssignmentJob(assignWaiting, "*/30 * * * * *", jobs.DefaultAssignmentBatch, logger),
//		jobs.NewRestockReconciliationJob(reconcile, "0 */5 * * * *", jobs.DefaultRestockBatch, logger),
//	)
//	if err := manager.StartAll(); err != nil {
//		return err
//	}
//	defer manager.StopAll()
//
// A run that finds nothing to do logs at debug level. Storage failures are logged
// and retried on the next tick.
package jobs
