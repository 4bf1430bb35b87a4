package worker

// Log messages for scheduler operations
const (
	LogMsgSchedulingTask        = "Scheduling task"
	LogMsgRunningScheduledTask  = "Running scheduled task"
	LogMsgScheduledTaskPanicked = "Scheduled task panicked"
	LogMsgCancelledPendingTask  = "Cancelled pending task"
	LogMsgSchedulerShuttingDown = "Shutting down scheduler"
	LogMsgSchedulerShutdownDone = "Scheduler shutdown complete"
	LogMsgSchedulerShutdownSlow = "Scheduler shutdown timeout, some tasks may still be running"
	LogMsgScheduleAfterShutdown = "Task scheduled after shutdown was dropped"
)
