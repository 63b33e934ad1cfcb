package errwatchqueue

// ClearUsageJob is the periodic job that requests a wipe of tracked error
// counts. The worker publishes a scheduled usage-clear event; whether counts
// are actually cleared is decided by the service against the clear-usage
// setting.
type ClearUsageJob struct{}

// Kind returns the job type identifier for River
func (ClearUsageJob) Kind() string { return "errwatch_clear_usage" }
