package handlers

// HandlerBundle aggregates every handler the router mounts, so route
// registration takes one wiring argument.
type HandlerBundle struct {
	Worker   *WorkerHandler
	Job      *JobHandler
	Schedule *ScheduleHandler
}
