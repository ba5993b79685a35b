package models

// ReminderPayload is the queued task payload for a job-start reminder.
type ReminderPayload struct {
	JobID    string `json:"jobId"`
	WorkerID string `json:"workerId"`
	Title    string `json:"title"`
	Date     string `json:"date"`  // e.g., "2025-02-25"
	Start    int    `json:"start"` // minutes from midnight
}
