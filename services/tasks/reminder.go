package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"crewly/config"
	"crewly/models"
	"crewly/utils"

	"github.com/hibiken/asynq"
)

const TypeJobReminder = "job:reminder"

// NewJobReminderTask builds the asynq task for a job-start reminder,
// scheduled to fire at fireAt.
func NewJobReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeJobReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// ReminderScheduler enqueues job-start reminders on the redis-backed queue.
type ReminderScheduler struct {
	client *asynq.Client
}

// NewReminderScheduler constructs a scheduler on the reminder queue DB.
func NewReminderScheduler() *ReminderScheduler {
	return &ReminderScheduler{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisReminderQueueDB,
		}),
	}
}

// ScheduleJobReminder enqueues a reminder to fire the configured lead time
// before the job's start. Jobs starting too soon (or in the past) get no
// reminder; that is not an error.
func (rs *ReminderScheduler) ScheduleJobReminder(job *models.Job) error {
	day, err := time.Parse(utils.DateLayout, job.Date)
	if err != nil {
		return fmt.Errorf("invalid job date %q: %w", job.Date, err)
	}
	startAt := day.Add(time.Duration(job.Start) * time.Minute)
	fireAt := startAt.Add(-time.Duration(config.AppConfig.ReminderLeadMinutes) * time.Minute)
	if !fireAt.After(time.Now()) {
		return nil
	}

	payload := models.ReminderPayload{
		JobID:    job.ID,
		WorkerID: job.WorkerID,
		Title:    job.Title,
		Date:     job.Date,
		Start:    job.Start,
	}
	task, opts, err := NewJobReminderTask(payload, fireAt)
	if err != nil {
		return fmt.Errorf("failed to build reminder task: %w", err)
	}
	if _, err := rs.client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}

// Close releases the underlying queue client.
func (rs *ReminderScheduler) Close() error {
	return rs.client.Close()
}
