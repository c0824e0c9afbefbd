package tasks

import (
	"context"
	"encoding/json"
	"time"

	"travelease/config"
	"travelease/models"

	"github.com/hibiken/asynq"
)

const TypeDepartureReminder = "reminder:departure"

// NewDepartureReminderTask builds the asynq task for a booking's
// departure reminder.
func NewDepartureReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeDepartureReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// AsynqReminderScheduler enqueues reminders on the booking queue. It
// satisfies the booking service's ReminderScheduler.
type AsynqReminderScheduler struct {
	client *asynq.Client
}

func NewAsynqReminderScheduler() *AsynqReminderScheduler {
	return &AsynqReminderScheduler{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisReminderDB,
		}),
	}
}

// ScheduleDepartureReminder queues a reminder for the morning before
// departure. Unparseable or past dates fire shortly after enqueue
// instead of being dropped.
func (s *AsynqReminderScheduler) ScheduleDepartureReminder(ctx context.Context, payload models.ReminderPayload) error {
	fireAt := time.Now().Add(time.Minute)
	if dep, err := time.Parse("2006-01-02", payload.DepartureDate); err == nil {
		candidate := dep.AddDate(0, 0, -1).Add(9 * time.Hour) // 09:00 the day before
		if candidate.After(time.Now()) {
			fireAt = candidate
		}
	}

	task, opts, err := NewDepartureReminderTask(payload, fireAt)
	if err != nil {
		return err
	}
	_, err = s.client.EnqueueContext(ctx, task, opts...)
	return err
}

func (s *AsynqReminderScheduler) Close() error {
	return s.client.Close()
}
