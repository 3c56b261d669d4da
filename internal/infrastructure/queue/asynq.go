package queue

import (
	"context"
	"encoding/json"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"

	"github.com/BRAITOU555/my-ride-sharing-app/internal/application/ports"
)

// TypeAuditWebhook is the asynq task type for audit-event webhook delivery.
const TypeAuditWebhook = "audit:webhook"

// TaskEnqueuer hands audit events to asynq for background delivery.
type TaskEnqueuer struct {
	client *asynq.Client
	log    zerolog.Logger
}

func NewAsynqEnqueuer(redisOpt asynq.RedisClientOpt, log zerolog.Logger) (*TaskEnqueuer, error) {
	client := asynq.NewClient(redisOpt)
	return &TaskEnqueuer{client: client, log: log}, nil
}

func (q *TaskEnqueuer) Close() error {
	return q.client.Close()
}

func (q *TaskEnqueuer) EnqueueAuditEvent(ctx context.Context, event ports.AuditEvent) error {
	payload, _ := json.Marshal(event)
	task := asynq.NewTask(TypeAuditWebhook, payload)
	if _, err := q.client.EnqueueContext(ctx, task); err != nil {
		q.log.Warn().Err(err).Str("event", event.Event).Msg("enqueue audit event failed")
		return err
	}
	return nil
}

var _ ports.TaskEnqueuer = (*TaskEnqueuer)(nil)
