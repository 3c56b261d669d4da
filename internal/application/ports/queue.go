package ports

import (
	"context"

	"github.com/BRAITOU555/my-ride-sharing-app/internal/domain"
)

// AuditEvent is a single auth/domain event for logging or webhooks.
type AuditEvent struct {
	Event   string `json:"event"` // user.register, user.login, profile.update, ...
	UserID  int64  `json:"user_id,omitempty"`
	IP      string `json:"ip,omitempty"`
	Success bool   `json:"success"`
	Err     string `json:"error,omitempty"`
}

// TaskEnqueuer hands audit events to the background queue. Enqueue failures
// are logged and swallowed; audit delivery never fails a request.
type TaskEnqueuer interface {
	EnqueueAuditEvent(ctx context.Context, event AuditEvent) error
}

// WebhookEmitter delivers an audit event to an external HTTP endpoint. It is
// called from the queue worker, not from request handlers.
type WebhookEmitter interface {
	Emit(ctx context.Context, event AuditEvent) error
}

// LocationCache keeps the newest reported position per driver for cheap
// map-display reads. Best effort; postgres remains the source of truth.
type LocationCache interface {
	SetLatest(ctx context.Context, loc *domain.DriverLocation) error
	Snapshot(ctx context.Context) ([]domain.DriverLocation, error)
}
