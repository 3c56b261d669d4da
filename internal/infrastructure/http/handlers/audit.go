package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/BRAITOU555/my-ride-sharing-app/internal/application/ports"
)

// AuditLog logs auth and profile events (user_id, IP, request id).
func AuditLog(log zerolog.Logger, r *http.Request, event string, userID int64, success bool, errMsg string) {
	ev := log.Info()
	if !success {
		ev = log.Warn()
	}
	ev.
		Str("event", event).
		Int64("user_id", userID).
		Str("ip", getClientIP(r)).
		Str("request_id", middleware.GetReqID(r.Context())).
		Bool("success", success)
	if errMsg != "" {
		ev.Str("error", errMsg)
	}
	ev.Msg("audit")
}

// AuditEmit logs the event and, if an enqueuer is configured, hands it to the
// background queue for webhook delivery. Enqueue failures never fail the
// request.
func AuditEmit(log zerolog.Logger, r *http.Request, enqueuer ports.TaskEnqueuer, event string, userID int64, success bool, errMsg string) {
	AuditLog(log, r, event, userID, success, errMsg)
	if enqueuer != nil {
		_ = enqueuer.EnqueueAuditEvent(r.Context(), ports.AuditEvent{
			Event:   event,
			UserID:  userID,
			IP:      getClientIP(r),
			Success: success,
			Err:     errMsg,
		})
	}
}

func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return strings.TrimSpace(strings.Split(xff, ",")[0])
	}
	return r.RemoteAddr
}
