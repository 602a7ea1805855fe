package notify

import (
	"context"
	"log/slog"

	"github.com/lorrc/backoffice-backend/internal/core/ports"
)

// ToastNotifier is a secondary adapter that delivers outcome notices to the
// notification collaborator. The stand-in delivery channel is the structured
// log; the admin UI picks the message up from the mutation response itself.
// It implements the ports.Notifier interface.
type ToastNotifier struct {
	logger *slog.Logger
}

// NewToastNotifier creates a new toast notifier.
func NewToastNotifier(logger *slog.Logger) ports.Notifier {
	return &ToastNotifier{
		logger: logger.With("component", "toast_notifier"),
	}
}

// Notify records the outcome of a successful mutation. It runs in a separate
// goroutine and handles its own errors.
func (n *ToastNotifier) Notify(ctx context.Context, params ports.NotificationParams) {
	n.logger.InfoContext(ctx, "toast",
		"action", params.Action,
		"resource", params.Resource,
		"record_id", params.RecordID,
		"message", params.Message,
	)
}
