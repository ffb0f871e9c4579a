package ports

import "context"

// Notifier is a fire-and-forget sink for role-addressed notifications,
// e.g. telling pickers a new order arrived or a partner that a trip was
// assigned. Delivery is best-effort; failures must not fail the caller.
type Notifier interface {
	Notify(ctx context.Context, role, message string)
}
