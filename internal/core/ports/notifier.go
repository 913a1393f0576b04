package ports

import (
	"context"

	"logistics/internal/core/domain/model/notification"
)

// Notifier delivers customer emails. Failures are reported to the caller, which
// logs them; a failed notification never rolls back a lifecycle change.
type Notifier interface {
	Send(ctx context.Context, n notification.Notification) error
}
