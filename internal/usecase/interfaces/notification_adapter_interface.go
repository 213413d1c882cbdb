package interfaces

import (
	"context"

	"atuestampa_api/internal/domain/entities"
)

// INotificationAdapter is one outbound notification channel. Adapters are
// best-effort: the dispatcher logs and swallows their errors, one channel's
// failure never blocks another's attempt.
type INotificationAdapter interface {
	Channel() string
	SendPaidOrderNotification(ctx context.Context, payload entities.PaidOrderNotification) error
}
