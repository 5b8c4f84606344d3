package service_interfaces

import "context"

// NotificationService is the outbound port used to tell account holders
// about a committed transfer. Calls are best effort: the transfer
// outcome never depends on the returned error.
type NotificationService interface {
	NotifyAboutTransfer(ctx context.Context, accountID string, message string) error
}
