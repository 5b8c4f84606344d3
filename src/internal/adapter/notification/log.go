package notification

import (
	"context"

	"github.com/api-sage/fund-transfer-service/src/internal/logger"
)

// LogNotifier writes notifications to the service log. It is the
// default sink when no webhook endpoint is configured.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) NotifyAboutTransfer(_ context.Context, accountID string, message string) error {
	logger.Info("transfer notification", logger.Fields{
		"accountId": accountID,
		"message":   message,
	})
	return nil
}
