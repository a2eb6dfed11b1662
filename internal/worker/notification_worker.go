package worker

import (
	"github.com/andrewserrazina/friendly-paws-backend/internal/service"
)

// StartNotificationWorker registers notification handlers.
func StartNotificationWorker(notificationService *service.NotificationService) {
	if notificationService == nil {
		return
	}
	notificationService.RegisterHandlers()
}
