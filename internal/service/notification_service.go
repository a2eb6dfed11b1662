package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/andrewserrazina/friendly-paws-backend/internal/config"
	"github.com/andrewserrazina/friendly-paws-backend/internal/events"
)

// NotificationService handles emitting notifications for domain events.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventBookingCreated, n.handleBookingCreated)
	n.dispatcher.Subscribe(events.EventBookingCancelled, n.handleBookingCancelled)
}

func (n *NotificationService) handleBookingCreated(ctx context.Context, event events.Event) error {
	n.logger.Info("BookingCreated", zap.String("booking_id", event.Subject), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleBookingCancelled(ctx context.Context, event events.Event) error {
	n.logger.Info("BookingCancelled", zap.String("booking_id", event.Subject), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendEmailNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailNotificationStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("booking_id", event.Subject),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendWebhookNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("booking_id", event.Subject),
		zap.String("event_type", string(event.Type)))
}
