package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// LifecycleEffects fans a committed lifecycle change out to the customer email and the
// event stream. Both run on the BackgroundRunner, so neither can fail or delay the
// command that triggered them.
type LifecycleEffects struct {
	runner    BackgroundRunner
	users     ports.UserRepository
	notifier  ports.Notifier
	publisher ports.EventPublisher
	planner   services.NotificationPlanner
	logger    *slog.Logger
	now       func() time.Time
}

func NewLifecycleEffects(
	runner BackgroundRunner,
	users ports.UserRepository,
	notifier ports.Notifier,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) *LifecycleEffects {
	return &LifecycleEffects{
		runner:    runner,
		users:     users,
		notifier:  notifier,
		publisher: publisher,
		planner:   services.NewNotificationPlanner(),
		logger:    logger.With("component", "LifecycleEffects"),
		now:       time.Now,
	}
}

// Dispatch schedules the notification (when the planner asks for one) and the event
// for s. It must be called only after the change is committed.
func (e *LifecycleEffects) Dispatch(
	ctx context.Context,
	trigger services.Trigger,
	eventType shipment.EventType,
	s *shipment.Shipment,
) {
	event := shipment.NewEvent(eventType, s, e.now())

	if e.planner.Notifies(trigger, s.Status()) {
		e.runner.Go(ctx, "notify-"+string(eventType), func(ctx context.Context) error {
			return e.notify(ctx, trigger, s)
		})
	}

	e.runner.Go(ctx, "publish-"+string(eventType), func(ctx context.Context) error {
		return e.publisher.Publish(ctx, event)
	})
}

func (e *LifecycleEffects) notify(ctx context.Context, trigger services.Trigger, s *shipment.Shipment) error {
	owner, err := e.users.Get(ctx, s.UserID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		e.logger.WarnContext(ctx, "shipment owner not found, notification skipped",
			"shipmentId", s.ID(), "userId", s.UserID())
		return nil
	}
	if err != nil {
		return err
	}

	n, ok := e.planner.Plan(trigger, s, owner)
	if !ok {
		e.logger.DebugContext(ctx, "no notification planned", "shipmentId", s.ID(), "userId", s.UserID())
		return nil
	}

	return e.notifier.Send(ctx, n)
}
