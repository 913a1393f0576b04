package services

import (
	"fmt"

	"logistics/internal/core/domain/model/notification"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/user"
)

// Trigger names the lifecycle operation that produced a change.
type Trigger int

const (
	// TriggerCreated follows a successful createShipment.
	TriggerCreated Trigger = iota + 1
	// TriggerStatusUpdated follows an explicit status update.
	TriggerStatusUpdated
	// TriggerDelivered follows markShipmentAsDelivered.
	TriggerDelivered
)

// NotificationPlanner decides which customer email, if any, a committed lifecycle
// change produces.
//
// Business rules:
//   - creation always notifies the owner
//   - an explicit update notifies only when the new status is IN_TRANSIT
//   - marking delivered always notifies
//   - owners without an email address are never notified
//
// Example usage:
//
//	planner := services.NewNotificationPlanner()
//	if n, ok := planner.Plan(services.TriggerStatusUpdated, s, owner); ok {
//	    _ = notifier.Send(ctx, n)
//	}
type NotificationPlanner interface {
	// Notifies reports whether a change to status through trigger produces an email
	// for an owner that has an address. Callers use it to skip the owner lookup.
	Notifies(trigger Trigger, status shipment.Status) bool

	Plan(trigger Trigger, s *shipment.Shipment, owner *user.User) (notification.Notification, bool)
}

type notificationPlanner struct{}

func NewNotificationPlanner() NotificationPlanner {
	return notificationPlanner{}
}

func (notificationPlanner) Notifies(trigger Trigger, status shipment.Status) bool {
	_, ok := templateFor(trigger, status)
	return ok
}

func (notificationPlanner) Plan(
	trigger Trigger,
	s *shipment.Shipment,
	owner *user.User,
) (notification.Notification, bool) {
	if s.Validate() != nil || owner == nil || !owner.HasEmail() {
		return notification.Notification{}, false
	}

	template, ok := templateFor(trigger, s.Status())
	if !ok {
		return notification.Notification{}, false
	}

	var subject string
	switch template {
	case notification.TemplateShipmentCreated:
		subject = fmt.Sprintf("Your shipment %s has been registered", s.TrackingID())
	case notification.TemplateShipmentInTransit:
		subject = fmt.Sprintf("Your shipment %s is on its way", s.TrackingID())
	default:
		subject = fmt.Sprintf("Your shipment %s has been delivered", s.TrackingID())
	}

	return notification.Notification{
		To:       owner.Email(),
		Subject:  subject,
		Template: template,
		Params: map[string]string{
			"name":        owner.Name(),
			"trackingId":  s.TrackingID().String(),
			"status":      s.Status().String(),
			"productType": s.ProductType(),
			"destination": s.DestinationAddress().String(),
		},
	}, true
}

func templateFor(trigger Trigger, status shipment.Status) (string, bool) {
	switch {
	case trigger == TriggerCreated:
		return notification.TemplateShipmentCreated, true
	case trigger == TriggerStatusUpdated && status == shipment.InTransit:
		return notification.TemplateShipmentInTransit, true
	case trigger == TriggerDelivered && status == shipment.Delivered:
		return notification.TemplateShipmentDelivered, true
	default:
		return "", false
	}
}
