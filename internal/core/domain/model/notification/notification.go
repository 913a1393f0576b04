// Package notification describes the customer emails sent on shipment lifecycle changes.
package notification

// Template names known to the email renderer.
const (
	TemplateShipmentCreated   = "shipment-created"
	TemplateShipmentInTransit = "shipment-in-transit"
	TemplateShipmentDelivered = "shipment-delivered"
)

// Notification is a rendered-on-send email: the renderer resolves Template with Params.
type Notification struct {
	To       string
	Subject  string
	Template string
	Params   map[string]string
}
