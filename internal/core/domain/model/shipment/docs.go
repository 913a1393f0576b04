// Package shipment provides the Shipment aggregate root and its delivery lifecycle.
//
// The package includes:
//   - Shipment: the aggregate root holding identity, owner, package properties,
//     destination address and current delivery status
//   - Status: the delivery status with the recognized lifecycle values
//   - Event: lifecycle facts published after a change is committed
//
// Key business rules:
//   - New shipments start in WAITING and carry a generated "COORD_XXXXXXXX" tracking id
//   - Weight must be positive and the owner must be a positive user id
//   - Any non-empty status (up to MaxStatusLength characters) may be set explicitly;
//     only WAITING, IN_TRANSIT and DELIVERED are recognized and drive side effects
//   - A shipment can be marked delivered only from IN_TRANSIT, exactly once
//
// Lifecycle of recognized statuses:
//
//	WAITING ──> IN_TRANSIT ──> DELIVERED
//	   (explicit updates may set any status at any time)
package shipment
