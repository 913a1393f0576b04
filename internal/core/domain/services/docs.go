// Package services provides domain services of the logistics system: business rules
// that do not belong to a single aggregate.
//
// The package includes:
//   - NotificationPlanner: maps committed lifecycle changes to customer emails
package services
