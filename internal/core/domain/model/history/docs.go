// Package history provides the append-only records kept per shipment: status history
// entries and delivery metrics. Neither can be changed once written.
package history
