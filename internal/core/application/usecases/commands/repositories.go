// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"logistics/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest unit of work covering the repositories it writes.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	HistoryRepoFactory interface {
		HistoryRepository() ports.HistoryRepository
	}

	DeliveryMetricRepoFactory interface {
		DeliveryMetricRepository() ports.DeliveryMetricRepository
	}

	RouteAssignmentRepoFactory interface {
		RouteAssignmentRepository() ports.RouteAssignmentRepository
	}

	// ShipmentUoW covers lifecycle changes: the shipment row and the history entry
	// describing the change are written in one transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   id, err := uow.ShipmentRepository().Add(ctx, s)
	//   _, err = uow.HistoryRepository().Append(ctx, entry)
	//
	//   err = uow.Commit(ctx)
	ShipmentUoW interface {
		TxManager
		ShipmentRepoFactory
		HistoryRepoFactory
	}

	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}

	// HistoryUoW covers caller-driven history entries.
	HistoryUoW interface {
		TxManager
		HistoryRepoFactory
	}

	HistoryUoWFactory interface {
		Create() HistoryUoW
	}

	// DeliveryMetricUoW covers delivery metric recording.
	DeliveryMetricUoW interface {
		TxManager
		DeliveryMetricRepoFactory
	}

	DeliveryMetricUoWFactory interface {
		Create() DeliveryMetricUoW
	}

	// RouteAssignmentUoW covers linking shipments to routes.
	RouteAssignmentUoW interface {
		TxManager
		RouteAssignmentRepoFactory
	}

	RouteAssignmentUoWFactory interface {
		Create() RouteAssignmentUoW
	}
)

// BackgroundRunner executes side effects after the request that caused them has been
// answered. Implementations detach task contexts from ctx cancellation and log failures.
type BackgroundRunner interface {
	Go(ctx context.Context, name string, task func(ctx context.Context) error)
}
