package commands

import (
	"context"
	"log/slog"

	"logistics/internal/core/domain/model/history"
)

// RecordDeliveryMetricCommandHandler stores caller-supplied delivery metrics.
type RecordDeliveryMetricCommandHandler struct {
	uowFactory DeliveryMetricUoWFactory
}

func NewRecordDeliveryMetricCommandHandler(uowFactory DeliveryMetricUoWFactory) RecordDeliveryMetricCommandHandler {
	return RecordDeliveryMetricCommandHandler{uowFactory: uowFactory}
}

func (h RecordDeliveryMetricCommandHandler) Handle(
	ctx context.Context,
	cmd RecordDeliveryMetricCommand,
) (*history.DeliveryMetric, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	metric, err := history.NewDeliveryMetric(cmd.ShipmentID(), cmd.DeliveryTimeMinutes())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DeliveryMetricRepository()
	id, err := repo.Add(ctx, metric)
	if err != nil {
		return nil, err
	}

	stored, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return stored, nil
}

// RecordMissingDeliveryMetricsCommandHandler derives metrics for delivered shipments
// that have none: the minutes between creation and the first DELIVERED history entry.
type RecordMissingDeliveryMetricsCommandHandler struct {
	uowFactory DeliveryMetricUoWFactory
	logger     *slog.Logger
}

func NewRecordMissingDeliveryMetricsCommandHandler(
	uowFactory DeliveryMetricUoWFactory,
	logger *slog.Logger,
) RecordMissingDeliveryMetricsCommandHandler {
	return RecordMissingDeliveryMetricsCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "RecordMissingDeliveryMetricsCommandHandler"),
	}
}

// Handle records one batch in a single transaction and returns how many metrics it wrote.
func (h RecordMissingDeliveryMetricsCommandHandler) Handle(
	ctx context.Context,
	cmd RecordMissingDeliveryMetricsCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DeliveryMetricRepository()
	pending, err := repo.FindUnmeasuredDeliveries(ctx, cmd.BatchSize())
	if err != nil {
		return 0, err
	}
	if len(pending) == 0 {
		return 0, nil
	}

	for _, p := range pending {
		metric, err := history.NewDeliveryMetric(p.ShipmentID, history.DeliveryTimeMinutes(p.CreatedAt, p.DeliveredAt))
		if err != nil {
			return 0, err
		}
		if _, err = repo.Add(ctx, metric); err != nil {
			return 0, err
		}
		h.logger.DebugContext(ctx, "delivery metric recorded",
			"shipmentId", p.ShipmentID, "deliveryTimeMinutes", metric.DeliveryTimeMinutes())
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(pending), nil
}
