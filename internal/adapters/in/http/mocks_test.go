package http_test

import (
	"context"
	"testing"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/history"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCreateShipmentHandler struct{ mock.Mock }

func (m *MockCreateShipmentHandler) Handle(ctx context.Context, cmd commands.CreateShipmentCommand) (*shipment.Shipment, error) {
	args := m.Called(ctx, cmd)
	s, _ := args.Get(0).(*shipment.Shipment)
	return s, args.Error(1)
}

type MockUpdateShipmentStatusHandler struct{ mock.Mock }

func (m *MockUpdateShipmentStatusHandler) Handle(
	ctx context.Context,
	cmd commands.UpdateShipmentStatusCommand,
) (*shipment.Shipment, error) {
	args := m.Called(ctx, cmd)
	s, _ := args.Get(0).(*shipment.Shipment)
	return s, args.Error(1)
}

type MockMarkShipmentDeliveredHandler struct{ mock.Mock }

func (m *MockMarkShipmentDeliveredHandler) Handle(
	ctx context.Context,
	cmd commands.MarkShipmentDeliveredCommand,
) (*shipment.Shipment, error) {
	args := m.Called(ctx, cmd)
	s, _ := args.Get(0).(*shipment.Shipment)
	return s, args.Error(1)
}

type MockDeleteShipmentHandler struct{ mock.Mock }

func (m *MockDeleteShipmentHandler) Handle(ctx context.Context, cmd commands.DeleteShipmentCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockCreateRouteAssignmentHandler struct{ mock.Mock }

func (m *MockCreateRouteAssignmentHandler) Handle(
	ctx context.Context,
	cmd commands.CreateRouteAssignmentCommand,
) (*route.Assignment, error) {
	args := m.Called(ctx, cmd)
	a, _ := args.Get(0).(*route.Assignment)
	return a, args.Error(1)
}

type MockAppendStatusHistoryHandler struct{ mock.Mock }

func (m *MockAppendStatusHistoryHandler) Handle(
	ctx context.Context,
	cmd commands.AppendStatusHistoryCommand,
) (*history.Entry, error) {
	args := m.Called(ctx, cmd)
	e, _ := args.Get(0).(*history.Entry)
	return e, args.Error(1)
}

type MockRecordDeliveryMetricHandler struct{ mock.Mock }

func (m *MockRecordDeliveryMetricHandler) Handle(
	ctx context.Context,
	cmd commands.RecordDeliveryMetricCommand,
) (*history.DeliveryMetric, error) {
	args := m.Called(ctx, cmd)
	dm, _ := args.Get(0).(*history.DeliveryMetric)
	return dm, args.Error(1)
}

type MockFindShipmentsHandler struct{ mock.Mock }

func (m *MockFindShipmentsHandler) Handle(
	ctx context.Context,
	query queries.FindShipmentsQuery,
) ([]queries.ShipmentView, error) {
	args := m.Called(ctx, query)
	views, _ := args.Get(0).([]queries.ShipmentView)
	return views, args.Error(1)
}

type MockGetShipmentDetailsHandler struct{ mock.Mock }

func (m *MockGetShipmentDetailsHandler) Handle(
	ctx context.Context,
	query queries.GetShipmentDetailsQuery,
) (queries.ShipmentDetails, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.ShipmentDetails), args.Error(1)
}

type MockGetShipmentIndicatorsHandler struct{ mock.Mock }

func (m *MockGetShipmentIndicatorsHandler) Handle(
	ctx context.Context,
	query queries.GetShipmentIndicatorsQuery,
) (queries.ShipmentIndicators, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.ShipmentIndicators), args.Error(1)
}

type MockGetDailyShipmentCountsHandler struct{ mock.Mock }

func (m *MockGetDailyShipmentCountsHandler) Handle(
	ctx context.Context,
	query queries.GetDailyShipmentCountsQuery,
) ([]queries.DailyShipmentCount, error) {
	args := m.Called(ctx, query)
	counts, _ := args.Get(0).([]queries.DailyShipmentCount)
	return counts, args.Error(1)
}

type MockListStatusHistoryHandler struct{ mock.Mock }

func (m *MockListStatusHistoryHandler) Handle(
	ctx context.Context,
	query queries.ListStatusHistoryQuery,
) ([]queries.HistoryEntryView, error) {
	args := m.Called(ctx, query)
	entries, _ := args.Get(0).([]queries.HistoryEntryView)
	return entries, args.Error(1)
}

type MockFindUserByEmailHandler struct{ mock.Mock }

func (m *MockFindUserByEmailHandler) Handle(
	ctx context.Context,
	query queries.FindUserByEmailQuery,
) (queries.UserView, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.UserView), args.Error(1)
}

func restoreShipment(t *testing.T, id int64, status shipment.Status) *shipment.Shipment {
	t.Helper()
	trackingID, err := kernel.TrackingIDFromString("COORD_1234ABCD")
	require.NoError(t, err)
	dest, err := kernel.NewAddress("US", "Austin", "TX", "78701", []string{"100 Congress Ave"})
	require.NoError(t, err)
	s, err := shipment.RestoreShipment(id, trackingID, 7, 2.5, "30x20x10", "books", dest, nil, status, time.Now())
	require.NoError(t, err)
	return s
}
