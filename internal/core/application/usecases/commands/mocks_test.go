package commands_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/history"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/notification"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/user"
	"logistics/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) (int64, error) {
	args := m.Called(ctx, s)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockShipmentRepository) Get(ctx context.Context, id int64) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*shipment.Shipment)
	return s, args.Error(1)
}

func (m *MockShipmentRepository) UpdateStatus(ctx context.Context, id int64, status shipment.Status) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockShipmentRepository) TransitionStatus(
	ctx context.Context,
	id int64,
	from, to shipment.Status,
) (bool, error) {
	args := m.Called(ctx, id, from, to)
	return args.Bool(0), args.Error(1)
}

func (m *MockShipmentRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockHistoryRepository struct{ mock.Mock }

func (m *MockHistoryRepository) Append(ctx context.Context, e *history.Entry) (int64, error) {
	args := m.Called(ctx, e)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockHistoryRepository) Get(ctx context.Context, id int64) (*history.Entry, error) {
	args := m.Called(ctx, id)
	e, _ := args.Get(0).(*history.Entry)
	return e, args.Error(1)
}

func (m *MockHistoryRepository) ListByShipment(ctx context.Context, shipmentID int64) ([]*history.Entry, error) {
	args := m.Called(ctx, shipmentID)
	e, _ := args.Get(0).([]*history.Entry)
	return e, args.Error(1)
}

type MockDeliveryMetricRepository struct{ mock.Mock }

func (m *MockDeliveryMetricRepository) Add(ctx context.Context, metric *history.DeliveryMetric) (int64, error) {
	args := m.Called(ctx, metric)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDeliveryMetricRepository) Get(ctx context.Context, id int64) (*history.DeliveryMetric, error) {
	args := m.Called(ctx, id)
	metric, _ := args.Get(0).(*history.DeliveryMetric)
	return metric, args.Error(1)
}

func (m *MockDeliveryMetricRepository) ListByShipment(
	ctx context.Context,
	shipmentID int64,
) ([]*history.DeliveryMetric, error) {
	args := m.Called(ctx, shipmentID)
	metrics, _ := args.Get(0).([]*history.DeliveryMetric)
	return metrics, args.Error(1)
}

func (m *MockDeliveryMetricRepository) FindUnmeasuredDeliveries(
	ctx context.Context,
	limit int,
) ([]ports.UnmeasuredDelivery, error) {
	args := m.Called(ctx, limit)
	pending, _ := args.Get(0).([]ports.UnmeasuredDelivery)
	return pending, args.Error(1)
}

type MockRouteAssignmentRepository struct{ mock.Mock }

func (m *MockRouteAssignmentRepository) Add(ctx context.Context, a *route.Assignment) (int64, error) {
	args := m.Called(ctx, a)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRouteAssignmentRepository) Get(ctx context.Context, id int64) (*route.Assignment, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*route.Assignment)
	return a, args.Error(1)
}

// MockUoW implements every unit of work flavour the handlers depend on.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

func (m *MockUoW) HistoryRepository() ports.HistoryRepository {
	args := m.Called()
	return args.Get(0).(ports.HistoryRepository)
}

func (m *MockUoW) DeliveryMetricRepository() ports.DeliveryMetricRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryMetricRepository)
}

func (m *MockUoW) RouteAssignmentRepository() ports.RouteAssignmentRepository {
	args := m.Called()
	return args.Get(0).(ports.RouteAssignmentRepository)
}

type MockShipmentUoWFactory struct{ mock.Mock }

func (m *MockShipmentUoWFactory) Create() commands.ShipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentUoW)
}

type MockHistoryUoWFactory struct{ mock.Mock }

func (m *MockHistoryUoWFactory) Create() commands.HistoryUoW {
	args := m.Called()
	return args.Get(0).(commands.HistoryUoW)
}

type MockDeliveryMetricUoWFactory struct{ mock.Mock }

func (m *MockDeliveryMetricUoWFactory) Create() commands.DeliveryMetricUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryMetricUoW)
}

type MockRouteAssignmentUoWFactory struct{ mock.Mock }

func (m *MockRouteAssignmentUoWFactory) Create() commands.RouteAssignmentUoW {
	args := m.Called()
	return args.Get(0).(commands.RouteAssignmentUoW)
}

type MockAddressValidator struct{ mock.Mock }

func (m *MockAddressValidator) Validate(ctx context.Context, a kernel.Address) (ports.AddressVerdict, error) {
	args := m.Called(ctx, a)
	return args.Get(0).(ports.AddressVerdict), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Get(ctx context.Context, id int64) (*user.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Send(ctx context.Context, n notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, e shipment.Event) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

// syncRunner runs tasks inline and remembers their outcome.
type syncRunner struct {
	mu     sync.Mutex
	names  []string
	errors map[string]error
}

func newSyncRunner() *syncRunner {
	return &syncRunner{errors: make(map[string]error)}
}

func (r *syncRunner) Go(ctx context.Context, name string, task func(ctx context.Context) error) {
	err := task(context.WithoutCancel(ctx))

	r.mu.Lock()
	defer r.mu.Unlock()
	r.names = append(r.names, name)
	r.errors[name] = err
}

func (r *syncRunner) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.names...)
}

// effectsFixture bundles the collaborators behind commands.LifecycleEffects.
type effectsFixture struct {
	runner    *syncRunner
	users     *MockUserRepository
	notifier  *MockNotifier
	publisher *MockEventPublisher
	effects   *commands.LifecycleEffects
}

func newEffectsFixture() *effectsFixture {
	f := &effectsFixture{
		runner:    newSyncRunner(),
		users:     new(MockUserRepository),
		notifier:  new(MockNotifier),
		publisher: new(MockEventPublisher),
	}
	f.effects = commands.NewLifecycleEffects(
		f.runner, f.users, f.notifier, f.publisher,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	return f
}

func (f *effectsFixture) AssertExpectations(t *testing.T) {
	t.Helper()
	f.users.AssertExpectations(t)
	f.notifier.AssertExpectations(t)
	f.publisher.AssertExpectations(t)
}

func testAddress(t *testing.T) kernel.Address {
	t.Helper()
	a, err := kernel.NewAddress("US", "Austin", "TX", "78701", []string{"100 Congress Ave"})
	require.NoError(t, err)
	return a
}

func storedShipment(t *testing.T, id int64, status shipment.Status) *shipment.Shipment {
	t.Helper()
	s, err := shipment.RestoreShipment(
		id, kernel.NewTrackingID(), 7, 2.5, "30x20x10", "books", testAddress(t), nil, status, time.Now(),
	)
	require.NoError(t, err)
	return s
}

func testOwner() *user.User {
	return user.RestoreUser(7, "Ada", "ada@example.com", user.RoleCustomer)
}
